//go:build stm32f4

// Firmware for the STM32F429I Discovery: PG13 and PG14 blink in antiphase,
// timed by TIM7.
//
// Build with tinygo -target=stm32f4disco. That target describes the F407
// Discovery, whose clock setup and RCC/GPIOG/TIM7 addresses match the F429;
// only its board pin map differs, and it is not used here.
package main

import (
	"antiphase/config"
	"antiphase/core"
)

func main() {
	InitDebug()

	// Everything below runs with interrupts masked, for good
	cs := core.EnterCritical()

	board, err := core.ClaimBoard(cs, openBoard)
	if err != nil {
		core.Fatal(err)
	}

	err = core.Boot(cs, board, config.BusHz, config.TargetHz)
	core.Fatal(err)
}

// openBoard builds the handles for RCC, GPIOG and TIM7
func openBoard() core.Board {
	return core.Board{
		Gate: core.EnableBits{
			{Reg: reg(rccAHB1ENR), Mask: rccGPIOGEN},
			{Reg: reg(rccAPB1ENR), Mask: rccTIM7EN},
		},
		Timer: &core.BasicTimer{
			CR1: reg(tim7CR1),
			SR:  reg(tim7SR),
			EGR: reg(tim7EGR),
			PSC: reg(tim7PSC),
			ARR: reg(tim7ARR),
		},
		Output: &core.SetResetOutput{
			MODER: reg(gpioGMODER),
			BSRR:  reg(gpioGBSRR),
			Pins:  [2]core.GPIOPin{config.LineOnePin, config.LineTwoPin},
		},
	}
}
