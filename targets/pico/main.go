//go:build rp2040

// Firmware for the Raspberry Pi Pico: GP25 (on-board LED) and GP15 blink in
// antiphase, timed by a countdown program on PIO0.
package main

import (
	"antiphase/config"
	"antiphase/core"
	"machine"

	"device/rp"
)

func main() {
	InitDebugUART()

	cs := core.EnterCritical()

	board, err := core.ClaimBoard(cs, openBoard)
	if err != nil {
		core.Fatal(err)
	}

	err = core.Boot(cs, board, config.BusHz, config.TargetHz)
	core.Fatal(err)
}

// openBoard builds the handles for RESETS, SIO and PIO0 state machine 0
func openBoard() core.Board {
	return core.Board{
		Gate: resetRelease{
			mask: rp.RESETS_RESET_PIO0 | rp.RESETS_RESET_IO_BANK0 | rp.RESETS_RESET_PADS_BANK0,
		},
		Timer: NewPIOTimer(0),
		Output: &core.WordOutput{
			OUT:          &rp.SIO.GPIO_OUT,
			Pins:         [2]core.GPIOPin{config.LineOnePin, config.LineTwoPin},
			ConfigurePin: configureOutput,
		},
	}
}

func configureOutput(pin core.GPIOPin) {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
}

// resetRelease is the RP2040 form of a clock gate: peripherals are clocked
// from boot but held in reset until released.
type resetRelease struct {
	mask uint32
}

// Enable implements core.ClockGate
func (r resetRelease) Enable() {
	rp.RESETS.RESET.ClearBits(r.mask)
	for !rp.RESETS.RESET_DONE.HasBits(r.mask) {
	}
}
