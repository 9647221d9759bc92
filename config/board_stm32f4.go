//go:build stm32f4

package config

// STM32F429I Discovery, flashed with TinyGo's stm32f4disco (F407) image.
// TinyGo's runtime runs SYSCLK at 168 MHz with APB1 at 42 MHz, and APB1
// timers (TIM7) see twice that.
const (
	BoardName = "stm32f429disco"
	BusHz     = 84_000_000

	// Phase A drives LineTwo, so PG13 lights first
	LineOnePin = 14 // PG14, red LED
	LineTwoPin = 13 // PG13, green LED
)
