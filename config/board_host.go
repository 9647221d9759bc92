//go:build !stm32f4 && !rp2040

package config

// Hosted builds simulate the STM32F429 Discovery
const (
	BoardName = "sim-stm32f429disco"
	BusHz     = 8_000_000

	LineOnePin = 14
	LineTwoPin = 13
)
