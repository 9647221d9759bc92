//go:build rp2040

package config

// Raspberry Pi Pico: PIO runs from the 125 MHz system clock
const (
	BoardName = "pico"
	BusHz     = 125_000_000

	LineOnePin = 25 // GP25, on-board LED
	LineTwoPin = 15 // GP15, external LED
)
