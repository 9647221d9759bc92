//go:build stm32f4

package main

import (
	"runtime/volatile"
	"unsafe"
)

// STM32F429 reset and clock control (RM0090 section 6)
const (
	rccBase    = 0x40023800
	rccAHB1ENR = rccBase + 0x30 // AHB1 peripheral clock enable
	rccAPB1ENR = rccBase + 0x40 // APB1 peripheral clock enable
	rccGPIOGEN = 1 << 6         // AHB1ENR: GPIOG clock enable
	rccTIM7EN  = 1 << 5         // APB1ENR: TIM7 clock enable
)

// GPIO port G
const (
	gpioGBase  = 0x40021800
	gpioGMODER = gpioGBase + 0x00 // Port mode, 2 bits per pin
	gpioGBSRR  = gpioGBase + 0x18 // Bit set/reset, write-only
)

// TIM7 basic timer
const (
	tim7Base = 0x40001400
	tim7CR1  = tim7Base + 0x00 // Control register 1
	tim7SR   = tim7Base + 0x10 // Status register
	tim7EGR  = tim7Base + 0x14 // Event generation
	tim7PSC  = tim7Base + 0x28 // Prescaler
	tim7ARR  = tim7Base + 0x2C // Auto-reload
)

// reg maps a peripheral register address
func reg(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}
