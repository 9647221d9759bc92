//go:build tinygo

package core

import "device/arm"

// breakpoint stops at a debugger breakpoint and never returns
func breakpoint(vector int) {
	arm.Asm("bkpt #0")
	for {
	}
}

// halt stops the firmware for good
func halt() {
	breakpoint(-1)
}
