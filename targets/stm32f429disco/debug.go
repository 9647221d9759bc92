//go:build stm32f4

package main

import (
	"antiphase/core"

	"tinygo.org/x/drivers/semihosting"
)

// debug enables semihosting output; set with -ldflags "-X main.debug=on".
// Semihosting calls fault without an attached debugger, so it is off by default.
var debug string

// InitDebug routes core debug output to the debugger's stdout
func InitDebug() {
	if debug != "on" {
		return
	}

	core.SetDebugWriter(func(s string) {
		semihosting.Stdout.Write([]byte(s))
		semihosting.Stdout.Write([]byte("\n"))
	})
	core.SetDebugEnabled(true)
	core.DebugPrintln("=== STM32F429 semihosting debug enabled ===")
}
