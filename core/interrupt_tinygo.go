//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks all maskable interrupts. The previous state is
// dropped: nothing unmasks them again.
func disableInterrupts() {
	_ = interrupt.Disable()
}
