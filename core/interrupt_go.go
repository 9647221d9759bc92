//go:build !tinygo

package core

// interruptsMasked tracks the critical section on regular Go (for testing)
var interruptsMasked bool

// disableInterrupts only records the mask on regular Go
func disableInterrupts() {
	interruptsMasked = true
}

// InterruptsMasked reports whether a critical section has been entered
func InterruptsMasked() bool {
	return interruptsMasked
}
