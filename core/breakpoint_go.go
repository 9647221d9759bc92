//go:build !tinygo

package core

// breakpoint panics on regular Go so tests can observe the trap
func breakpoint(vector int) {
	panic(&TrapError{Vector: vector})
}

// halt panics on regular Go (for testing)
func halt() {
	panic(ErrHalted)
}
