package core

// Register is a 32-bit memory-mapped peripheral register. The method set
// matches TinyGo's *volatile.Register32 so hardware registers can be passed
// in directly, and the host simulator provides its own.
type Register interface {
	Get() uint32
	Set(value uint32)
	SetBits(value uint32)
	ClearBits(value uint32)
	HasBits(value uint32) bool
	ReplaceBits(value uint32, mask uint32, pos uint8)
}

// PeriodTimer is the abstract counter/timer the poll loop runs on.
// Platform-specific implementations handle actual hardware control.
type PeriodTimer interface {
	// Program writes the prescale divisor and reload value and selects
	// continuous (periodic) mode. The counter is not started.
	Program(cfg TimerConfig) error

	// Start enables the counter
	Start()

	// Overflowed reports whether an overflow event is pending
	Overflowed() bool

	// ClearOverflow clears the pending overflow indicator. Clearing an
	// already clear indicator has no effect.
	ClearOverflow()
}
