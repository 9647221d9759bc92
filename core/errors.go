package core

// Error is a constant error value
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrConfigOutOfRange = Error("timer configuration out of range")
	ErrZeroFrequency    = Error("frequency must be positive")
	ErrBoardClaimed     = Error("board peripherals already claimed")
	ErrUnhandledTrap    = Error("unhandled trap")
	ErrHalted           = Error("firmware halted")
)

// RangeError reports which derived timer value did not fit its register
type RangeError struct {
	Field string
	Value uint64
}

func (e *RangeError) Error() string {
	return "timer " + e.Field + " " + u64toa(e.Value) + " out of range"
}

// Is makes errors.Is(err, ErrConfigOutOfRange) hold for range errors
func (e *RangeError) Is(target error) bool {
	return target == ErrConfigOutOfRange
}

// TrapError is raised by the default trap handler on hosted builds
type TrapError struct {
	Vector int
}

func (e *TrapError) Error() string {
	return "unhandled trap on vector " + itoa(e.Vector)
}

func (e *TrapError) Unwrap() error {
	return ErrUnhandledTrap
}
