package core

// GPIOPin identifies a pin number within a GPIO bank
type GPIOPin uint8

// Line names one of the two outputs of the pair
type Line uint8

const (
	LineOne Line = iota
	LineTwo
)

func (l Line) String() string {
	switch l {
	case LineOne:
		return "LineOne"
	case LineTwo:
		return "LineTwo"
	}
	return "Line(" + itoa(int(l)) + ")"
}

// PairOutput is the abstract interface for the two output lines.
// Platform-specific implementations handle actual hardware control.
type PairOutput interface {
	// Configure puts both lines in general-purpose output mode
	Configure()

	// SetPair drives high to 1 and low to 0 in a single register write
	SetPair(high, low Line)
}

// ClockGate enables the clocks of the peripherals the firmware uses.
// Enabling an already running clock is a no-op.
type ClockGate interface {
	Enable()
}

// EnableBits is a ClockGate that sets enable bits in clock-control registers
type EnableBits []EnableBit

// EnableBit is one enable bit mask within a clock-control register
type EnableBit struct {
	Reg  Register
	Mask uint32
}

// Enable implements ClockGate
func (g EnableBits) Enable() {
	for _, b := range g {
		b.Reg.SetBits(b.Mask)
	}
}
