// Output pair drivers
// Both drivers change the two lines with one bus write, so no observer ever
// sees both lines at the same level because of a SetPair call.
package core

// GPIO mode register values (2 bits per pin)
const (
	GPIO_MODER_INPUT  = 0
	GPIO_MODER_OUTPUT = 1
	GPIO_MODER_Msk    = 0b11
)

// SetResetOutput drives the pair through a write-only set/reset register
// with a set bit per pin in the low half and a reset bit in the high half
// (STM32 BSRR layout).
type SetResetOutput struct {
	MODER Register
	BSRR  Register
	Pins  [2]GPIOPin // indexed by Line
}

// Configure implements PairOutput
func (o *SetResetOutput) Configure() {
	for _, pin := range o.Pins {
		o.MODER.ReplaceBits(GPIO_MODER_OUTPUT, GPIO_MODER_Msk, uint8(pin)*2)
	}
}

// SetPair implements PairOutput
func (o *SetResetOutput) SetPair(high, low Line) {
	o.BSRR.Set(1<<o.Pins[high] | 1<<(o.Pins[low]+16))
}

// WordOutput drives the pair by writing a whole output word. The firmware
// owns every output of the bank, so bits other than the pair are written 0.
type WordOutput struct {
	OUT  Register
	Pins [2]GPIOPin // indexed by Line

	// ConfigurePin puts a pin in output mode, supplied by the platform
	ConfigurePin func(pin GPIOPin)
}

// Configure implements PairOutput
func (o *WordOutput) Configure() {
	if o.ConfigurePin == nil {
		return
	}
	for _, pin := range o.Pins {
		o.ConfigurePin(pin)
	}
}

// SetPair implements PairOutput
func (o *WordOutput) SetPair(high, low Line) {
	o.OUT.Set(1 << o.Pins[high])
}
