package sim

// Reg is a simulated 32-bit peripheral register. It implements
// core.Register. Reads and writes can be intercepted to model hardware
// side effects, and writes are dropped while the owning peripheral's clock
// is gated off.
type Reg struct {
	Name  string
	value uint32

	// clocked reports whether the owning peripheral's clock is enabled
	clocked func() bool

	// onRead returns the value seen by the CPU when set
	onRead func() uint32

	// onWrite replaces the default store when set
	onWrite func(value uint32)

	writes int
	reads  int
}

func newReg(name string, clocked func() bool) *Reg {
	return &Reg{Name: name, clocked: clocked}
}

// Get reads the register
func (r *Reg) Get() uint32 {
	r.reads++
	if r.onRead != nil {
		return r.onRead()
	}
	return r.value
}

// Set writes the register
func (r *Reg) Set(value uint32) {
	if r.clocked != nil && !r.clocked() {
		return
	}
	r.writes++
	if r.onWrite != nil {
		r.onWrite(value)
		return
	}
	r.value = value
}

// SetBits performs a read-modify-write setting the given bits
func (r *Reg) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

// ClearBits performs a read-modify-write clearing the given bits
func (r *Reg) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// HasBits reads the register and reports whether any of the bits are set
func (r *Reg) HasBits(value uint32) bool {
	return r.Get()&value != 0
}

// ReplaceBits performs a read-modify-write of a bit field
func (r *Reg) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}

// Value returns the stored value without side effects
func (r *Reg) Value() uint32 {
	return r.value
}

// Writes returns the number of accepted CPU writes
func (r *Reg) Writes() int {
	return r.writes
}

// Reads returns the number of CPU reads
func (r *Reg) Reads() int {
	return r.reads
}
