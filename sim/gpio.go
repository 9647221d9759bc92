package sim

// Edge is one output data register change caused by a BSRR write
type Edge struct {
	Tick uint64 // bus tick of the write
	ODR  uint32 // output data after the write
}

// GPIO models a GPIO bank's mode register and its write-only set/reset
// register
type GPIO struct {
	MODER *Reg
	BSRR  *Reg

	odr   uint32
	edges []Edge
	now   func() uint64
}

func newGPIO(prefix string, clocked func() bool, now func() uint64) *GPIO {
	g := &GPIO{
		MODER: newReg(prefix+"_MODER", clocked),
		BSRR:  newReg(prefix+"_BSRR", clocked),
		now:   now,
	}

	// BSRR reads as zero; set bits win over reset bits for the same pin
	g.BSRR.onRead = func() uint32 { return 0 }
	g.BSRR.onWrite = func(v uint32) {
		set := v & 0xFFFF
		reset := v >> 16
		g.odr = (g.odr &^ reset) | set
		g.edges = append(g.edges, Edge{Tick: g.now(), ODR: g.odr})
	}
	return g
}

// ODR returns the current output levels
func (g *GPIO) ODR() uint32 {
	return g.odr
}

// Pin reports the output level of pin
func (g *GPIO) Pin(pin uint8) bool {
	return g.odr&(1<<pin) != 0
}

// Mode returns the 2-bit mode field of pin
func (g *GPIO) Mode(pin uint8) uint32 {
	return (g.MODER.value >> (uint32(pin) * 2)) & 0b11
}

// Edges returns every BSRR write in order
func (g *GPIO) Edges() []Edge {
	return g.edges
}
