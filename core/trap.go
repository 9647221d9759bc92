package core

// VectorCount is the number of device interrupt vectors on Cortex-M4 parts
const VectorCount = 240

// TrapHandler services one interrupt vector
type TrapHandler func(vector int)

// VectorTable holds a handler for every device interrupt vector. Interrupts
// stay masked for the whole program, so no slot is expected to run.
type VectorTable [VectorCount]TrapHandler

// NewVectorTable returns a table with every slot set to UnhandledTrap
func NewVectorTable() *VectorTable {
	t := new(VectorTable)
	for i := range t {
		t[i] = UnhandledTrap
	}
	return t
}

// Dispatch runs the handler for vector
func (t *VectorTable) Dispatch(vector int) {
	if vector < 0 || vector >= VectorCount {
		UnhandledTrap(vector)
		return
	}
	t[vector](vector)
}

// UnhandledTrap is the default handler: it reports the vector and stops at
// a breakpoint for an attached debugger
func UnhandledTrap(vector int) {
	DebugPrintln("[TRAP] unhandled vector " + itoa(vector))
	breakpoint(vector)
}
