package core

// Basic timer register bits (STM32 TIM6/TIM7 layout)
const (
	TIM_CR1_CEN = 1 << 0 // Counter enable
	TIM_CR1_OPM = 1 << 3 // One-pulse mode
	TIM_SR_UIF  = 1 << 0 // Update interrupt flag (rc_w0)
	TIM_EGR_UG  = 1 << 0 // Update generation
)

// BasicTimer drives an STM32-style basic timer through its registers
type BasicTimer struct {
	CR1 Register
	SR  Register
	EGR Register
	PSC Register
	ARR Register
}

// Program implements PeriodTimer
func (t *BasicTimer) Program(cfg TimerConfig) error {
	t.PSC.Set(uint32(cfg.Divisor))
	t.ARR.Set(uint32(cfg.Reload))

	// Continuous mode
	t.CR1.ClearBits(TIM_CR1_OPM)

	// PSC is buffered until the next update event; force one so the first
	// period is already divided, then drop the flag it raised
	t.EGR.Set(TIM_EGR_UG)
	t.SR.Set(^uint32(TIM_SR_UIF))
	return nil
}

// Start implements PeriodTimer
func (t *BasicTimer) Start() {
	t.CR1.SetBits(TIM_CR1_CEN)
}

// Overflowed implements PeriodTimer
func (t *BasicTimer) Overflowed() bool {
	return t.SR.HasBits(TIM_SR_UIF)
}

// ClearOverflow implements PeriodTimer. SR bits are cleared by writing 0
// and unaffected by writing 1, so this is a plain write.
func (t *BasicTimer) ClearOverflow() {
	t.SR.Set(^uint32(TIM_SR_UIF))
}
