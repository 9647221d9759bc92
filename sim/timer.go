package sim

import (
	"fmt"

	"antiphase/core"
)

// Timer implements an STM32 basic timer (TIM6/TIM7): a prescaler feeding a
// 16-bit up-counter that wraps at ARR and raises UIF on every wrap
type Timer struct {
	CR1 *Reg
	SR  *Reg
	EGR *Reg
	PSC *Reg
	ARR *Reg
	CNT *Reg

	// prescaler is the PSC shadow register, loaded on update events
	prescaler uint32

	// ticksRemaining is the number of bus ticks before CNT next increments
	ticksRemaining uint64

	// overflows counts update events caused by the counter wrapping
	overflows uint64
}

func newTimer(prefix string, clocked func() bool) *Timer {
	tmr := &Timer{
		CR1: newReg(prefix+"_CR1", clocked),
		SR:  newReg(prefix+"_SR", clocked),
		EGR: newReg(prefix+"_EGR", clocked),
		PSC: newReg(prefix+"_PSC", clocked),
		ARR: newReg(prefix+"_ARR", clocked),
		CNT: newReg(prefix+"_CNT", clocked),
	}
	tmr.ARR.value = 0xFFFF
	tmr.ticksRemaining = 1

	// Status bits are rc_w0: writing 0 clears, writing 1 has no effect
	tmr.SR.onWrite = func(v uint32) {
		tmr.SR.value &= v
	}

	// EGR is write-only; UG re-initialises the counter and generates an
	// update event
	tmr.EGR.onRead = func() uint32 { return 0 }
	tmr.EGR.onWrite = func(v uint32) {
		if v&core.TIM_EGR_UG != 0 {
			tmr.CNT.value = 0
			tmr.update()
		}
	}
	return tmr
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("CNT=%d ARR=%d PSC=%d/%d SR=%#x CR1=%#x",
		tmr.CNT.value,
		tmr.ARR.value,
		tmr.PSC.value,
		tmr.prescaler,
		tmr.SR.value,
		tmr.CR1.value,
	)
}

// update loads the prescaler shadow register and flags the event
func (tmr *Timer) update() {
	tmr.prescaler = tmr.PSC.value & 0xFFFF
	tmr.ticksRemaining = uint64(tmr.prescaler) + 1
	tmr.SR.value |= core.TIM_SR_UIF
	if tmr.CR1.value&core.TIM_CR1_OPM != 0 {
		tmr.CR1.value &^= core.TIM_CR1_CEN
	}
}

// Step advances the timer by ticks bus clock ticks
func (tmr *Timer) Step(ticks uint64) {
	for ticks > 0 && tmr.CR1.value&core.TIM_CR1_CEN != 0 {
		if ticks < tmr.ticksRemaining {
			tmr.ticksRemaining -= ticks
			return
		}
		ticks -= tmr.ticksRemaining
		tmr.ticksRemaining = uint64(tmr.prescaler) + 1

		tmr.CNT.value++
		if tmr.CNT.value > tmr.ARR.value&0xFFFF {
			tmr.CNT.value = 0
			tmr.overflows++
			tmr.update()
		}
	}
}

// Overflows returns the number of counter wraps so far
func (tmr *Timer) Overflows() uint64 {
	return tmr.overflows
}

// Prescaler returns the active (shadow) prescaler value
func (tmr *Timer) Prescaler() uint32 {
	return tmr.prescaler
}
