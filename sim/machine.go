// Package sim models the STM32F429 peripherals the firmware touches, so the
// core package can run unmodified on a host. Time is simulated in bus clock
// ticks and only advances when the CPU polls the timer status register.
package sim

import (
	"math/bits"
	"time"

	"antiphase/core"
)

// Pin numbers of the Discovery board LEDs on GPIOG. Phase A drives LineTwo,
// so PG13 lights first.
const (
	PinLineOne = 14
	PinLineTwo = 13
)

// Options configures a simulated machine
type Options struct {
	// BusHz is the timer bus clock frequency
	BusHz uint64

	// PollCost is the number of bus ticks one status register read takes
	PollCost uint64
}

// DefaultOptions returns the Discovery board reset configuration
func DefaultOptions() Options {
	return Options{
		BusHz:    8_000_000,
		PollCost: 4,
	}
}

// F429 is a simulated STM32F429 with the peripherals used by the firmware
type F429 struct {
	RCC   *RCC
	GPIOG *GPIO
	TIM7  *Timer

	opts    Options
	ticks   uint64
	vectors *core.VectorTable
	pending []int
}

// NewF429 creates a simulated machine in its power-on state
func NewF429(opts Options) *F429 {
	if opts.BusHz == 0 {
		opts.BusHz = DefaultOptions().BusHz
	}
	if opts.PollCost == 0 {
		opts.PollCost = 1
	}

	m := &F429{
		RCC:     newRCC(),
		opts:    opts,
		vectors: core.NewVectorTable(),
	}
	m.GPIOG = newGPIO("GPIOG", m.RCC.GPIOGEnabled, m.Ticks)
	m.TIM7 = newTimer("TIM7", m.RCC.TIM7Enabled)

	// Every status poll costs bus time
	sr := m.TIM7.SR
	sr.onRead = func() uint32 {
		m.Advance(m.opts.PollCost)
		return sr.value
	}
	return m
}

// Board returns the peripheral handles for the firmware
func (m *F429) Board() core.Board {
	return core.Board{
		Gate: core.EnableBits{
			{Reg: m.RCC.AHB1ENR, Mask: RCC_AHB1ENR_GPIOGEN},
			{Reg: m.RCC.APB1ENR, Mask: RCC_APB1ENR_TIM7EN},
		},
		Timer: &core.BasicTimer{
			CR1: m.TIM7.CR1,
			SR:  m.TIM7.SR,
			EGR: m.TIM7.EGR,
			PSC: m.TIM7.PSC,
			ARR: m.TIM7.ARR,
		},
		Output: &core.SetResetOutput{
			MODER: m.GPIOG.MODER,
			BSRR:  m.GPIOG.BSRR,
			Pins:  [2]core.GPIOPin{PinLineOne, PinLineTwo},
		},
	}
}

// Advance moves simulated time forward by ticks bus clock ticks
func (m *F429) Advance(ticks uint64) {
	m.ticks += ticks
	m.TIM7.Step(ticks)
	m.deliver()
}

// Ticks returns the elapsed bus clock ticks
func (m *F429) Ticks() uint64 {
	return m.ticks
}

// Elapsed returns the simulated time since power-on
func (m *F429) Elapsed() time.Duration {
	return TicksToDuration(m.ticks, m.opts.BusHz)
}

// BusHz returns the simulated bus clock frequency
func (m *F429) BusHz() uint64 {
	return m.opts.BusHz
}

// Raise requests an interrupt on vector. It stays pending while interrupts
// are masked.
func (m *F429) Raise(vector int) {
	m.pending = append(m.pending, vector)
	m.deliver()
}

// Pending returns the interrupts waiting for the mask to be lifted
func (m *F429) Pending() []int {
	return m.pending
}

func (m *F429) deliver() {
	if core.InterruptsMasked() || len(m.pending) == 0 {
		return
	}
	pending := m.pending
	m.pending = nil
	for _, v := range pending {
		m.vectors.Dispatch(v)
	}
}

// TicksToDuration converts bus clock ticks to time
func TicksToDuration(ticks, hz uint64) time.Duration {
	if hz == 0 {
		return 0
	}
	secs := ticks / hz
	// rem < hz keeps the 128-bit quotient within 64 bits
	hi, lo := bits.Mul64(ticks%hz, uint64(time.Second))
	frac, _ := bits.Div64(hi, lo, hz)
	return time.Duration(secs)*time.Second + time.Duration(frac)
}

// DurationToTicks converts time to bus clock ticks, rounding down
func DurationToTicks(d time.Duration, hz uint64) uint64 {
	secs := uint64(d / time.Second)
	hi, lo := bits.Mul64(uint64(d%time.Second), hz)
	frac, _ := bits.Div64(hi, lo, uint64(time.Second))
	return secs*hz + frac
}
