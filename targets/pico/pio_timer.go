//go:build rp2040

package main

import (
	"antiphase/core"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// One pass of the countdown program raises IRQ flag 0 once per period:
//
//	mov x, y      1 cycle
//	jmp x--, 1    x+1 cycles
//	irq set 0     1 cycle
//
// for x+3 cycles in total. Y holds the preload and is never modified.
const countdownOverhead = 2

const overflowIRQ = 1 << 0

func buildCountdownProgram() []uint16 {
	return []uint16{
		// .wrap_target
		rp2pio.EncodeMov(rp2pio.SrcDestX, rp2pio.SrcDestY), // 0: mov x, y
		rp2pio.EncodeJmp(1, rp2pio.JmpXNZeroDec),           // 1: jmp x--, 1
		rp2pio.EncodeIRQSet(false, 0),                      // 2: irq set 0
		// .wrap
	}
}

// PIOTimer is a core.PeriodTimer built from a PIO state machine. The state
// machine clock divider plays the prescaler and the countdown preload plays
// the reload value.
type PIOTimer struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	offset uint8
}

// NewPIOTimer returns a timer on state machine smNum of PIO0
func NewPIOTimer(smNum uint8) *PIOTimer {
	return &PIOTimer{
		pio: rp2pio.PIO0,
		sm:  rp2pio.PIO0.StateMachine(smNum),
	}
}

// Program implements core.PeriodTimer
func (t *PIOTimer) Program(cfg core.TimerConfig) error {
	preload, err := core.CountdownPreload(cfg, countdownOverhead)
	if err != nil {
		return err
	}

	if !t.sm.TryClaim() {
		return core.ErrBoardClaimed
	}

	program := buildCountdownProgram()
	offset, err := t.pio.AddProgram(program, -1)
	if err != nil {
		return err
	}
	t.offset = offset

	smCfg := rp2pio.DefaultStateMachineConfig()
	// The integer divider field is 16 bits wide; 0 selects 65536.
	smCfg.SetClkDivIntFrac(uint16(uint32(cfg.Divisor)+1), 0)
	smCfg.SetWrap(offset, offset+uint8(len(program))-1)

	t.sm.Init(offset, smCfg)
	t.sm.SetY(preload)
	t.pio.ClearIRQ(overflowIRQ)

	core.DebugPrintln("[PIO] countdown loaded, " + cfg.String())
	return nil
}

// Start implements core.PeriodTimer
func (t *PIOTimer) Start() {
	t.sm.SetEnabled(true)
}

// Overflowed implements core.PeriodTimer
func (t *PIOTimer) Overflowed() bool {
	return t.pio.GetIRQ()&overflowIRQ != 0
}

// ClearOverflow implements core.PeriodTimer
func (t *PIOTimer) ClearOverflow() {
	t.pio.ClearIRQ(overflowIRQ)
}
