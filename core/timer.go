package core

import "time"

// Hardware prescale and reload registers are 16 bits wide
const (
	MaxDivisor = 0xFFFF
	MaxReload  = 0xFFFF
)

// TimerConfig is the prescale divisor and reload value for one blink period.
// The counter divides the bus clock by Divisor+1 and overflows every
// Reload+1 divided ticks.
type TimerConfig struct {
	Divisor uint16
	Reload  uint16
}

// ComputeTimerConfig derives the timer configuration that overflows at
// target Hz from a bus clock of bus Hz. The divisor is the smallest one that
// leaves a 16-bit reload value.
func ComputeTimerConfig(bus, target uint64) (TimerConfig, error) {
	if bus == 0 || target == 0 {
		return TimerConfig{}, ErrZeroFrequency
	}

	ratio := bus / target
	if ratio == 0 {
		// Requested period is shorter than one bus tick
		return TimerConfig{}, &RangeError{Field: "ratio", Value: ratio}
	}

	divisor := (ratio - 1) / MaxDivisor
	if divisor > MaxDivisor {
		return TimerConfig{}, &RangeError{Field: "divisor", Value: divisor}
	}

	reload := ratio / (divisor + 1)
	if reload > MaxReload {
		return TimerConfig{}, &RangeError{Field: "reload", Value: reload}
	}

	return TimerConfig{Divisor: uint16(divisor), Reload: uint16(reload)}, nil
}

// Ticks returns the number of bus clock ticks in one timer period
func (c TimerConfig) Ticks() uint64 {
	return (uint64(c.Divisor) + 1) * (uint64(c.Reload) + 1)
}

// Period returns the effective overflow period on a bus clock of bus Hz
func (c TimerConfig) Period(bus uint64) time.Duration {
	if bus == 0 {
		return 0
	}
	ticks := c.Ticks()
	secs := ticks / bus
	rem := ticks % bus
	return time.Duration(secs)*time.Second + time.Duration(rem*uint64(time.Second)/bus)
}

// Bias returns how many bus ticks the effective period exceeds the ideal
// bus/target ratio by. The reload value is written without subtracting one,
// so the bias is positive and at most Divisor+1.
func (c TimerConfig) Bias(bus, target uint64) int64 {
	if target == 0 {
		return 0
	}
	return int64(c.Ticks()) - int64(bus/target)
}

func (c TimerConfig) String() string {
	return "divisor=" + utoa(uint32(c.Divisor)) + " reload=" + utoa(uint32(c.Reload))
}

// ProgramTimer computes the configuration for target Hz, programs it into t
// in periodic mode and starts the counter. On error t is left untouched.
func ProgramTimer(t PeriodTimer, bus, target uint64) (TimerConfig, error) {
	cfg, err := ComputeTimerConfig(bus, target)
	if err != nil {
		return TimerConfig{}, err
	}

	if err := t.Program(cfg); err != nil {
		return TimerConfig{}, err
	}
	t.Start()

	DebugPrintln("[TIMER] started " + cfg.String())
	return cfg, nil
}

// CountdownPreload returns the loop counter value for a software countdown
// (such as a PIO program) that spends overhead cycles per period outside its
// decrement loop, so that one pass lasts Reload+1 divided clocks.
func CountdownPreload(cfg TimerConfig, overhead uint32) (uint32, error) {
	ticks := uint32(cfg.Reload) + 1
	if ticks <= overhead {
		return 0, &RangeError{Field: "reload", Value: uint64(cfg.Reload)}
	}
	return ticks - overhead - 1, nil
}
