package core

// Phase selects which line of the pair is driven high
type Phase bool

const (
	PhaseA Phase = false // LineTwo high, LineOne low
	PhaseB Phase = true  // LineOne high, LineTwo low
)

func (p Phase) String() string {
	if p == PhaseB {
		return "B"
	}
	return "A"
}

// PollLoop toggles the output pair once per timer overflow
type PollLoop struct {
	timer PeriodTimer
	out   PairOutput
	count uint32
}

// NewPollLoop creates a poll loop over a programmed, running timer
func NewPollLoop(timer PeriodTimer, out PairOutput) *PollLoop {
	return &PollLoop{
		timer: timer,
		out:   out,
	}
}

// AwaitPeriod blocks until the timer reports an overflow, then clears it.
// It returns exactly once per observed overflow event. There is no timeout.
func AwaitPeriod(t PeriodTimer) {
	for !t.Overflowed() {
	}
	t.ClearOverflow()
}

// Step waits for the next overflow, drives the pair for phase and returns
// the flipped phase
func (l *PollLoop) Step(phase Phase) Phase {
	AwaitPeriod(l.timer)

	if phase == PhaseA {
		l.out.SetPair(LineTwo, LineOne)
	} else {
		l.out.SetPair(LineOne, LineTwo)
	}

	l.count++
	phase = !phase
	RecordEvent(EvtToggle, phase, l.count)
	return phase
}

// Count returns the number of overflow events handled so far
func (l *PollLoop) Count() uint32 {
	return l.count
}

// Run toggles the pair forever, starting in PhaseA. It never returns.
func (l *PollLoop) Run() {
	phase := PhaseA
	for {
		phase = l.Step(phase)
	}
}
