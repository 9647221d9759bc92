package core

// CriticalSection proves that maskable interrupts are disabled. There is no
// way to leave it: the critical section and the process share a lifetime.
type CriticalSection struct {
	entered bool
}

// EnterCritical masks interrupts for the rest of the program
func EnterCritical() CriticalSection {
	disableInterrupts()
	return CriticalSection{entered: true}
}

// Board holds the peripheral handles the firmware needs
type Board struct {
	Gate   ClockGate
	Timer  PeriodTimer
	Output PairOutput
}

var boardClaimed bool

// ClaimBoard hands out the board's peripheral handles. open builds them and
// only runs on the first claim; later claims fail with ErrBoardClaimed.
func ClaimBoard(cs CriticalSection, open func() Board) (Board, error) {
	if !cs.entered {
		panic("board claimed outside a critical section")
	}
	if boardClaimed {
		return Board{}, ErrBoardClaimed
	}
	boardClaimed = true
	return open(), nil
}

// Start gates the peripheral clocks, configures the outputs and programs the
// timer for target Hz. On error the counter was never started.
func Start(cs CriticalSection, b Board, bus, target uint64) (*PollLoop, error) {
	b.Gate.Enable()
	b.Output.Configure()

	cfg, err := ProgramTimer(b.Timer, bus, target)
	if err != nil {
		RecordEvent(EvtFatal, PhaseA, 0)
		return nil, err
	}
	RecordEvent(EvtStart, PhaseA, 0)
	DebugPrintln("[BOOT] blinking at " + u64toa(target) + " Hz, period ticks " + u64toa(cfg.Ticks()))

	return NewPollLoop(b.Timer, b.Output), nil
}

// Boot starts the board and blinks forever. It only returns when the timer
// configuration is invalid.
func Boot(cs CriticalSection, b Board, bus, target uint64) error {
	loop, err := Start(cs, b, bus, target)
	if err != nil {
		return err
	}
	loop.Run()
	return nil
}

// Fatal reports a boot failure and traps. It never returns on hardware.
func Fatal(err error) {
	DebugPrintln("[FATAL] " + err.Error())
	DumpEventRing()
	halt()
}
