// Command blinksim runs the blink firmware core against the simulated
// STM32F429 and prints when each output toggle happens.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"antiphase/config"
	"antiphase/core"
	"antiphase/sim"
)

var (
	bus      = flag.Uint64("bus", config.BusHz, "Timer bus clock in Hz")
	target   = flag.Uint64("target", config.TargetHz, "Blink frequency in Hz")
	pollCost = flag.Uint64("poll-cost", sim.DefaultOptions().PollCost, "Bus ticks per status register read")
	duration = flag.Duration("duration", 5*time.Second, "Simulated run time")
	debug    = flag.Bool("debug", false, "Print core debug output and the event ring")
)

func main() {
	flag.Parse()

	if *debug {
		core.SetDebugWriter(func(s string) { fmt.Println(s) })
		core.SetDebugEnabled(true)
	}

	m := sim.NewF429(sim.Options{BusHz: *bus, PollCost: *pollCost})

	cs := core.EnterCritical()
	board, err := core.ClaimBoard(cs, m.Board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loop, err := core.Start(cs, board, *bus, *target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, _ := core.ComputeTimerConfig(*bus, *target)
	fmt.Printf("Simulating %s: %d Hz bus, %d Hz target, %s\n", config.BoardName, *bus, *target, cfg)
	fmt.Printf("Period %v, bias %d ticks\n\n", cfg.Period(*bus), cfg.Bias(*bus, *target))

	// Run until the next toggle would land past the requested duration
	limit := sim.DurationToTicks(*duration, *bus)
	phase := core.PhaseA
	for m.Ticks()+cfg.Ticks() <= limit {
		phase = loop.Step(phase)
		fmt.Printf("%14v  toggle %-4d %s=%d %s=%d\n",
			m.Elapsed(), loop.Count(),
			core.LineOne, level(m.GPIOG.Pin(sim.PinLineOne)),
			core.LineTwo, level(m.GPIOG.Pin(sim.PinLineTwo)))
	}

	fmt.Printf("\n%d toggles in %v, %d timer updates\n", loop.Count(), m.Elapsed(), m.TIM7.Overflows())
	if *debug {
		core.DumpEventRing()
	}
}

func level(high bool) int {
	if high {
		return 1
	}
	return 0
}
