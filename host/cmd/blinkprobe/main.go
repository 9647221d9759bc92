// Command blinkprobe measures the blink period of a board whose LineOne is
// wired to the RX pin of a USB-serial adapter.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"antiphase/config"
	"antiphase/host/serial"
	"antiphase/probe"
)

var (
	device    = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud      = flag.Int("baud", 9600, "Baud rate")
	bus       = flag.Uint64("bus", 125_000_000, "Bus clock of the board under test in Hz")
	target    = flag.Uint64("target", config.TargetHz, "Blink frequency the board was built for in Hz")
	intervals = flag.Int("intervals", 5, "Number of edge intervals to measure")
	settle    = flag.Duration("settle", 50*time.Millisecond, "Bytes within this window of an edge belong to it")
	timeout   = flag.Duration("timeout", 5*time.Second, "Give up when no edge arrives within this time")
	verbose   = flag.Bool("verbose", false, "Print every interval")
)

func main() {
	flag.Parse()

	expected, err := probe.Expected(*bus, *target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: flush failed: %v\n", err)
	}

	fmt.Printf("Probing %s, expecting %v between falling edges...\n", *device, expected)

	opts := probe.DefaultOptions()
	opts.Intervals = *intervals
	opts.Settle = *settle
	opts.Timeout = *timeout

	res, err := probe.Measure(port, opts)
	if *verbose && res != nil {
		for i, iv := range res.Intervals {
			fmt.Printf("  interval %d: %v\n", i, iv)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Intervals: %d\n", len(res.Intervals))
	fmt.Printf("  mean:     %v\n", res.Mean())
	fmt.Printf("  min/max:  %v / %v\n", res.Min(), res.Max())
	fmt.Printf("  expected: %v\n", expected)
	fmt.Printf("  error:    %+.1f ppm\n", res.PPM(expected))
}
