// Package probe measures the blink period of a running board from the host.
//
// LineOne is wired to the RX pin of a USB-serial adapter (through a suitable
// level shifter). Each falling edge looks like a start bit; because the line
// then stays low for far longer than a frame, the adapter reports one
// framing-error byte per falling edge and nothing on rising edges. LineOne
// falls once every two timer periods.
package probe

import (
	"errors"
	"fmt"
	"io"
	"time"

	"antiphase/core"
)

// Probe errors
var (
	ErrNoEdge       = errors.New("probe: no edge before timeout")
	ErrShortCapture = errors.New("probe: capture ended early")
)

// Options configures a measurement
type Options struct {
	// Intervals is the number of edge-to-edge intervals to collect
	Intervals int

	// Settle merges bytes arriving within this window of an edge into it
	Settle time.Duration

	// Timeout bounds the wait for each edge
	Timeout time.Duration

	// Now returns the receive timestamp; defaults to time.Now
	Now func() time.Time
}

// DefaultOptions suits a blink rate of around 1 Hz
func DefaultOptions() Options {
	return Options{
		Intervals: 5,
		Settle:    50 * time.Millisecond,
		Timeout:   5 * time.Second,
	}
}

// Result holds the edges seen and the intervals between them
type Result struct {
	Edges     []time.Time
	Intervals []time.Duration
}

// Expected returns the interval between falling edges of LineOne for a board
// running at bus Hz and blinking at target Hz: two timer periods
func Expected(bus, target uint64) (time.Duration, error) {
	cfg, err := core.ComputeTimerConfig(bus, target)
	if err != nil {
		return 0, err
	}
	return 2 * cfg.Period(bus), nil
}

// Measure reads edge bytes from r until opts.Intervals intervals are
// collected. A Read that returns no data and no error counts as an idle poll.
func Measure(r io.Reader, opts Options) (*Result, error) {
	if opts.Intervals <= 0 {
		return nil, fmt.Errorf("probe: need at least one interval, got %d", opts.Intervals)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	res := &Result{}
	buf := make([]byte, 64)
	waitStart := now()

	for len(res.Edges) < opts.Intervals+1 {
		n, err := r.Read(buf)
		ts := now()

		if n > 0 {
			if len(res.Edges) == 0 || ts.Sub(res.Edges[len(res.Edges)-1]) > opts.Settle {
				res.addEdge(ts)
			}
			waitStart = ts
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return res, fmt.Errorf("%w after %d edges", ErrShortCapture, len(res.Edges))
			}
			return res, fmt.Errorf("probe: read failed: %w", err)
		}

		if n == 0 && opts.Timeout > 0 && ts.Sub(waitStart) > opts.Timeout {
			return res, fmt.Errorf("%w (%v, %d edges so far)", ErrNoEdge, opts.Timeout, len(res.Edges))
		}
	}
	return res, nil
}

func (r *Result) addEdge(ts time.Time) {
	if len(r.Edges) > 0 {
		r.Intervals = append(r.Intervals, ts.Sub(r.Edges[len(r.Edges)-1]))
	}
	r.Edges = append(r.Edges, ts)
}

// Mean returns the average interval
func (r *Result) Mean() time.Duration {
	if len(r.Intervals) == 0 {
		return 0
	}
	var sum time.Duration
	for _, iv := range r.Intervals {
		sum += iv
	}
	return sum / time.Duration(len(r.Intervals))
}

// Min returns the shortest interval
func (r *Result) Min() time.Duration {
	if len(r.Intervals) == 0 {
		return 0
	}
	min := r.Intervals[0]
	for _, iv := range r.Intervals[1:] {
		if iv < min {
			min = iv
		}
	}
	return min
}

// Max returns the longest interval
func (r *Result) Max() time.Duration {
	var max time.Duration
	for _, iv := range r.Intervals {
		if iv > max {
			max = iv
		}
	}
	return max
}

// PPM returns the deviation of the mean interval from expected in parts per
// million
func (r *Result) PPM(expected time.Duration) float64 {
	if expected == 0 || len(r.Intervals) == 0 {
		return 0
	}
	return float64(r.Mean()-expected) / float64(expected) * 1e6
}
