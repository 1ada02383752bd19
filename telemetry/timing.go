package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/avanlin/srcstat/output"
)

// PhaseCollector records a flat, ordered list of timed phases. A scan run
// has a handful of sequential phases (read, scan, render), so no tree
// structure is needed.
type PhaseCollector struct {
	mu     sync.Mutex
	phases []*phase
}

type phase struct {
	name  string
	start time.Time
	end   time.Time
}

// NewPhaseCollector creates an empty collector.
func NewPhaseCollector() *PhaseCollector {
	return &PhaseCollector{}
}

// Start begins timing a phase.
func (c *PhaseCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := &phase{
		name:  name,
		start: time.Now(),
	}
	c.phases = append(c.phases, p)

	return &phaseTimer{collector: c, phase: p}
}

// Report writes one line per phase plus a total.
// Example output:
//
//	read     0ms
//	scan     12ms
//	render   1ms
//	total    13ms
func (c *PhaseCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.phases) == 0 {
		return
	}

	nameWidth := 0
	for _, p := range c.phases {
		if len(p.name) > nameWidth {
			nameWidth = len(p.name)
		}
	}
	if nameWidth < len("total") {
		nameWidth = len("total")
	}

	var total time.Duration
	for _, p := range c.phases {
		d := p.end.Sub(p.start)
		total += d
		writePhase(w, styles, p.name, d, nameWidth)
	}

	writePhase(w, styles, "total", total, nameWidth)
}

func writePhase(w io.Writer, styles *output.Styles, name string, d time.Duration, width int) {
	// Pad before styling; escape sequences would skew the width.
	padded := fmt.Sprintf("%-*s", width, name)
	timing := formatDuration(d)
	if styles != nil {
		// Anything at or above 100ms stands out as slow for a
		// single-pass scan.
		if d >= 100*time.Millisecond {
			timing = styles.Warning(timing)
		} else {
			timing = styles.Dim(timing)
		}
		padded = styles.Keyword(padded)
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", padded, timing)
}

// formatDuration shows milliseconds below one second, seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		ms := float64(d) / float64(time.Millisecond)
		return fmt.Sprintf("%.0fms", ms)
	}
	s := float64(d) / float64(time.Second)
	return fmt.Sprintf("%.2fs", s)
}

// phaseTimer records the end time of its phase.
type phaseTimer struct {
	collector *PhaseCollector
	phase     *phase
}

// End stops the timer.
func (t *phaseTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.phase.end = time.Now()
}
