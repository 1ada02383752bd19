// Package telemetry provides phase timing collection for scan runs.
//
// The collector is carried through a context so instrumentation stays
// non-intrusive: code paths fetch it with FromContext and get a no-op
// implementation when telemetry is disabled.
//
// Example usage:
//
//	collector := telemetry.NewPhaseCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.FromContext(ctx).Start("scan")
//	// ... work ...
//	timer.End()
//
//	collector.Report(os.Stderr, nil)
package telemetry

import (
	"context"
	"io"

	"github.com/avanlin/srcstat/output"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var collectorKey = contextKey{}

// Collector records timed phases of a run.
type Collector interface {
	// Start begins timing a phase. The returned Timer must be ended
	// with End() when the phase completes.
	Start(name string) Timer

	// Report writes the collected timings. Styles may be nil for plain
	// output.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single phase.
type Timer interface {
	// End stops the timer and records the duration.
	End()
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from a context. If none is present it
// returns a collector that does nothing.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
