package telemetry

import (
	"io"

	"github.com/avanlin/srcstat/output"
)

// noOpCollector is a collector that does nothing. It provides zero
// overhead when telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer { return noOpTimer{} }

func (noOpCollector) Report(w io.Writer, styles *output.Styles) {}

// noOpTimer is a timer that does nothing.
type noOpTimer struct{}

func (noOpTimer) End() {}
