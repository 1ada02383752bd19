package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestFromContextDefaultsToNoOp(t *testing.T) {
	collector := FromContext(context.Background())

	// Must be safe to use without a collector installed.
	timer := collector.Start("anything")
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, "", buf.String())
}

func TestWithCollectorRoundTrip(t *testing.T) {
	collector := NewPhaseCollector()
	ctx := WithCollector(context.Background(), collector)

	got := FromContext(ctx)
	assert.Equal(t, collector, got.(*PhaseCollector))
}

func TestPhaseCollectorReport(t *testing.T) {
	collector := NewPhaseCollector()

	read := collector.Start("read")
	read.End()
	scan := collector.Start("scan")
	time.Sleep(time.Millisecond)
	scan.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "read"))
	assert.True(t, strings.HasPrefix(lines[1], "scan"))
	assert.True(t, strings.HasPrefix(lines[2], "total"))
}

func TestPhaseCollectorEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	NewPhaseCollector().Report(&buf, nil)
	assert.Equal(t, "", buf.String())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0ms", formatDuration(0))
	assert.Equal(t, "12ms", formatDuration(12*time.Millisecond))
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
}
