package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/avanlin/srcstat/scanner"
)

var sample = scanner.Stats{
	Lines:           4,
	BlankLines:      1,
	Chars:           40,
	Spaces:          10,
	LeadingSpaces:   4,
	Comments:        1,
	CommentChars:    9,
	Identifiers:     3,
	IdentifierChars: 9,
	IndentErrors:    0,
}

func render(t *testing.T, stats scanner.Stats, opts ...Option) []string {
	t.Helper()

	var buf bytes.Buffer
	err := Render(&buf, stats, opts...)
	assert.NoError(t, err)

	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestRenderLabelOrder(t *testing.T) {
	want := []string{
		"Total lines",
		"Total blank lines",
		"Total characters",
		"Total spaces",
		"Total leading spaces",
		"Total comments",
		"Total chars in comments",
		"Total number of identifiers",
		"Total length of identifiers",
		"Total indenting errors",
	}

	lines := render(t, sample, WithTotalsOnly())
	assert.Equal(t, len(want), len(lines))

	for i, label := range want {
		assert.True(t, strings.HasPrefix(lines[i], label), "line %d: %q", i, lines[i])
	}
}

func TestRenderValues(t *testing.T) {
	lines := render(t, sample, WithTotalsOnly())

	assert.True(t, strings.HasSuffix(lines[0], "4"))  // lines
	assert.True(t, strings.HasSuffix(lines[1], "1"))  // blank
	assert.True(t, strings.HasSuffix(lines[2], "40")) // chars
	assert.True(t, strings.HasSuffix(lines[8], "9"))  // identifier length
}

func TestRenderDerived(t *testing.T) {
	lines := render(t, sample)

	// One blank separator between the totals and the derived block.
	assert.Equal(t, 19, len(lines))
	assert.Equal(t, "", lines[10])

	derived := strings.Join(lines[11:], "\n")
	assert.True(t, strings.Contains(derived, "Percentage blank lines"))
	assert.True(t, strings.Contains(derived, "25.0%")) // 1 of 4 lines blank
	assert.True(t, strings.Contains(derived, "10.0"))  // 40 chars over 4 lines
	assert.True(t, strings.Contains(derived, "3.0"))   // 9 ident chars over 3 idents
}

func TestRenderZeroStats(t *testing.T) {
	lines := render(t, scanner.Stats{})

	// Zero denominators render as 0.0 rather than failing.
	for _, line := range lines[11:] {
		assert.True(t, strings.HasSuffix(line, "0.0") || strings.HasSuffix(line, "0.0%"), "line %q", line)
	}
}

func TestSummary(t *testing.T) {
	summary := NewSummary(sample)

	assert.Equal(t, 4, summary.Lines)
	assert.Equal(t, "25.0%", summary.BlankLinePercentage)
	assert.Equal(t, "10.0", summary.AvgCharsPerLine)
	assert.Equal(t, "3.0", summary.AvgIdentifierLength)
	// Chars excluding leading spaces is (40-4)/4.
	assert.Equal(t, "9.0", summary.AvgCodeCharsPerLine)
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	err := RenderJSON(&buf, sample)
	assert.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, `"lines": 4`))
	assert.True(t, strings.Contains(out, `"blank_line_percentage": "25.0%"`))
	assert.True(t, strings.Contains(out, `"indent_errors": 0`))
}
