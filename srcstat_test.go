package srcstat

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/avanlin/srcstat/scanner"
)

func TestScan(t *testing.T) {
	stats, err := Scan(strings.NewReader("int main(void) {\n\treturn 0;\n}\n"))
	assert.NoError(t, err)

	assert.Equal(t, 3, stats.Lines)
	assert.Equal(t, 4, stats.Identifiers)
	assert.Equal(t, 0, stats.IndentErrors)
}

func TestScanBytes(t *testing.T) {
	stats := ScanBytes([]byte("/* comment */\n"))

	assert.Equal(t, 1, stats.Comments)
	assert.Equal(t, 9, stats.CommentChars)
}

func TestScanWithTabStop(t *testing.T) {
	stats := ScanBytes([]byte("\tx\n"), scanner.WithTabStop(4))

	assert.Equal(t, 5, stats.Chars)
	assert.Equal(t, 4, stats.LeadingSpaces)
}
