// Package srcstat computes lexical statistics for C source text: line and
// character counts after tab expansion, block comment counts and sizes,
// identifier counts outside comments and literals, and brace indentation
// inconsistencies.
//
// The package is a thin convenience wrapper around the scanner package:
//
//	stats, err := srcstat.Scan(os.Stdin)
package srcstat

import (
	"io"

	"github.com/avanlin/srcstat/scanner"
)

// Scan reads C source from r to end of input and returns the accumulated
// statistics. Scanning is a pure function of the input; the only failure
// mode is a read error, which aborts the scan.
func Scan(r io.Reader, opts ...scanner.Option) (scanner.Stats, error) {
	return scanner.New(opts...).Scan(r)
}

// ScanBytes scans an in-memory buffer. It cannot fail.
func ScanBytes(src []byte, opts ...scanner.Option) scanner.Stats {
	return scanner.New(opts...).ScanBytes(src)
}
