// Package scanner implements a single-pass lexical statistics scanner for
// C source text.
//
// The scanner processes input line by line. Tabs are expanded before any
// counting, then a small state machine walks the expanded bytes to track
// whether each position lies inside a block comment, a string literal, a
// character literal, or ordinary code. That mode gates comment counting,
// identifier recognition, and brace detection for the indentation check.
// The mode carries across line boundaries, so a block comment opened on one
// line continues into the next.
package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Stats holds the accumulated counters for a scan. Every counter starts at
// zero and only ever increases.
type Stats struct {
	Lines           int // total lines
	BlankLines      int // lines with no visible characters after expansion
	Chars           int // characters after tab expansion, newlines excluded
	Spaces          int // space characters after tab expansion
	LeadingSpaces   int // leading spaces on non-blank lines
	Comments        int // block comments closed
	CommentChars    int // characters between comment delimiters
	Identifiers     int // identifier runs outside comments and literals
	IdentifierChars int // total length of those runs
	IndentErrors    int // brace-adjacent indentation inconsistencies
}

// LineInfo describes a single scanned line. It is returned by ScanLine so
// callers can inspect per-line classification, e.g. for debugging dumps.
type LineInfo struct {
	Number      int  // 1-indexed line number
	Indent      int  // leading spaces after expansion
	Blank       bool // no visible characters
	CommentOnly bool // every visible character belongs to a comment
	OpenBrace   bool // contains an unescaped { in code
	CloseBrace  bool // contains an unescaped } in code
	StartMode   Mode // mode carried into the line
	EndMode     Mode // mode carried out of the line
}

// Scanner accumulates statistics over C source fed to it line by line.
// The zero value is not usable; construct with New.
type Scanner struct {
	tabStop int

	mode    Mode
	escaped bool // a backslash consumed inside a string/char literal

	identLen  int  // length of the identifier run in progress
	prevIdent bool // previous code byte was an identifier character

	// Context from the previous line that was neither blank nor
	// comment-only, for the indentation check.
	havePrev   bool
	prevIndent int
	prevOpen   bool

	lineno int
	stats  Stats
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithTabStop sets the tab expansion width. Values below 1 keep the
// default of 8.
func WithTabStop(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.tabStop = n
		}
	}
}

// New creates a Scanner with the given options.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		tabStop: DefaultTabStop,
		mode:    ModeNormal,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan consumes the reader to end of input and returns the final counters.
// Read failures abort the scan immediately; malformed C input never does.
// An unterminated comment or literal at end of input simply finalizes in
// whatever mode the scanner ended in.
func (s *Scanner) Scan(r io.Reader) (Stats, error) {
	br := bufio.NewReader(r)

	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			line := raw
			if line[len(line)-1] == '\n' {
				line = line[:len(line)-1]
				if len(line) > 0 && line[len(line)-1] == '\r' {
					line = line[:len(line)-1]
				}
			}
			s.ScanLine(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return s.stats, fmt.Errorf("failed to read input: %w", err)
		}
	}

	return s.Finish(), nil
}

// ScanBytes scans an in-memory buffer. It never fails; byte slices have no
// read errors.
func (s *Scanner) ScanBytes(src []byte) Stats {
	stats, _ := s.Scan(bytes.NewReader(src))
	return stats
}

// ScanLine folds one raw line (without its newline) into the counters and
// returns the line's classification. Lines must be fed in input order.
func (s *Scanner) ScanLine(raw []byte) LineInfo {
	line := ExpandTabs(raw, s.tabStop)

	s.lineno++
	info := LineInfo{
		Number:    s.lineno,
		StartMode: s.mode,
	}

	s.stats.Lines++
	s.stats.Chars += len(line)

	leading := 0
	for leading < len(line) && line[leading] == ' ' {
		leading++
	}
	info.Indent = leading
	info.Blank = leading == len(line)

	for _, ch := range line {
		if ch == ' ' {
			s.stats.Spaces++
		}
	}

	if info.Blank {
		// Leading spaces on fully blank lines are ignored.
		s.stats.BlankLines++
	} else {
		s.stats.LeadingSpaces += leading
	}

	hasCode, hasComment := s.scanModes(line, &info)

	info.CommentOnly = hasComment && !hasCode && !info.Blank
	info.EndMode = s.mode

	// Identifiers never span lines; the newline closes any open run.
	s.closeIdentifier()
	s.prevIdent = false

	// An escape at end of line consumed the newline itself.
	s.escaped = false

	s.checkIndent(info, hasCode)

	return info
}

// scanModes walks the expanded line through the mode state machine,
// counting comments and identifiers. It reports whether the line contained
// any code character and whether it touched a comment region. Comment
// delimiters belong to the comment for this purpose but are not counted as
// comment characters.
func (s *Scanner) scanModes(line []byte, info *LineInfo) (hasCode, hasComment bool) {
	if s.mode == ModeComment {
		hasComment = true
	}

	for i := 0; i < len(line); i++ {
		ch := line[i]

		switch s.mode {
		case ModeComment:
			if ch == '*' && i+1 < len(line) && line[i+1] == '/' {
				s.mode = ModeNormal
				s.stats.Comments++
				i++
				continue
			}
			s.stats.CommentChars++

		case ModeString:
			if ch != ' ' {
				hasCode = true
			}
			if s.escaped {
				s.escaped = false
			} else if ch == '\\' {
				s.escaped = true
			} else if ch == '"' {
				s.mode = ModeNormal
			}

		case ModeChar:
			if ch != ' ' {
				hasCode = true
			}
			if s.escaped {
				s.escaped = false
			} else if ch == '\\' {
				s.escaped = true
			} else if ch == '\'' {
				s.mode = ModeNormal
			}

		default: // ModeNormal
			if ch == '/' && i+1 < len(line) && line[i+1] == '*' {
				s.closeIdentifier()
				s.prevIdent = false
				s.mode = ModeComment
				hasComment = true
				i++
				continue
			}

			isIdent := isIdentByte(ch)
			if s.identLen > 0 {
				if isIdent {
					s.identLen++
				} else {
					s.closeIdentifier()
				}
			} else if isLetter(ch) && !s.prevIdent {
				s.identLen = 1
			}
			s.prevIdent = isIdent

			switch ch {
			case '"':
				s.mode = ModeString
			case '\'':
				s.mode = ModeChar
			case '{':
				info.OpenBrace = true
			case '}':
				info.CloseBrace = true
			}

			if ch != ' ' {
				hasCode = true
			}
		}
	}

	return hasCode, hasComment
}

// checkIndent evaluates the two brace indentation rules against the
// previous non-blank, non-comment-only line, then records this line as the
// new context. Blank and comment-only lines neither participate nor
// disturb the context.
func (s *Scanner) checkIndent(info LineInfo, hasCode bool) {
	if info.Blank || info.CommentOnly {
		return
	}

	if s.havePrev {
		// A closing brace indented deeper than the line before it.
		if info.CloseBrace && info.Indent > s.prevIndent {
			s.stats.IndentErrors++
		}
		// The line after an opening brace indented shallower than it.
		if s.prevOpen && info.Indent < s.prevIndent {
			s.stats.IndentErrors++
		}
	}

	s.havePrev = true
	s.prevIndent = info.Indent
	s.prevOpen = info.OpenBrace
}

// Finish closes any identifier still open at end of input and returns the
// final counters.
func (s *Scanner) Finish() Stats {
	s.closeIdentifier()
	s.prevIdent = false
	return s.stats
}

// Stats returns the counters accumulated so far.
func (s *Scanner) Stats() Stats {
	return s.stats
}

// Mode returns the lexical mode the scanner is currently in.
func (s *Scanner) Mode() Mode {
	return s.mode
}

func (s *Scanner) closeIdentifier() {
	if s.identLen == 0 {
		return
	}
	s.stats.Identifiers++
	s.stats.IdentifierChars += s.identLen
	s.identLen = 0
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isIdentByte(ch byte) bool {
	return isLetter(ch) || ch >= '0' && ch <= '9' || ch == '_'
}
