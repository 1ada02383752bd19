package scanner

import "bytes"

// DefaultTabStop is the column multiple used for tab expansion.
const DefaultTabStop = 8

// ExpandTabs replaces every tab in a raw line with enough spaces to reach
// the next multiple of tabStop. A tab at column 0 expands to a full stop
// width (8 spaces at the default), never to zero. All other bytes advance
// the column by one. The line must not contain its terminating newline;
// newlines are never column-counted and tab state never carries across
// lines.
func ExpandTabs(raw []byte, tabStop int) []byte {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	if bytes.IndexByte(raw, '\t') < 0 {
		return raw
	}

	// Worst case every byte is a tab at a stop boundary.
	expanded := make([]byte, 0, len(raw)*tabStop)
	column := 0

	for _, ch := range raw {
		if ch == '\t' {
			pad := tabStop - column%tabStop
			for i := 0; i < pad; i++ {
				expanded = append(expanded, ' ')
			}
			column += pad
			continue
		}
		expanded = append(expanded, ch)
		column++
	}

	return expanded
}
