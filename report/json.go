package report

import (
	"encoding/json"
	"io"

	"github.com/avanlin/srcstat/scanner"
)

// Summary is the JSON shape of a report. Derived values are emitted as the
// same one-decimal strings the text report prints, so both outputs always
// agree.
type Summary struct {
	Lines           int `json:"lines"`
	BlankLines      int `json:"blank_lines"`
	Chars           int `json:"chars"`
	Spaces          int `json:"spaces"`
	LeadingSpaces   int `json:"leading_spaces"`
	Comments        int `json:"comments"`
	CommentChars    int `json:"comment_chars"`
	Identifiers     int `json:"identifiers"`
	IdentifierChars int `json:"identifier_chars"`
	IndentErrors    int `json:"indent_errors"`

	BlankLinePercentage   string `json:"blank_line_percentage"`
	CommentsPer100Lines   string `json:"comments_per_100_lines"`
	CommentCharPercentage string `json:"comment_char_percentage"`
	AvgCharsPerLine       string `json:"avg_chars_per_line"`
	AvgCodeCharsPerLine   string `json:"avg_chars_per_line_excl_leading"`
	AvgLeadingSpaces      string `json:"avg_leading_spaces_per_line"`
	AvgInteriorSpaces     string `json:"avg_spaces_per_line_excl_leading"`
	AvgIdentifierLength   string `json:"avg_identifier_length"`
}

// NewSummary derives a Summary from scan statistics.
func NewSummary(stats scanner.Stats) Summary {
	return Summary{
		Lines:           stats.Lines,
		BlankLines:      stats.BlankLines,
		Chars:           stats.Chars,
		Spaces:          stats.Spaces,
		LeadingSpaces:   stats.LeadingSpaces,
		Comments:        stats.Comments,
		CommentChars:    stats.CommentChars,
		Identifiers:     stats.Identifiers,
		IdentifierChars: stats.IdentifierChars,
		IndentErrors:    stats.IndentErrors,

		BlankLinePercentage:   percent(stats.BlankLines, stats.Lines),
		CommentsPer100Lines:   ratio(stats.Comments*100, stats.Lines),
		CommentCharPercentage: percent(stats.CommentChars, stats.Chars),
		AvgCharsPerLine:       ratio(stats.Chars, stats.Lines),
		AvgCodeCharsPerLine:   ratio(stats.Chars-stats.LeadingSpaces, stats.Lines),
		AvgLeadingSpaces:      ratio(stats.LeadingSpaces, stats.Lines),
		AvgInteriorSpaces:     ratio(stats.Spaces-stats.LeadingSpaces, stats.Lines),
		AvgIdentifierLength:   ratio(stats.IdentifierChars, stats.Identifiers),
	}
}

// RenderJSON writes the statistics as indented JSON.
func RenderJSON(w io.Writer, stats scanner.Stats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewSummary(stats))
}
