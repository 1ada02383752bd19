// Package report renders scan statistics as the fixed-format text report
// and as JSON.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/avanlin/srcstat/scanner"
)

// gap is the minimum spacing between the label column and the value column.
const gap = 5

var hundred = decimal.NewFromInt(100)

// Options configures rendering.
type Options struct {
	// TotalsOnly suppresses the derived percentages and averages.
	TotalsOnly bool
}

// Option configures how the report is rendered.
type Option func(*Options)

// WithTotalsOnly limits the report to the raw counters.
func WithTotalsOnly() Option {
	return func(o *Options) {
		o.TotalsOnly = true
	}
}

type row struct {
	label string
	value string
}

// Render writes the report for the given statistics. The totals block uses
// fixed labels in a fixed order; the derived block follows after a blank
// line unless suppressed.
func Render(w io.Writer, stats scanner.Stats, opts ...Option) error {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	rows := totalRows(stats)
	derived := derivedRows(stats)

	all := rows
	if !options.TotalsOnly {
		all = append(slices.Clone(rows), derived...)
	}

	labelWidth := 0
	valueWidth := 0
	for _, r := range all {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.label))
		valueWidth = max(valueWidth, len(r.value))
	}

	for _, r := range rows {
		if err := writeRow(w, r, labelWidth, valueWidth); err != nil {
			return err
		}
	}

	if options.TotalsOnly {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, r := range derived {
		if err := writeRow(w, r, labelWidth, valueWidth); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(w io.Writer, r row, labelWidth, valueWidth int) error {
	_, err := fmt.Fprintf(w, "%s%*s\n",
		runewidth.FillRight(r.label, labelWidth+gap),
		valueWidth, r.value)
	return err
}

// totalRows builds the mandatory counters block. Labels and order are part
// of the output contract.
func totalRows(stats scanner.Stats) []row {
	return []row{
		{"Total lines", strconv.Itoa(stats.Lines)},
		{"Total blank lines", strconv.Itoa(stats.BlankLines)},
		{"Total characters", strconv.Itoa(stats.Chars)},
		{"Total spaces", strconv.Itoa(stats.Spaces)},
		{"Total leading spaces", strconv.Itoa(stats.LeadingSpaces)},
		{"Total comments", strconv.Itoa(stats.Comments)},
		{"Total chars in comments", strconv.Itoa(stats.CommentChars)},
		{"Total number of identifiers", strconv.Itoa(stats.Identifiers)},
		{"Total length of identifiers", strconv.Itoa(stats.IdentifierChars)},
		{"Total indenting errors", strconv.Itoa(stats.IndentErrors)},
	}
}

// derivedRows builds the percentages and per-line averages. All values are
// printed with one decimal place; a zero denominator yields 0.0.
func derivedRows(stats scanner.Stats) []row {
	return []row{
		{"Percentage blank lines", percent(stats.BlankLines, stats.Lines)},
		{"Comments per 100 lines", ratio(stats.Comments*100, stats.Lines)},
		{"Percentage chars in comments", percent(stats.CommentChars, stats.Chars)},
		{"Average chars per line", ratio(stats.Chars, stats.Lines)},
		{"Average chars per line (excl leading spaces)", ratio(stats.Chars-stats.LeadingSpaces, stats.Lines)},
		{"Average leading spaces per line", ratio(stats.LeadingSpaces, stats.Lines)},
		{"Average spaces per line (excl leading spaces)", ratio(stats.Spaces-stats.LeadingSpaces, stats.Lines)},
		{"Average identifier length", ratio(stats.IdentifierChars, stats.Identifiers)},
	}
}

func percent(part, whole int) string {
	if whole == 0 {
		return "0.0%"
	}
	p := decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole)))
	return p.StringFixed(1) + "%"
}

func ratio(total, count int) string {
	if count == 0 {
		return "0.0"
	}
	r := decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(count)))
	return r.StringFixed(1)
}
