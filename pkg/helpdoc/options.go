package helpdoc

import (
	"strings"

	"github.com/arthur-debert/helpex/pkg/textwrap"
)

const (
	optionsHeading = "Options:"
	// optionPadding is added to the widest flag to get the flag column width.
	optionPadding = 2
	// optionRowIndent nests rows under the heading.
	optionRowIndent = "  "
)

// OptionColumnWidth returns the width of the flag column for rows.
func OptionColumnWidth(rows []OptionRow) int {
	widest := 0
	for _, row := range rows {
		if w := textwrap.StringWidth(row.Flag); w > widest {
			widest = w
		}
	}
	return widest + optionPadding
}

// optionTable renders the "Options:" heading and one aligned row per flag.
// Descriptions are kept on one line.
func (r *renderer) optionTable(t OptionTable) string {
	for _, row := range t.Invalid {
		r.warn(WarnMalformedOptionRow, row)
	}

	column := OptionColumnWidth(t.Rows)
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, r.opts.Indent+optionsHeading)
	for _, row := range t.Rows {
		line := r.opts.Indent + optionRowIndent + textwrap.PadRight(row.Flag, column) + " " + row.Description
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}
