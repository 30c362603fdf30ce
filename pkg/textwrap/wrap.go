// Package textwrap implements greedy word wrapping with independent first-line
// and continuation-line indentation.
//
// A Wrapper is a plain value: callers build one per paragraph (or derive one
// with WithSubsequentIndent) instead of mutating a shared instance, so list
// items with different hanging indents never leak settings into each other.
package textwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cells measures display width independently of the locale so that the same
// input always wraps the same way.
var cells = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Wrapper holds the layout of a single wrap call.
type Wrapper struct {
	// Width is the maximum number of terminal columns per line, indent included.
	Width int
	// InitialIndent prefixes the first output line.
	InitialIndent string
	// SubsequentIndent prefixes every line after the first.
	SubsequentIndent string
}

// New returns a Wrapper for the given width and indents.
func New(width int, initialIndent, subsequentIndent string) Wrapper {
	return Wrapper{
		Width:            width,
		InitialIndent:    initialIndent,
		SubsequentIndent: subsequentIndent,
	}
}

// WithSubsequentIndent returns a copy of w with a different continuation indent.
func (w Wrapper) WithSubsequentIndent(indent string) Wrapper {
	w.SubsequentIndent = indent
	return w
}

// Degenerate reports whether Width is too small to honor the indents. Such a
// wrapper emits one unindented token per line.
func (w Wrapper) Degenerate() bool {
	longest := StringWidth(w.InitialIndent)
	if sub := StringWidth(w.SubsequentIndent); sub > longest {
		longest = sub
	}
	return w.Width <= longest+1
}

// Wrap splits text into lines of at most Width columns. Runs of whitespace
// collapse to a single space. A token wider than the available room is put
// on a line of its own and never shortened.
func (w Wrapper) Wrap(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if w.Degenerate() {
		return words
	}

	var (
		lines   []string
		line    strings.Builder
		used    int
		pending bool
	)

	start := func(indent string) {
		line.Reset()
		line.WriteString(indent)
		used = StringWidth(indent)
		pending = false
	}

	start(w.InitialIndent)
	for _, word := range words {
		ww := StringWidth(word)
		if pending && used+1+ww > w.Width {
			lines = append(lines, line.String())
			start(w.SubsequentIndent)
		}
		if pending {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(word)
		used += ww
		pending = true
	}
	lines = append(lines, line.String())

	return lines
}

// Fill wraps text and joins the lines with newlines.
func (w Wrapper) Fill(text string) string {
	return strings.Join(w.Wrap(text), "\n")
}

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return cells.StringWidth(s)
}

// PadRight left-justifies s in a field of width columns, filling with spaces.
// Strings already at least width columns wide are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
