// Package terminal reports the size of the terminal helpex prints to.
package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Size is a terminal size in character cells.
type Size struct {
	Columns int
	Lines   int
}

// Swapped out by tests.
var (
	getenv     = os.Getenv
	stdoutFd   = func() uintptr { return os.Stdout.Fd() }
	isTerminal = func(fd uintptr) bool { return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) }
	getSize    = term.GetSize
)

// GetSize returns the terminal size. COLUMNS and LINES win when they hold
// positive integers; missing dimensions are asked from stdout when it is a
// terminal, and whatever is still unknown comes from fallback.
func GetSize(fallback Size) Size {
	size := Size{
		Columns: envInt("COLUMNS"),
		Lines:   envInt("LINES"),
	}

	if size.Columns <= 0 || size.Lines <= 0 {
		fd := stdoutFd()
		if isTerminal(fd) {
			if cols, lines, err := getSize(int(fd)); err == nil {
				if size.Columns <= 0 {
					size.Columns = cols
				}
				if size.Lines <= 0 {
					size.Lines = lines
				}
			}
		}
	}

	if size.Columns <= 0 {
		size.Columns = fallback.Columns
	}
	if size.Lines <= 0 {
		size.Lines = fallback.Lines
	}
	return size
}

// RenderWidth returns the wrap width for a terminal of columns cells with
// rightMargin cells kept free. The result is never below 1.
func RenderWidth(columns, rightMargin int) int {
	if w := columns - rightMargin; w > 1 {
		return w
	}
	return 1
}

func envInt(name string) int {
	n, err := strconv.Atoi(getenv(name))
	if err != nil {
		return 0
	}
	return n
}
