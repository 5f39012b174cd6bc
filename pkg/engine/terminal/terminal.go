// Package terminal probes the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FitOdd returns the largest odd maze dimensions that fit in a terminal of
// the given size, leaving reserve rows for surrounding output.
// Both results are at least 3.
func FitOdd(termWidth, termHeight, reserve int) (width, height int) {
	width = largestOdd(termWidth)
	height = largestOdd(termHeight - reserve)
	return width, height
}

// FitTerminal sizes a maze to the current terminal
func FitTerminal(reserve int) (width, height int) {
	w, h := GetSize()
	return FitOdd(w, h, reserve)
}

func largestOdd(n int) int {
	if n%2 == 0 {
		n--
	}
	if n < 3 {
		return 3
	}
	return n
}
