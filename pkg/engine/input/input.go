// Package input reads single keypresses from the terminal.
package input

import (
	"os"

	"golang.org/x/term"
)

// Action represents what a keypress asks the program to do
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionDump
	ActionToggleLegend
	ActionQuit
)

// String returns the name of the action
func (a Action) String() string {
	switch a {
	case ActionRegenerate:
		return "regenerate"
	case ActionDump:
		return "dump"
	case ActionToggleLegend:
		return "legend"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// MapKey maps a raw key byte to an action
func MapKey(b byte) Action {
	switch b {
	case 'r', 'R', ' ', '\r', '\n':
		return ActionRegenerate
	case 'd', 'D':
		return ActionDump
	case 'l', 'L':
		return ActionToggleLegend
	case 'q', 'Q', 3, 0x1b: // Ctrl+C, Escape
		return ActionQuit
	default:
		return ActionNone
	}
}

// readByte reads a single byte from stdin
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// ReadAction puts the terminal into raw mode, reads one key and maps it.
// Keys that map to nothing are skipped.
func ReadAction() (Action, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return ActionNone, err
	}
	defer term.Restore(fd, oldState)

	for {
		b, err := readByte()
		if err != nil {
			return ActionQuit, err
		}
		if a := MapKey(b); a != ActionNone {
			return a, nil
		}
	}
}
