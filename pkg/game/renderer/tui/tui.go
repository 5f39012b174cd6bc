// Package tui renders mazes to a colour terminal.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"lightmaze/pkg/engine/input"
	"lightmaze/pkg/engine/world"
	"lightmaze/pkg/game/renderer"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall    color.Style
	colorPassage color.Style
	colorLight   color.Style
	colorEntry   color.Style
	colorExit    color.Style
	colorSubtle  color.Style
	colorAction  color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer with its colours initialised
func New() *TUIRenderer {
	t := &TUIRenderer{}
	t.Init()
	return t
}

// Init initializes the TUI renderer colours
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorPassage = color.Style{color.BgBlack}
	t.colorLight = color.Style{color.FgYellow, color.BgBlack, color.OpBold}
	t.colorEntry = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorExit = color.Style{color.FgRed, color.BgBlack, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.-]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput waits for the next keypress and returns the action it maps to
func (t *TUIRenderer) GetInput() (input.Action, error) {
	return input.ReadAction()
}

// Prompt returns the key help shown under the maze in interactive mode
func (t *TUIRenderer) Prompt() string {
	return t.FormatText("ACTION{r} GT{regenerate}  ACTION{d} GT{dump}  ACTION{l} GT{legend}  ACTION{q} GT{quit}")
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StylePassage:
		return t.colorPassage.Sprint(text)
	case renderer.StyleLight:
		return t.colorLight.Sprint(text)
	case renderer.StyleEntry:
		return t.colorEntry.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system.
// GT{key} translates, LIGHT{..}, ENTRY{..}, EXIT{..} and ACTION{..} colour.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "LIGHT":
			val = t.colorLight.Sprint(operand)
		case "ENTRY":
			val = t.colorEntry.Sprint(operand)
		case "EXIT":
			val = t.colorExit.Sprint(operand)
		case "ACTION":
			val = t.colorAction.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// Render writes the grid with each glyph coloured by its state
func (t *TUIRenderer) Render(w io.Writer, g *world.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			s, ok := g.Get(world.NewCoord(x, y))
			if !ok {
				bw.WriteRune(renderer.GlyphUnknown)
				continue
			}
			bw.WriteString(t.StyleText(string(renderer.Glyph(s)), renderer.StyleFor(s)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Legend returns a one-line coloured key of the glyphs
func (t *TUIRenderer) Legend() string {
	entries := []struct {
		state world.CellState
		label string
	}{
		{world.Blocked, gotext.Get("wall")},
		{world.Light, gotext.Get("light")},
		{world.Entry, gotext.Get("entry")},
		{world.Exit, gotext.Get("exit")},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		glyph := t.StyleText(string(renderer.Glyph(e.state)), renderer.StyleFor(e.state))
		parts = append(parts, glyph+" "+t.colorSubtle.Sprint(e.label))
	}
	return strings.Join(parts, "  ")
}
