// Package renderer turns a finished maze grid into something a person can look at.
package renderer

import (
	"bufio"
	"image/color"
	"io"
	"strings"

	"lightmaze/pkg/engine/world"
)

// Glyphs for each cell state
const (
	GlyphWall    = '#'
	GlyphPassage = ' '
	GlyphLight   = '.'
	GlyphEntry   = 'E'
	GlyphExit    = 'S'
	GlyphUnknown = '?'
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StylePassage
	StyleLight
	StyleEntry
	StyleExit
	StyleSubtle
	StyleAction
)

// Renderer draws a completed grid
type Renderer interface {
	Render(w io.Writer, g *world.Grid) error
}

// Glyph returns the single display character for a cell state
func Glyph(s world.CellState) rune {
	switch s {
	case world.Blocked:
		return GlyphWall
	case world.Passage:
		return GlyphPassage
	case world.Light:
		return GlyphLight
	case world.Entry:
		return GlyphEntry
	case world.Exit:
		return GlyphExit
	default:
		return GlyphUnknown
	}
}

// StyleFor returns the text style used for a cell state
func StyleFor(s world.CellState) TextStyle {
	switch s {
	case world.Blocked:
		return StyleWall
	case world.Passage:
		return StylePassage
	case world.Light:
		return StyleLight
	case world.Entry:
		return StyleEntry
	case world.Exit:
		return StyleExit
	default:
		return StyleNormal
	}
}

// Palette colours used by graphical renderers
var Palette = map[world.CellState]color.RGBA{
	world.Blocked: {0x20, 0x22, 0x2a, 0xff},
	world.Passage: {0x9a, 0x9c, 0xa6, 0xff},
	world.Light:   {0xff, 0xd8, 0x4a, 0xff},
	world.Entry:   {0x3c, 0xc8, 0x5a, 0xff},
	world.Exit:    {0xe0, 0x4a, 0x4a, 0xff},
}

// ColorFor returns the palette colour for a cell state
func ColorFor(s world.CellState) color.RGBA {
	if c, ok := Palette[s]; ok {
		return c
	}
	return color.RGBA{0xff, 0x00, 0xff, 0xff}
}

// Text renders the grid as plain glyphs, one row per line
type Text struct{}

// Render writes the grid in row-major order with no separators
func (Text) Render(w io.Writer, g *world.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			s, ok := g.Get(world.NewCoord(x, y))
			if !ok {
				bw.WriteRune(GlyphUnknown)
				continue
			}
			bw.WriteRune(Glyph(s))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// RenderString renders g with r and returns the output as a string
func RenderString(r Renderer, g *world.Grid) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, g); err != nil {
		return "", err
	}
	return sb.String(), nil
}
