// Package ebiten provides an Ebiten-based graphical maze viewer.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lightmaze/pkg/engine/logging"
	"lightmaze/pkg/engine/world"
	"lightmaze/pkg/game/renderer"
)

// DefaultTileSize is the edge length of one cell in pixels
const DefaultTileSize = 16

var colorBackground = color.RGBA{0x10, 0x10, 0x14, 0xff}

// Viewer shows a maze in a window. R regenerates through the supplied
// callback, Escape closes the window.
type Viewer struct {
	grid       *world.Grid
	regenerate func() (*world.Grid, error)
	tileSize   int

	windowOpenedLogged bool
}

// New creates a viewer for grid. regenerate may be nil.
func New(grid *world.Grid, tileSize int, regenerate func() (*world.Grid, error)) *Viewer {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Viewer{
		grid:       grid,
		regenerate: regenerate,
		tileSize:   tileSize,
	}
}

// Update handles input (Ebiten interface)
func (v *Viewer) Update() error {
	if !v.windowOpenedLogged {
		v.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logging.Logf("Maze window opened (%dx%d)", w, h)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && v.regenerate != nil {
		g, err := v.regenerate()
		if err != nil {
			return err
		}
		v.grid = g
	}

	return nil
}

// Draw renders every cell as a filled tile (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	size := float32(v.tileSize)
	v.grid.ForEachCell(func(c world.Coord, s world.CellState) {
		x := float32(c.X) * size
		y := float32(c.Y) * size
		vector.DrawFilledRect(screen, x, y, size, size, renderer.ColorFor(s), false)
	})
}

// Layout returns the logical screen size: one tile per cell (Ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.grid.Width() * v.tileSize, v.grid.Height() * v.tileSize
}

// Run opens the window and blocks until it is closed
func (v *Viewer) Run(title string) error {
	ebiten.SetWindowSize(v.grid.Width()*v.tileSize, v.grid.Height()*v.tileSize)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}
