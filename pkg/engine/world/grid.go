package world

import (
	"errors"
	"fmt"

	"lightmaze/pkg/engine/logging"
)

// ErrOutOfBounds is returned when a coordinate lies outside the grid domain.
var ErrOutOfBounds = errors.New("coordinate outside grid")

// Grid maps every coordinate of a fixed rectangular domain to a cell state
type Grid struct {
	cells  map[Coord]CellState
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions.
// Cells are unspecified until Clear is called.
func NewGrid(height, width int) *Grid {
	if height <= 0 || width <= 0 {
		panic("Grid dimensions must be positive")
	}

	return &Grid{
		cells:  make(map[Coord]CellState, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if a coordinate is within grid bounds
func (g *Grid) IsValidPosition(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsOnPerimeter checks if a coordinate is on the outer border ring
func (g *Grid) IsOnPerimeter(c Coord) bool {
	if !g.IsValidPosition(c) {
		return false
	}
	return c.X == 0 || c.Y == 0 || c.X == g.width-1 || c.Y == g.height-1
}

// Clear sets every coordinate in the domain to Blocked
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[Coord{X: x, Y: y}] = Blocked
		}
	}
}

// Get returns the state at c, or false if c is outside the initialized domain
func (g *Grid) Get(c Coord) (CellState, bool) {
	if !g.IsValidPosition(c) {
		return Blocked, false
	}
	s, ok := g.cells[c]
	return s, ok
}

// Set replaces the state at c. Callers are expected to probe with Get first,
// so an out-of-domain coordinate is a programming error and is logged.
func (g *Grid) Set(c Coord, s CellState) error {
	if !g.IsValidPosition(c) {
		logging.Logf("world: set %v at %v outside %dx%d grid", s, c, g.width, g.height)
		return fmt.Errorf("set %v: %w", c, ErrOutOfBounds)
	}
	g.cells[c] = s
	return nil
}

// ForEachCell iterates over all initialized cells in row-major order
func (g *Grid) ForEachCell(fn func(c Coord, s CellState)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			if s, ok := g.cells[c]; ok {
				fn(c, s)
			}
		}
	}
}

// Count returns the number of cells in the given state
func (g *Grid) Count(state CellState) int {
	n := 0
	for _, s := range g.cells {
		if s == state {
			n++
		}
	}
	return n
}

// CarvedCount returns the number of cells in any carved state
func (g *Grid) CarvedCount() int {
	n := 0
	for _, s := range g.cells {
		if s.IsCarved() {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cells:  make(map[Coord]CellState, len(g.cells)),
		width:  g.width,
		height: g.height,
	}
	for k, v := range g.cells {
		c.cells[k] = v
	}
	return c
}

// Validate checks that every coordinate in the domain has a valid state
func (g *Grid) Validate() error {
	if g.width <= 0 || g.height <= 0 {
		return fmt.Errorf("grid has invalid dimensions %dx%d", g.width, g.height)
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			s, ok := g.cells[Coord{X: x, Y: y}]
			if !ok {
				return fmt.Errorf("grid has no cell at %d,%d", x, y)
			}
			if !s.IsValid() {
				return fmt.Errorf("grid has invalid state %v at %d,%d", s, x, y)
			}
		}
	}

	return nil
}
