// Package generator carves perfect mazes on an odd-coordinate lattice and
// runs the full generation pipeline.
package generator

import (
	"errors"
	"fmt"
	"sort"

	"lightmaze/pkg/engine/world"
	"lightmaze/pkg/game/lighting"
)

var (
	// ErrDimensionsTooSmall is returned when the grid has no interior odd cell.
	ErrDimensionsTooSmall = errors.New("grid too small to contain a maze")

	// ErrUnknownGenerator is returned by ByName for an unregistered name.
	ErrUnknownGenerator = errors.New("unknown generator")
)

// Source supplies the random choices made while carving.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// GridGenerator is an interface for maze carving algorithms
type GridGenerator interface {
	// Carve clears grid and turns it into a perfect maze.
	Carve(grid *world.Grid) error
	Name() string
}

// Generator names accepted by ByName
const (
	NamePrim        = "prim"
	NameBacktracker = "backtracker"
)

// DefaultName is the generator used when none is configured
const DefaultName = NamePrim

var constructors = map[string]func(src Source) GridGenerator{
	NamePrim:        func(src Source) GridGenerator { return NewPrim(src) },
	NameBacktracker: func(src Source) GridGenerator { return NewBacktracker(src) },
}

// ByName returns the generator registered under name, drawing from src
func ByName(name string, src Source) (GridGenerator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownGenerator, name, Names())
	}
	return ctor(src), nil
}

// Names returns the registered generator names in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds a height x width grid and runs the whole pipeline:
// clear, carve, mark entry/exit, then place lights.
func Generate(gen GridGenerator, height, width int) (*world.Grid, error) {
	if height < 3 || width < 3 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrDimensionsTooSmall)
	}

	grid := world.NewGrid(height, width)

	if err := gen.Carve(grid); err != nil {
		return nil, fmt.Errorf("%s: carve: %w", gen.Name(), err)
	}

	if err := MarkBoundary(grid); err != nil {
		return nil, fmt.Errorf("%s: %w", gen.Name(), err)
	}

	lighting.Plan(grid)

	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("%s: generated invalid grid: %w", gen.Name(), err)
	}

	return grid, nil
}

// checkDimensions rejects grids with no interior cell to start from
func checkDimensions(grid *world.Grid) error {
	if grid.Width() < 3 || grid.Height() < 3 {
		return fmt.Errorf("%dx%d: %w", grid.Width(), grid.Height(), ErrDimensionsTooSmall)
	}
	return nil
}

// randomOddStart picks a random interior coordinate, rounding even
// components up so the start lies on the odd lattice.
func randomOddStart(grid *world.Grid, src Source) world.Coord {
	x := 1 + src.Intn(grid.Width()-2)
	y := 1 + src.Intn(grid.Height()-2)

	if x%2 == 0 {
		x++
	}
	if y%2 == 0 {
		y++
	}

	return world.NewCoord(x, y)
}
