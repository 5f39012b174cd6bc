package generator

import (
	"errors"
	"fmt"

	"lightmaze/pkg/engine/world"
)

// ErrBoundaryNotCarved is returned when an entry or exit target is not a
// carved passage, which means the lattice and dimensions disagree.
var ErrBoundaryNotCarved = errors.New("boundary target is not a carved passage")

// EntryCoord returns the entry position: the top-left interior corner
func EntryCoord(grid *world.Grid) world.Coord {
	return world.NewCoord(1, 1)
}

// ExitCoord returns the exit position: the bottom-right interior corner,
// pulled back onto the odd lattice when a dimension is even.
func ExitCoord(grid *world.Grid) world.Coord {
	return world.NewCoord(lastOdd(grid.Width()-2), lastOdd(grid.Height()-2))
}

func lastOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// MarkBoundary relabels the entry and exit corners of a carved grid
func MarkBoundary(grid *world.Grid) error {
	targets := []struct {
		pos   world.Coord
		state world.CellState
	}{
		{EntryCoord(grid), world.Entry},
		{ExitCoord(grid), world.Exit},
	}

	if targets[0].pos == targets[1].pos {
		return fmt.Errorf("entry and exit coincide at %v: %w", targets[0].pos, ErrDimensionsTooSmall)
	}

	for _, t := range targets {
		s, ok := grid.Get(t.pos)
		if !ok || s != world.Passage {
			return fmt.Errorf("%v at %v is %v: %w", t.state, t.pos, s, ErrBoundaryNotCarved)
		}
	}

	for _, t := range targets {
		if err := grid.Set(t.pos, t.state); err != nil {
			return err
		}
	}

	return nil
}
