package generator

import (
	"lightmaze/pkg/engine/logging"
	"lightmaze/pkg/engine/world"
)

// BacktrackerGenerator carves a maze with a depth-first random walk,
// backing up along an explicit stack when it reaches a dead end.
// It produces long winding corridors with few branches.
type BacktrackerGenerator struct {
	src Source
}

// NewBacktracker creates a backtracking generator drawing from src
func NewBacktracker(src Source) *BacktrackerGenerator {
	return &BacktrackerGenerator{src: src}
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return NameBacktracker
}

// Carve clears grid and carves a perfect maze into it
func (g *BacktrackerGenerator) Carve(grid *world.Grid) error {
	if err := checkDimensions(grid); err != nil {
		return err
	}

	grid.Clear()

	start := randomOddStart(grid, g.src)
	if err := grid.Set(start, world.Passage); err != nil {
		return err
	}

	stack := []world.Coord{start}
	carved := 1
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := grid.AdjacentCells(current, world.Blocked, 2)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[g.src.Intn(len(candidates))]
		if err := grid.Set(current.Midpoint(next), world.Passage); err != nil {
			return err
		}
		if err := grid.Set(next, world.Passage); err != nil {
			return err
		}
		carved++

		stack = append(stack, next)
	}

	logging.Logf("generator: backtracker carved %d cells from %v on %dx%d grid",
		carved, start, grid.Width(), grid.Height())

	return nil
}
