package generator

import (
	"github.com/zyedidia/generic/mapset"

	"lightmaze/pkg/engine/logging"
	"lightmaze/pkg/engine/world"
)

// PrimGenerator grows a maze outward from a random start by repeatedly
// absorbing a random frontier cell (randomized Prim's algorithm).
type PrimGenerator struct {
	src Source
}

// NewPrim creates a Prim generator drawing from src
func NewPrim(src Source) *PrimGenerator {
	return &PrimGenerator{src: src}
}

// Name returns the name of this generator
func (g *PrimGenerator) Name() string {
	return NamePrim
}

// frontier is the set of blocked lattice cells waiting to be absorbed.
// The slice keeps a stable order for random picks; the set answers membership.
type frontier struct {
	cells   []world.Coord
	members mapset.Set[world.Coord]
}

func newFrontier() *frontier {
	return &frontier{members: mapset.New[world.Coord]()}
}

func (f *frontier) add(c world.Coord) {
	if f.members.Has(c) {
		return
	}
	f.members.Put(c)
	f.cells = append(f.cells, c)
}

// take removes the cell at index i by swapping in the last element
func (f *frontier) take(i int) world.Coord {
	c := f.cells[i]
	last := len(f.cells) - 1
	f.cells[i] = f.cells[last]
	f.cells = f.cells[:last]
	f.members.Remove(c)
	return c
}

func (f *frontier) size() int {
	return len(f.cells)
}

// Carve clears grid and carves a perfect maze into it
func (g *PrimGenerator) Carve(grid *world.Grid) error {
	if err := checkDimensions(grid); err != nil {
		return err
	}

	grid.Clear()

	start := randomOddStart(grid, g.src)
	if err := grid.Set(start, world.Passage); err != nil {
		return err
	}

	f := newFrontier()
	for _, c := range grid.AdjacentCells(start, world.Blocked, 2) {
		f.add(c)
	}

	carved, skipped := 1, 0
	for f.size() > 0 {
		cell := f.take(g.src.Intn(f.size()))

		neighbors := grid.AdjacentCells(cell, world.Passage, 2)
		if len(neighbors) == 0 {
			// Already absorbed from another side.
			skipped++
			continue
		}

		neighbor := neighbors[g.src.Intn(len(neighbors))]
		if err := grid.Set(cell.Midpoint(neighbor), world.Passage); err != nil {
			return err
		}
		if err := grid.Set(cell, world.Passage); err != nil {
			return err
		}
		carved++

		for _, c := range grid.AdjacentCells(cell, world.Blocked, 2) {
			f.add(c)
		}
	}

	logging.Logf("generator: prim carved %d cells from %v on %dx%d grid (%d frontier misses)",
		carved, start, grid.Width(), grid.Height(), skipped)

	return nil
}
