// Package lighting places light sources along the carved passages of a maze
// so that no two lights illuminate the same cell.
package lighting

import (
	"github.com/zyedidia/generic/mapset"

	"lightmaze/pkg/engine/logging"
	"lightmaze/pkg/engine/world"
)

// Threshold is the number of cells walked since the last light before
// another light may be placed.
const Threshold = 4

// StartCoord is where the walk begins: the top-left interior cell
var StartCoord = world.NewCoord(1, 1)

// Result summarises a planning pass
type Result struct {
	Lights  []world.Coord // Cells relabelled as Light, in placement order
	Visited int           // Carved cells reached by the walk
}

// Footprint returns the cells a light at c would illuminate: c itself, its
// orthogonal and diagonal carved neighbours, and carved cells two steps away
// whose connecting cell is already lit (a wall corner blocks the rest).
func Footprint(grid *world.Grid, c world.Coord) mapset.Set[world.Coord] {
	fp := mapset.New[world.Coord]()
	fp.Put(c)

	for _, n := range grid.AdjacentCells(c, world.Passage, 1) {
		fp.Put(n)
	}
	for _, n := range grid.DiagonalPassageCells(c) {
		fp.Put(n)
	}

	var far []world.Coord
	for _, n := range grid.AdjacentCells(c, world.Passage, 2) {
		if fp.Has(c.Midpoint(n)) {
			far = append(far, n)
		}
	}
	for _, n := range far {
		fp.Put(n)
	}

	return fp
}

// intersects reports whether any cell of fp is already covered
func intersects(fp, covered mapset.Set[world.Coord]) bool {
	hit := false
	fp.Each(func(c world.Coord) {
		if covered.Has(c) {
			hit = true
		}
	})
	return hit
}

// Plan walks the carved passages depth-first from StartCoord and relabels
// plain passage cells as Light whenever Threshold cells have been walked
// since the last light and the new footprint would not overlap any earlier
// one. The walk is deterministic for a given grid.
func Plan(grid *world.Grid) Result {
	var res Result

	if s, ok := grid.Get(StartCoord); !ok || !s.IsCarved() {
		logging.Logf("lighting: start %v is not carved, no lights placed", StartCoord)
		return res
	}

	visited := mapset.New[world.Coord]()
	covered := mapset.New[world.Coord]()
	stack := []world.Coord{StartCoord}
	steps := 0

	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited.Has(pos) {
			continue
		}
		visited.Put(pos)
		res.Visited++

		for _, n := range grid.AdjacentCells(pos, world.Passage, 1) {
			if !visited.Has(n) {
				stack = append(stack, n)
			}
		}

		steps++
		if steps < Threshold {
			continue
		}

		// Entry and exit keep their labels.
		if s, _ := grid.Get(pos); s != world.Passage {
			continue
		}

		fp := Footprint(grid, pos)
		if intersects(fp, covered) {
			continue
		}

		if err := grid.Set(pos, world.Light); err != nil {
			continue
		}
		fp.Each(func(c world.Coord) {
			covered.Put(c)
		})
		res.Lights = append(res.Lights, pos)
		steps = 0
	}

	logging.Logf("lighting: placed %d lights over %d cells", len(res.Lights), res.Visited)

	return res
}
