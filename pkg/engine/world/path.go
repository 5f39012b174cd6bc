package world

import (
	"github.com/zyedidia/generic/mapset"
)

// FindPath returns the shortest step-1 path of carved cells from one
// coordinate to another, inclusive of both ends. Returns nil if either end
// is not carved or no path exists.
func (g *Grid) FindPath(from, to Coord) []Coord {
	if s, ok := g.Get(from); !ok || !s.IsCarved() {
		return nil
	}
	if s, ok := g.Get(to); !ok || !s.IsCarved() {
		return nil
	}

	visited := mapset.New[Coord]()
	parent := make(map[Coord]Coord)
	queue := []Coord{from}
	visited.Put(from)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			return buildPath(parent, from, to)
		}

		for _, n := range g.AdjacentCells(current, Passage, 1) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			parent[n] = current
			queue = append(queue, n)
		}
	}

	return nil
}

// buildPath walks parent links back from to and returns the path in order
func buildPath(parent map[Coord]Coord, from, to Coord) []Coord {
	path := []Coord{to}
	for c := to; c != from; {
		c = parent[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ReachableFrom returns every carved cell reachable from start via step-1 moves
func (g *Grid) ReachableFrom(start Coord) mapset.Set[Coord] {
	reachable := mapset.New[Coord]()
	if s, ok := g.Get(start); !ok || !s.IsCarved() {
		return reachable
	}

	queue := []Coord{start}
	reachable.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range g.AdjacentCells(current, Passage, 1) {
			if !reachable.Has(n) {
				reachable.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return reachable
}
