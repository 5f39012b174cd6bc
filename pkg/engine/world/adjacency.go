package world

// AdjacentCells returns the grid-aligned coordinates step cells away from
// center whose state matches target. Probes falling outside the domain are
// skipped. Results follow the AllDirections order.
func (g *Grid) AdjacentCells(center Coord, target CellState, step int) []Coord {
	var adj []Coord
	for _, dir := range AllDirections() {
		pos := dir.Step(center, step)
		s, ok := g.Get(pos)
		if !ok {
			continue
		}
		if s.Matches(target) {
			adj = append(adj, pos)
		}
	}
	return adj
}

// diagonalOffsets lists the (+-1, +-1) probes around a cell
var diagonalOffsets = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// DiagonalPassageCells returns the diagonal neighbours of center that are carved
func (g *Grid) DiagonalPassageCells(center Coord) []Coord {
	var diag []Coord
	for _, off := range diagonalOffsets {
		pos := center.Add(off[0], off[1])
		if s, ok := g.Get(pos); ok && s.IsCarved() {
			diag = append(diag, pos)
		}
	}
	return diag
}
