// Package world provides generic 2D grid-based maze primitives.
// These are engine-level constructs usable by any lattice maze generator.
package world

import "fmt"

// Coord identifies a single cell in the grid.
type Coord struct {
	X int
	Y int
}

// NewCoord creates a coordinate at (x, y)
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy)
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Midpoint returns the coordinate exactly halfway between c and other.
// For two lattice cells two steps apart this is the wall cell joining them.
func (c Coord) Midpoint(other Coord) Coord {
	return Coord{
		X: c.X + (other.X-c.X)/2,
		Y: c.Y + (other.Y-c.Y)/2,
	}
}

// String returns the coordinate as "x,y"
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// CellState is the state of a single grid cell.
type CellState int

// Cell states. Light, Entry and Exit are terminal labels layered onto a
// carved passage.
const (
	Blocked CellState = iota
	Passage
	Light
	Entry
	Exit
)

// String returns the string representation of a cell state
func (s CellState) String() string {
	switch s {
	case Blocked:
		return "Blocked"
	case Passage:
		return "Passage"
	case Light:
		return "Light"
	case Entry:
		return "Entry"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// IsValid returns true if the state is one of the known variants
func (s CellState) IsValid() bool {
	return s >= Blocked && s <= Exit
}

// IsCarved returns true for every state derived from Passage
func (s CellState) IsCarved() bool {
	return s != Blocked && s.IsValid()
}

// Matches reports whether s satisfies a query for target.
// Blocked only matches Blocked; Passage matches any carved state; the
// relabelled states match exactly.
func (s CellState) Matches(target CellState) bool {
	switch target {
	case Blocked:
		return s == Blocked
	case Passage:
		return s.IsCarved()
	default:
		return s == target
	}
}
