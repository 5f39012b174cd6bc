package world

// Direction represents a cardinal direction
type Direction int

// Direction constants, in probe order
const (
	West Direction = iota
	East
	North
	South
)

// AllDirections returns all valid directions for iteration.
// The order is fixed so neighbour queries are reproducible.
func AllDirections() []Direction {
	return []Direction{West, East, North, South}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= West && d <= South
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Step returns the coordinate step cells away from c in this direction
func (d Direction) Step(c Coord, step int) Coord {
	dx, dy := d.Delta()
	return c.Add(dx*step, dy*step)
}
