package world

// Direction represents one of the four axis-aligned grid directions
type Direction int

// Direction constants. The order matches the order neighbours are enumerated in.
const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case None:
		return "None"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// DirectionBetween returns the direction of travel from one cell to an
// adjacent cell on the same row or column. Cells that are equal or not aligned
// return None.
func DirectionBetween(from, to Cell) Direction {
	switch {
	case to.X < from.X && to.Y == from.Y:
		return Left
	case to.X > from.X && to.Y == from.Y:
		return Right
	case to.Y < from.Y && to.X == from.X:
		return Up
	case to.Y > from.Y && to.X == from.X:
		return Down
	default:
		return None
	}
}
