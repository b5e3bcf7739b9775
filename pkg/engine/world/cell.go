// Package world provides the rectangular maze grid and its coordinate model.
//
// Cells with both coordinates even are nodes (rooms); cells with exactly one
// odd coordinate are connectors lying between two adjacent nodes. Cells with
// both coordinates odd are never carved.
package world

import "fmt"

// CellState is the content of a single grid cell
type CellState uint8

// Cell states
const (
	Wall CellState = iota
	Passage
)

// String returns the string representation of a cell state
func (s CellState) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Passage:
		return "Passage"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Cell is a grid coordinate. It is comparable and used directly as a set or
// map key.
type Cell struct {
	X int
	Y int
}

// NoCell is the sentinel for an unset position. It is never in bounds.
var NoCell = Cell{X: -1, Y: -1}

// String returns the coordinate as "x,y"
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// IsNode reports whether both coordinates are even
func (c Cell) IsNode() bool {
	return c.X%2 == 0 && c.Y%2 == 0
}

// IsConnector reports whether exactly one coordinate is odd
func (c Cell) IsConnector() bool {
	return (c.X%2 != 0) != (c.Y%2 != 0)
}

// Add returns the cell one unit away in the given direction
func (c Cell) Add(dir Direction) Cell {
	dx, dy := dir.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring node two units away in the given direction
// together with the connector lying between them.
func (c Cell) Step(dir Direction) (node, connector Cell) {
	dx, dy := dir.Delta()
	return Cell{X: c.X + 2*dx, Y: c.Y + 2*dy}, Cell{X: c.X + dx, Y: c.Y + dy}
}

// Endpoints returns the two nodes joined by a connector. Connectors with an
// odd x join horizontal neighbours, all others join vertical neighbours.
func (c Cell) Endpoints() (a, b Cell) {
	if c.X%2 != 0 {
		return Cell{X: c.X - 1, Y: c.Y}, Cell{X: c.X + 1, Y: c.Y}
	}
	return Cell{X: c.X, Y: c.Y - 1}, Cell{X: c.X, Y: c.Y + 1}
}

// Link is a (node, connector) pair. A link whose node and connector are equal
// marks the origin of a path and carries no connector to carve.
type Link struct {
	Node      Cell
	Connector Cell
}

// Origin returns the self-link that starts a path at node
func Origin(node Cell) Link {
	return Link{Node: node, Connector: node}
}

// IsOrigin reports whether the link has no connector of its own
func (l Link) IsOrigin() bool {
	return l.Node == l.Connector
}
