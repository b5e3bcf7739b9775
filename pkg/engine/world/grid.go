package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions is returned when a grid is sized with a non-positive
// column or row count.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Grid is the maze matrix with encapsulated cell storage.
// Generators only ever turn walls into passages during a single run.
type Grid struct {
	cells     []CellState
	columns   int
	rows      int
	generated bool
}

// NewGrid creates a new all-wall grid with the given dimensions
func NewGrid(columns, rows int) (*Grid, error) {
	g := &Grid{}
	if err := g.Reset(columns, rows); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset reallocates the matrix to all walls and clears the generated flag
func (g *Grid) Reset(columns, rows int) error {
	if columns <= 0 || rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, columns, rows)
	}

	g.columns = columns
	g.rows = rows
	g.cells = make([]CellState, columns*rows)
	g.generated = false
	return nil
}

// Columns returns the number of columns in the grid
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// IsGenerated reports whether the active generator has finished
func (g *Grid) IsGenerated() bool {
	return g.generated
}

// SetGenerated records whether generation has finished
func (g *Grid) SetGenerated(generated bool) {
	g.generated = generated
}

// InBounds checks if a cell is within grid bounds
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.columns && c.Y >= 0 && c.Y < g.rows
}

// State returns the state of the cell. Out of bounds cells read as walls.
func (g *Grid) State(c Cell) CellState {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Y*g.columns+c.X]
}

// IsWall reports whether the cell is a wall
func (g *Grid) IsWall(c Cell) bool {
	return g.State(c) == Wall
}

// IsPassage reports whether the cell has been carved
func (g *Grid) IsPassage(c Cell) bool {
	return g.State(c) == Passage
}

// MarkPassage carves the cell. Returns false if out of bounds.
func (g *Grid) MarkPassage(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	g.cells[c.Y*g.columns+c.X] = Passage
	return true
}

// Nodes returns every node cell in row-major order
func (g *Grid) Nodes() []Cell {
	nodes := make([]Cell, 0, g.NodeCount())
	for y := 0; y < g.rows; y += 2 {
		for x := 0; x < g.columns; x += 2 {
			nodes = append(nodes, Cell{X: x, Y: y})
		}
	}
	return nodes
}

// NodeCount returns the number of node cells
func (g *Grid) NodeCount() int {
	return ((g.columns + 1) / 2) * ((g.rows + 1) / 2)
}

// Connectors returns every connector that lies between two in-bounds nodes,
// row-major by the node on its left or top: the right connector first, then
// the bottom one.
func (g *Grid) Connectors() []Cell {
	var connectors []Cell
	for y := 0; y < g.rows; y += 2 {
		for x := 0; x < g.columns; x += 2 {
			if x < g.columns-2 {
				connectors = append(connectors, Cell{X: x + 1, Y: y})
			}
			if y < g.rows-2 {
				connectors = append(connectors, Cell{X: x, Y: y + 1})
			}
		}
	}
	return connectors
}

// PassageCount returns the number of carved cells
func (g *Grid) PassageCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Passage {
			n++
		}
	}
	return n
}

// ConnectorPassages returns the number of carved connector cells
func (g *Grid) ConnectorPassages() int {
	n := 0
	g.ForEachCell(func(c Cell, s CellState) {
		if s == Passage && c.IsConnector() {
			n++
		}
	})
	return n
}

// Cells returns a row-major copy of the matrix for renderers
func (g *Grid) Cells() []CellState {
	out := make([]CellState, len(g.cells))
	copy(out, g.cells)
	return out
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(c Cell, s CellState)) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.columns; x++ {
			fn(Cell{X: x, Y: y}, g.cells[y*g.columns+x])
		}
	}
}

// String renders the grid with '#' for walls and '.' for passages
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.columns + 1) * g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.columns; x++ {
			if g.cells[y*g.columns+x] == Passage {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
