// Package renderer turns a maze session into a read-only Frame and defines
// the backends that draw it.
package renderer

import (
	"mazewalk/pkg/engine/world"
	"mazewalk/pkg/game/state"
	"mazewalk/pkg/maze/generator"
)

// Layer is what a single cell shows, in increasing draw precedence
type Layer int

const (
	LayerWall Layer = iota
	LayerPassage
	LayerPath
	LayerSolveCurrent
	LayerSolution
	LayerStart
	LayerEnd
)

// String returns the string representation of a layer
func (l Layer) String() string {
	switch l {
	case LayerWall:
		return "wall"
	case LayerPassage:
		return "passage"
	case LayerPath:
		return "path"
	case LayerSolveCurrent:
		return "solve-current"
	case LayerSolution:
		return "solution"
	case LayerStart:
		return "start"
	case LayerEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Frame is a snapshot of a session for one draw call
type Frame struct {
	Columns int
	Rows    int
	Layers  []Layer

	Algorithm       string
	Title           string
	Generation      generator.Status
	GenerationSteps int
	Generated       bool

	Solving    bool
	Solved     bool
	Found      bool
	SolveSteps int
	Solution   int

	Messages []string
}

// NewFrame classifies every cell of the session's grid
func NewFrame(s *state.Session) Frame {
	grid := s.Grid()
	gen := s.Generator()
	sol := s.Solver()

	f := Frame{
		Columns:         grid.Columns(),
		Rows:            grid.Rows(),
		Layers:          make([]Layer, grid.Columns()*grid.Rows()),
		Algorithm:       s.Algorithm(),
		Title:           generator.Title(s.Algorithm()),
		Generation:      gen.Status(),
		GenerationSteps: gen.Steps(),
		Generated:       grid.IsGenerated(),
		Solved:          sol.Solved(),
		Found:           sol.Found(),
		SolveSteps:      sol.Steps(),
		Solution:        len(sol.Solution()),
		Messages:        append([]string(nil), s.Messages...),
	}

	grid.ForEachCell(func(c world.Cell, st world.CellState) {
		if st == world.Passage {
			f.set(c, LayerPassage)
		}
	})

	if !f.Generated {
		// Prim's frontier and Kruskal's groups are not drawn.
		switch gen.(type) {
		case *generator.DFS, *generator.Wilson:
			f.paint(gen.Path(), LayerPath)
		}
		return f
	}

	current := sol.CurrentPath()
	f.Solving = len(current) > 0
	f.paint(current, LayerSolveCurrent)
	f.paint(sol.Solution(), LayerSolution)
	if start, ok := sol.Start(); ok {
		f.set(start, LayerStart)
	}
	if end, ok := sol.End(); ok {
		f.set(end, LayerEnd)
	}
	return f
}

// At returns the layer of the cell at x, y; out of bounds is a wall
func (f Frame) At(x, y int) Layer {
	if x < 0 || y < 0 || x >= f.Columns || y >= f.Rows {
		return LayerWall
	}
	return f.Layers[y*f.Columns+x]
}

func (f Frame) set(c world.Cell, l Layer) {
	if c.X < 0 || c.Y < 0 || c.X >= f.Columns || c.Y >= f.Rows {
		return
	}
	f.Layers[c.Y*f.Columns+c.X] = l
}

// paint draws both cells of every link; origin links only have a node
func (f Frame) paint(links []world.Link, l Layer) {
	for _, link := range links {
		f.set(link.Node, l)
		if !link.IsOrigin() {
			f.set(link.Connector, l)
		}
	}
}
