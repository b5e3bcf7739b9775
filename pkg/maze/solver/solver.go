// Package solver finds a route through a generated maze with a step-driven
// backtracking depth-first search.
package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/world"
)

var (
	// ErrNotGenerated is returned when solving a maze that is not finished.
	ErrNotGenerated = errors.New("maze must be generated before solving")
	// ErrNotInitialized is returned when Step is called before Init.
	ErrNotInitialized = errors.New("solver has no start and end set")
	// ErrNilGrid is returned when Init is given no grid or no random source.
	ErrNilGrid = errors.New("solver requires a grid and a random source")
	// ErrTooFewNodes is returned when the maze cannot hold distinct start and
	// end nodes.
	ErrTooFewNodes = errors.New("maze needs at least two nodes to solve")
)

// DFS is a backtracking depth-first search between two random nodes
type DFS struct {
	grid *world.Grid
	src  random.Source

	start       world.Cell
	end         world.Cell
	currentPath []world.Link
	checked     mapset.Set[world.Cell]
	solution    []world.Link
	solved      bool
	found       bool
	steps       int
}

// New creates a solver with no start or end set
func New() *DFS {
	s := &DFS{}
	s.Reset()
	return s
}

// Reset discards all search state. The solver must be initialized again
// before stepping.
func (s *DFS) Reset() {
	s.start = world.NoCell
	s.end = world.NoCell
	s.currentPath = nil
	s.checked = mapset.New[world.Cell]()
	s.solution = nil
	s.solved = false
	s.found = false
	s.steps = 0
}

// Init picks a random start node and a different random end node
func (s *DFS) Init(grid *world.Grid, src random.Source) error {
	if grid == nil || src == nil {
		return ErrNilGrid
	}
	if !grid.IsGenerated() {
		return ErrNotGenerated
	}
	nodes := grid.Nodes()
	if len(nodes) < 2 {
		return fmt.Errorf("%w: %d node(s)", ErrTooFewNodes, len(nodes))
	}

	s.Reset()
	s.grid = grid
	s.src = src

	s.start, _ = random.Pick(src, nodes)
	for {
		s.end, _ = random.Pick(src, nodes)
		if s.end != s.start {
			break
		}
	}

	s.currentPath = []world.Link{world.Origin(s.start)}
	s.checked.Put(s.start)
	return nil
}

// Step extends the search by one node or backtracks one node, reporting
// whether the search has finished.
func (s *DFS) Step() (bool, error) {
	if s.grid == nil {
		return false, ErrNotInitialized
	}
	if !s.grid.IsGenerated() {
		return false, ErrNotGenerated
	}
	if s.start == world.NoCell || s.end == world.NoCell {
		return false, ErrNotInitialized
	}

	if len(s.currentPath) == 0 {
		if s.solved {
			return true, nil
		}
		if err := s.Init(s.grid, s.src); err != nil {
			return false, err
		}
	}
	s.steps++

	current := s.currentPath[len(s.currentPath)-1].Node
	if current == s.end {
		s.solution = s.currentPath
		s.currentPath = nil
		s.solved = true
		s.found = true
		return true, nil
	}

	var neighbours []world.Link
	for _, dir := range world.AllDirections() {
		node, connector := current.Step(dir)
		if s.grid.InBounds(node) && s.grid.IsPassage(connector) && !s.checked.Has(node) {
			neighbours = append(neighbours, world.Link{Node: node, Connector: connector})
		}
	}

	if len(neighbours) > 0 {
		next, _ := random.Pick(s.src, neighbours)
		s.currentPath = append(s.currentPath, next)
		s.checked.Put(next.Node)
	} else {
		s.currentPath = s.currentPath[:len(s.currentPath)-1]
		if len(s.currentPath) == 0 {
			s.solved = true
		}
	}

	return s.solved, nil
}

// Run steps the solver until it finishes or fails
func (s *DFS) Run() error {
	for {
		done, err := s.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Start returns the start node, or false if unset
func (s *DFS) Start() (world.Cell, bool) {
	return s.start, s.start != world.NoCell
}

// End returns the end node, or false if unset
func (s *DFS) End() (world.Cell, bool) {
	return s.end, s.end != world.NoCell
}

// Solved reports whether the search has finished
func (s *DFS) Solved() bool {
	return s.solved
}

// Found reports whether the search reached the end node
func (s *DFS) Found() bool {
	return s.found
}

// Steps returns the number of steps taken since the last Init
func (s *DFS) Steps() int {
	return s.steps
}

// CurrentPath returns a copy of the live search path
func (s *DFS) CurrentPath() []world.Link {
	return append([]world.Link(nil), s.currentPath...)
}

// Solution returns a copy of the accepted path, empty until found
func (s *DFS) Solution() []world.Link {
	return append([]world.Link(nil), s.solution...)
}

// Checked returns the visited nodes in row-major order
func (s *DFS) Checked() []world.Cell {
	cells := make([]world.Cell, 0, s.checked.Size())
	s.checked.Each(func(c world.Cell) {
		cells = append(cells, c)
	})
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// IsChecked reports whether the node has been visited
func (s *DFS) IsChecked(c world.Cell) bool {
	return s.checked.Has(c)
}
