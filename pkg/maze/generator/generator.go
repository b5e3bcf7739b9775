// Package generator implements the four maze generation algorithms as
// resumable state machines. Each generator carves passages into a
// world.Grid one step at a time; a driver may single-step, poll on a timer,
// or call Run to finish synchronously. Any step boundary is a valid place to
// stop, inspect or discard the generator.
package generator

import (
	"errors"
	"fmt"

	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/world"
)

var (
	// ErrNotInitialized is returned when Step is called before Init.
	ErrNotInitialized = errors.New("generator not initialized")
	// ErrNilGrid is returned when Init is given no grid or no random source.
	ErrNilGrid = errors.New("generator requires a grid and a random source")
	// ErrUnknownAlgorithm is returned by New for an unregistered name.
	ErrUnknownAlgorithm = errors.New("unknown generation algorithm")
	// ErrEdgesExhausted means Kruskal ran out of connectors with more than
	// one group left, which only happens on a malformed grid.
	ErrEdgesExhausted = errors.New("edge list exhausted before all groups merged")
	// ErrWalkOutOfBounds means Wilson's walk had no in-bounds move.
	ErrWalkOutOfBounds = errors.New("random walk stepped out of bounds")
)

// Status is the lifecycle state of a generator run
type Status int

// Generator lifecycle states
const (
	NotStarted Status = iota
	InProgress
	Completed
	Failed
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Generator is a step-driven maze generation algorithm
type Generator interface {
	// Name returns the registry name of the algorithm
	Name() string
	// Init discards any previous run and prepares a new one on grid.
	// The grid is expected to be freshly reset to all walls.
	Init(grid *world.Grid, src random.Source) error
	// Step advances the algorithm by one step and reports whether the maze
	// is complete. Stepping a completed generator returns true and does
	// nothing.
	Step() (bool, error)
	// Status returns the lifecycle state
	Status() Status
	// Steps returns the number of steps that did work in this run
	Steps() int
	// Path returns the in-progress path, walk or frontier for display
	Path() []world.Link
}

// Run steps g until it reports completion or fails.
func Run(g Generator) error {
	for {
		done, err := g.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// base holds the state shared by every generator
type base struct {
	grid   *world.Grid
	src    random.Source
	status Status
	steps  int
	err    error
}

func (b *base) begin(grid *world.Grid, src random.Source) error {
	if grid == nil || src == nil {
		return ErrNilGrid
	}
	b.grid = grid
	b.src = src
	b.status = InProgress
	b.steps = 0
	b.err = nil
	grid.SetGenerated(false)
	return nil
}

// settled returns what Step reports when the run is not in progress
func (b *base) settled() (bool, error) {
	switch b.status {
	case NotStarted:
		return false, ErrNotInitialized
	case Completed:
		return true, nil
	case Failed:
		return false, b.err
	}
	return false, nil
}

func (b *base) complete() {
	b.status = Completed
	b.grid.SetGenerated(true)
}

func (b *base) fail(err error) error {
	b.status = Failed
	b.err = err
	return err
}

// Status returns the lifecycle state
func (b *base) Status() Status {
	return b.status
}

// Steps returns the number of steps that did work in this run
func (b *base) Steps() int {
	return b.steps
}

// carve marks both cells of a link as passages
func (b *base) carve(l world.Link) {
	b.grid.MarkPassage(l.Node)
	b.grid.MarkPassage(l.Connector)
}

func copyLinks(links []world.Link) []world.Link {
	out := make([]world.Link, len(links))
	copy(out, links)
	return out
}
