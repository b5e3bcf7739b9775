// Package state drives one maze session: a grid, the selected generator and
// the solver, with the control-panel operations the front ends call.
package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/timing"
	"mazewalk/pkg/engine/world"
	"mazewalk/pkg/maze/generator"
	"mazewalk/pkg/maze/solver"
)

const maxMessages = 5

// translate formats a translated message. Msgids are keys, not format
// strings, so the lookup goes through a variable that vet does not check.
var translate = gotext.Get

// ErrNilSource is returned by NewSession without a random source
var ErrNilSource = errors.New("session requires a random source")

// Options sizes the maze and picks the starting algorithm
type Options struct {
	Columns   int
	Rows      int
	Algorithm string
}

// Stepper advances some state machine by one step
type Stepper func() (bool, error)

// Session holds the maze under construction and its solver
type Session struct {
	opts      Options
	grid      *world.Grid
	src       random.Source
	algorithm string
	gen       generator.Generator
	solver    *solver.DFS
	log       zerolog.Logger

	Messages []string
}

// NewSession creates a session with the configured generator initialized
// on an all-wall grid.
func NewSession(opts Options, src random.Source, log zerolog.Logger) (*Session, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	grid, err := world.NewGrid(opts.Columns, opts.Rows)
	if err != nil {
		return nil, err
	}
	if opts.Algorithm == "" {
		opts.Algorithm = generator.DefaultAlgorithm
	}

	s := &Session{
		opts:     opts,
		grid:     grid,
		src:      src,
		solver:   solver.New(),
		log:      log,
		Messages: make([]string, 0),
	}
	if err := s.SelectAlgorithm(opts.Algorithm); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the maze grid
func (s *Session) Grid() *world.Grid {
	return s.grid
}

// Generator returns the active generator
func (s *Session) Generator() generator.Generator {
	return s.gen
}

// Solver returns the solver
func (s *Session) Solver() *solver.DFS {
	return s.solver
}

// Algorithm returns the registry name of the active generator
func (s *Session) Algorithm() string {
	return s.algorithm
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// SelectAlgorithm switches to the named generator and starts a fresh maze
func (s *Session) SelectAlgorithm(name string) error {
	gen, err := generator.New(name)
	if err != nil {
		return err
	}
	previous := s.algorithm
	s.gen = gen
	s.algorithm = name
	if previous != "" && previous != name {
		s.log.Info().Str("from", previous).Str("to", name).Msg("algorithm switched")
		s.AddMessage(translate("ALGORITHM_SELECTED", generator.Title(name)))
	}
	return s.ResetGeneration()
}

// ResetGeneration clears the grid and solver and initializes the active
// generator for a new run.
func (s *Session) ResetGeneration() error {
	if err := s.grid.Reset(s.opts.Columns, s.opts.Rows); err != nil {
		return err
	}
	s.solver.Reset()
	if err := s.gen.Init(s.grid, s.src); err != nil {
		return fmt.Errorf("init %s: %w", s.algorithm, err)
	}
	s.log.Debug().Str("algorithm", s.algorithm).Int("columns", s.grid.Columns()).Int("rows", s.grid.Rows()).Msg("generation reset")
	return nil
}

// GenerateStep advances the generator by one step
func (s *Session) GenerateStep() (bool, error) {
	if s.gen.Status() == generator.Completed {
		s.log.Debug().Str("algorithm", s.algorithm).Msg("generation already complete")
		return true, nil
	}
	done, err := s.gen.Step()
	if err != nil {
		s.log.Error().Err(err).Str("algorithm", s.algorithm).Msg("generation failed")
		return false, err
	}
	if done {
		s.generated()
	}
	return done, nil
}

// Generate finishes the maze in one call. A generator that has already
// finished or failed is reset first, so repeated calls build new mazes.
func (s *Session) Generate() error {
	if st := s.gen.Status(); st == generator.Completed || st == generator.Failed {
		if err := s.ResetGeneration(); err != nil {
			return err
		}
	}
	if err := generator.Run(s.gen); err != nil {
		s.log.Error().Err(err).Str("algorithm", s.algorithm).Msg("generation failed")
		return err
	}
	s.generated()
	return nil
}

func (s *Session) generated() {
	s.log.Info().Str("algorithm", s.algorithm).Int("steps", s.gen.Steps()).Msg("maze generated")
	s.AddMessage(translate("MAZE_GENERATED", generator.Title(s.algorithm), s.gen.Steps()))
}

// ResetSolution picks a new start and end and clears the search
func (s *Session) ResetSolution() error {
	s.solver.Reset()
	if err := s.solver.Init(s.grid, s.src); err != nil {
		return err
	}
	start, _ := s.solver.Start()
	end, _ := s.solver.End()
	s.log.Debug().Stringer("start", start).Stringer("end", end).Msg("solution reset")
	return nil
}

// SolveStep advances the solver by one step, initializing it first if no
// start and end have been chosen.
func (s *Session) SolveStep() (bool, error) {
	if _, ok := s.solver.Start(); !ok {
		if err := s.ResetSolution(); err != nil {
			return false, err
		}
	}
	if s.solver.Solved() {
		s.log.Debug().Msg("maze already solved")
		return true, nil
	}
	done, err := s.solver.Step()
	if err != nil {
		return false, err
	}
	if done {
		s.solved()
	}
	return done, nil
}

// Solve searches until finished. With no live search path the solver is
// reset first, so a solved maze gets a new start and end.
func (s *Session) Solve() error {
	if len(s.solver.CurrentPath()) == 0 {
		if err := s.ResetSolution(); err != nil {
			return err
		}
	}
	if err := s.solver.Run(); err != nil {
		return err
	}
	s.solved()
	return nil
}

func (s *Session) solved() {
	if !s.solver.Found() {
		s.log.Warn().Int("steps", s.solver.Steps()).Msg("search exhausted without reaching the end")
		s.AddMessage(translate("MAZE_UNSOLVABLE"))
		return
	}
	s.log.Info().Int("steps", s.solver.Steps()).Int("length", len(s.solver.Solution())).Msg("maze solved")
	s.AddMessage(translate("MAZE_SOLVED", len(s.solver.Solution()), s.solver.Steps()))
}

// Play calls step once per tick of fs, calling onFrame after every step,
// until step reports done, fails, or ctx is cancelled.
func (s *Session) Play(ctx context.Context, step Stepper, fs *timing.FixedStep, onFrame func()) error {
	for {
		if err := fs.Wait(ctx); err != nil {
			return err
		}
		done, err := step()
		if onFrame != nil {
			onFrame()
		}
		if err != nil || done {
			return err
		}
	}
}

// PlayGeneration animates the generator from its current state
func (s *Session) PlayGeneration(ctx context.Context, fs *timing.FixedStep, onFrame func()) error {
	return s.Play(ctx, s.GenerateStep, fs, onFrame)
}

// PlaySolution animates the solver from its current state
func (s *Session) PlaySolution(ctx context.Context, fs *timing.FixedStep, onFrame func()) error {
	return s.Play(ctx, s.SolveStep, fs, onFrame)
}
