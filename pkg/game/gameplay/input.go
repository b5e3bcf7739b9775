// Package gameplay applies control-panel intents to a maze session and
// paces the play animations.
package gameplay

import (
	"errors"

	"github.com/leonelquinteros/gotext"

	engineinput "mazewalk/pkg/engine/input"
	"mazewalk/pkg/game/state"
	"mazewalk/pkg/maze/solver"
)

// ProcessIntent handles a high-level input intent. Any command other than
// the play toggles pauses a running animation first, as the control panel
// buttons do.
func (c *Controller) ProcessIntent(intent engineinput.Intent) error {
	switch intent.Action {
	case engineinput.ActionNone:
		return nil
	case engineinput.ActionGeneratePlay:
		c.toggle(PlayingGeneration)
		return nil
	case engineinput.ActionSolvePlay:
		c.toggle(PlayingSolution)
		return nil
	}

	c.Pause()

	var err error
	switch intent.Action {
	case engineinput.ActionQuit:
		c.Quit = true
	case engineinput.ActionGenerateStep:
		_, err = c.session.GenerateStep()
	case engineinput.ActionGenerate:
		err = c.session.Generate()
	case engineinput.ActionGenerateReset:
		err = c.session.ResetGeneration()
	case engineinput.ActionSelectAlgorithm:
		err = c.session.SelectAlgorithm(intent.Algorithm)
	case engineinput.ActionSolveStep:
		_, err = c.session.SolveStep()
	case engineinput.ActionSolve:
		err = c.session.Solve()
	case engineinput.ActionSolveReset:
		err = c.session.ResetSolution()
	}
	return c.report(err)
}

// report turns precondition failures into session messages and passes
// everything else through.
func (c *Controller) report(err error) error {
	if errors.Is(err, solver.ErrNotGenerated) {
		logMessage(c.session, gotext.Get("GENERATE_FIRST"))
		return nil
	}
	return err
}

func logMessage(s *state.Session, msg string) {
	s.AddMessage(msg)
}
