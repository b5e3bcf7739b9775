package gameplay

import (
	"time"

	"mazewalk/pkg/engine/timing"
	"mazewalk/pkg/game/state"
)

// Playing names the animation currently running
type Playing int

const (
	PlayingNone Playing = iota
	PlayingGeneration
	PlayingSolution
)

// String returns the string representation of an animation
func (p Playing) String() string {
	switch p {
	case PlayingGeneration:
		return "generation"
	case PlayingSolution:
		return "solution"
	default:
		return "none"
	}
}

// Controller routes intents to a session and runs at most one animation
type Controller struct {
	session *state.Session
	sps     int
	clock   *timing.FixedStep
	playing Playing

	// Quit is set once a quit intent has been processed
	Quit bool
}

// NewController creates a controller animating at sps steps per second
func NewController(s *state.Session, sps int) *Controller {
	return &Controller{session: s, sps: sps}
}

// Session returns the controlled session
func (c *Controller) Session() *state.Session {
	return c.session
}

// Playing returns the running animation
func (c *Controller) Playing() Playing {
	return c.playing
}

// Interval returns the time between animation steps
func (c *Controller) Interval() time.Duration {
	return timing.NewFixedStep(c.sps).Interval()
}

// Pause stops any running animation
func (c *Controller) Pause() {
	c.playing = PlayingNone
	c.clock = nil
}

// toggle pauses p if it is running, otherwise starts it in place of any
// other animation. The first step is due immediately.
func (c *Controller) toggle(p Playing) {
	if c.playing == p {
		c.Pause()
		return
	}
	c.playing = p
	c.clock = timing.NewFixedStep(c.sps)
}

// Tick advances the running animation by one step when one is due and
// reports whether it stepped. The animation stops when its state machine
// finishes or fails.
func (c *Controller) Tick() (bool, error) {
	if c.playing == PlayingNone || !c.clock.ShouldStep() {
		return false, nil
	}

	var done bool
	var err error
	switch c.playing {
	case PlayingGeneration:
		done, err = c.session.GenerateStep()
	case PlayingSolution:
		done, err = c.session.SolveStep()
	}
	if done || err != nil {
		c.Pause()
	}
	return true, c.report(err)
}
