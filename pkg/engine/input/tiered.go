package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level control-panel command.
type Action int

const (
	ActionNone Action = iota

	// Generation
	ActionGenerateStep
	ActionGenerate
	ActionGeneratePlay
	ActionGenerateReset
	ActionSelectAlgorithm

	// Solving
	ActionSolveStep
	ActionSolve
	ActionSolvePlay
	ActionSolveReset

	// Meta
	ActionPause
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the user wants.
// Algorithm is set only for ActionSelectAlgorithm.
type Intent struct {
	Action    Action
	Algorithm string
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "n", "enter", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// Debouncer drops repeats of the same code that arrive faster than Window,
// which is how a held key looks in terminal raw mode.
type Debouncer struct {
	Window time.Duration

	lastCode string
	lastAt   time.Time
}

// Accept converts a raw event to a debounced one, reporting false when the
// event is a repeat inside the window. Events without a timestamp always pass.
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	ev := NewDebouncedInput(raw)
	if raw.Timestamp.IsZero() {
		return ev, true
	}
	repeat := raw.Code == d.lastCode && raw.Timestamp.Sub(d.lastAt) < d.Window
	d.lastCode = raw.Code
	d.lastAt = raw.Timestamp
	return ev, !repeat
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"n":     ActionGenerateStep,
	"g":     ActionGenerate,
	"p":     ActionGeneratePlay,
	"r":     ActionGenerateReset,
	"s":     ActionSolveStep,
	"S":     ActionSolve,
	"enter": ActionSolve,
	"o":     ActionSolvePlay,
	"x":     ActionSolveReset,
	"space": ActionPause,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// algorithmKeys maps number keys to generator names in menu order
var algorithmKeys = map[string]string{
	"1": "dfs",
	"2": "prim",
	"3": "wilson",
	"4": "kruskal",
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if name, ok := algorithmKeys[ev.Code]; ok {
		return Intent{Action: ActionSelectAlgorithm, Algorithm: name}
	}
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionGenerateStep:
		return "Step Generation"
	case ActionGenerate:
		return "Generate"
	case ActionGeneratePlay:
		return "Play Generation"
	case ActionGenerateReset:
		return "Reset Generation"
	case ActionSelectAlgorithm:
		return "Select Algorithm"
	case ActionSolveStep:
		return "Step Solution"
	case ActionSolve:
		return "Solve"
	case ActionSolvePlay:
		return "Play Solution"
	case ActionSolveReset:
		return "Reset Solution"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for code := range algorithmKeys {
		result[ActionSelectAlgorithm] = append(result[ActionSelectAlgorithm], code)
	}
	// Ensure stable ordering of codes within each action so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
