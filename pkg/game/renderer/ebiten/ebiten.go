//go:build ebiten

package ebiten

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	engineinput "mazewalk/pkg/engine/input"
	"mazewalk/pkg/game/gameplay"
	"mazewalk/pkg/game/renderer"
)

// dynamicGet formats translated labels; the msgids are keys, not format
// strings.
var dynamicGet = gotext.Get

// keys pairs window keys with the codes in keyCodes
var keys = map[string]ebiten.Key{
	"n":      ebiten.KeyN,
	"g":      ebiten.KeyG,
	"p":      ebiten.KeyP,
	"r":      ebiten.KeyR,
	"1":      ebiten.KeyDigit1,
	"2":      ebiten.KeyDigit2,
	"3":      ebiten.KeyDigit3,
	"4":      ebiten.KeyDigit4,
	"s":      ebiten.KeyS,
	"enter":  ebiten.KeyEnter,
	"o":      ebiten.KeyO,
	"x":      ebiten.KeyX,
	"space":  ebiten.KeySpace,
	"q":      ebiten.KeyQ,
	"escape": ebiten.KeyEscape,
}

// EbitenRenderer is a window that draws the maze and forwards key presses
// to a controller.
type EbitenRenderer struct {
	controller *gameplay.Controller
	log        zerolog.Logger

	tileSize int
	frame    renderer.Frame
	pixels   []byte
	maze     *ebiten.Image

	windowOpenedLogged bool
}

// New creates a window renderer for the controller's session
func New(c *gameplay.Controller, tileSize int, log zerolog.Logger) *EbitenRenderer {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &EbitenRenderer{controller: c, tileSize: tileSize, log: log}
}

// Init sizes the window for the session's grid
func (e *EbitenRenderer) Init() error {
	e.RenderFrame(renderer.NewFrame(e.controller.Session()))
	ebiten.SetWindowTitle(dynamicGet("WINDOW_TITLE", e.frame.Title))
	ebiten.SetWindowSize(e.Layout(0, 0))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Clear is a no-op; every Draw repaints the whole window.
func (e *EbitenRenderer) Clear() {}

// RenderFrame stores the frame for the next Draw
func (e *EbitenRenderer) RenderFrame(f renderer.Frame) error {
	if e.maze == nil || e.frame.Columns != f.Columns || e.frame.Rows != f.Rows {
		e.maze = ebiten.NewImage(f.Columns, f.Rows)
		e.pixels = make([]byte, f.Columns*f.Rows*4)
	}
	e.frame = f
	return nil
}

// Close is a no-op; ebiten owns the window.
func (e *EbitenRenderer) Close() error {
	return nil
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run() error {
	if err := e.Init(); err != nil {
		return err
	}
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input and animation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Debug().Int("width", w).Int("height", h).Msg("window opened")
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		if err := e.controller.ProcessIntent(intent); err != nil {
			e.log.Error().Err(err).Str("action", engineinput.ActionName(intent.Action)).Msg("command failed")
		}
	}
	if e.controller.Quit {
		return ebiten.Termination
	}
	if _, err := e.controller.Tick(); err != nil {
		e.log.Error().Err(err).Msg("animation stopped")
	}
	return e.RenderFrame(renderer.NewFrame(e.controller.Session()))
}

// checkInput returns the intent for the first bound key pressed this tick
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, code := range keyCodes {
		key, ok := keys[strings.ToLower(code)]
		if !ok || !inpututil.IsKeyJustPressed(key) {
			continue
		}
		shifted := ebiten.IsKeyPressed(ebiten.KeyShift)
		if code == "s" && shifted || code == "S" && !shifted {
			continue
		}
		return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   code,
		}))
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Draw renders the maze scaled to the tile size with a status block below
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	fillLayerRGBA(e.pixels, e.frame.Layers)
	e.maze.WritePixels(e.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(e.tileSize), float64(e.tileSize))
	screen.DrawImage(e.maze, op)

	y := e.frame.Rows*e.tileSize + 4
	ebitenutil.DebugPrintAt(screen, e.statusLine(), 4, y)
	for i, msg := range e.frame.Messages {
		if i >= 3 {
			break
		}
		ebitenutil.DebugPrintAt(screen, msg, 4, y+16*(i+1))
	}
}

func (e *EbitenRenderer) statusLine() string {
	f := e.frame
	status := fmt.Sprintf("%s: %s", gotext.Get("STATUS_ALGORITHM"), f.Title)
	switch {
	case !f.Generated:
		return status + "  " + dynamicGet("STATUS_GENERATING", f.GenerationSteps)
	case f.Solved && f.Found:
		return status + "  " + dynamicGet("STATUS_SOLVED", f.Solution, f.SolveSteps)
	case f.Solving:
		return status + "  " + dynamicGet("STATUS_SOLVING", f.SolveSteps)
	}
	return status + "  " + dynamicGet("STATUS_GENERATED", f.GenerationSteps)
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.frame.Columns * e.tileSize, e.frame.Rows*e.tileSize + statusHeight
}
