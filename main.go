package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"mazewalk/pkg/engine/input"
	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/terminal"
	"mazewalk/pkg/engine/timing"
	"mazewalk/pkg/game/config"
	"mazewalk/pkg/game/gameplay"
	"mazewalk/pkg/game/logging"
	"mazewalk/pkg/game/renderer"
	"mazewalk/pkg/game/renderer/ebiten"
	"mazewalk/pkg/game/renderer/tui"
	"mazewalk/pkg/game/state"
)

// keyRepeatWindow drops auto-repeated keys that arrive faster than this
const keyRepeatWindow = 30 * time.Millisecond

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "mazewalk:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	log := logging.New(os.Stderr, cfg.LogLevel)

	if err := renderer.LoadLocale(cfg.LocaleDir, cfg.Locale); err != nil {
		log.Warn().Err(err).Str("locale", cfg.Locale).Msg("translations unavailable, showing keys")
	}

	if cfg.Renderer == config.RendererTUI && input.IsTerminal(os.Stdout) {
		width, height := terminal.GetSize()
		columns, rows := terminal.FitGrid(cfg.Columns, cfg.Rows, width, height, tui.StatusLines)
		if columns != cfg.Columns || rows != cfg.Rows {
			log.Info().Int("columns", columns).Int("rows", rows).Msg("maze shrunk to fit the terminal")
			cfg.Columns, cfg.Rows = columns, rows
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug().Int64("seed", seed).Str("algorithm", cfg.Algorithm).Str("mode", cfg.Mode).Msg("starting")

	session, err := state.NewSession(state.Options{
		Columns:   cfg.Columns,
		Rows:      cfg.Rows,
		Algorithm: cfg.Algorithm,
	}, random.NewPCG(seed), log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Renderer == config.RendererEbiten {
		return runWindow(session, cfg, log)
	}

	t := tui.New(os.Stdout)
	t.Plain = !input.IsTerminal(os.Stdout)
	renderer.SetRenderer(t)
	if err := renderer.Init(); err != nil {
		return err
	}
	defer renderer.Close()

	switch cfg.Mode {
	case config.ModeRun:
		return runInstant(session)
	case config.ModePlay:
		return runPlay(ctx, session, t, cfg.StepsPerSecond)
	default:
		return runStep(ctx, session, t, cfg.StepsPerSecond, log)
	}
}

// loadConfig applies defaults, then the .env file and MAZE_* variables,
// then command-line flags.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	envPath := ".env"

	fs := flag.NewFlagSet("mazewalk", flag.ContinueOnError)
	fs.StringVar(&envPath, "env", envPath, "dotenv file with MAZE_* settings")
	cfg.Bind(fs)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: mazewalk [flags]")
		fs.PrintDefaults()
		fmt.Fprintln(out, "\nKeys in step mode:")
		for _, line := range tui.DescribeBindings() {
			fmt.Fprintln(out, "  "+line)
		}
	}

	// The first parse only finds -env; flags are parsed again so they win
	// over the environment.
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(envPath); err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInstant(session *state.Session) error {
	if err := generateAndSolve(session); err != nil {
		return err
	}
	return renderer.RenderFrame(renderer.NewFrame(session))
}

func runPlay(ctx context.Context, session *state.Session, t *tui.TUIRenderer, sps int) error {
	renderer.Clear()
	draw := func() {
		if !t.Plain {
			t.Home()
		}
		if err := renderer.RenderFrame(renderer.NewFrame(session)); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if err := session.PlayGeneration(ctx, timing.NewFixedStep(sps), draw); err != nil {
		return ignoreCancel(err)
	}
	if err := session.PlaySolution(ctx, timing.NewFixedStep(sps), draw); err != nil {
		return ignoreCancel(err)
	}
	return nil
}

func runStep(ctx context.Context, session *state.Session, t *tui.TUIRenderer, sps int, log zerolog.Logger) error {
	if input.IsTerminal(os.Stdin) {
		restore, err := input.MakeRaw(os.Stdin)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer restore()

		crlf := tui.New(terminal.NewCRLFWriter(os.Stdout))
		crlf.Plain = t.Plain
		t = crlf
		renderer.SetRenderer(t)
		if err := renderer.Init(); err != nil {
			return err
		}
	}

	controller := gameplay.NewController(session, sps)
	keys := make(chan input.RawInput)
	readErr := make(chan error, 1)
	go readKeys(input.NewKeyReader(os.Stdin), keys, readErr)

	ticker := time.NewTicker(controller.Interval())
	defer ticker.Stop()
	debounce := &input.Debouncer{Window: keyRepeatWindow}

	renderer.Clear()
	draw := func() error {
		t.Home()
		return renderer.RenderFrame(renderer.NewFrame(session))
	}
	if err := draw(); err != nil {
		return err
	}

	for !controller.Quit {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case raw := <-keys:
			ev, ok := debounce.Accept(raw)
			if !ok {
				continue
			}
			intent := input.MapToIntent(ev)
			if intent.Action == input.ActionNone {
				continue
			}
			if err := controller.ProcessIntent(intent); err != nil {
				log.Error().Err(err).Str("action", input.ActionName(intent.Action)).Msg("command failed")
				session.AddMessage(err.Error())
			}
		case <-ticker.C:
			stepped, err := controller.Tick()
			if err != nil {
				log.Error().Err(err).Str("animation", controller.Playing().String()).Msg("animation stopped")
				session.AddMessage(err.Error())
			} else if !stepped {
				continue
			}
		}
		if err := draw(); err != nil {
			return err
		}
	}
	renderer.Clear()
	return nil
}

func readKeys(r *input.KeyReader, keys chan<- input.RawInput, errs chan<- error) {
	for {
		raw, err := r.Read()
		if err != nil {
			errs <- err
			return
		}
		keys <- raw
	}
}

// runWindow prepares the session for the mode and hands it to the window
func runWindow(session *state.Session, cfg *config.Config, log zerolog.Logger) error {
	controller := gameplay.NewController(session, cfg.StepsPerSecond)
	switch cfg.Mode {
	case config.ModeRun:
		if err := generateAndSolve(session); err != nil {
			return err
		}
	case config.ModePlay:
		if err := controller.ProcessIntent(input.Intent{Action: input.ActionGeneratePlay}); err != nil {
			return err
		}
	}
	return ebiten.New(controller, ebiten.DefaultTileSize, log).Run()
}

func generateAndSolve(session *state.Session) error {
	if err := session.Generate(); err != nil {
		return err
	}
	return session.Solve()
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
