// Package config holds the command-line and environment settings for the
// maze drivers.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"mazewalk/pkg/maze/generator"
)

// Run modes
const (
	ModeRun  = "run"
	ModePlay = "play"
	ModeStep = "step"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Environment variable names read by LoadEnv
const (
	EnvColumns        = "MAZE_COLUMNS"
	EnvRows           = "MAZE_ROWS"
	EnvAlgorithm      = "MAZE_ALGORITHM"
	EnvSeed           = "MAZE_SEED"
	EnvStepsPerSecond = "MAZE_STEPS_PER_SECOND"
	EnvMode           = "MAZE_MODE"
	EnvRenderer       = "MAZE_RENDERER"
	EnvLogLevel       = "MAZE_LOG_LEVEL"
	EnvLocale         = "MAZE_LOCALE"
	EnvLocaleDir      = "MAZE_LOCALE_DIR"
)

// MinDimension is the smallest accepted column or row count
const MinDimension = 3

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	modes     = []string{ModeRun, ModePlay, ModeStep}
	renderers = []string{RendererTUI, RendererEbiten}
)

// Config represents the settings for one maze session
type Config struct {
	Columns        int
	Rows           int
	Algorithm      string
	Seed           int64
	StepsPerSecond int
	Mode           string
	Renderer       string
	LogLevel       string
	Locale         string
	LocaleDir      string
}

// NewConfig returns a Config populated with the default 63x63 maze
func NewConfig() *Config {
	return &Config{
		Columns:        63,
		Rows:           63,
		Algorithm:      generator.DefaultAlgorithm,
		Seed:           0,
		StepsPerSecond: 8,
		Mode:           ModeStep,
		Renderer:       RendererTUI,
		LogLevel:       "info",
		Locale:         "en",
		LocaleDir:      "locales",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Columns, "columns", c.Columns, "maze width in cells (odd)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "maze height in cells (odd)")
	fs.StringVar(&c.Algorithm, "algorithm", c.Algorithm, "generation algorithm: "+strings.Join(generator.Names(), ", "))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.IntVar(&c.StepsPerSecond, "sps", c.StepsPerSecond, "animation steps per second")
	fs.StringVar(&c.Mode, "mode", c.Mode, "run mode: "+strings.Join(modes, ", "))
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer: "+strings.Join(renderers, ", "))
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.Locale, "locale", c.Locale, "language for labels")
	fs.StringVar(&c.LocaleDir, "locale-dir", c.LocaleDir, "directory holding translation files")
}

// LoadEnv reads path into the process environment, if it exists, and then
// applies any MAZE_* variables over the current values. A missing file is
// not an error.
func (c *Config) LoadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := intEnv(EnvColumns, &c.Columns); err != nil {
		return err
	}
	if err := intEnv(EnvRows, &c.Rows); err != nil {
		return err
	}
	if err := intEnv(EnvStepsPerSecond, &c.StepsPerSecond); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	stringEnv(EnvAlgorithm, &c.Algorithm)
	stringEnv(EnvMode, &c.Mode)
	stringEnv(EnvRenderer, &c.Renderer)
	stringEnv(EnvLogLevel, &c.LogLevel)
	stringEnv(EnvLocale, &c.Locale)
	stringEnv(EnvLocaleDir, &c.LocaleDir)
	return nil
}

// Validate reports the first setting that cannot drive a session
func (c *Config) Validate() error {
	if c.Columns < MinDimension || c.Rows < MinDimension {
		return fmt.Errorf("%w: maze must be at least %dx%d, got %dx%d", ErrInvalidConfig, MinDimension, MinDimension, c.Columns, c.Rows)
	}
	if c.Columns%2 == 0 || c.Rows%2 == 0 {
		return fmt.Errorf("%w: dimensions must be odd, got %dx%d", ErrInvalidConfig, c.Columns, c.Rows)
	}
	if !slices.Contains(generator.Names(), c.Algorithm) {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, c.Algorithm)
	}
	if c.StepsPerSecond <= 0 {
		return fmt.Errorf("%w: steps per second must be positive, got %d", ErrInvalidConfig, c.StepsPerSecond)
	}
	if !slices.Contains(modes, c.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if !slices.Contains(renderers, c.Renderer) {
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	return nil
}

func intEnv(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func stringEnv(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}
