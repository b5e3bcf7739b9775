//go:build !ebiten

package ebiten

import (
	"github.com/rs/zerolog"

	"mazewalk/pkg/game/gameplay"
)

// EbitenRenderer is a placeholder that satisfies the API expected by the GUI build.
type EbitenRenderer struct{}

// New returns a renderer whose Run always fails with ErrNotBuilt.
func New(*gameplay.Controller, int, zerolog.Logger) *EbitenRenderer {
	return &EbitenRenderer{}
}

// Run reports that the GUI build tag is missing.
func (e *EbitenRenderer) Run() error {
	return ErrNotBuilt
}
