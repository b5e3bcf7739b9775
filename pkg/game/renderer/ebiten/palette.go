// Package ebiten draws the maze in a window with Ebiten. The window driver
// needs the ebiten build tag; without it Run reports ErrNotBuilt.
package ebiten

import (
	"errors"
	"image/color"

	"mazewalk/pkg/game/renderer"
)

// ErrNotBuilt is returned by Run in builds without the ebiten tag
var ErrNotBuilt = errors.New("the window renderer requires building with the 'ebiten' tag")

// DefaultTileSize is the on-screen size of one maze cell in pixels
const DefaultTileSize = 10

// statusHeight is the space below the maze kept for status text
const statusHeight = 64

// Colour palette, indexed by layer
var palette = map[renderer.Layer]color.RGBA{
	renderer.LayerWall:         {0x00, 0x00, 0x00, 0xff},
	renderer.LayerPassage:      {0xff, 0xff, 0xff, 0xff},
	renderer.LayerPath:         {0x55, 0x55, 0xff, 0xff},
	renderer.LayerSolveCurrent: {0xaa, 0xaa, 0x00, 0xff},
	renderer.LayerSolution:     {0xff, 0xff, 0x00, 0xff},
	renderer.LayerStart:        {0xff, 0x00, 0x00, 0xff},
	renderer.LayerEnd:          {0x00, 0x00, 0xff, 0xff},
}

var colorBackground = color.RGBA{0x22, 0x22, 0x22, 0xff}

// fillLayerRGBA converts a frame's layers into RGBA pixels in buf, one pixel
// per cell. Unknown layers draw as walls.
func fillLayerRGBA(buf []byte, layers []renderer.Layer) {
	for i, l := range layers {
		col, ok := palette[l]
		if !ok {
			col = palette[renderer.LayerWall]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// keyCodes lists the key codes the window forwards to the input bindings
var keyCodes = []string{
	"n", "g", "p", "r", "1", "2", "3", "4",
	"s", "S", "enter", "o", "x", "space", "q", "escape",
}
