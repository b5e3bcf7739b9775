// Package terminal reports the terminal size and fits maze dimensions to it.
package terminal

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// CellWidth is the number of terminal columns used to draw one maze cell
const CellWidth = 2

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitGrid returns the largest odd maze dimensions, no larger than the
// requested ones, that fit a width x height terminal with reserved lines
// kept free for status text. Results never drop below 3x3.
func FitGrid(columns, rows, width, height, reserved int) (int, int) {
	maxColumns := width / CellWidth
	maxRows := height - reserved
	if columns > maxColumns {
		columns = maxColumns
	}
	if rows > maxRows {
		rows = maxRows
	}
	return odd(columns), odd(rows)
}

func odd(n int) int {
	if n%2 == 0 {
		n--
	}
	if n < 3 {
		return 3
	}
	return n
}

// CRLFWriter turns bare line feeds into CR LF, which a terminal in raw mode
// needs to return to the first column.
type CRLFWriter struct {
	w io.Writer
}

// NewCRLFWriter wraps w
func NewCRLFWriter(w io.Writer) *CRLFWriter {
	return &CRLFWriter{w: w}
}

// Write writes p with every '\n' expanded to "\r\n". It reports len(p) on
// success so callers see their own byte count.
func (c *CRLFWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
