// Package input reads single key presses from a terminal and maps them to
// control-panel intents.
package input

import (
	"bufio"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// KeyReader decodes key codes from a byte stream, typically a terminal in
// raw mode.
type KeyReader struct {
	r   *bufio.Reader
	now func() time.Time
}

// NewKeyReader wraps r for key decoding
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r), now: time.Now}
}

// MakeRaw puts the terminal behind f into raw mode and returns a function
// restoring the previous state.
func MakeRaw(f *os.File) (func() error, error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReadKey blocks for the next key and returns its code: the printable
// character itself, or one of "enter", "space", "escape", "ctrl_c",
// "backspace" and the "arrow_*" names.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return k.readEscape(), nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b == 3:
		return "ctrl_c", nil
	case b == 127 || b == 8:
		return "backspace", nil
	case b >= 32 && b < 127:
		return string(b), nil
	}
	return "", nil
}

// Read returns the next key as a timestamped terminal event
func (k *KeyReader) Read() (RawInput, error) {
	code, err := k.ReadKey()
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: k.now()}, nil
}

// readEscape decodes the rest of an escape sequence. A lone ESC with
// nothing buffered behind it is the escape key.
func (k *KeyReader) readEscape() string {
	if k.r.Buffered() == 0 {
		return "escape"
	}
	b2, err := k.r.ReadByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}
	b3, err := k.r.ReadByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}
