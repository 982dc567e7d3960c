package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Raw codes produced by the decoder
const (
	CodeArrowUp    = "arrow_up"
	CodeArrowDown  = "arrow_down"
	CodeArrowLeft  = "arrow_left"
	CodeArrowRight = "arrow_right"
	CodeEscape     = "escape"
	CodeEnter      = "enter"
	CodeCtrlC      = "ctrl_c"
)

// ReadKey decodes a single key press from r.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences. Printable
// characters are returned as themselves; anything unrecognised yields "".
func ReadKey(r io.ByteScanner) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		return readEscape(r)
	case b1 == 3:
		return CodeCtrlC, nil
	case b1 == '\n' || b1 == '\r':
		return CodeEnter, nil
	case b1 >= 32 && b1 < 127:
		return string(b1), nil
	}
	return "", nil
}

// readEscape reads the remainder of an escape sequence.
func readEscape(r io.ByteScanner) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		// A lone ESC at end of input is still a key press
		if err == io.EOF {
			return CodeEscape, nil
		}
		return "", err
	}

	if b2 != '[' && b2 != 'O' {
		// Not a sequence: ESC was a key press of its own and b2 is the next key
		if err := r.UnreadByte(); err != nil {
			return "", err
		}
		return CodeEscape, nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b3 {
	case 'A':
		return CodeArrowUp, nil
	case 'B':
		return CodeArrowDown, nil
	case 'C':
		return CodeArrowRight, nil
	case 'D':
		return CodeArrowLeft, nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// RawTerminal reads single key presses from stdin in raw mode.
type RawTerminal struct {
	fd       int
	oldState *term.State
	reader   *bufio.Reader
}

// OpenRawTerminal switches stdin to raw mode.
// Close must be called to restore the previous mode.
func OpenRawTerminal() (*RawTerminal, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting terminal to raw mode: %w", err)
	}
	return &RawTerminal{
		fd:       fd,
		oldState: oldState,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Next blocks until a key is pressed and returns it as a raw input.
func (t *RawTerminal) Next() (RawInput, error) {
	code, err := ReadKey(t.reader)
	if err != nil {
		return RawInput{}, fmt.Errorf("reading stdin: %w", err)
	}
	return RawInput{Device: DeviceTerminal, Code: code}, nil
}

// Close restores the terminal mode captured by OpenRawTerminal.
func (t *RawTerminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	return err
}
