// Package tui is the plain ANSI renderer: it repaints the whole frame with
// gookit/color escapes and reads keys from stdin in raw mode.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"blademaster/pkg/engine/input"
	"blademaster/pkg/engine/terminal"
	"blademaster/pkg/game/renderer"
	"blademaster/pkg/game/state"
)

// Control sequences
const (
	seqHome       = "\x1b[H"
	seqClear      = "\x1b[2J"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
)

// Raw mode disables output post-processing, so lines need an explicit carriage return
const newline = "\r\n"

// Banner is printed above the game area
const Banner = "Welcome to Blademaster"

// keySource yields key presses until closed
type keySource interface {
	Next() (input.RawInput, error)
	Close() error
}

func openRawTerminal() (keySource, error) {
	return input.OpenRawTerminal()
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out      io.Writer
	canvas   terminal.Canvas
	openKeys func() (keySource, error)
	raw      keySource

	colorTitle  color.Style
	colorSubtle color.Style
	colorPlayer color.RGBColor
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, openKeys: openRawTerminal}
}

// Init switches stdin to raw mode and hides the cursor
func (t *TUIRenderer) Init(canvas terminal.Canvas) error {
	t.canvas = canvas
	t.colorTitle = color.Style{color.FgBlue, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorPlayer = renderer.PlayerColor

	raw, err := t.openKeys()
	if err != nil {
		return fmt.Errorf("initialising tui: %w", err)
	}
	t.raw = raw

	if _, err := io.WriteString(t.out, seqHideCursor+seqClear); err != nil {
		_ = t.raw.Close()
		t.raw = nil
		return fmt.Errorf("initialising tui: %w", err)
	}
	return nil
}

// Close clears the screen, shows the cursor and leaves raw mode
func (t *TUIRenderer) Close() error {
	_, werr := io.WriteString(t.out, seqClear+seqHome+seqShowCursor)
	if t.raw != nil {
		if err := t.raw.Close(); err != nil {
			return fmt.Errorf("restoring terminal: %w", err)
		}
	}
	return werr
}

// GetInput blocks for one key press and maps it to an intent
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	raw, err := t.raw.Next()
	if err != nil {
		return input.Intent{}, err
	}
	return input.FromRaw(raw), nil
}

// RenderFrame repaints the whole screen from the frame
func (t *TUIRenderer) RenderFrame(f renderer.Frame) error {
	w := bufio.NewWriter(t.out)

	fmt.Fprint(w, seqHome+seqClear)
	t.printBanner(w, f.Canvas)
	t.printMap(w, f)
	t.printPanel(w, "Events", f.Canvas.TermWidth)
	t.printEvents(w, f.Events)
	t.printPanel(w, "Player", f.Canvas.TermWidth)
	fmt.Fprint(w, t.colorSubtle.Sprint(strings.Join(f.Status, "   ")))

	if err := w.Flush(); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}

// printBanner prints the title centered over the terminal
func (t *TUIRenderer) printBanner(w io.Writer, canvas terminal.Canvas) {
	indent := (canvas.TermWidth - len(Banner)) / 2
	if indent < 0 {
		indent = 0
	}
	fmt.Fprint(w, strings.Repeat(" ", indent), t.colorTitle.Sprint(Banner), newline)
}

// printMap renders the canvas with the inventory to its right
func (t *TUIRenderer) printMap(w io.Writer, f renderer.Frame) {
	rows := make([][]string, f.Canvas.Height)
	for y := range rows {
		rows[y] = make([]string, f.Canvas.Width)
		for x := range rows[y] {
			rows[y][x] = " "
		}
	}

	// Canvas position (1,1) is the top-left corner
	put := func(x, y int, s string) {
		if x >= 1 && x <= f.Canvas.Width && y >= 1 && y <= f.Canvas.Height {
			rows[y-1][x-1] = s
		}
	}
	for _, g := range f.Cells {
		put(g.X, g.Y, g.Color.Sprint(g.Symbol))
	}
	px, py := f.PlayerCell()
	put(px, py, t.colorPlayer.Sprint(renderer.PlayerIcon))

	for y, row := range rows {
		fmt.Fprint(w, strings.Join(row, ""), t.colorSubtle.Sprint(" │ "))
		switch {
		case y == 0:
			fmt.Fprint(w, t.colorTitle.Sprint("Inventory"))
		case y-1 < len(f.Inventory):
			fmt.Fprint(w, f.Inventory[y-1])
		}
		fmt.Fprint(w, newline)
	}
}

// printPanel prints a titled horizontal rule
func (t *TUIRenderer) printPanel(w io.Writer, title string, width int) {
	label := " " + title + " "
	side := (width - len(label)) / 2
	if side < 1 {
		side = 1
	}
	rest := width - side - len(label)
	if rest < 1 {
		rest = 1
	}
	fmt.Fprint(w, t.colorSubtle.Sprint(strings.Repeat("─", side)+label+strings.Repeat("─", rest)), newline)
}

// printEvents prints the newest events that fit under the canvas
func (t *TUIRenderer) printEvents(w io.Writer, events []state.Event) {
	// Banner, two rules and the status line share the bottom margin
	room := terminal.BottomMargin - 4
	if len(events) > room {
		events = events[len(events)-room:]
	}
	for _, e := range events {
		fmt.Fprint(w, "  ", e.Color.Sprint(strings.TrimRight(e.Text, " ")), newline)
	}
	for i := len(events); i < room; i++ {
		fmt.Fprint(w, newline)
	}
}
