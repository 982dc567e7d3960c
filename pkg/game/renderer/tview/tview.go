// Package tview renders the game as a tview application: a boxed canvas with
// inventory, event and player panels laid out in flexes around it.
package tview

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
	"github.com/rivo/tview"

	"blademaster/pkg/engine/input"
	"blademaster/pkg/engine/terminal"
	"blademaster/pkg/game/renderer"
)

// Title is shown on the canvas border
const Title = " Welcome to Blademaster "

// ErrStopped is returned when the application has already exited
var ErrStopped = errors.New("tview application stopped")

// Renderer drives a tview application from the game loop.
// The application owns its goroutine; frames are handed to it with
// QueueUpdateDraw and key presses come back over a channel.
type Renderer struct {
	app       *tview.Application
	board     *tview.Box
	inventory *tview.List
	events    *tview.TextView
	player    *tview.TextView

	frame renderer.Frame

	intents chan input.Intent
	stopped chan struct{}
	runErr  error
}

// New creates an uninitialised renderer
func New() *Renderer {
	return &Renderer{}
}

// Init builds the layout and starts the application
func (r *Renderer) Init(canvas terminal.Canvas) error {
	r.app = tview.NewApplication()
	r.intents = make(chan input.Intent, 16)
	r.stopped = make(chan struct{})
	r.frame = renderer.Frame{Canvas: canvas}

	r.board = tview.NewBox().SetBorder(true).SetTitle(Title)
	r.board.SetDrawFunc(r.drawBoard)

	r.inventory = tview.NewList().ShowSecondaryText(false)
	r.inventory.SetBorder(true).SetTitle(" Inventory ")

	r.events = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	r.events.SetBorder(true).SetTitle(" Events ")

	r.player = tview.NewTextView()
	r.player.SetBorder(true).SetTitle(" Player ")

	top := tview.NewFlex().
		AddItem(r.board, canvas.Width+2, 0, false).
		AddItem(r.inventory, 0, 1, false)
	bottom := tview.NewFlex().
		AddItem(r.events, 0, 7, false).
		AddItem(r.player, 0, 3, false)
	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, canvas.Height+2, 0, false).
		AddItem(bottom, 0, 1, false)

	r.app.SetRoot(root, true).SetInputCapture(r.capture)

	go func() {
		r.runErr = r.app.Run()
		close(r.stopped)
	}()
	return nil
}

// capture turns key presses into intents. Every key is swallowed so tview's
// own Ctrl-C handling never stops the application behind the game's back.
func (r *Renderer) capture(ev *tcell.EventKey) *tcell.EventKey {
	code := keyCode(ev.Key(), ev.Rune())
	if code == "" {
		return nil
	}
	intent := input.FromRaw(input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: ev.When()})
	select {
	case r.intents <- intent:
	default:
	}
	return nil
}

// RenderFrame hands the frame to the application goroutine and waits for the redraw
func (r *Renderer) RenderFrame(f renderer.Frame) error {
	select {
	case <-r.stopped:
		return r.stoppedErr()
	default:
	}

	// QueueUpdateDraw blocks until the update runs, which never happens once
	// the application stops. The goroutine then stays parked until exit.
	done := make(chan struct{})
	go func() {
		r.app.QueueUpdateDraw(func() {
			r.frame = f
			r.fillPanels(f)
		})
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-r.stopped:
		return r.stoppedErr()
	}
}

// stoppedErr reports why frames can no longer be drawn
func (r *Renderer) stoppedErr() error {
	if r.runErr != nil {
		return fmt.Errorf("rendering frame: %w", r.runErr)
	}
	return ErrStopped
}

// GetInput blocks until a key is pressed.
// An application that exits on its own reads as a quit.
func (r *Renderer) GetInput() (input.Intent, error) {
	select {
	case intent := <-r.intents:
		return intent, nil
	case <-r.stopped:
		if r.runErr != nil {
			return input.Intent{}, fmt.Errorf("reading input: %w", r.runErr)
		}
		return input.Intent{Action: input.ActionQuit}, nil
	}
}

// Close stops the application and restores the terminal
func (r *Renderer) Close() error {
	if r.app == nil {
		return nil
	}
	r.app.Stop()
	<-r.stopped
	return r.runErr
}

// fillPanels runs on the application goroutine
func (r *Renderer) fillPanels(f renderer.Frame) {
	r.inventory.Clear()
	for _, name := range f.Inventory {
		r.inventory.AddItem(name, "", 0, nil)
	}

	var b strings.Builder
	for i, e := range f.Events {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Tag(e.Color, tview.Escape(e.Text)))
	}
	r.events.SetText(b.String())
	r.events.ScrollToEnd()

	r.player.SetText(strings.Join(f.Status, "\n"))
}

// drawBoard paints the cells inside the board's border
func (r *Renderer) drawBoard(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	ix, iy, iw, ih := x+1, y+1, width-2, height-2
	f := r.frame

	// Canvas position (1,1) maps to the top-left inner corner
	put := func(cx, cy int, symbol string, style tcell.Style) {
		if cx < 1 || cy < 1 || cx > iw || cy > ih {
			return
		}
		ch, _ := utf8.DecodeRuneInString(symbol)
		screen.SetContent(ix+cx-1, iy+cy-1, ch, nil, style)
	}

	for _, g := range f.Cells {
		put(g.X, g.Y, g.Symbol, tcell.StyleDefault.Foreground(TcellColor(g.Color)))
	}
	px, py := f.PlayerCell()
	pc := renderer.PlayerColor
	put(px, py, renderer.PlayerIcon, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(pc[0]), int32(pc[1]), int32(pc[2]))).Bold(true))

	return ix, iy, iw, ih
}

// TcellColor maps a 16-color gookit foreground to the tcell palette
func TcellColor(c color.Color) tcell.Color {
	switch {
	case c >= color.FgBlack && c <= color.FgWhite:
		return tcell.PaletteColor(int(c - color.FgBlack))
	case c >= color.FgDarkGray && c <= color.FgLightWhite:
		return tcell.PaletteColor(int(c-color.FgDarkGray) + 8)
	default:
		return tcell.ColorDefault
	}
}

// Tag wraps text in a tview color tag for the given gookit color
func Tag(c color.Color, text string) string {
	hex := TcellColor(c).Hex()
	if hex < 0 {
		return text
	}
	return fmt.Sprintf("[#%06x]%s[-]", hex, text)
}

// keyCode maps a tcell key to the shared input code vocabulary
func keyCode(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyUp:
		return input.CodeArrowUp
	case tcell.KeyDown:
		return input.CodeArrowDown
	case tcell.KeyLeft:
		return input.CodeArrowLeft
	case tcell.KeyRight:
		return input.CodeArrowRight
	case tcell.KeyEscape:
		return input.CodeEscape
	case tcell.KeyEnter:
		return input.CodeEnter
	case tcell.KeyCtrlC:
		return input.CodeCtrlC
	case tcell.KeyRune:
		return string(r)
	default:
		return ""
	}
}
