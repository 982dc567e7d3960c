package renderer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gookit/color"

	"blademaster/pkg/engine/input"
	"blademaster/pkg/engine/terminal"
	"blademaster/pkg/engine/world"
	"blademaster/pkg/game/state"
)

// PlayerIcon is drawn at the player's position
const PlayerIcon = "@"

// PlayerColor is the player's own color, distinct from any cell
var PlayerColor = color.RGB(0, 255, 0)

// Glyph is one painted grid position
type Glyph struct {
	X, Y   int
	Symbol string
	Color  color.Color
}

// Frame is an immutable snapshot of everything a backend paints.
// Backends never see the live game state.
type Frame struct {
	Canvas terminal.Canvas

	Cells   []Glyph
	PlayerX float64
	PlayerY float64

	Inventory []string
	Events    []state.Event
	Status    []string
}

// Snapshot copies the renderable state out of the game.
// Only cells inside the terminal are kept.
func Snapshot(g *state.Game) Frame {
	f := Frame{
		Canvas:    g.Canvas,
		PlayerX:   g.Player.X,
		PlayerY:   g.Player.Y,
		Inventory: slices.Collect(g.Inventory.List()),
		Events:    slices.Collect(g.Events.Events()),
	}

	g.Cells.Each(func(c world.Cell) bool {
		if c.Inside(1, 1, g.Canvas.TermWidth, g.Canvas.TermHeight) {
			f.Cells = append(f.Cells, Glyph{X: c.X, Y: c.Y, Symbol: c.Glyph(), Color: c.Color})
		}
		return true
	})

	f.Status = []string{
		fmt.Sprintf("Level: %d", g.Level),
		fmt.Sprintf("Turn:  %d", g.Turn),
		fmt.Sprintf("Items: %d", g.Inventory.Len()),
		"Keys:  " + KeyHelp(),
	}

	return f
}

// KeyHelp describes the bound keys for movement and quitting
func KeyHelp() string {
	bindings := input.GetBindingsByAction()
	var moves []string
	for _, act := range []input.Action{input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight} {
		for _, code := range bindings[act] {
			if !strings.HasPrefix(code, "arrow_") {
				moves = append(moves, code)
			}
		}
	}
	return fmt.Sprintf("arrows/%s move, %s quit", strings.Join(moves, ""), strings.Join(bindings[input.ActionQuit], "/"))
}

// PlayerCell returns the player's position rounded to a grid position
func (f Frame) PlayerCell() (x, y int) {
	return int(f.PlayerX + 0.5), int(f.PlayerY + 0.5)
}
