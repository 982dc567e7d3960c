// Package gameplay provides core game logic for player movement and item pickup.
package gameplay

import (
	"fmt"

	"blademaster/pkg/engine/world"
	"blademaster/pkg/game/state"
)

// FindBlocker returns the first impassable cell, in registry order, within
// tolerance of the given position.
func FindBlocker(g *state.Game, x, y float64) (world.Cell, bool) {
	var blocker world.Cell
	found := false
	g.Cells.Each(func(c world.Cell) bool {
		if c.Access() == world.Impassable && c.Near(x, y) {
			blocker = c
			found = true
			return false
		}
		return true
	})
	return blocker, found
}

// Move resolves one directional command.
// If the probed neighbor is blocked it narrates the collision and leaves the
// world alone, otherwise the whole registry shifts opposite to the request.
// The player's stored position never changes.
func Move(g *state.Game, dir world.Direction) (bool, error) {
	if !dir.IsValid() {
		return false, fmt.Errorf("moving: invalid direction %d", dir)
	}

	px, py := g.Player.Offset(dir.Probe())
	if blocker, blocked := FindBlocker(g, px, py); blocked {
		Narrate(g, ColorBlocked, MsgRanInto, blocker.Name)
		return false, nil
	}

	dx, dy := dir.Shift()
	if err := g.Cells.Translate(dx, dy); err != nil {
		return false, fmt.Errorf("moving %s: %w", dir, err)
	}
	return true, nil
}
