package gameplay

import (
	"blademaster/pkg/engine/world"
	"blademaster/pkg/game/state"
)

// FindTakeable returns the first takeable cell, in registry order, that is
// visible on the terminal and within tolerance of the player.
// Ties between stacked items always resolve to the earliest spawned one.
func FindTakeable(g *state.Game) (world.Cell, bool) {
	var item world.Cell
	found := false
	g.Cells.Each(func(c world.Cell) bool {
		if c.Access() == world.Takeable &&
			c.Inside(1, 1, g.Canvas.TermWidth, g.Canvas.TermHeight) &&
			c.Near(g.Player.X, g.Player.Y) {
			item = c
			found = true
			return false
		}
		return true
	})
	return item, found
}

// TakeItems moves at most one takeable cell under the player into the
// inventory, removing it from the world.
func TakeItems(g *state.Game) bool {
	item, found := FindTakeable(g)
	if !found {
		return false
	}

	Narrate(g, ColorTaken, MsgTaken, item.Name)
	g.Inventory.Take(item)
	g.Cells.Delete(item.ID)
	return true
}
