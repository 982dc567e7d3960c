// Package state holds the session state threaded through the game loop.
package state

import (
	"blademaster/pkg/engine/terminal"
	"blademaster/pkg/engine/world"
)

// DefaultEventCapacity is how many narrations the event log keeps
const DefaultEventCapacity = 100

// Game represents one running session of Blademaster
type Game struct {
	Canvas terminal.Canvas

	Cells     *world.Registry
	Player    *Player
	Inventory *Inventory
	Events    *EventLog

	Level int // Level the world was generated for
	Turn  int // Completed steps, quit excluded
}

// Option configures a Game
type Option func(*Game)

// WithRegistry uses an existing registry instead of an empty one
func WithRegistry(r *world.Registry) Option {
	return func(g *Game) {
		g.Cells = r
	}
}

// WithEventCapacity bounds the event log
func WithEventCapacity(n int) Option {
	return func(g *Game) {
		g.Events = NewEventLog(n)
	}
}

// NewGame creates a new game with the player at the canvas center
func NewGame(canvas terminal.Canvas, opts ...Option) *Game {
	g := &Game{
		Canvas:    canvas,
		Cells:     world.NewRegistry(),
		Player:    NewPlayer(canvas.Center()),
		Inventory: NewInventory(),
		Events:    NewEventLog(DefaultEventCapacity),
		Level:     1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
