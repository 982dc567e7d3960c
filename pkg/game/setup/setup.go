// Package setup builds a ready-to-play session from configuration.
package setup

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"blademaster/pkg/engine/terminal"
	"blademaster/pkg/engine/world"
	"blademaster/pkg/game/generator"
	"blademaster/pkg/game/state"
)

var (
	ErrUnknownRenderer  = errors.New("unknown renderer")
	ErrUnknownGenerator = errors.New("unknown generator")
)

// NewGame generates the configured level and places it so the player starts
// at the canvas center.
func NewGame(cfg Config, canvas terminal.Canvas) (*state.Game, error) {
	gen, ok := generator.ByName(cfg.Generator)
	if !ok {
		return nil, fmt.Errorf("generator %q: %w", cfg.Generator, ErrUnknownGenerator)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := state.NewGame(canvas,
		state.WithRegistry(world.NewRegistry(world.WithWorkers(cfg.Workers))),
		state.WithEventCapacity(cfg.Events),
	)
	g.Level = cfg.Level

	level := gen.Generate(cfg.Level, rng)
	stats, err := level.Place(g.Cells, int(g.Player.X), int(g.Player.Y))
	if err != nil {
		return nil, fmt.Errorf("placing %s level %d: %w", gen.Name(), cfg.Level, err)
	}

	slog.Info("level generated",
		"generator", gen.Name(),
		"level", cfg.Level,
		"seed", seed,
		"rows", level.Rows(),
		"cols", level.Cols(),
		"walls", stats.Walls,
		"doors", stats.Doors,
		"items", stats.Items,
		"unreachable", level.UnreachableItems(),
	)

	return g, nil
}
