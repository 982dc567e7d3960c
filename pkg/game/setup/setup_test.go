package setup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blademaster/pkg/engine/terminal"
	"blademaster/pkg/engine/world"
	"blademaster/pkg/game/generator"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	gen, ok := generator.ByName(cfg.Generator)
	require.True(t, ok)
	assert.Same(t, generator.DefaultGenerator, gen)
}

func TestConfig_ValidateCollectsEveryProblem(t *testing.T) {
	cfg := Config{
		Renderer:  "gl",
		Generator: "maze",
		Level:     0,
		Events:    0,
		Workers:   -1,
		LogLevel:  "chatty",
	}
	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{"gl", "maze", "level", "events", "workers", "chatty"} {
		assert.Contains(t, msg, want)
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", level.String())

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestNewGame_PlayerStartsClear(t *testing.T) {
	canvas, err := terminal.NewCanvas(100, 40)
	require.NoError(t, err)

	for _, gen := range []string{"bsp", "arena"} {
		t.Run(gen, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Generator = gen
			cfg.Seed = 42

			g, err := NewGame(cfg, canvas)
			require.NoError(t, err)
			assert.Greater(t, g.Cells.Len(), 0)

			g.Cells.Each(func(c world.Cell) bool {
				assert.False(t, c.Near(g.Player.X, g.Player.Y), "%s on the player", c.Kind)
				return true
			})
		})
	}
}

func TestNewGame_UnknownGenerator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator = "maze"
	_, err := NewGame(cfg, terminal.Canvas{Width: 10, Height: 10})
	assert.True(t, errors.Is(err, ErrUnknownGenerator))
}
