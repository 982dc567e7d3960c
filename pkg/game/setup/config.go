package setup

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-errors"

	"blademaster/pkg/game/generator"
)

// Renderer names accepted by Config.Renderer
const (
	RendererTview = "tview"
	RendererTUI   = "tui"
)

// Config holds everything needed to start a session
type Config struct {
	Renderer  string
	Generator string
	Level     int
	Seed      int64 // 0 picks a time-based seed
	Events    int   // Event log capacity
	Workers   int   // Bulk translation parallelism, 0 means GOMAXPROCS
	LogFile   string
	LogLevel  string
}

// DefaultConfig returns the configuration used when no flags are given
func DefaultConfig() Config {
	return Config{
		Renderer:  RendererTview,
		Generator: generator.FlagName(generator.DefaultGenerator),
		Level:     1,
		Events:    100,
		LogLevel:  "info",
	}
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	switch c.Renderer {
	case RendererTview, RendererTUI:
	default:
		el.Add(fmt.Errorf("renderer %q: %w", c.Renderer, ErrUnknownRenderer))
	}

	if _, ok := generator.ByName(c.Generator); !ok {
		el.Add(fmt.Errorf("generator %q: %w", c.Generator, ErrUnknownGenerator))
	}

	if c.Level < 1 {
		el.Add(fmt.Errorf("level must be at least 1"))
	}

	if c.Events < 1 {
		el.Add(fmt.Errorf("events must be at least 1"))
	}

	if c.Workers < 0 {
		el.Add(fmt.Errorf("workers must not be negative"))
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		el.Add(err)
	}

	return el.Err()
}

// ParseLogLevel converts a level name into a slog level
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return level, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}
