package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"blademaster/pkg/engine/input"
	"blademaster/pkg/engine/terminal"
	"blademaster/pkg/game/gameplay"
	"blademaster/pkg/game/renderer"
	"blademaster/pkg/game/renderer/tui"
	"blademaster/pkg/game/renderer/tview"
	"blademaster/pkg/game/setup"
	"blademaster/pkg/game/state"
)

func parseFlags() setup.Config {
	cfg := setup.DefaultConfig()
	flag.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "renderer to use (tview or tui)")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "level generator (bsp or arena)")
	flag.IntVar(&cfg.Level, "level", cfg.Level, "starting level (for developer testing)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time-based")
	flag.IntVar(&cfg.Events, "events", cfg.Events, "number of events kept in the log")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines used to move the world, 0 for GOMAXPROCS")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()
	return cfg
}

// initLogging routes slog to the log file. The terminal belongs to the renderer,
// so without a file logs are discarded.
func initLogging(cfg setup.Config) (io.Closer, error) {
	level, err := setup.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var out io.WriteCloser = nopCloser{io.Discard}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func newRenderer(name string) (renderer.Renderer, error) {
	switch name {
	case setup.RendererTview:
		return tview.New(), nil
	case setup.RendererTUI:
		return tui.New(), nil
	default:
		return nil, fmt.Errorf("renderer %q: %w", name, setup.ErrUnknownRenderer)
	}
}

// run plays until the player quits or something fails.
// Both end the session; only the latter returns an error.
func run(g *state.Game, r renderer.Renderer) error {
	gameplay.Narrate(g, gameplay.ColorWelcome, gameplay.MsgWelcome)

	for {
		if err := r.RenderFrame(renderer.Snapshot(g)); err != nil {
			return err
		}

		intent, err := r.GetInput()
		if err != nil {
			return err
		}

		res, err := gameplay.ProcessIntent(g, intent)
		if err != nil {
			return err
		}
		slog.Debug("step",
			"turn", g.Turn,
			"action", input.ActionName(intent.Action),
			"moved", res.Moved,
			"taken", res.Taken,
			"cells", g.Cells.Len(),
		)
		if res.Quit {
			slog.Info("player quit", "turn", g.Turn, "items", g.Inventory.Len())
			return nil
		}
	}
}

func main() {
	cfg := parseFlags()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logs, err := initLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	canvas, err := terminal.Current()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g, err := setup.NewGame(cfg, canvas)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r, err := newRenderer(cfg.Renderer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := r.Init(canvas); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runErr := run(g, r)
	if err := r.Close(); err != nil {
		slog.Error("closing renderer", "error", err)
	}
	if runErr != nil {
		slog.Error("game ended", "error", runErr)
		fmt.Fprintln(os.Stderr, runErr)
	}

	// The loop only ends by quitting or failing; both exit non-zero
	logs.Close()
	os.Exit(1)
}
