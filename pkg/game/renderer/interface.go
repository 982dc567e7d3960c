// Package renderer defines the presentation adapter contract and the frame
// snapshot every backend paints from.
package renderer

import (
	"blademaster/pkg/engine/input"
	"blademaster/pkg/engine/terminal"
)

// Renderer defines the interface for game rendering backends.
// A renderer is also the input source: it owns the terminal.
type Renderer interface {
	// Init takes over the terminal and prepares to paint the given canvas
	Init(canvas terminal.Canvas) error

	// RenderFrame paints a complete frame
	RenderFrame(f Frame) error

	// GetInput blocks until the player presses a key
	GetInput() (input.Intent, error)

	// Close restores the terminal: screen cleared and cursor shown
	Close() error
}
