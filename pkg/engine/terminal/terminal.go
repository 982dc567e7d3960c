// Package terminal reads terminal geometry and derives the game canvas from it.
package terminal

import (
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Space reserved around the canvas for the side and bottom panels
const (
	SideMargin   = 25
	BottomMargin = 8
)

// Smallest canvas worth playing on
const (
	MinCanvasWidth  = 5
	MinCanvasHeight = 3
)

// ErrTooSmall is returned when the terminal cannot fit the canvas and its panels.
var ErrTooSmall = errors.New("terminal too small")

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Canvas is the visible sub-rectangle of the terminal dedicated to the game grid
type Canvas struct {
	TermWidth  int
	TermHeight int
	Width      int
	Height     int
}

// NewCanvas derives the canvas from a terminal size
func NewCanvas(termWidth, termHeight int) (Canvas, error) {
	c := Canvas{
		TermWidth:  termWidth,
		TermHeight: termHeight,
		Width:      termWidth - SideMargin,
		Height:     termHeight - BottomMargin,
	}
	if c.Width < MinCanvasWidth || c.Height < MinCanvasHeight {
		return Canvas{}, fmt.Errorf("%dx%d needs at least %dx%d: %w",
			termWidth, termHeight, MinCanvasWidth+SideMargin, MinCanvasHeight+BottomMargin, ErrTooSmall)
	}
	return c, nil
}

// Current derives the canvas from the size of the attached terminal
func Current() (Canvas, error) {
	return NewCanvas(GetSize())
}

// Center returns the canvas center, rounded to whole cells
func (c Canvas) Center() (x, y float64) {
	return math.Round(float64(c.Width) / 2), math.Round(float64(c.Height) / 2)
}

// Pad returns the narration padding width, half the canvas width
func (c Canvas) Pad() int {
	return c.Width / 2
}
