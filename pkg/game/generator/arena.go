package generator

import (
	"math/rand"

	"blademaster/pkg/engine/world"
)

// ArenaGenerator generates a single walled hall strewn with items.
// Useful on small terminals and for trying out the pickup rules.
type ArenaGenerator struct{}

// Name returns the name of this generator
func (g *ArenaGenerator) Name() string {
	return "Arena"
}

// Generate creates a new level for the given level number
func (g *ArenaGenerator) Generate(level int, rng *rand.Rand) *Level {
	// Scale size with level (add 2 for perimeter)
	rows := 7 + 2 + (level * 2)
	cols := 15 + 2 + (level * 4)
	if rows > 40 {
		rows = 40
	}
	if cols > 80 {
		cols = 80
	}

	l := newLevel(rows, cols)
	for row := 1; row < rows-1; row++ {
		for col := 1; col < cols-1; col++ {
			l.set(row, col, tileRoom)
		}
	}

	l.startRow = rows / 2
	l.startCol = cols / 2

	// Closed gates halfway along each side, carved into the perimeter
	gates := [][2]int{{0, cols / 2}, {rows - 1, cols / 2}, {rows / 2, 0}, {rows / 2, cols - 1}}
	for _, p := range gates {
		l.set(p[0], p[1], tileCorridor)
		l.addFeature(p[0], p[1], world.ClosedDoor, "Gate")
	}

	l.scatterItems(rng, 1, 1, cols-2, rows-2, 3+level)

	return l
}
