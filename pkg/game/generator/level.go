package generator

import (
	"fmt"
	"math/rand"

	"blademaster/pkg/engine/world"
)

type tile uint8

const (
	tileRock tile = iota
	tileRoom
	tileCorridor
)

// feature is a door or item standing on a floor tile
type feature struct {
	kind world.Kind
	name string
}

// Level is a generated tile plan, not yet placed into a registry.
// Rock tiles touching floor become walls when placed.
type Level struct {
	rows, cols int
	tiles      [][]tile
	features   map[[2]int]feature

	startRow, startCol int
}

// Stats counts what Place spawned
type Stats struct {
	Walls int
	Doors int
	Items int
}

func newLevel(rows, cols int) *Level {
	if rows <= 0 || cols <= 0 {
		panic("Level dimensions must be positive")
	}
	l := &Level{
		rows:     rows,
		cols:     cols,
		tiles:    make([][]tile, rows),
		features: make(map[[2]int]feature),
	}
	for r := range l.tiles {
		l.tiles[r] = make([]tile, cols)
	}
	return l
}

// Rows returns the number of rows in the level
func (l *Level) Rows() int {
	return l.rows
}

// Cols returns the number of columns in the level
func (l *Level) Cols() int {
	return l.cols
}

// Start returns the row and column the player starts on
func (l *Level) Start() (row, col int) {
	return l.startRow, l.startCol
}

// IsValidPosition checks if a row/col position is within level bounds
func (l *Level) IsValidPosition(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// IsFloor reports whether the tile at row/col can be walked on
func (l *Level) IsFloor(row, col int) bool {
	return l.IsValidPosition(row, col) && l.tiles[row][col] != tileRock
}

func (l *Level) isRoom(row, col int) bool {
	return l.IsValidPosition(row, col) && l.tiles[row][col] == tileRoom
}

func (l *Level) set(row, col int, t tile) {
	if l.IsValidPosition(row, col) {
		l.tiles[row][col] = t
	}
}

// isWall reports whether a rock tile borders any floor, diagonals included
func (l *Level) isWall(row, col int) bool {
	if l.IsFloor(row, col) {
		return false
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if (dr != 0 || dc != 0) && l.IsFloor(row+dr, col+dc) {
				return true
			}
		}
	}
	return false
}

// addFeature puts a door or item on a free floor tile
func (l *Level) addFeature(row, col int, kind world.Kind, name string) bool {
	if !l.IsFloor(row, col) {
		return false
	}
	key := [2]int{row, col}
	if _, taken := l.features[key]; taken {
		return false
	}
	l.features[key] = feature{kind: kind, name: name}
	return true
}

// Feature returns the door or item kind at row/col, if any
func (l *Level) Feature(row, col int) (world.Kind, bool) {
	f, ok := l.features[[2]int{row, col}]
	return f.kind, ok
}

// Place spawns the level into the registry so that the start tile lands on
// (originX, originY). Walls are spawned first, then doors and items, each in
// row-major order.
func (l *Level) Place(reg *world.Registry, originX, originY int) (Stats, error) {
	var stats Stats

	toX := func(col int) int { return col - l.startCol + originX }
	toY := func(row int) int { return row - l.startRow + originY }

	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			if !l.isWall(row, col) {
				continue
			}
			if _, err := reg.Spawn(toX(col), toY(row), world.Wall, "", 0); err != nil {
				return stats, fmt.Errorf("placing wall: %w", err)
			}
			stats.Walls++
		}
	}

	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			f, ok := l.features[[2]int{row, col}]
			if !ok {
				continue
			}
			if _, err := reg.Spawn(toX(col), toY(row), f.kind, f.name, 0); err != nil {
				return stats, fmt.Errorf("placing %s: %w", f.kind, err)
			}
			if f.kind.Access() == world.Takeable {
				stats.Items++
			} else {
				stats.Doors++
			}
		}
	}

	return stats, nil
}

// Item names by kind
var itemNames = map[world.Kind][]string{
	world.SoftArmor:     {"Leather Jerkin", "Padded Gambeson", "Fur Cloak"},
	world.HardArmor:     {"Chain Mail", "Plate Mail", "Iron Helm"},
	world.BluntWeapon:   {"Mace", "Warhammer", "Flail"},
	world.EdgedWeapon:   {"Broadsword", "Scimitar", "Dagger"},
	world.PointedWeapon: {"Spear", "Pike", "Trident"},
	world.RangedWeapon:  {"Longbow", "Crossbow", "Sling"},
}

var itemKinds = []world.Kind{
	world.SoftArmor, world.HardArmor,
	world.BluntWeapon, world.EdgedWeapon, world.PointedWeapon, world.RangedWeapon,
}

// randomItem picks a takeable kind and one of its names
func randomItem(rng *rand.Rand) (world.Kind, string) {
	kind := itemKinds[rng.Intn(len(itemKinds))]
	names := itemNames[kind]
	return kind, names[rng.Intn(len(names))]
}

// scatterItems drops up to n items on free floor tiles inside the rectangle,
// never on the start tile
func (l *Level) scatterItems(rng *rand.Rand, x, y, width, height, n int) {
	for placed, tries := 0, 0; placed < n && tries < n*10; tries++ {
		row := y + rng.Intn(height)
		col := x + rng.Intn(width)
		if row == l.startRow && col == l.startCol {
			continue
		}
		kind, name := randomItem(rng)
		if l.addFeature(row, col, kind, name) {
			placed++
		}
	}
}
