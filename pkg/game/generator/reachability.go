package generator

import (
	"github.com/zyedidia/generic/mapset"

	"blademaster/pkg/engine/world"
)

// Reachable returns every floor tile the player can walk to from the start
// tile via N/E/S/W steps. Impassable features such as closed doors are never
// entered, so everything behind them counts as unreachable.
func (l *Level) Reachable() mapset.Set[[2]int] {
	reachable := mapset.New[[2]int]()
	queue := [][2]int{{l.startRow, l.startCol}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) || !l.IsFloor(current[0], current[1]) {
			continue
		}
		if kind, ok := l.Feature(current[0], current[1]); ok && kind.Access() == world.Impassable {
			continue
		}

		reachable.Put(current)

		for _, d := range [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
			next := [2]int{current[0] + d[0], current[1] + d[1]}
			if !reachable.Has(next) {
				queue = append(queue, next)
			}
		}
	}

	return reachable
}

// UnreachableItems counts items the player can never walk onto
func (l *Level) UnreachableItems() int {
	reachable := l.Reachable()
	n := 0
	for pos, f := range l.features {
		if f.kind.Access() == world.Takeable && !reachable.Has(pos) {
			n++
		}
	}
	return n
}
