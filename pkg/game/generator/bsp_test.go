package generator

import (
	"math/rand"
	"testing"

	"blademaster/pkg/engine/world"
)

// countReachableFloor returns the number of floor tiles reachable from start via N/E/S/W,
// ignoring doors.
func countReachableFloor(l *Level, row, col int) int {
	visited := map[[2]int]bool{{row, col}: true}
	queue := [][2]int{{row, col}}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := [2]int{c[0] + d[0], c[1] + d[1]}
			if l.IsFloor(n[0], n[1]) && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

// countFloor returns the total number of floor tiles.
func countFloor(l *Level) int {
	n := 0
	for row := 0; row < l.Rows(); row++ {
		for col := 0; col < l.Cols(); col++ {
			if l.IsFloor(row, col) {
				n++
			}
		}
	}
	return n
}

func TestBSPGenerate_StartIsClearFloor(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l := BSP.Generate(1, rand.New(rand.NewSource(seed)))
		row, col := l.Start()
		if !l.IsFloor(row, col) {
			t.Errorf("seed %d: start (%d,%d) is not floor", seed, row, col)
		}
		if kind, ok := l.Feature(row, col); ok {
			t.Errorf("seed %d: start (%d,%d) holds a %s", seed, row, col, kind)
		}
	}
}

func TestBSPGenerate_AllFloorConnected(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l := BSP.Generate(2, rand.New(rand.NewSource(seed)))
		row, col := l.Start()
		if got, want := countReachableFloor(l, row, col), countFloor(l); got != want {
			t.Errorf("seed %d: %d of %d floor tiles reachable from start", seed, got, want)
		}
	}
}

func TestBSPGenerate_BorderStaysRock(t *testing.T) {
	l := BSP.Generate(3, rand.New(rand.NewSource(7)))
	for col := 0; col < l.Cols(); col++ {
		if l.IsFloor(0, col) || l.IsFloor(l.Rows()-1, col) {
			t.Errorf("floor on top/bottom border at col %d", col)
		}
	}
	for row := 0; row < l.Rows(); row++ {
		if l.IsFloor(row, 0) || l.IsFloor(row, l.Cols()-1) {
			t.Errorf("floor on left/right border at row %d", row)
		}
	}
}

func TestBSPGenerate_SizeScalesAndCaps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	small := BSP.Generate(1, rng)
	if small.Rows() != 18 || small.Cols() != 32 {
		t.Errorf("level 1 size = %dx%d, want 18x32", small.Rows(), small.Cols())
	}
	big := BSP.Generate(50, rng)
	if big.Rows() != 60 || big.Cols() != 100 {
		t.Errorf("level 50 size = %dx%d, want 60x100", big.Rows(), big.Cols())
	}
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	a := BSP.Generate(2, rand.New(rand.NewSource(99)))
	b := BSP.Generate(2, rand.New(rand.NewSource(99)))
	ar, ac := a.Start()
	br, bc := b.Start()
	if ar != br || ac != bc {
		t.Fatalf("same seed, different starts: (%d,%d) vs (%d,%d)", ar, ac, br, bc)
	}
	if len(a.features) != len(b.features) {
		t.Errorf("same seed, %d vs %d features", len(a.features), len(b.features))
	}
}

func TestPlace_StartLandsOnOrigin(t *testing.T) {
	l := BSP.Generate(1, rand.New(rand.NewSource(3)))
	reg := world.NewRegistry()

	stats, err := l.Place(reg, 28, 8)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if stats.Walls == 0 {
		t.Error("Place() spawned no walls")
	}
	if got := stats.Walls + stats.Doors + stats.Items; got != reg.Len() {
		t.Errorf("stats total %d, registry has %d", got, reg.Len())
	}

	reg.Each(func(c world.Cell) bool {
		if c.X == 28 && c.Y == 8 {
			t.Errorf("%s spawned on the start position", c.Kind)
		}
		return true
	})
}

func TestPlace_WallsSurroundFloor(t *testing.T) {
	l := Arena.Generate(1, rand.New(rand.NewSource(5)))
	reg := world.NewRegistry()
	if _, err := l.Place(reg, 0, 0); err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	// Every floor tile's four neighbours are floor or hold something impassable
	startRow, startCol := l.Start()
	blocked := map[[2]int]bool{}
	reg.Each(func(c world.Cell) bool {
		if c.Access() == world.Impassable {
			blocked[[2]int{c.Y + startRow, c.X + startCol}] = true
		}
		return true
	})
	for row := 0; row < l.Rows(); row++ {
		for col := 0; col < l.Cols(); col++ {
			if !l.IsFloor(row, col) {
				continue
			}
			if kind, ok := l.Feature(row, col); ok && kind.Access() == world.Impassable {
				continue
			}
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				n := [2]int{row + d[0], col + d[1]}
				if !l.IsFloor(n[0], n[1]) && !blocked[n] {
					t.Errorf("floor (%d,%d) leaks to (%d,%d)", row, col, n[0], n[1])
				}
			}
		}
	}
}

func TestArenaGenerate(t *testing.T) {
	l := Arena.Generate(2, rand.New(rand.NewSource(11)))
	if l.Rows() != 13 || l.Cols() != 25 {
		t.Errorf("arena level 2 size = %dx%d, want 13x25", l.Rows(), l.Cols())
	}

	items, gates := 0, 0
	for _, f := range l.features {
		switch f.kind.Access() {
		case world.Takeable:
			items++
			if f.name == "" {
				t.Errorf("%s without a name", f.kind)
			}
		case world.Impassable:
			gates++
		}
	}
	if gates != 4 {
		t.Errorf("gates = %d, want 4", gates)
	}
	if items == 0 || items > 5 {
		t.Errorf("items = %d, want 1..5", items)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want GridGenerator
	}{
		{"bsp", BSP},
		{"BSP", BSP},
		{"arena", Arena},
	}
	for _, tt := range tests {
		got, ok := ByName(tt.name)
		if !ok || got != tt.want {
			t.Errorf("ByName(%q) = %v, %v", tt.name, got, ok)
		}
	}
	if _, ok := ByName("maze"); ok {
		t.Error("ByName(\"maze\") found a generator")
	}
}

func TestReachable_StopsAtClosedDoors(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		l := BSP.Generate(3, rand.New(rand.NewSource(seed)))
		reachable := l.Reachable()

		if !reachable.Has([2]int{l.startRow, l.startCol}) {
			t.Fatalf("seed %d: start tile not reachable", seed)
		}
		for pos, f := range l.features {
			if f.kind == world.ClosedDoor && reachable.Has(pos) {
				t.Errorf("seed %d: closed door at %v counted as reachable", seed, pos)
			}
		}
		if got := reachable.Size(); got > countFloor(l) {
			t.Errorf("seed %d: %d reachable tiles, only %d floor", seed, got, countFloor(l))
		}
	}
}

func TestUnreachableItems_ArenaIsOpen(t *testing.T) {
	l := Arena.Generate(4, rand.New(rand.NewSource(7)))
	if n := l.UnreachableItems(); n != 0 {
		t.Errorf("arena has %d unreachable items, want 0", n)
	}
	// Gates sit on the perimeter, so the interior is the reachable area
	want := (l.Rows() - 2) * (l.Cols() - 2)
	if got := l.Reachable().Size(); got != want {
		t.Errorf("arena reachable = %d, want %d", got, want)
	}
}

type unregistered struct{ GridGenerator }

func TestFlagName_RoundTrips(t *testing.T) {
	for _, gen := range []GridGenerator{BSP, Arena} {
		name := FlagName(gen)
		got, ok := ByName(name)
		if !ok || got != gen {
			t.Errorf("ByName(FlagName(%s)) = %v, %v", gen.Name(), got, ok)
		}
	}
	if got := FlagName(DefaultGenerator); got != "bsp" {
		t.Errorf("FlagName(DefaultGenerator) = %q, want %q", got, "bsp")
	}
	if got := FlagName(unregistered{}); got != "" {
		t.Errorf("FlagName(unregistered) = %q, want empty", got)
	}
}
