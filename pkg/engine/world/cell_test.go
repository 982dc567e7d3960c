package world

import (
	"testing"
)

func TestKind_AccessAndGlyph(t *testing.T) {
	tests := []struct {
		kind   Kind
		access Access
		glyph  string
	}{
		{SoftArmor, Takeable, "("},
		{HardArmor, Takeable, "["},
		{BluntWeapon, Takeable, "\\"},
		{EdgedWeapon, Takeable, "|"},
		{PointedWeapon, Takeable, "/"},
		{RangedWeapon, Takeable, "}"},
		{ClosedDoor, Impassable, "+"},
		{OpenedDoor, Passable, "'"},
		{Wall, Impassable, "#"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Access(); got != tt.access {
				t.Errorf("%s.Access() = %s, want %s", tt.kind, got, tt.access)
			}
			if got := tt.kind.Glyph(); got != tt.glyph {
				t.Errorf("%s.Glyph() = %q, want %q", tt.kind, got, tt.glyph)
			}
		})
	}
	if n := len(AllKinds()); n != len(tests) {
		t.Errorf("AllKinds() has %d kinds, table has %d", n, len(tests))
	}
}

func TestCell_Near(t *testing.T) {
	c := Cell{X: 10, Y: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{10.5, 9.5, true},
		{10.99, 10, true},
		{11, 10, false},
		{10, 9, false},
		{9.01, 10.99, true},
	}
	for _, tt := range tests {
		if got := c.Near(tt.x, tt.y); got != tt.want {
			t.Errorf("Cell(10,10).Near(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCell_Inside(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},
		{80, 24, true},
		{0, 5, false},
		{5, 0, false},
		{81, 5, false},
		{5, 25, false},
	}
	for _, tt := range tests {
		c := Cell{X: tt.x, Y: tt.y}
		if got := c.Inside(1, 1, 80, 24); got != tt.want {
			t.Errorf("Cell(%d,%d).Inside(1,1,80,24) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDirection_ProbeAndShift(t *testing.T) {
	tests := []struct {
		dir            Direction
		probeX, probeY int
		shiftX, shiftY int
	}{
		{Up, 0, -1, 0, 1},
		{Down, 0, 1, 0, -1},
		{Left, 1, 0, 1, 0},
		{Right, -1, 0, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			px, py := tt.dir.Probe()
			if px != tt.probeX || py != tt.probeY {
				t.Errorf("%s.Probe() = (%d,%d), want (%d,%d)", tt.dir, px, py, tt.probeX, tt.probeY)
			}
			sx, sy := tt.dir.Shift()
			if sx != tt.shiftX || sy != tt.shiftY {
				t.Errorf("%s.Shift() = (%d,%d), want (%d,%d)", tt.dir, sx, sy, tt.shiftX, tt.shiftY)
			}
		})
	}
}
