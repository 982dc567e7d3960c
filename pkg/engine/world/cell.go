// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"math"

	"github.com/gookit/color"
	"github.com/google/uuid"
)

// CellID is the stable identity of a cell for as long as it is alive in a Registry.
type CellID = uuid.UUID

// Kind is the closed set of things a cell can be
type Kind int

// Cell kinds
const (
	SoftArmor Kind = iota
	HardArmor
	BluntWeapon
	EdgedWeapon
	PointedWeapon
	RangedWeapon
	ClosedDoor
	OpenedDoor
	Wall
)

// AllKinds returns every kind for iteration
func AllKinds() []Kind {
	return []Kind{SoftArmor, HardArmor, BluntWeapon, EdgedWeapon, PointedWeapon, RangedWeapon, ClosedDoor, OpenedDoor, Wall}
}

// Access classifies how a cell interacts with the player
type Access int

// Access classes
const (
	Passable Access = iota
	Impassable
	Takeable
)

// String returns the string representation of an access class
func (a Access) String() string {
	switch a {
	case Passable:
		return "Passable"
	case Impassable:
		return "Impassable"
	case Takeable:
		return "Takeable"
	default:
		return "Unknown"
	}
}

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case SoftArmor:
		return "SoftArmor"
	case HardArmor:
		return "HardArmor"
	case BluntWeapon:
		return "BluntWeapon"
	case EdgedWeapon:
		return "EdgedWeapon"
	case PointedWeapon:
		return "PointedWeapon"
	case RangedWeapon:
		return "RangedWeapon"
	case ClosedDoor:
		return "ClosedDoor"
	case OpenedDoor:
		return "OpenedDoor"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the kind is one of the known kinds
func (k Kind) IsValid() bool {
	return k >= SoftArmor && k <= Wall
}

// Access returns the access class derived from the kind
func (k Kind) Access() Access {
	switch k {
	case SoftArmor, HardArmor, BluntWeapon, EdgedWeapon, PointedWeapon, RangedWeapon:
		return Takeable
	case ClosedDoor, Wall:
		return Impassable
	default:
		return Passable
	}
}

// Glyph returns the single display character for the kind
func (k Kind) Glyph() string {
	switch k {
	case SoftArmor:
		return "("
	case HardArmor:
		return "["
	case BluntWeapon:
		return "\\"
	case EdgedWeapon:
		return "|"
	case PointedWeapon:
		return "/"
	case RangedWeapon:
		return "}"
	case ClosedDoor:
		return "+"
	case OpenedDoor:
		return "'"
	case Wall:
		return "#"
	default:
		return "?"
	}
}

// DefaultName returns the display name used when a level does not name the cell
func (k Kind) DefaultName() string {
	switch k {
	case SoftArmor:
		return "Soft Armor"
	case HardArmor:
		return "Hard Armor"
	case BluntWeapon:
		return "Blunt Weapon"
	case EdgedWeapon:
		return "Edged Weapon"
	case PointedWeapon:
		return "Pointed Weapon"
	case RangedWeapon:
		return "Ranged Weapon"
	case ClosedDoor:
		return "Closed Door"
	case OpenedDoor:
		return "Opened Door"
	case Wall:
		return "Wall"
	default:
		return "Thing"
	}
}

// DefaultColor returns the display color used when a level does not color the cell
func (k Kind) DefaultColor() color.Color {
	switch k {
	case SoftArmor, HardArmor:
		return color.FgCyan
	case BluntWeapon, EdgedWeapon, PointedWeapon, RangedWeapon:
		return color.FgMagenta
	case ClosedDoor, OpenedDoor:
		return color.FgYellow
	case Wall:
		return color.FgGray
	default:
		return color.FgDefault
	}
}

// Cell represents one static or collectible object placed on the grid
type Cell struct {
	ID CellID

	// Grid position
	X int
	Y int

	Kind  Kind
	Name  string
	Color color.Color
}

// Access returns the collision classification of the cell
func (c Cell) Access() Access {
	return c.Kind.Access()
}

// Glyph returns the display character for the cell
func (c Cell) Glyph() string {
	return c.Kind.Glyph()
}

// Inside reports whether the cell lies within the inclusive rectangle [x0,y0]..[x1,y1]
func (c Cell) Inside(x0, y0, x1, y1 int) bool {
	return c.X >= x0 && c.X <= x1 && c.Y >= y0 && c.Y <= y1
}

// Near reports whether the cell is within tolerance of a continuous position.
// Both axes must differ by strictly less than one unit.
func (c Cell) Near(x, y float64) bool {
	return math.Abs(x-float64(c.X)) < 1.0 && math.Abs(y-float64(c.Y)) < 1.0
}
