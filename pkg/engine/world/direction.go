package world

// Direction represents a requested movement direction
type Direction int

// Direction constants
const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid direction
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Probe returns the offset from the player to the neighbor checked for collision.
//
// Left probes x+1 and Right probes x-1. This mirrors the registry shift below
// and is kept as-is until the intended left/right feel is settled in play.
func (d Direction) Probe() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return 1, 0
	case Right:
		return -1, 0
	default:
		return 0, 0
	}
}

// Shift returns the translation applied to every cell when the player moves.
// The world moves opposite to the requested direction.
func (d Direction) Shift() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return 1, 0
	case Right:
		return -1, 0
	default:
		return 0, 0
	}
}
