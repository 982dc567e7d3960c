package state

// Player is the single avatar. Its position is fixed in render space and is
// only used for collision arithmetic against cell positions.
type Player struct {
	X float64
	Y float64
}

// NewPlayer creates the player at the given position
func NewPlayer(x, y float64) *Player {
	return &Player{X: x, Y: y}
}

// Offset returns the player's position shifted by (dx, dy)
func (p *Player) Offset(dx, dy int) (x, y float64) {
	return p.X + float64(dx), p.Y + float64(dy)
}
