// Package entity defines the plain data records that make up the game world:
// the player ship, bullets, enemies, particles, stars and floating text.
// Entities hold no behavior beyond construction; the game package advances
// them each step.
package entity

// Player is the player-controlled ship. Position is the top-left corner of
// its axis-aligned bounding box.
type Player struct {
	X, Y       float64
	W, H       float64
	Speed      float64 // Movement speed in px/s at full input deflection
	HP         int     // Remaining lives
	MaxHP      int
	Invincible float64 // Seconds of damage immunity remaining
	AnimPhase  float64 // Cosmetic engine-flicker phase
}

// NewPlayer creates a ship of the given size centered horizontally in a
// viewport of width vw, sitting near the bottom of a viewport of height vh.
func NewPlayer(vw, vh, w, h, speed float64, hp int) *Player {
	return &Player{
		X:     (vw - w) / 2,
		Y:     vh - h - 90,
		W:     w,
		H:     h,
		Speed: speed,
		HP:    hp,
		MaxHP: hp,
	}
}

// CenterX returns the horizontal center of the ship's box.
func (p *Player) CenterX() float64 {
	return p.X + p.W/2
}

// CenterY returns the vertical center of the ship's box.
func (p *Player) CenterY() float64 {
	return p.Y + p.H/2
}
