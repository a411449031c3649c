package entity

// Owner tags who fired a bullet. Bullets are not owned by any entity after
// creation; the tag only decides which collision pass applies.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// BulletLifetime is how long bullets last before disappearing, in seconds.
const BulletLifetime = 2.0

// Bullet is a projectile in flight. Position is the center of its collision
// circle.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	R      float64 // Collision radius
	Owner  Owner
	Damage int
	Life   float64 // Seconds remaining before removal
}

// NewBullet creates a bullet at (x, y) with the given velocity.
func NewBullet(x, y, vx, vy, r float64, owner Owner, damage int) Bullet {
	return Bullet{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		R:      r,
		Owner:  owner,
		Damage: damage,
		Life:   BulletLifetime,
	}
}
