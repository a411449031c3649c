package entity

// EnemyType is the enemy class discriminant, governing stats and visuals.
type EnemyType int

const (
	EnemyGrunt EnemyType = iota // Slow descent, occasional shots
	EnemyDart                   // Fast weave, never shoots
	EnemyTank                   // Bulky, high value, heavy shots
)

// String returns the class name for logs and debugging.
func (t EnemyType) String() string {
	switch t {
	case EnemyGrunt:
		return "grunt"
	case EnemyDart:
		return "dart"
	case EnemyTank:
		return "tank"
	}
	return "unknown"
}

// Enemy is a descending hostile ship. Position is the top-left corner of its
// bounding box; BaseX anchors the sinusoidal weave so the box oscillates
// around its spawn column.
type Enemy struct {
	X, Y  float64
	W, H  float64
	VY    float64 // Descent speed in px/s
	HP    int
	MaxHP int
	Type  EnemyType

	Points int // Base score value, multiplied by level on kill

	// Horizontal weave: X = BaseX + sin(elapsed*Freq + Phase) * Amp,
	// clamped to the viewport.
	BaseX float64
	Phase float64
	Amp   float64
	Freq  float64

	// Shooting capability. Dart-class enemies never shoot and leave
	// Shoots false instead of carrying a sentinel interval.
	Shoots     bool
	ShootEvery float64 // Seconds between shots
	ShootTimer float64 // Accumulated since last shot
}

// CenterX returns the horizontal center of the enemy's box.
func (e *Enemy) CenterX() float64 {
	return e.X + e.W/2
}

// CenterY returns the vertical center of the enemy's box.
func (e *Enemy) CenterY() float64 {
	return e.Y + e.H/2
}
