package entity

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Particle is a short-lived cosmetic effect.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	R       float64
	Color   colorful.Color
	Life    float64
	MaxLife float64
	Alpha   float64 // Life / MaxLife, recomputed each step
}

// NewBurst creates count particles radiating from (x, y) in random
// directions, with speed, radius and lifetime jittered around the given
// base values.
func NewBurst(rng *rand.Rand, x, y float64, count int, speed, radius, lifetime float64, c colorful.Color) []Particle {
	out := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rng.Float64())
		life := lifetime * (0.5 + rng.Float64()*0.5)
		out = append(out, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * spd,
			VY:      math.Sin(angle) * spd,
			R:       radius * (0.6 + rng.Float64()*0.8),
			Color:   c,
			Life:    life,
			MaxLife: life,
			Alpha:   1,
		})
	}
	return out
}
