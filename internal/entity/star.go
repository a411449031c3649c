package entity

import "math/rand"

// Star is an ambient background point. Stars are recycled to the top edge
// when they fall past the bottom, never destroyed.
type Star struct {
	X, Y  float64
	Speed float64 // Individual fall speed factor
	Size  float64
	Alpha float64
}

// NewStarfield creates count stars scattered uniformly over a w×h viewport.
func NewStarfield(rng *rand.Rand, count int, w, h float64) []Star {
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64() * w,
			Y:     rng.Float64() * h,
			Speed: 0.3 + rng.Float64()*0.7,
			Size:  0.5 + rng.Float64()*1.5,
			Alpha: 0.2 + rng.Float64()*0.8,
		}
	}
	return stars
}
