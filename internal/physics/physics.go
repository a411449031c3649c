// Package physics provides 2D vector math and the collision predicates
// used by the simulation.
package physics

import "math"

// Vec is a 2D vector in viewport-pixel space (origin top-left, Y down).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns a unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{v.X / l, v.Y / l}
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RectsOverlap checks if two axis-aligned boxes overlap. Boxes are given by
// their top-left corner and size. Touching edges do not count as overlap.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// CircleIntersectsRect checks if a circle intersects an axis-aligned box.
// Clamps the circle center to the box to find the nearest point, then
// compares squared distances. Touching exactly at radius distance does not
// count as an intersection.
func CircleIntersectsRect(cx, cy, r, rx, ry, rw, rh float64) bool {
	nx := Clamp(cx, rx, rx+rw)
	ny := Clamp(cy, ry, ry+rh)
	return DistanceSquared(cx, cy, nx, ny) < r*r
}
