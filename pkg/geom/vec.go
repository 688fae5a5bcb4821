// Package geom holds the small vector, color, and curve math the overlay
// exchanges with the host renderer. Everything is a plain value type so
// callers get copy semantics for free.
package geom

import "math"

// Vec3 is a point or direction in the host scene's coordinate space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Uniform returns a vector with all three components set to s. Handy for
// uniform scale factors.
func Uniform(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Lerp linearly interpolates between a and b. t is clamped to [0, 1]; the
// endpoints return a and b exactly.
func Lerp(a, b Vec3, t float64) Vec3 {
	t = Clamp01(t)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// Clamp01 clamps t to the unit interval.
func Clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
