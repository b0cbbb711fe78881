package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance returns Euclidean distance between two canvas points
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Magnitude returns vector length
func Magnitude(v r2.Vec) float64 {
	return r2.Norm(v)
}

// Normalize returns unit vector, zero-safe
// r2.Unit yields NaN components for the zero vector, callers rely on zero in, zero out
func Normalize(v r2.Vec) r2.Vec {
	mag := r2.Norm(v)
	if mag == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/mag, v)
}

// IsZero reports an exactly zero vector
func IsZero(v r2.Vec) bool {
	return v.X == 0 && v.Y == 0
}

// Rotate rotates vector by angle radians around the origin
// Canvas Y grows downward, so positive angles turn clockwise on screen
func Rotate(v r2.Vec, angle float64) r2.Vec {
	return r2.Rotate(v, angle, r2.Vec{})
}

// Angle returns atan2 heading of the vector in canvas space
func Angle(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

// Clamp limits value to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
