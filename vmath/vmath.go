package vmath

import "math"

// Epsilon is the tolerance used by approximate comparisons
const Epsilon = 1e-9

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Lerp performs linear interpolation between a and b, t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ApproxEqual reports whether a and b differ by less than tol
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
