package physics

import (
	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/vmath"
)

// Ball is the single simulated body
type Ball struct {
	Pos    vmath.Vec3F
	Vel    vmath.Vec3F
	Radius float64
	InAir  bool
}

// NewBall places a resting ball at center court
func NewBall(radius float64) Ball {
	return Ball{
		Pos:    vmath.Vec3F{X: 0, Y: radius, Z: 0},
		Radius: radius,
	}
}

// Speed returns velocity magnitude
func (b *Ball) Speed() float64 {
	return vmath.V3FMag(b.Vel)
}

// Stop zeroes velocity and grounds the ball
func (b *Ball) Stop() {
	b.Vel = vmath.Vec3F{}
	b.InAir = false
}

// Integrate performs one fixed-step explicit Euler update: v = v + g; p = p + v
// The step is one frame; there is no delta-time scaling
func Integrate(b *Ball, gravity float64) {
	b.Vel.Y -= gravity
	b.Pos = vmath.V3FAdd(b.Pos, b.Vel)
}

// ReflectBounds keeps an airborne ball over the floor, reflecting the offending
// horizontal velocity component. Returns true if reflection occurred
func ReflectBounds(b *Ball, bounds court.Bounds, restitution float64) bool {
	rx := reflectAxis(&b.Pos.X, &b.Vel.X, -bounds.HalfX+b.Radius, bounds.HalfX-b.Radius, restitution)
	rz := reflectAxis(&b.Pos.Z, &b.Vel.Z, -bounds.HalfZ+b.Radius, bounds.HalfZ-b.Radius, restitution)
	return rx || rz
}

// reflectAxis clamps position component and reflects velocity on boundary
func reflectAxis(pos, vel *float64, lo, hi, restitution float64) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	return false
}
