package physics

import (
	"math"

	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// Contact is a bitmask of what the ball touched during a resolve step
type Contact uint8

const (
	ContactNone      Contact = 0
	ContactRim       Contact = 1 << 0
	ContactBackboard Contact = 1 << 1
	ContactGround    Contact = 1 << 2 // bounced off the floor
	ContactRest      Contact = 1 << 3 // came to rest, InAir cleared
	ContactWall      Contact = 1 << 4
)

// Has reports whether c includes flag
func (c Contact) Has(flag Contact) bool {
	return c&flag != 0
}

// Resolver applies collision response against the named colliders
// One resolver serves both hoops; the hoop is passed per call
type Resolver struct {
	Params *Params
	Bounds court.Bounds
}

// NewResolver creates a resolver over the given tuning and floor
func NewResolver(p *Params, bounds court.Bounds) *Resolver {
	return &Resolver{Params: p, Bounds: bounds}
}

// ResolveHoop tests rim then backboard of one hoop
// prev is the ball position before this frame's integration
func (r *Resolver) ResolveHoop(b *Ball, prev vmath.Vec3F, h *court.Hoop) Contact {
	c := r.Rim(b, h)
	c |= r.Backboard(b, prev, h)
	return c
}

// Rim deflects the ball off the rim torus
// The torus is approximated by an XZ annulus around the rim center and a height band
func (r *Resolver) Rim(b *Ball, h *court.Hoop) Contact {
	reach := b.Radius + h.TubeRadius
	if math.Abs(b.Pos.Y-h.Rim.Y) >= reach {
		return ContactNone
	}

	distXZ := vmath.V3FDistXZ(b.Pos, h.Rim)
	inner := h.RimRadius - reach
	outer := h.RimRadius + reach
	if distXZ <= inner || distXZ >= outer {
		return ContactNone
	}

	// Descending through the opening: let it drop into the net
	if distXZ < h.ScoringCorridor() && b.Vel.Y < 0 {
		return ContactNone
	}

	// Outward radial normal; a ball dead on the axis is pushed toward the court
	nx, nz := h.Board.Normal, 0.0
	if distXZ > vmath.Epsilon {
		nx = (b.Pos.X - h.Rim.X) / distXZ
		nz = (b.Pos.Z - h.Rim.Z) / distXZ
	}

	if b.Vel.X*nx+b.Vel.Z*nz < 0 {
		b.Vel = vmath.V3FReflectXZ(b.Vel, nx, nz)
	}
	b.Vel = vmath.V3FScale(b.Vel, r.Params.RestitutionRim)

	push := outer + parameter.RimPushOutMargin
	b.Pos.X = h.Rim.X + nx*push
	b.Pos.Z = h.Rim.Z + nz*push
	return ContactRim
}

// Backboard bounces the ball off the board face when it crosses the contact plane
// this frame while still moving toward the board
func (r *Resolver) Backboard(b *Ball, prev vmath.Vec3F, h *court.Hoop) Contact {
	board := &h.Board
	contact := board.AxisX + board.Normal*b.Radius

	// Signed distances along the board normal; positive is the court side
	before := (prev.X - contact) * board.Normal
	after := (b.Pos.X - contact) * board.Normal
	approaching := b.Vel.X*board.Normal < 0

	if before < 0 || after >= 0 || !approaching {
		return ContactNone
	}
	if !board.Contains(b.Pos.Y, b.Pos.Z) {
		return ContactNone
	}

	b.Vel.X = -b.Vel.X * r.Params.RestitutionBackboard
	b.Pos.X = contact
	b.Pos = r.Bounds.Clamp(b.Pos, b.Radius)
	return ContactBackboard
}

// Ground clamps the ball to the floor, bouncing or settling it
func (r *Resolver) Ground(b *Ball) Contact {
	rest := r.Params.RestingHeight()
	if b.Pos.Y > rest {
		return ContactNone
	}

	b.Pos.Y = rest
	if math.Abs(b.Vel.Y) > r.Params.BounceMinSpeed {
		b.Vel.Y = -b.Vel.Y * r.Params.RestitutionGround
		b.Vel.X *= r.Params.GroundFriction
		b.Vel.Z *= r.Params.GroundFriction
		return ContactGround
	}

	b.Stop()
	return ContactRest
}

// Settle forces a slow ball near the floor to rest, ending micro-bouncing
func (r *Resolver) Settle(b *Ball) Contact {
	if !b.InAir {
		return ContactNone
	}
	if b.Speed() >= r.Params.RestSpeed {
		return ContactNone
	}
	if b.Pos.Y > r.Params.RestingHeight()+r.Params.RestHeightTolerance {
		return ContactNone
	}
	b.Stop()
	return ContactRest
}

// Walls keeps an airborne ball over the floor
func (r *Resolver) Walls(b *Ball) Contact {
	if ReflectBounds(b, r.Bounds, r.Params.RestitutionWall) {
		return ContactWall
	}
	return ContactNone
}
