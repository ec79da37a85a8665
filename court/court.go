// Package court describes the static collider geometry the simulation reads:
// the floor bounds and the two hoops.
package court

import (
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// Bounds is the playable floor as half extents around the origin
type Bounds struct {
	HalfX, HalfZ float64
}

// Standard is the 30 x 15 floor
var Standard = Bounds{HalfX: parameter.CourtHalfLength, HalfZ: parameter.CourtHalfWidth}

// Clamp keeps a sphere of radius r fully over the floor in X and Z
func (b Bounds) Clamp(p vmath.Vec3F, r float64) vmath.Vec3F {
	p.X = vmath.Clamp(p.X, -b.HalfX+r, b.HalfX-r)
	p.Z = vmath.Clamp(p.Z, -b.HalfZ+r, b.HalfZ-r)
	return p
}

// Contains reports whether a sphere of radius r lies within bounds in X and Z
func (b Bounds) Contains(p vmath.Vec3F, r float64) bool {
	return p.X >= -b.HalfX+r && p.X <= b.HalfX-r &&
		p.Z >= -b.HalfZ+r && p.Z <= b.HalfZ-r
}
