package court

import (
	"math"

	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// Side tags a hoop and the team credited for scoring in it
type Side uint8

const (
	SideNone  Side = iota
	SideLeft       // home scores here
	SideRight      // guest scores here
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Backboard is a rectangular window on the plane x = AxisX
// Normal is +1 when the face looks toward +X (left board), -1 otherwise
type Backboard struct {
	AxisX      float64
	Normal     float64
	CenterY    float64
	CenterZ    float64
	HalfWidth  float64 // along Z
	HalfHeight float64 // along Y
}

// Contains reports whether (y, z) falls inside the board window
func (b Backboard) Contains(y, z float64) bool {
	return math.Abs(z-b.CenterZ) <= b.HalfWidth && math.Abs(y-b.CenterY) <= b.HalfHeight
}

// Hoop is an immutable rim + backboard pair
type Hoop struct {
	Side       Side
	Rim        vmath.Vec3F
	RimRadius  float64
	TubeRadius float64
	Board      Backboard
}

// NewHoop builds a standard hoop on the given side of the court
func NewHoop(side Side) Hoop {
	dir := -1.0
	if side == SideRight {
		dir = 1.0
	}
	return Hoop{
		Side:       side,
		Rim:        vmath.Vec3F{X: dir * parameter.RimOffsetX, Y: parameter.RimHeight, Z: 0},
		RimRadius:  parameter.RimRadius,
		TubeRadius: parameter.RimTube,
		Board: Backboard{
			AxisX:      dir * parameter.BackboardOffsetX,
			Normal:     -dir,
			CenterY:    parameter.BackboardHeight,
			CenterZ:    0,
			HalfWidth:  parameter.BackboardHalfWidth,
			HalfHeight: parameter.BackboardHalfTall,
		},
	}
}

// StandardHoops are the two hoops of the court, left then right
var StandardHoops = [2]Hoop{NewHoop(SideLeft), NewHoop(SideRight)}

// ScoringCorridor is the radius of the fall-through exemption
func (h *Hoop) ScoringCorridor() float64 {
	return h.RimRadius - parameter.ScoringCorridorMargin
}

// ScoreRadius is the planar distance inside which a downward crossing counts
func (h *Hoop) ScoreRadius() float64 {
	return h.RimRadius - parameter.ScoreTubeFactor*h.TubeRadius
}

// Nearest returns the hoop whose rim center is closest to p
// Ties go to the first hoop
func Nearest(hoops []Hoop, p vmath.Vec3F) *Hoop {
	var best *Hoop
	bestDist := math.Inf(1)
	for i := range hoops {
		d := vmath.V3FDist(p, hoops[i].Rim)
		if d < bestDist {
			best = &hoops[i]
			bestDist = d
		}
	}
	return best
}
