package physics

import (
	"math"

	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// PowerScale maps shot power percent to a velocity factor in [0.5, 1.5]
// Power 50 reproduces the ideal arc
func PowerScale(power int) float64 {
	power = vmath.ClampInt(power, parameter.MinPower, parameter.MaxPower)
	return parameter.PowerScaleBase + parameter.PowerScaleRange*float64(power)/100
}

// Trajectory describes a planned shot before power scaling
type Trajectory struct {
	Apex  float64
	TUp   float64 // frames from release to apex
	TDown float64 // frames from apex to rim height
}

// FlightTime returns the total frames of the ideal arc, floored to stay finite
func (t Trajectory) FlightTime(floor float64) float64 {
	return math.Max(t.TUp+t.TDown, floor)
}

// PlanTrajectory computes the two-phase arc from a point to a rim
// An apex below the start clamps to the start height, giving t_up = 0
func PlanTrajectory(from vmath.Vec3F, h *court.Hoop, p *Params) Trajectory {
	apex := math.Max(from.Y, h.Rim.Y+p.ApexClearance)
	return Trajectory{
		Apex:  apex,
		TUp:   math.Sqrt(2 * (apex - from.Y) / p.Gravity),
		TDown: math.Sqrt(2 * (apex - h.Rim.Y) / p.Gravity),
	}
}

// PlanShot returns the release velocity that carries a ball from `from` to the
// rim center of h under gravity, scaled by shot power
func PlanShot(from vmath.Vec3F, h *court.Hoop, power int, p *Params) vmath.Vec3F {
	t := PlanTrajectory(from, h, p)
	total := t.FlightTime(p.MinFlightTime)

	v := vmath.Vec3F{
		X: (h.Rim.X - from.X) / total,
		Y: p.Gravity * t.TUp,
		Z: (h.Rim.Z - from.Z) / total,
	}
	return vmath.V3FScale(v, PowerScale(power))
}
