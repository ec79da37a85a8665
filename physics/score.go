package physics

import (
	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/vmath"
)

// DetectScore reports a downward crossing of the rim plane inside the rim
// A hoop already credited for the current shot never scores again
func DetectScore(b *Ball, prevY float64, h *court.Hoop, lastScored court.Side) bool {
	if lastScored == h.Side {
		return false
	}
	if !(prevY > h.Rim.Y && b.Pos.Y <= h.Rim.Y) {
		return false
	}
	return vmath.V3FDistXZ(b.Pos, h.Rim) < h.ScoreRadius()
}

// DropThroughRim drops a scored ball straight down the net
func DropThroughRim(b *Ball, h *court.Hoop, bounds court.Bounds) {
	b.Vel.X = 0
	b.Vel.Z = 0
	b.Pos.X = h.Rim.X
	b.Pos.Z = h.Rim.Z
	b.Pos = bounds.Clamp(b.Pos, b.Radius)
}
