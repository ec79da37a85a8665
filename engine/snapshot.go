package engine

import (
	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/physics"
)

// Snapshot is a read-only copy of the state for display collaborators
type Snapshot struct {
	Ball       physics.Ball
	Power      int
	LastScored court.Side
	Mode       Mode
	Score      ScoreBoard
	Percentage float64
	Frame      uint64
	Target     court.Side
}

// Snapshot copies the current state; the renderer never sees the live State
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Ball:       s.Ball,
		Power:      s.Shot.Power,
		LastScored: s.Shot.LastScored,
		Mode:       s.Mode(),
		Score:      s.Score,
		Percentage: s.Score.Percentage(),
		Frame:      s.frame,
		Target:     s.Target().Side,
	}
}
