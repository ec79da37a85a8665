package renderers

import "github.com/lixenwraith/hoopshot/render"

// RegisterAll installs every layer of the frame in draw order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewFloorRenderer(), render.PriorityFloor)
	o.Register(NewArenaRenderer(), render.PriorityArena)
	o.Register(NewHoopRenderer(), render.PriorityHoop)
	o.Register(NewBallRenderer(), render.PriorityBall)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewHelpRenderer(), render.PriorityOverlay)
}
