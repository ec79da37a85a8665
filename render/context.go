package render

import (
	"github.com/lixenwraith/hoopshot/camera"
	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot engine.Snapshot
	Hoops    [2]court.Hoop
	Bounds   court.Bounds

	// Camera bound to the scene viewport
	View   camera.View
	Preset int
	Orbit  bool

	// Presentation toggles
	ShowHelp     bool
	Muted        bool
	AudioEnabled bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// ViewHeight is the scene area above the HUD
	ViewHeight int
}

// NewRenderContext lays out a w x h screen and binds cam to the scene area
func NewRenderContext(snap engine.Snapshot, cam camera.Camera, w, h int) RenderContext {
	viewH := max(h-parameter.HUDHeight, 0)
	return RenderContext{
		Snapshot:     snap,
		Hoops:        court.StandardHoops,
		Bounds:       court.Standard,
		View:         cam.View(w, viewH),
		ScreenWidth:  w,
		ScreenHeight: h,
		ViewHeight:   viewH,
	}
}

// SceneVisible reports whether the scene area is large enough to draw
func (rc *RenderContext) SceneVisible() bool {
	return rc.ScreenWidth >= parameter.MinViewWidth && rc.ViewHeight >= parameter.MinViewHeight
}

// InScene reports whether a cell lies within the scene area
func (rc *RenderContext) InScene(x, y int) bool {
	return x >= 0 && x < rc.ScreenWidth && y >= 0 && y < rc.ViewHeight
}
