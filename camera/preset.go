package camera

import (
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// Preset numbers match the 1-4 keys
const (
	PresetOverview = iota + 1
	PresetLeftHoop
	PresetRightHoop
	PresetTopDown

	PresetCount = PresetTopDown
)

// PresetName labels a preset for the HUD
func PresetName(n int) string {
	switch n {
	case PresetOverview:
		return "overview"
	case PresetLeftHoop:
		return "home hoop"
	case PresetRightHoop:
		return "guest hoop"
	case PresetTopDown:
		return "top-down"
	}
	return "custom"
}

// PresetCamera returns the fixed camera for preset n, falling back to overview
func PresetCamera(n int) Camera {
	c := Camera{
		Eye:    vmath.Vec3F{X: parameter.CameraEyeX, Y: parameter.CameraEyeY, Z: parameter.CameraEyeZ},
		Target: vmath.Vec3F{Y: parameter.CameraTargetY},
		FOV:    parameter.CameraFOV,
		Near:   parameter.CameraNear,
	}

	switch n {
	case PresetLeftHoop:
		c.Eye = vmath.Vec3F{X: -2, Y: 10, Z: 12}
		c.Target = vmath.Vec3F{X: -parameter.RimOffsetX + 2, Y: parameter.RimHeight - 1, Z: 0}
	case PresetRightHoop:
		c.Eye = vmath.Vec3F{X: 2, Y: 10, Z: 12}
		c.Target = vmath.Vec3F{X: parameter.RimOffsetX - 2, Y: parameter.RimHeight - 1, Z: 0}
	case PresetTopDown:
		c.Eye = vmath.Vec3F{Y: 30, Z: 0.5}
		c.Target = vmath.Vec3F{}
		c.FOV = 60
	}
	return c
}
