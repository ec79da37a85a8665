package camera

import (
	"math"

	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// minPolar keeps the eye off the vertical axis where the view basis degenerates
const minPolar = 0.01

// Orbit is a damped spherical rig around a target
// Input moves the goal; Update eases the current pose toward it each frame
type Orbit struct {
	Enabled bool

	target vmath.Vec3F
	fov    float64
	near   float64

	// Current and goal pose: azimuth around +Y from +Z, polar from +Y, radius
	theta, phi, dist             float64
	goalTheta, goalPhi, goalDist float64

	damping float64
}

// NewOrbit creates an orbit snapped to c
func NewOrbit(c Camera) *Orbit {
	o := &Orbit{damping: parameter.OrbitDamping}
	o.Snap(c)
	return o
}

// Snap jumps immediately to camera c
func (o *Orbit) Snap(c Camera) {
	o.target = c.Target
	o.fov = c.FOV
	o.near = c.Near

	v := vmath.V3FSub(c.Eye, c.Target)
	dist := vmath.V3FMag(v)
	if dist < vmath.Epsilon {
		dist = parameter.OrbitMinDistance
		v = vmath.Vec3F{Z: dist}
	}
	o.theta = math.Atan2(v.X, v.Z)
	o.phi = math.Acos(vmath.Clamp(v.Y/dist, -1, 1))
	o.dist = dist
	o.clampPose(&o.phi, &o.dist)

	o.goalTheta, o.goalPhi, o.goalDist = o.theta, o.phi, o.dist
}

// Rotate moves the goal by a drag of dx, dy cells; ignored when disabled
func (o *Orbit) Rotate(dx, dy int) {
	if !o.Enabled {
		return
	}
	o.goalTheta -= float64(dx) * parameter.OrbitDragSpeed
	o.goalPhi -= float64(dy) * parameter.OrbitDragSpeed * parameter.CellAspect
	o.clampPose(&o.goalPhi, &o.goalDist)
}

// Zoom scales the goal distance; in moves closer. Ignored when disabled
func (o *Orbit) Zoom(in bool) {
	if !o.Enabled {
		return
	}
	if in {
		o.goalDist /= parameter.OrbitZoomStep
	} else {
		o.goalDist *= parameter.OrbitZoomStep
	}
	o.clampPose(&o.goalPhi, &o.goalDist)
}

// Update eases the current pose toward the goal by the damping factor
func (o *Orbit) Update() {
	o.theta += (o.goalTheta - o.theta) * o.damping
	o.phi += (o.goalPhi - o.phi) * o.damping
	o.dist += (o.goalDist - o.dist) * o.damping
}

// Distance returns the current eye-target distance
func (o *Orbit) Distance() float64 {
	return o.dist
}

// Polar returns the current polar angle from +Y
func (o *Orbit) Polar() float64 {
	return o.phi
}

// Camera returns the current pose as a camera
func (o *Orbit) Camera() Camera {
	sinPhi := math.Sin(o.phi)
	offset := vmath.Vec3F{
		X: o.dist * sinPhi * math.Sin(o.theta),
		Y: o.dist * math.Cos(o.phi),
		Z: o.dist * sinPhi * math.Cos(o.theta),
	}
	return Camera{
		Eye:    vmath.V3FAdd(o.target, offset),
		Target: o.target,
		FOV:    o.fov,
		Near:   o.near,
	}
}

func (o *Orbit) clampPose(phi, dist *float64) {
	*phi = vmath.Clamp(*phi, minPolar, parameter.OrbitMaxPolar)
	*dist = vmath.Clamp(*dist, parameter.OrbitMinDistance, parameter.OrbitMaxDistance)
}

// Rig combines preset selection with the orbit controller
type Rig struct {
	preset int
	orbit  *Orbit
}

// NewRig starts at preset n
func NewRig(n int) *Rig {
	r := &Rig{orbit: NewOrbit(PresetCamera(n))}
	r.preset = normalizePreset(n)
	return r
}

// SetPreset snaps to preset n; orbit enablement is kept
func (r *Rig) SetPreset(n int) {
	r.preset = normalizePreset(n)
	r.orbit.Snap(PresetCamera(r.preset))
}

// Preset returns the active preset, 0 once the orbit has moved off it
func (r *Rig) Preset() int {
	return r.preset
}

// ToggleOrbit flips orbit control and returns the new state
func (r *Rig) ToggleOrbit() bool {
	r.orbit.Enabled = !r.orbit.Enabled
	return r.orbit.Enabled
}

// OrbitEnabled reports whether drag and zoom are live
func (r *Rig) OrbitEnabled() bool {
	return r.orbit.Enabled
}

// SetOrbit enables or disables orbit control
func (r *Rig) SetOrbit(on bool) {
	r.orbit.Enabled = on
}

// Drag forwards a mouse drag to the orbit
func (r *Rig) Drag(dx, dy int) {
	if r.orbit.Enabled && (dx != 0 || dy != 0) {
		r.orbit.Rotate(dx, dy)
		r.preset = 0
	}
}

// Zoom forwards a wheel notch to the orbit
func (r *Rig) Zoom(in bool) {
	if r.orbit.Enabled {
		r.orbit.Zoom(in)
		r.preset = 0
	}
}

// Update advances damping one frame
func (r *Rig) Update() {
	r.orbit.Update()
}

// Camera returns the current camera
func (r *Rig) Camera() Camera {
	return r.orbit.Camera()
}

func normalizePreset(n int) int {
	if n < PresetOverview || n > PresetCount {
		return PresetOverview
	}
	return n
}
