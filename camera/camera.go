// Package camera places the viewer and projects world points onto terminal cells.
package camera

import (
	"math"

	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

var worldUp = vmath.Vec3F{Y: 1}

// Camera is a perspective pinhole looking from Eye at Target
type Camera struct {
	Eye    vmath.Vec3F
	Target vmath.Vec3F
	FOV    float64 // vertical, degrees
	Near   float64
}

// View is a camera bound to a viewport, ready to project
type View struct {
	eye                vmath.Vec3F
	right, up, forward vmath.Vec3F
	near               float64
	focal              float64 // rows per unit at depth 1
	cx, cy             float64
	aspect             float64
}

// View binds the camera to a w x h cell viewport
func (c Camera) View(w, h int) View {
	forward := vmath.V3FNormalize(vmath.V3FSub(c.Target, c.Eye))
	right := vmath.V3FCross(forward, worldUp)
	if vmath.V3FMagSq(right) < vmath.Epsilon {
		// Looking straight down: screen up is -Z (toward the far sideline)
		right = vmath.Vec3F{X: 1}
	}
	right = vmath.V3FNormalize(right)
	up := vmath.V3FCross(right, forward)

	halfFOV := vmath.DegToRad(c.FOV) / 2
	return View{
		eye:     c.Eye,
		right:   right,
		up:      up,
		forward: forward,
		near:    c.Near,
		focal:   (float64(h) / 2) / math.Tan(halfFOV),
		cx:      float64(w) / 2,
		cy:      float64(h) / 2,
		aspect:  parameter.CellAspect,
	}
}

// Project maps a world point to fractional cell coordinates
// depth is the distance along the view axis; ok is false behind the near plane
func (v View) Project(p vmath.Vec3F) (x, y, depth float64, ok bool) {
	d := vmath.V3FSub(p, v.eye)
	depth = vmath.V3FDot(d, v.forward)
	if depth < v.near {
		return 0, 0, depth, false
	}
	sx := vmath.V3FDot(d, v.right) / depth
	sy := vmath.V3FDot(d, v.up) / depth
	return v.cx + sx*v.focal*v.aspect, v.cy - sy*v.focal, depth, true
}

// RowsPerUnit returns how many rows one world unit spans at depth
// Horizontal span in columns is this times the cell aspect
func (v View) RowsPerUnit(depth float64) float64 {
	if depth < v.near {
		return 0
	}
	return v.focal / depth
}

// Aspect returns the cell height/width ratio used for columns
func (v View) Aspect() float64 {
	return v.aspect
}

// Forward returns the unit view direction
func (v View) Forward() vmath.Vec3F {
	return v.forward
}

// Ray returns the world direction through cell coordinate (x, y)
// The direction is scaled so its component along the view axis is 1,
// making the ray parameter equal to depth
func (v View) Ray(x, y float64) vmath.Vec3F {
	sx := (x - v.cx) / (v.focal * v.aspect)
	sy := (v.cy - y) / v.focal
	dir := vmath.V3FAdd(v.forward, vmath.V3FScale(v.right, sx))
	return vmath.V3FAdd(dir, vmath.V3FScale(v.up, sy))
}

// Eye returns the camera position
func (v View) Eye() vmath.Vec3F {
	return v.eye
}
