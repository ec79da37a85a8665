package renderers

import (
	"math"

	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/render"
	"github.com/lixenwraith/hoopshot/vmath"
)

// Shooter's square on the backboard, relative to the rim
const (
	innerHalfWidth = 0.5
	innerBottom    = 0.15
	innerHeight    = 0.45
	poleHalfWidth  = 0.15
	boardAlpha     = 0.8
)

// HoopRenderer draws poles, backboards, rims and nets
type HoopRenderer struct{}

// NewHoopRenderer creates the hoop layer
func NewHoopRenderer() *HoopRenderer {
	return &HoopRenderer{}
}

// Render implements render.SystemRenderer
func (r *HoopRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.SceneVisible() {
		return
	}
	for i := range ctx.Hoops {
		h := &ctx.Hoops[i]
		r.pole(&ctx, buf, h)
		r.board(&ctx, buf, h)
		r.net(&ctx, buf, h)
		r.rim(&ctx, buf, h)
	}
}

func (r *HoopRenderer) pole(ctx *render.RenderContext, buf *render.RenderBuffer, h *court.Hoop) {
	dir := vmath.Sign(h.Board.AxisX)
	x := dir * parameter.PoleOffsetX
	c := render.RgbPole

	// Flat post facing the sideline camera
	origin := vmath.Vec3F{X: x - poleHalfWidth}
	render.FillRect3D(ctx, origin, vmath.Vec3F{Y: parameter.PoleHeight}, vmath.Vec3F{X: 2 * poleHalfWidth},
		func(cx, cy int, depth, _, _ float64) {
			buf.SetDepth(cx, cy, depth, ' ', c, fog(c, depth), render.BlendReplace, 1, 0)
		})

	// Arm from pole top to the back of the board
	plot := func(cx, cy int, depth float64) {
		buf.SetDepth(cx, cy, depth, ' ', c, fog(c, depth), render.BlendReplace, 1, 0)
	}
	render.Segment(ctx,
		vmath.Vec3F{X: x, Y: parameter.PoleHeight},
		vmath.Vec3F{X: h.Board.AxisX, Y: h.Board.CenterY},
		plot)
}

func (r *HoopRenderer) board(ctx *render.RenderContext, buf *render.RenderBuffer, h *court.Hoop) {
	b := h.Board
	origin := vmath.Vec3F{X: b.AxisX, Y: b.CenterY - b.HalfHeight, Z: b.CenterZ - b.HalfWidth}
	eu := vmath.Vec3F{Z: 2 * b.HalfWidth}
	ev := vmath.Vec3F{Y: 2 * b.HalfHeight}

	// Inner square bounds in (u, v)
	uLo := (b.HalfWidth - innerHalfWidth) / (2 * b.HalfWidth)
	uHi := (b.HalfWidth + innerHalfWidth) / (2 * b.HalfWidth)
	vLo := (h.Rim.Y + innerBottom - origin.Y) / (2 * b.HalfHeight)
	vHi := vLo + innerHeight/(2*b.HalfHeight)
	edgeU := 0.04
	edgeV := 0.06

	render.FillRect3D(ctx, origin, eu, ev, func(x, y int, depth, u, v float64) {
		c := render.RgbBackboard
		alpha := boardAlpha
		switch {
		case u < edgeU || u > 1-edgeU || v < edgeV || v > 1-edgeV:
			c, alpha = render.RgbBoardFrame, 1
		case u >= uLo && u <= uHi && v >= vLo && v <= vHi && (u < uLo+edgeU || u > uHi-edgeU || v < vLo+edgeV || v > vHi-edgeV):
			c, alpha = render.RgbBoardInner, 1
		}
		c = fog(c, depth)
		buf.SetDepth(x, y, depth, ' ', c, c, render.BlendAlpha, alpha, 0)
	})
}

func (r *HoopRenderer) rim(ctx *render.RenderContext, buf *render.RenderBuffer, h *court.Hoop) {
	c := render.RgbRim
	plot := func(x, y int, depth float64) {
		buf.SetDepth(x, y, depth-h.TubeRadius, ' ', c, fog(c, depth), render.BlendReplace, 1, 0)
	}
	render.Polyline(ctx, render.RingXZ(h.Rim, h.RimRadius, 24), true, plot)

	// Bracket joining the rim to the board
	dir := vmath.Sign(h.Board.AxisX)
	render.Segment(ctx,
		vmath.Vec3F{X: h.Rim.X + dir*h.RimRadius, Y: h.Rim.Y, Z: h.Rim.Z},
		vmath.Vec3F{X: h.Board.AxisX, Y: h.Rim.Y, Z: h.Rim.Z},
		plot)
}

// net hangs tapering rings joined by strands with a half-step twist per ring
func (r *HoopRenderer) net(ctx *render.RenderContext, buf *render.RenderBuffer, h *court.Hoop) {
	segments := parameter.NetSegments
	rings := parameter.NetRings
	step := 2 * math.Pi / float64(segments)

	ringAt := func(k int) (center vmath.Vec3F, radius, phase float64) {
		f := float64(k) / float64(rings)
		center = h.Rim
		center.Y -= parameter.NetDepth * f
		return center, h.RimRadius * (1 - 0.45*f), float64(k) * step / 2
	}

	strand := func(x, y int, depth float64) {
		buf.SetDepth(x, y, depth, ':', fog(render.RgbNet, depth), render.RGB{}, render.BlendFgOnly, 1, 0)
	}
	ring := func(x, y int, depth float64) {
		buf.SetDepth(x, y, depth, '-', fog(render.RgbNet, depth), render.RGB{}, render.BlendFgOnly, 1, 0)
	}

	for k := 1; k <= rings; k++ {
		c0, r0, p0 := ringAt(k - 1)
		c1, r1, p1 := ringAt(k)
		render.Polyline(ctx, render.ArcXZ(c1, r1, p1, p1+2*math.Pi, segments), false, ring)
		for i := range segments {
			a0 := p0 + float64(i)*step
			a1 := p1 + float64(i)*step
			top := vmath.Vec3F{X: c0.X + r0*math.Cos(a0), Y: c0.Y, Z: c0.Z + r0*math.Sin(a0)}
			bottom := vmath.Vec3F{X: c1.X + r1*math.Cos(a1), Y: c1.Y, Z: c1.Z + r1*math.Sin(a1)}
			render.Segment(ctx, top, bottom, strand)
		}
	}
}
