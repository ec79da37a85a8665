// Package renderers holds the layers composited into each frame
package renderers

import (
	"math"

	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/render"
	"github.com/lixenwraith/hoopshot/vmath"
)

// lineBias lifts floor markings in front of the floor fill they sit on
const lineBias = 0.05

// FloorRenderer draws the wood floor, apron and court markings
type FloorRenderer struct{}

// NewFloorRenderer creates the floor layer
func NewFloorRenderer() *FloorRenderer {
	return &FloorRenderer{}
}

// Render implements render.SystemRenderer
func (r *FloorRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.SceneVisible() {
		return
	}
	r.fill(&ctx, buf)
	r.markings(&ctx, buf)
}

// fill casts one ray per scene cell onto the floor plane
func (r *FloorRenderer) fill(ctx *render.RenderContext, buf *render.RenderBuffer) {
	halfX := ctx.Bounds.HalfX
	halfZ := ctx.Bounds.HalfZ
	for y := 0; y < ctx.ViewHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			hit, depth, ok := render.FloorHit(ctx, x, y, 0)
			if !ok {
				continue
			}
			ax, az := math.Abs(hit.X), math.Abs(hit.Z)
			if ax > halfX+parameter.CourtApron || az > halfZ+parameter.CourtApron {
				continue
			}

			var c render.RGB
			switch {
			case ax > halfX || az > halfZ:
				c = render.RgbApron
			case inKey(ax, az, halfX):
				c = render.RgbFloorPaint
			default:
				c = render.RgbFloorWood
				// Planks run along the length
				if int(math.Floor(hit.Z/0.6))%2 == 0 {
					c = render.Scale(c, 0.92)
				}
			}
			c = fog(c, depth)
			buf.SetDepth(x, y, depth, ' ', c, c, render.BlendReplace, 1, 0)
		}
	}
}

func inKey(ax, az, halfX float64) bool {
	return ax >= halfX-parameter.KeyLength && az <= parameter.KeyHalfWidth
}

// markings draws the boundary, center line and circles, keys and three-point arcs
func (r *FloorRenderer) markings(ctx *render.RenderContext, buf *render.RenderBuffer) {
	hx, hz := ctx.Bounds.HalfX, ctx.Bounds.HalfZ
	// Markings take the exact floor depth of each cell they cover
	plot := func(x, y int, _ float64) {
		_, depth, ok := render.FloorHit(ctx, x, y, 0)
		if !ok {
			return
		}
		c := fog(render.RgbCourtLine, depth)
		buf.SetDepth(x, y, depth-lineBias, ' ', c, c, render.BlendReplace, 1, 0)
	}

	corners := []vmath.Vec3F{{X: -hx, Z: -hz}, {X: hx, Z: -hz}, {X: hx, Z: hz}, {X: -hx, Z: hz}}
	render.Polyline(ctx, corners, true, plot)
	render.Segment(ctx, vmath.Vec3F{Z: -hz}, vmath.Vec3F{Z: hz}, plot)

	render.Polyline(ctx, render.RingXZ(vmath.Vec3F{}, parameter.CenterCircleInner, 24), true, plot)
	render.Polyline(ctx, render.RingXZ(vmath.Vec3F{}, parameter.CenterCircleOuter, 32), true, plot)

	for _, dir := range []float64{-1, 1} {
		baseline := dir * hx
		lane := dir * (hx - parameter.KeyLength)

		key := []vmath.Vec3F{
			{X: baseline, Z: -parameter.KeyHalfWidth},
			{X: lane, Z: -parameter.KeyHalfWidth},
			{X: lane, Z: parameter.KeyHalfWidth},
			{X: baseline, Z: parameter.KeyHalfWidth},
		}
		render.Polyline(ctx, key, false, plot)

		// Free throw circle opens toward center court
		ft := vmath.Vec3F{X: lane}
		start := -math.Pi / 2
		if dir > 0 {
			start = math.Pi / 2
		}
		render.Polyline(ctx, render.ArcXZ(ft, parameter.FreeThrowRadius, start, start+math.Pi, 16), false, plot)

		// Three-point arc is centered under the backboard
		arcStart := -math.Pi / 2
		if dir > 0 {
			arcStart = math.Pi / 2
		}
		arc := render.ArcXZ(vmath.Vec3F{X: baseline}, parameter.ThreePointRadius, arcStart, arcStart+math.Pi, 40)
		render.Polyline(ctx, arc, false, plot)
	}
}

// fog fades distant surfaces into the haze
func fog(c render.RGB, depth float64) render.RGB {
	t := vmath.Clamp((depth-parameter.FogStart)/parameter.FogRange, 0, parameter.FogMax)
	return render.Fog(c, render.RgbHaze, t)
}
