package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hoopshot/vmath"
)

// PlotFunc receives each cell a primitive covers along with its view depth
type PlotFunc func(x, y int, depth float64)

// Segment walks the cells covered by the world segment a-b
// The segment is clipped to the near plane; cells outside the scene area are skipped
func Segment(ctx *RenderContext, a, b vmath.Vec3F, plot PlotFunc) {
	v := ctx.View
	fwd := v.Forward()
	eye := v.Eye()

	da := vmath.V3FDot(vmath.V3FSub(a, eye), fwd)
	db := vmath.V3FDot(vmath.V3FSub(b, eye), fwd)
	const clip = 0.2 // just beyond the camera near plane
	if da < clip && db < clip {
		return
	}
	if da < clip {
		a = vmath.V3FLerp(a, b, (clip-da)/(db-da))
	} else if db < clip {
		b = vmath.V3FLerp(b, a, (clip-db)/(da-db))
	}

	ax, ay, depthA, okA := v.Project(a)
	bx, by, depthB, okB := v.Project(b)
	if !okA || !okB {
		return
	}

	// Reject segments far off screen before walking them
	if (ax < 0 && bx < 0) || (ay < 0 && by < 0) ||
		(ax >= float64(ctx.ScreenWidth) && bx >= float64(ctx.ScreenWidth)) ||
		(ay >= float64(ctx.ViewHeight) && by >= float64(ctx.ViewHeight)) {
		return
	}
	const maxSpan = 4096
	if math.Abs(ax-bx)+math.Abs(ay-by) > maxSpan {
		return
	}

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	vmath.Traverse(ax, ay, bx, by, func(x, y int) bool {
		if !ctx.InScene(x, y) {
			return true
		}
		t := 0.0
		if lenSq > vmath.Epsilon {
			t = vmath.Clamp(((float64(x)+0.5-ax)*dx+(float64(y)+0.5-ay)*dy)/lenSq, 0, 1)
		}
		// 1/depth is linear in screen space
		plot(x, y, 1/vmath.Lerp(1/depthA, 1/depthB, t))
		return true
	})
}

// Polyline walks consecutive segments; closed joins the last point to the first
func Polyline(ctx *RenderContext, pts []vmath.Vec3F, closed bool, plot PlotFunc) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		Segment(ctx, pts[i], pts[i+1], plot)
	}
	if closed {
		Segment(ctx, pts[len(pts)-1], pts[0], plot)
	}
}

// ArcXZ samples a horizontal arc of radius r around center from angle a0 to a1
// Angles are measured from +X toward +Z
func ArcXZ(center vmath.Vec3F, r, a0, a1 float64, n int) []vmath.Vec3F {
	n = max(n, 1)
	pts := make([]vmath.Vec3F, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, vmath.Vec3F{
			X: center.X + r*math.Cos(a),
			Y: center.Y,
			Z: center.Z + r*math.Sin(a),
		})
	}
	return pts
}

// RingXZ samples a full horizontal circle without repeating the first point
func RingXZ(center vmath.Vec3F, r float64, n int) []vmath.Vec3F {
	pts := ArcXZ(center, r, 0, 2*math.Pi, n)
	return pts[:len(pts)-1]
}

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// FitText truncates s to at most w cells, marking the cut with an ellipsis
func FitText(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}

// WriteText writes s starting at (x, y) over the existing background
// Returns the column after the last written cell
func WriteText(buf *RenderBuffer, x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.SetFgOnly(x, y, r, fg, attrs)
		if w == 2 {
			buf.SetFgOnly(x+1, y, wideTail, fg, attrs)
		}
		x += w
	}
	return x
}

// WriteTextBg writes s with an opaque background
func WriteTextBg(buf *RenderBuffer, x, y int, s string, fg, bg RGB) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.SetWithBg(x, y, r, fg, bg)
		if w == 2 {
			buf.SetWithBg(x+1, y, wideTail, fg, bg)
		}
		x += w
	}
	return x
}

// QuadPlotFunc receives each covered cell with its depth and the
// parametric coordinates (u, v) of the hit within the quad, both in [0, 1]
type QuadPlotFunc func(x, y int, depth, u, v float64)

// FillRect3D rasterizes the world rectangle with corner origin and edges eu, ev
// Each cell's ray is intersected with the rectangle's plane, giving exact depth
func FillRect3D(ctx *RenderContext, origin, eu, ev vmath.Vec3F, plot QuadPlotFunc) {
	normal := vmath.V3FCross(eu, ev)
	if vmath.V3FMagSq(normal) < vmath.Epsilon {
		return
	}
	uLenSq := vmath.V3FMagSq(eu)
	vLenSq := vmath.V3FMagSq(ev)

	minX, minY, maxX, maxY, ok := projectedBounds(ctx, []vmath.Vec3F{
		origin,
		vmath.V3FAdd(origin, eu),
		vmath.V3FAdd(origin, ev),
		vmath.V3FAdd(vmath.V3FAdd(origin, eu), ev),
	})
	if !ok {
		return
	}

	eye := ctx.View.Eye()
	toOrigin := vmath.V3FSub(origin, eye)
	planeDist := vmath.V3FDot(toOrigin, normal)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dir := ctx.View.Ray(float64(x)+0.5, float64(y)+0.5)
			denom := vmath.V3FDot(dir, normal)
			if math.Abs(denom) < vmath.Epsilon {
				continue
			}
			t := planeDist / denom
			if t <= 0 {
				continue
			}
			local := vmath.V3FSub(vmath.V3FAdd(eye, vmath.V3FScale(dir, t)), origin)
			u := vmath.V3FDot(local, eu) / uLenSq
			v := vmath.V3FDot(local, ev) / vLenSq
			if u < 0 || u > 1 || v < 0 || v > 1 {
				continue
			}
			plot(x, y, t, u, v)
		}
	}
}

// projectedBounds returns the scene-clipped cell box around the points
// Points behind the camera widen the box to the whole scene
func projectedBounds(ctx *RenderContext, pts []vmath.Vec3F) (minX, minY, maxX, maxY int, ok bool) {
	loX, loY := math.Inf(1), math.Inf(1)
	hiX, hiY := math.Inf(-1), math.Inf(-1)
	behind := false
	for _, p := range pts {
		x, y, _, visible := ctx.View.Project(p)
		if !visible {
			behind = true
			continue
		}
		loX, hiX = math.Min(loX, x), math.Max(hiX, x)
		loY, hiY = math.Min(loY, y), math.Max(hiY, y)
	}
	if behind {
		if len(pts) > 0 && math.IsInf(loX, 1) {
			return 0, 0, 0, 0, false
		}
		loX, loY = 0, 0
		hiX, hiY = float64(ctx.ScreenWidth), float64(ctx.ViewHeight)
	}

	minX = max(int(math.Floor(loX)), 0)
	minY = max(int(math.Floor(loY)), 0)
	maxX = min(int(math.Floor(hiX)), ctx.ScreenWidth-1)
	maxY = min(int(math.Floor(hiY)), ctx.ViewHeight-1)
	return minX, minY, maxX, maxY, minX <= maxX && minY <= maxY
}

// FloorHit intersects the ray through cell (x, y) with the plane y = height
func FloorHit(ctx *RenderContext, x, y int, height float64) (hit vmath.Vec3F, depth float64, ok bool) {
	dir := ctx.View.Ray(float64(x)+0.5, float64(y)+0.5)
	if dir.Y > -vmath.Epsilon {
		return vmath.Vec3F{}, 0, false
	}
	eye := ctx.View.Eye()
	t := (height - eye.Y) / dir.Y
	if t <= 0 {
		return vmath.Vec3F{}, 0, false
	}
	return vmath.V3FAdd(eye, vmath.V3FScale(dir, t)), t, true
}
