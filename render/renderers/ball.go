package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hoopshot/physics"
	"github.com/lixenwraith/hoopshot/render"
	"github.com/lixenwraith/hoopshot/vmath"
)

// Screen-space lighting, normalized at init
var (
	lightX, lightY, lightZ = normalize3(-0.4, -0.7, 0.6) // y grows downward on screen
	specX, specY, specZ    = normalize3(lightX, lightY, lightZ+1)
)

const (
	shadowAlpha   = 0.55
	shadowFadeY   = 15.0
	shadowSpread  = 0.04
	seamWidth     = 0.07
	minBallRadius = 0.35 // rows; below this the ball is a single glyph
)

func normalize3(x, y, z float64) (float64, float64, float64) {
	m := math.Sqrt(x*x + y*y + z*z)
	return x / m, y / m, z / m
}

// BallRenderer draws the ball and its floor shadow
type BallRenderer struct{}

// NewBallRenderer creates the ball layer
func NewBallRenderer() *BallRenderer {
	return &BallRenderer{}
}

// Render implements render.SystemRenderer
func (r *BallRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.SceneVisible() {
		return
	}
	ball := ctx.Snapshot.Ball
	r.shadow(&ctx, buf, &ball)
	r.sphere(&ctx, buf, &ball)
}

// shadow darkens floor cells under the ball, softer and wider with height
func (r *BallRenderer) shadow(ctx *render.RenderContext, buf *render.RenderBuffer, b *physics.Ball) {
	height := math.Max(b.Pos.Y-b.Radius, 0)
	radius := b.Radius * (1 + height*shadowSpread)
	alpha := shadowAlpha * (1 - vmath.Clamp(height/shadowFadeY, 0, 0.8))

	c := vmath.Vec3F{X: b.Pos.X, Z: b.Pos.Z}
	minX, minY, maxX, maxY, ok := boundsAround(ctx, c, radius)
	if !ok {
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			hit, depth, ok := render.FloorHit(ctx, x, y, 0)
			if !ok || vmath.V3FDistXZ(hit, c) > radius {
				continue
			}
			buf.SetDepth(x, y, depth-lineBias*2, 0, render.RGB{}, render.RgbShadow, render.BlendAlphaBg, alpha, 0)
		}
	}
}

// sphere shades the ball per cell with lambert, specular and seam terms
func (r *BallRenderer) sphere(ctx *render.RenderContext, buf *render.RenderBuffer, b *physics.Ball) {
	cx, cy, depth, ok := ctx.View.Project(b.Pos)
	if !ok {
		return
	}
	rows := b.Radius * ctx.View.RowsPerUnit(depth)
	aspect := ctx.View.Aspect()

	if rows < minBallRadius {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if ctx.InScene(x, y) {
			buf.SetDepth(x, y, depth-b.Radius, '●', render.RgbBall, render.RGB{}, render.BlendFgOnly, 1, tcell.AttrBold)
		}
		return
	}

	minX := max(0, int(math.Floor(cx-rows*aspect)))
	maxX := min(ctx.ScreenWidth-1, int(math.Floor(cx+rows*aspect)))
	minY := max(0, int(math.Floor(cy-rows)))
	maxY := min(ctx.ViewHeight-1, int(math.Floor(cy+rows)))

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - cx) / (rows * aspect)
			ny := (float64(sy) + 0.5 - cy) / rows
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}
			nz := math.Sqrt(1 - distSq)

			lambert := math.Max(0, nx*lightX+ny*lightY+nz*lightZ)
			spec := math.Max(0, nx*specX+ny*specY+nz*specZ)
			spec = math.Pow(spec, 20) * 0.6

			c := render.Scale(render.RgbBall, 0.35+0.75*lambert)
			if math.Abs(nx) < seamWidth || math.Abs(ny) < seamWidth {
				c = render.Lerp(c, render.RgbBallSeam, 0.7)
			}
			c = render.Screen(c, render.RgbBallShine, spec)

			// Soft edge: partial cover on the silhouette
			alpha := 1.0
			if edge := 1 - math.Sqrt(distSq); edge < 0.08 {
				alpha = 0.5 + edge/0.16
			}
			buf.SetDepth(sx, sy, depth-nz*b.Radius, ' ', c, c, render.BlendAlpha, alpha, 0)
		}
	}
}

// boundsAround returns the scene cell box of a horizontal disk
func boundsAround(ctx *render.RenderContext, c vmath.Vec3F, radius float64) (minX, minY, maxX, maxY int, ok bool) {
	pts := render.RingXZ(c, radius, 8)
	loX, loY := math.Inf(1), math.Inf(1)
	hiX, hiY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x, y, _, visible := ctx.View.Project(p)
		if !visible {
			return 0, 0, 0, 0, false
		}
		loX, hiX = math.Min(loX, x), math.Max(hiX, x)
		loY, hiY = math.Min(loY, y), math.Max(hiY, y)
	}
	minX = max(int(math.Floor(loX))-1, 0)
	minY = max(int(math.Floor(loY))-1, 0)
	maxX = min(int(math.Floor(hiX))+1, ctx.ScreenWidth-1)
	maxY = min(int(math.Floor(hiY))+1, ctx.ViewHeight-1)
	return minX, minY, maxX, maxY, minX <= maxX && minY <= maxY
}
