package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/render"
	"github.com/lixenwraith/hoopshot/vmath"
)

// crowdPalette tints the spectators dotted along the treads
var crowdPalette = [...]render.RGB{
	{R: 230, G: 200, B: 160}, {R: 120, G: 80, B: 60}, {R: 250, G: 250, B: 250}, {R: 200, G: 60, B: 60}, {R: 80, G: 140, B: 230},
}

// ArenaRenderer draws bleachers behind the far sideline and the hanging scoreboard
type ArenaRenderer struct{}

// NewArenaRenderer creates the arena layer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render implements render.SystemRenderer
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.SceneVisible() {
		return
	}
	r.bleachers(&ctx, buf)
	r.scoreboard(&ctx, buf)
}

func (r *ArenaRenderer) bleachers(ctx *render.RenderContext, buf *render.RenderBuffer) {
	halfLen := ctx.Bounds.HalfX + parameter.CourtApron
	front := -(ctx.Bounds.HalfZ + parameter.CourtApron + parameter.BleacherMargin)

	for k := range parameter.BleacherRows {
		z := front - float64(k)*parameter.BleacherRowDepth
		y0 := float64(k) * parameter.BleacherRowRise
		y1 := y0 + parameter.BleacherRowRise
		shade := 1 - 0.08*float64(k)

		riser := render.Scale(render.RgbBleacher, 0.7*shade)
		render.FillRect3D(ctx,
			vmath.Vec3F{X: -halfLen, Y: y0, Z: z},
			vmath.Vec3F{X: 2 * halfLen},
			vmath.Vec3F{Y: parameter.BleacherRowRise},
			func(x, y int, depth, _, _ float64) {
				c := fog(riser, depth)
				buf.SetDepth(x, y, depth, ' ', c, c, render.BlendReplace, 1, 0)
			})

		tread := render.Scale(render.RgbBleacher, shade)
		edge := render.Scale(render.RgbBleacherEdge, shade)
		render.FillRect3D(ctx,
			vmath.Vec3F{X: -halfLen, Y: y1, Z: z},
			vmath.Vec3F{X: 2 * halfLen},
			vmath.Vec3F{Z: -parameter.BleacherRowDepth},
			func(x, y int, depth, u, v float64) {
				c := tread
				if v < 0.1 {
					c = edge
				}
				c = fog(c, depth)
				if !buf.SetDepth(x, y, depth, ' ', c, c, render.BlendReplace, 1, 0) {
					return
				}
				// Seated crowd, stable per seat
				seat := int(u*float64(parameter.BleacherSeats)) + k*7
				if v > 0.3 && v < 0.7 && seat%3 != 0 {
					fg := fog(crowdPalette[seat%len(crowdPalette)], depth)
					buf.SetFgOnly(x, y, 'o', fg, 0)
				}
			})
	}
}

// scoreboard hangs above the far side and mirrors the HUD totals
func (r *ArenaRenderer) scoreboard(ctx *render.RenderContext, buf *render.RenderBuffer) {
	center := vmath.Vec3F{X: parameter.ScoreboardX, Y: parameter.ScoreboardY, Z: parameter.ScoreboardZ}
	hw, hh := parameter.ScoreboardHalfW, parameter.ScoreboardHalfH
	origin := vmath.Vec3F{X: center.X - hw, Y: center.Y - hh, Z: center.Z}

	boardDepth := 0.0
	render.FillRect3D(ctx, origin, vmath.Vec3F{X: 2 * hw}, vmath.Vec3F{Y: 2 * hh},
		func(x, y int, depth, u, v float64) {
			c := render.RgbScoreboard
			if u < 0.03 || u > 0.97 || v < 0.06 || v > 0.94 {
				c = render.RgbPole
			}
			if buf.SetDepth(x, y, depth, ' ', c, c, render.BlendReplace, 1, 0) {
				boardDepth = depth
			}
		})
	if boardDepth == 0 {
		return
	}

	// Text only when the face is wide enough to hold it
	left, _, _, okL := ctx.View.Project(vmath.Vec3F{X: center.X - hw, Y: center.Y, Z: center.Z})
	right, _, _, okR := ctx.View.Project(vmath.Vec3F{X: center.X + hw, Y: center.Y, Z: center.Z})
	if !okL || !okR {
		return
	}
	faceWidth := int(right - left)

	lines := ScoreLines(ctx.Snapshot)
	rows := []float64{center.Y + hh*0.45, center.Y - hh*0.35}
	for i, line := range lines {
		if render.TextWidth(line) > faceWidth-2 {
			continue
		}
		lx, ly, depth, ok := ctx.View.Project(vmath.Vec3F{X: center.X, Y: rows[i], Z: center.Z})
		if !ok {
			continue
		}
		x := int(lx) - render.TextWidth(line)/2
		y := int(ly)
		if !ctx.InScene(x, y) || buf.Depth(x, y) < depth-lineBias {
			continue
		}
		render.WriteText(buf, x, y, line, render.RgbScoreboardLED, tcell.AttrBold)
	}
}
