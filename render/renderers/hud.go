package renderers

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hoopshot/camera"
	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/render"
)

// ScoreLines formats the totals shown on both the HUD and the arena scoreboard
func ScoreLines(s engine.Snapshot) [2]string {
	return [2]string{
		fmt.Sprintf("%s %02d - %02d %s", parameter.LabelHome, s.Score.Home, s.Score.Guest, parameter.LabelGuest),
		fmt.Sprintf("%s %d  %s %d  %s %.0f%%",
			parameter.LabelAttempts, s.Score.TotalShots,
			parameter.LabelMade, s.Score.ShotsMade,
			parameter.LabelPct, s.Percentage),
	}
}

// HUDRenderer draws the bottom panel: totals, power gauge, status and key hints
type HUDRenderer struct{}

// NewHUDRenderer creates the HUD layer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements render.SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w := ctx.ScreenWidth
	top := ctx.ViewHeight
	if w <= 0 || ctx.ScreenHeight <= 0 {
		return
	}
	buf.FillRect(0, top, w, ctx.ScreenHeight-top, render.RgbHUDBg)

	if !ctx.SceneVisible() && top > 0 {
		msg := render.FitText("enlarge terminal", w)
		render.WriteText(buf, max((w-render.TextWidth(msg))/2, 0), top/2, msg, render.RgbHUDDim, 0)
	}

	r.scoreRow(&ctx, buf, top)
	r.statusRow(&ctx, buf, top+1)
	r.hintRow(&ctx, buf, top+2)
}

func (r *HUDRenderer) scoreRow(ctx *render.RenderContext, buf *render.RenderBuffer, y int) {
	s := ctx.Snapshot
	w := ctx.ScreenWidth

	x := 1
	x = render.WriteText(buf, x, y, parameter.LabelHome+" ", render.RgbHUDHome, tcell.AttrBold)
	x = render.WriteText(buf, x, y, fmt.Sprintf("%02d", s.Score.Home), render.RgbHUDText, tcell.AttrBold)
	x = render.WriteText(buf, x, y, "  "+parameter.LabelGuest+" ", render.RgbHUDGuest, tcell.AttrBold)
	x = render.WriteText(buf, x, y, fmt.Sprintf("%02d", s.Score.Guest), render.RgbHUDText, tcell.AttrBold)

	stats := "  " + ScoreLines(s)[1]
	gauge := powerGaugeWidth(w)
	room := w - x - gauge - 1
	if room > 0 {
		render.WriteText(buf, x, y, render.FitText(stats, room), render.RgbHUDText, 0)
	}
	if gauge > 0 {
		r.powerGauge(buf, w-gauge-1, y, s.Power)
	}
}

// gaugeLabelWidth counts "POWER [" and "]nnn" around the bar
func gaugeLabelWidth() int {
	return render.TextWidth(parameter.LabelPower) + 2 + 4
}

// powerGaugeWidth shrinks the gauge on narrow screens, zero when it cannot fit
func powerGaugeWidth(w int) int {
	bar := min(parameter.PowerBarWidth, w/3-gaugeLabelWidth())
	if bar < 4 {
		return 0
	}
	return gaugeLabelWidth() + bar
}

// powerGauge draws "POWER [bar] nnn" with an HCL gradient from green to red
func (r *HUDRenderer) powerGauge(buf *render.RenderBuffer, x, y, power int) {
	w, _ := buf.Bounds()
	bar := powerGaugeWidth(w) - gaugeLabelWidth()

	x = render.WriteText(buf, x, y, parameter.LabelPower+" [", render.RgbHUDDim, 0)
	filled := int(math.Round(float64(power) / 100 * float64(bar)))
	for i := range bar {
		if i < filled {
			c := render.Gradient(render.RgbPowerLow, render.RgbPowerHigh, float64(i)/float64(max(bar-1, 1)))
			buf.SetFgOnly(x+i, y, '█', c, 0)
		} else {
			buf.SetFgOnly(x+i, y, '░', render.RgbPowerEmpty, 0)
		}
	}
	render.WriteText(buf, x+bar, y, fmt.Sprintf("]%3d", power), render.RgbHUDDim, 0)
}

func (r *HUDRenderer) statusRow(ctx *render.RenderContext, buf *render.RenderBuffer, y int) {
	s := ctx.Snapshot

	parts := []string{
		"CAM " + camera.PresetName(ctx.Preset),
		"ORBIT " + onOff(ctx.Orbit),
		"BALL " + s.Mode.String(),
		"TARGET " + hoopLabel(s.Target),
	}
	audio := parameter.AudioStr + "off"
	switch {
	case ctx.AudioEnabled && ctx.Muted:
		audio = parameter.AudioStr + "muted"
	case ctx.AudioEnabled:
		audio = parameter.AudioStr + "on"
	}
	parts = append(parts, audio)

	line := render.FitText(" "+strings.Join(parts, "  "), ctx.ScreenWidth)
	x := render.WriteText(buf, 0, y, line, render.RgbHUDDim, 0)

	if s.LastScored != court.SideNone {
		badge := " SCORE! " + hoopLabel(s.LastScored) + " "
		bx := ctx.ScreenWidth - render.TextWidth(badge) - 1
		if bx > x {
			render.WriteTextBg(buf, bx, y, badge, render.RgbHUDBg, render.RgbHUDScored)
		}
	}
}

func (r *HUDRenderer) hintRow(ctx *render.RenderContext, buf *render.RenderBuffer, y int) {
	hint := " arrows/wasd move  +/- power  space shoot  r reset  n new  o orbit  1-4 cam  m mute  ? help  q quit"
	render.WriteText(buf, 0, y, render.FitText(hint, ctx.ScreenWidth), render.RgbHUDDim, 0)
}

func hoopLabel(side court.Side) string {
	switch side {
	case court.SideLeft:
		return parameter.LabelHome + " hoop"
	case court.SideRight:
		return parameter.LabelGuest + " hoop"
	}
	return "-"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
