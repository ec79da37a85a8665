package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hoopshot/render"
)

// helpEntry pairs a key label with what it does
type helpEntry struct {
	keys   string
	action string
}

var helpEntries = []helpEntry{
	{"←→↑↓ / a d w s", "move the ball on the floor"},
	{"+ / -", "raise or lower shot power"},
	{"space", "shoot at the nearest hoop"},
	{"r", "reset the ball to center court"},
	{"n", "new game, clears the score"},
	{"1 2 3 4", "camera: overview, home, guest, top"},
	{"o", "toggle orbit camera"},
	{"mouse drag / wheel", "orbit and zoom (orbit on)"},
	{"m", "mute sound"},
	{"?", "toggle this help"},
	{"q / esc", "quit"},
}

// HelpRenderer draws the centered controls overlay
type HelpRenderer struct{}

// NewHelpRenderer creates the help layer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// Render implements render.SystemRenderer
func (r *HelpRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.ShowHelp {
		return
	}

	keyW := 0
	actW := 0
	for _, e := range helpEntries {
		keyW = max(keyW, render.TextWidth(e.keys))
		actW = max(actW, render.TextWidth(e.action))
	}

	title := " CONTROLS "
	boxW := min(keyW+actW+7, ctx.ScreenWidth)
	boxH := min(len(helpEntries)+4, ctx.ScreenHeight)
	if boxW < 12 || boxH < 5 {
		return
	}
	x0 := (ctx.ScreenWidth - boxW) / 2
	y0 := (ctx.ScreenHeight - boxH) / 2

	buf.FillRect(x0, y0, boxW, boxH, render.RgbHelpBg)
	r.border(buf, x0, y0, boxW, boxH)
	render.WriteText(buf, x0+(boxW-render.TextWidth(title))/2, y0, title, render.RgbHelpKey, tcell.AttrBold)

	inner := boxW - 4
	for i, e := range helpEntries {
		y := y0 + 2 + i
		if y >= y0+boxH-1 {
			break
		}
		x := render.WriteText(buf, x0+2, y, render.FitText(e.keys, min(keyW, inner)), render.RgbHelpKey, 0)
		x = max(x, x0+2+keyW+2)
		if room := x0 + boxW - 2 - x; room > 0 {
			render.WriteText(buf, x, y, render.FitText(e.action, room), render.RgbHUDText, 0)
		}
	}
}

func (r *HelpRenderer) border(buf *render.RenderBuffer, x0, y0, w, h int) {
	c := render.RgbHelpBorder
	for x := x0 + 1; x < x0+w-1; x++ {
		buf.SetFgOnly(x, y0, '─', c, 0)
		buf.SetFgOnly(x, y0+h-1, '─', c, 0)
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		buf.SetFgOnly(x0, y, '│', c, 0)
		buf.SetFgOnly(x0+w-1, y, '│', c, 0)
	}
	buf.SetFgOnly(x0, y0, '┌', c, 0)
	buf.SetFgOnly(x0+w-1, y0, '┐', c, 0)
	buf.SetFgOnly(x0, y0+h-1, '└', c, 0)
	buf.SetFgOnly(x0+w-1, y0+h-1, '┘', c, 0)
}
