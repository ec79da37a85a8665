package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color as the buffer stores it
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Colorful converts to go-colorful for perceptual blending
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts back, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hex parses "#rrggbb", returning black on malformed input
func Hex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBBlack
	}
	return FromColorful(c)
}

// Gradient interpolates in HCL space, t in [0, 1]
// Hue travels the short way, so green to red passes through yellow
func Gradient(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return FromColorful(a.Colorful().BlendHcl(b.Colorful(), t))
}

// Fog fades c toward the haze color by t in Lab space
func Fog(c, haze RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return haze
	}
	return FromColorful(c.Colorful().BlendLab(haze.Colorful(), t))
}
