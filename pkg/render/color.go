package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// lerpColor interpolates each channel from a to b by t, truncating toward
// zero. Alpha is taken from a.
func lerpColor(a, b Color, t float64) Color {
	ch := func(x, y uint8) uint8 {
		v := float64(x) + (float64(y)-float64(x))*t
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return Color{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: a.A}
}

// MultiplyColor scales the RGB channels by f, clamping at 255.
func MultiplyColor(c Color, f float64) Color {
	ch := func(x uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(x)*f)))
	}
	return Color{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// RotateHue shifts the hue of c by phase turns, keeping saturation, value
// and alpha.
func RotateHue(c Color, phase float64) Color {
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, v := src.Hsv()
	h = math.Mod(h/360+phase, 1)
	if h < 0 {
		h++
	}
	r, g, b := colorful.Hsv(h*360, s, v).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: c.A}
}

// Hex formats c as #rrggbb.
func Hex(c Color) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// blendOver composites c over bg using c's alpha and returns an opaque color.
func blendOver(c, bg Color) Color {
	if c.A == 255 {
		return c
	}
	out := lerpColor(bg, c, float64(c.A)/255)
	out.A = 255
	return out
}
