package render

import (
	"github.com/taigrr/donut/pkg/math3d"
	"github.com/taigrr/donut/pkg/surface"
)

// Shader turns a surface sample into a final color. It keeps scratch space
// for cross-faded palettes and is not safe for concurrent use.
type Shader struct {
	ShadeFloor       float64
	DepthGain        float64
	TransparentAlpha uint8

	palette []Color
}

// NewShader creates a shader from cfg.
func NewShader(cfg Config) *Shader {
	return &Shader{
		ShadeFloor:       cfg.ShadeFloor,
		DepthGain:        cfg.DepthGain,
		TransparentAlpha: cfg.TransparentAlpha,
	}
}

// Luminance is the clamped Lambert term of a local normal against a light
// direction.
func Luminance(normal, light math3d.Vec3) float64 {
	return math3d.Lambert(normal, light)
}

// Base returns the undarkened gradient color of a sample.
func (s *Shader) Base(theme Theme, pt surface.Point, lum float64) Color {
	blend := 0.0
	if theme.CrossFade() {
		blend = (pt.SinPhi() + 1) / 2
	}
	s.palette = theme.Palette(blend, s.palette)
	return Gradient(s.palette, lum)
}

// DepthShade brightens nearer points: every channel is multiplied by
// ShadeFloor + DepthGain*ooz and clamped to 255.
func (s *Shader) DepthShade(c Color, ooz float64) Color {
	return MultiplyColor(c, s.ShadeFloor+s.DepthGain*ooz)
}

// Shade runs the full chain for one visible sample: gradient, depth shade,
// optional hue rotation and transparency.
func (s *Shader) Shade(theme Theme, pt surface.Point, lum, ooz float64, p *Params) Color {
	c := s.DepthShade(s.Base(theme, pt, lum), ooz)
	if p.HueRotation {
		c = RotateHue(c, p.HuePhase)
	}
	c.A = 255
	if p.Transparent {
		c.A = s.TransparentAlpha
	}
	return c
}
