package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/taigrr/donut/pkg/math3d"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// GlyphMode selects how ASCII mode picks a glyph for a written cell.
type GlyphMode int

const (
	GlyphRandom    GlyphMode = iota // uniform pick from Config.Glyphs on every write
	GlyphLuminance                  // index Config.Glyphs by luminance, dark to bright
)

// String returns the mode's flag spelling.
func (m GlyphMode) String() string {
	switch m {
	case GlyphRandom:
		return "random"
	case GlyphLuminance:
		return "luminance"
	default:
		return fmt.Sprintf("GlyphMode(%d)", int(m))
	}
}

// ParseGlyphMode parses "random" or "luminance".
func ParseGlyphMode(s string) (GlyphMode, error) {
	switch s {
	case "random":
		return GlyphRandom, nil
	case "luminance":
		return GlyphLuminance, nil
	}
	return 0, fmt.Errorf("%w: unknown glyph mode %q", ErrInvalidConfig, s)
}

// LuminanceRamp is the classic dark-to-bright ASCII shading ramp.
const LuminanceRamp = ".,-~:;=!*#$@"

// Config is the full construction-time configuration of the pipeline.
// Use a preset and override fields rather than building one from scratch.
type Config struct {
	// Raster
	Columns, Rows  int
	PitchX, PitchY int // pixels per cell, used for image output and scale fitting

	// Geometry and projection
	R1, R2         float64 // tube radius, ring radius
	CameraDistance float64 // K2, added to rotated depth before the divide
	ScaleX, ScaleY float64 // projection magnification; 0 fits the raster
	Detail         int     // initial angular step in degrees
	DetailMax      int

	// Zoom
	Zoom       float64
	ZoomLevels []float64 // discrete cycle list; empty disables zoom-cycle
	ZoomStep   float64   // continuous increment; 0 disables zoom-in/zoom-out
	ZoomMin    float64
	ZoomMax    float64
	ZoomEasing bool

	// Rotation
	SpinSpeed   float64
	SpinStep    float64
	SpinMin     float64
	SpinMax     float64
	AxisStep    math3d.Vec3 // per-frame increment per axis, scaled by spin speed
	ActiveAxes  [3]bool
	Sensitivity float64 // radians per pointer cell while dragging
	Freeze      bool

	// Shading
	Lights           []math3d.Vec3
	Light            int
	Themes           []Theme
	Theme            int
	HueRotation      bool
	HueStep          float64 // turns per frame
	Transparent      bool
	TransparentAlpha uint8
	ShadeFloor       float64
	DepthGain        float64
	Background       Color

	// Glyphs
	ASCII     bool
	Glyphs    string
	GlyphMode GlyphMode
	Seed      uint64

	// Reference planes
	PlaneExtent float64 // half-size of each plane in local units
	PlaneLines  int     // grid lines per direction

	FPS int
}

// Validate reports every configuration problem at once. Each error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Columns <= 0 || c.Rows <= 0 {
		bad("raster %dx%d must be positive", c.Columns, c.Rows)
	}
	if c.PitchX <= 0 || c.PitchY <= 0 {
		bad("cell pitch %dx%d must be positive", c.PitchX, c.PitchY)
	}
	if c.R1 <= 0 || c.R2 < 0 {
		bad("torus radii R1=%v R2=%v", c.R1, c.R2)
	}
	if c.CameraDistance <= 0 {
		bad("camera distance %v must be positive", c.CameraDistance)
	}
	if c.ScaleX < 0 || c.ScaleY < 0 {
		bad("projection scale %v,%v must not be negative", c.ScaleX, c.ScaleY)
	}
	if c.Detail < 1 {
		bad("angular step %d must be at least 1", c.Detail)
	}
	if c.DetailMax < c.Detail {
		bad("max angular step %d below initial step %d", c.DetailMax, c.Detail)
	}
	if c.ZoomMin <= 0 || c.ZoomMin > c.ZoomMax {
		bad("zoom range [%v, %v]", c.ZoomMin, c.ZoomMax)
	}
	if c.Zoom <= 0 || c.Zoom < c.ZoomMin || c.Zoom > c.ZoomMax {
		bad("zoom %v outside range [%v, %v]", c.Zoom, c.ZoomMin, c.ZoomMax)
	}
	for _, z := range c.ZoomLevels {
		if z <= 0 || z < c.ZoomMin || z > c.ZoomMax {
			bad("zoom level %v outside range [%v, %v]", z, c.ZoomMin, c.ZoomMax)
		}
	}
	if c.ZoomStep < 0 {
		bad("zoom step %v must not be negative", c.ZoomStep)
	}
	if c.SpinMin > c.SpinMax || c.SpinStep < 0 {
		bad("spin range [%v, %v] step %v", c.SpinMin, c.SpinMax, c.SpinStep)
	}
	if c.SpinSpeed < c.SpinMin || c.SpinSpeed > c.SpinMax {
		bad("spin speed %v outside range [%v, %v]", c.SpinSpeed, c.SpinMin, c.SpinMax)
	}
	if len(c.Lights) == 0 {
		bad("light list is empty")
	}
	for i, l := range c.Lights {
		if l.Len() == 0 {
			bad("light %d is the zero vector", i)
		}
	}
	if c.Light < 0 || c.Light >= max(len(c.Lights), 1) {
		bad("light index %d out of range", c.Light)
	}
	if len(c.Themes) == 0 {
		bad("theme list is empty")
	}
	for _, t := range c.Themes {
		if err := t.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Theme < 0 || c.Theme >= max(len(c.Themes), 1) {
		bad("theme index %d out of range", c.Theme)
	}
	if c.ShadeFloor < 0 || c.DepthGain < 0 {
		bad("depth shade %v + %v*ooz must not be negative", c.ShadeFloor, c.DepthGain)
	}
	if c.ASCII && len(c.GlyphSet()) == 0 {
		bad("ascii mode needs a glyph set")
	}
	for _, r := range c.Glyphs {
		if runewidth.RuneWidth(r) != 1 {
			bad("glyph %q is not a single-cell character", r)
		}
	}
	if c.GlyphMode != GlyphRandom && c.GlyphMode != GlyphLuminance {
		bad("glyph mode %v", c.GlyphMode)
	}
	if c.PlaneExtent < 0 || c.PlaneLines < 0 {
		bad("plane grid extent %v lines %d", c.PlaneExtent, c.PlaneLines)
	}
	if c.FPS <= 0 {
		bad("frame rate %d must be positive", c.FPS)
	}
	return errors.Join(errs...)
}

// GlyphSet returns the glyphs ASCII mode draws from. Luminance mode falls
// back to LuminanceRamp when no glyphs are configured.
func (c Config) GlyphSet() []rune {
	if c.Glyphs == "" && c.GlyphMode == GlyphLuminance {
		return []rune(LuminanceRamp)
	}
	return []rune(c.Glyphs)
}

// FittedScale returns the projection scales, fitting any zero scale so the
// torus fills about three quarters of the raster height. ScaleX follows from
// ScaleY and the cell aspect ratio.
func (c Config) FittedScale() (sx, sy float64) {
	sx, sy = c.ScaleX, c.ScaleY
	if sy == 0 {
		sy = float64(c.Rows) * c.CameraDistance * 3 / (8 * (c.R1 + c.R2))
	}
	if sx == 0 {
		sx = sy * float64(c.PitchY) / float64(c.PitchX)
	}
	return sx, sy
}

// WithRaster returns a copy resized to cols x rows cells of the given pitch.
// Projection scales are reset so they refit the new raster.
func (c Config) WithRaster(cols, rows, pitchX, pitchY int) Config {
	c.Columns, c.Rows = cols, rows
	c.PitchX, c.PitchY = pitchX, pitchY
	c.ScaleX, c.ScaleY = 0, 0
	return c
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	c.ZoomLevels = append([]float64(nil), c.ZoomLevels...)
	c.Lights = append([]math3d.Vec3(nil), c.Lights...)
	themes := make([]Theme, len(c.Themes))
	for i, t := range c.Themes {
		themes[i] = Theme{
			Name:   t.Name,
			Stops:  append([]Color(nil), t.Stops...),
			Accent: append([]Color(nil), t.Accent...),
		}
		if len(t.Accent) == 0 {
			themes[i].Accent = nil
		}
	}
	c.Themes = themes
	return c
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
