package render

import (
	"fmt"
	"slices"

	"github.com/taigrr/donut/pkg/math3d"
)

// DefaultLights is the light direction cycle shared by every preset.
func DefaultLights() []math3d.Vec3 {
	return []math3d.Vec3{
		math3d.V3(0, 1, -1),
		math3d.V3(1, 1, -1),
		math3d.V3(0, -1, -1),
		math3d.V3(1, 0, -1),
	}
}

var presets = map[string]func() Config{
	"classic":    classicPreset,
	"studio":     studioPreset,
	"axis":       axisPreset,
	"background": backgroundPreset,
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset returns a fresh copy of the named configuration.
func Preset(name string) (Config, error) {
	build, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	return build(), nil
}

// base holds the values every preset starts from: a 1280x720 window at
// 3x6 pixel cells.
func base() Config {
	return Config{
		Columns:          1280 / 3,
		Rows:             720 / 6,
		PitchX:           3,
		PitchY:           6,
		R1:               1.1,
		R2:               2.5,
		CameraDistance:   5,
		ScaleX:           80,
		ScaleY:           40,
		Detail:           2,
		DetailMax:        12,
		Zoom:             1,
		ZoomMin:          0.1,
		ZoomMax:          5,
		SpinSpeed:        1,
		SpinStep:         0.1,
		SpinMin:          0.1,
		SpinMax:          5,
		Sensitivity:      0.01,
		Lights:           DefaultLights(),
		Themes:           []Theme{DefaultTheme},
		TransparentAlpha: 100,
		ShadeFloor:       0.7,
		DepthGain:        0.6,
		Background:       RGB(10, 10, 10),
		Glyphs:           "RAUNAK",
		GlyphMode:        GlyphRandom,
		Seed:             1,
		PlaneExtent:      4,
		PlaneLines:       9,
		FPS:              60,
	}
}

// classicPreset spins about X and Y with drag-to-rotate and a three-theme
// cycle.
func classicPreset() Config {
	c := base()
	c.AxisStep = math3d.V3(0.02, 0.01, 0)
	c.ActiveAxes = [3]bool{true, true, false}
	c.ZoomLevels = []float64{1, 1.5}
	c.ZoomStep = 0.1
	c.Themes, _ = ThemesByName("Pink Metal", "Rendered", "Normal")
	c.Theme = 1
	c.HueStep = 0.005
	return c
}

// studioPreset cross-fades two palettes around the ring and starts in
// ASCII mode.
func studioPreset() Config {
	c := base()
	c.AxisStep = math3d.V3(0.02, 0.01, 0)
	c.ActiveAxes = [3]bool{true, true, false}
	c.Zoom = 1.5
	c.ZoomStep = 0.1
	c.SpinSpeed = 5
	c.SpinStep = 0.2
	c.SpinMin = 0
	c.SpinMax = 20
	c.Themes, _ = ThemesByName("Plasma Pink", "Metallic", "Studio Render", "Crystal", "Solar Ember", "Aqua Radiance")
	c.Theme = 2
	c.ShadeFloor = 0.8
	c.DepthGain = 0.7
	c.ASCII = true
	c.Glyphs = "RAM"
	return c
}

// axisPreset starts still, rotates only on request, and offers the
// reference-plane overlays.
func axisPreset() Config {
	c := base()
	c.AxisStep = math3d.V3(0.3, 0.3, 0.3)
	c.Freeze = true
	c.ZoomLevels = []float64{1, 1.5, 2, 2.5}
	c.Themes, _ = ThemesByName("Rendered", "Normal", "Midnight")
	c.HueRotation = true
	c.HueStep = 0.004
	return c
}

// backgroundPreset is the slow, hue-cycling ring drawn behind the launcher.
func backgroundPreset() Config {
	c := base()
	c.PitchX, c.PitchY = 6, 12
	c.Columns, c.Rows = 1280/6, 720/12
	c.CameraDistance = 8
	c.Detail = 4
	c.AxisStep = math3d.V3(0.025, 0.012, 0)
	c.ActiveAxes = [3]bool{true, true, false}
	c.Lights = []math3d.Vec3{math3d.V3(0, 1, -1)}
	c.Themes = []Theme{DefaultTheme}
	c.HueRotation = true
	c.HueStep = 0.002
	c.Background = RGB(20, 22, 30)
	return c
}
