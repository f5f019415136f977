package render

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestPresetsValidate(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("nope")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestPresetFreshCopies(t *testing.T) {
	a, _ := Preset("studio")
	a.Themes[0].Stops[0] = RGB(1, 2, 3)
	a.Lights[0].X = 42
	b, _ := Preset("studio")
	if b.Themes[0].Stops[0] == RGB(1, 2, 3) || b.Lights[0].X == 42 {
		t.Error("presets share state between calls")
	}
}

func TestValidateReportsEverything(t *testing.T) {
	err := Config{}.Validate()
	if err == nil {
		t.Fatal("zero config validated")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err does not wrap ErrInvalidConfig: %v", err)
	}
	for _, want := range []string{"raster", "cell pitch", "angular step", "light list", "theme list"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}
}

func TestValidateCases(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero pitch", func(c *Config) { c.PitchY = 0 }, "cell pitch"},
		{"negative raster", func(c *Config) { c.Columns = -1 }, "raster"},
		{"step below one", func(c *Config) { c.Detail = 0 }, "angular step"},
		{"empty themes", func(c *Config) { c.Themes = nil; c.Theme = 0 }, "theme list"},
		{"one-stop theme", func(c *Config) { c.Themes = []Theme{{Name: "flat", Stops: []Color{RGB(1, 1, 1)}}} }, "at least 2 stops"},
		{"mismatched accent", func(c *Config) {
			c.Themes = []Theme{{Name: "odd", Stops: DefaultTheme.Stops, Accent: DefaultTheme.Stops[:2]}}
		}, "accent"},
		{"zero light", func(c *Config) { c.Lights[0] = c.Lights[0].Scale(0) }, "zero vector"},
		{"light index", func(c *Config) { c.Light = 9 }, "light index"},
		{"wide glyph", func(c *Config) { c.Glyphs = "a日" }, "single-cell"},
		{"ascii without glyphs", func(c *Config) { c.ASCII = true; c.Glyphs = "" }, "glyph set"},
		{"zoom range", func(c *Config) { c.ZoomMin = 3; c.ZoomMax = 2 }, "zoom"},
		{"spin range", func(c *Config) { c.SpinMin = 3; c.SpinMax = 2 }, "spin range"},
		{"zoom above max", func(c *Config) { c.Zoom = 10 }, "zoom 10 outside"},
		{"zoom below min", func(c *Config) { c.ZoomMin = 1.2 }, "zoom 1 outside"},
		{"zoom level above max", func(c *Config) { c.ZoomMax = 1.2 }, "zoom level 1.5 outside"},
		{"spin above max", func(c *Config) { c.SpinSpeed = 50 }, "spin speed 50 outside"},
		{"spin below min", func(c *Config) { c.SpinSpeed = 0 }, "spin speed 0 outside"},
		{"frame rate", func(c *Config) { c.FPS = 0 }, "frame rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := Preset("classic")
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidConfig) || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLuminanceModeNeedsNoGlyphs(t *testing.T) {
	cfg, _ := Preset("classic")
	cfg.ASCII = true
	cfg.Glyphs = ""
	cfg.GlyphMode = GlyphLuminance
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if got := string(cfg.GlyphSet()); got != LuminanceRamp {
		t.Errorf("GlyphSet = %q", got)
	}
}

func TestParseGlyphMode(t *testing.T) {
	for _, m := range []GlyphMode{GlyphRandom, GlyphLuminance} {
		got, err := ParseGlyphMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseGlyphMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseGlyphMode("sparkle"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v", err)
	}
}

func TestFittedScale(t *testing.T) {
	cfg, _ := Preset("classic")
	if sx, sy := cfg.FittedScale(); sx != 80 || sy != 40 {
		t.Errorf("explicit scales changed: %v, %v", sx, sy)
	}

	cfg = cfg.WithRaster(80, 40, 1, 2)
	sx, sy := cfg.FittedScale()
	wantY := 40 * 5 * 3 / (8 * 3.6)
	if math.Abs(sy-wantY) > 1e-9 {
		t.Errorf("ScaleY = %v, want %v", sy, wantY)
	}
	if math.Abs(sx-2*wantY) > 1e-9 {
		t.Errorf("ScaleX = %v, want %v", sx, 2*wantY)
	}
}

func TestClone(t *testing.T) {
	cfg, _ := Preset("studio")
	c := cfg.Clone()
	c.Themes[0].Accent[0] = RGB(0, 0, 0)
	c.ZoomLevels = append(c.ZoomLevels, 9)
	if cfg.Themes[0].Accent[0] == RGB(0, 0, 0) {
		t.Error("Clone shares theme stops")
	}
}
