package main

import (
	"fmt"
	"strings"

	"fortio.org/log"
	"fortio.org/struct2env"
	"github.com/spf13/pflag"
	"github.com/taigrr/donut/pkg/control"
	"github.com/taigrr/donut/pkg/render"
)

// Overrides is the flat set of knobs that may come from the environment
// (DONUT_PRESET, DONUT_DETAIL, ...) or from flags. Zero values keep the
// preset's setting.
type Overrides struct {
	Preset      string
	Columns     int
	Rows        int
	Detail      int
	Zoom        float64
	Spin        float64
	Theme       string
	Glyphs      string
	GlyphMode   string
	ASCII       bool
	Transparent bool
	Hue         bool
	Freeze      bool
	Easing      bool
	Seed        uint64
	FPS         int
	Bg          string
	Bind        string // comma separated symbol=action pairs
	LogLevel    string
	Backend     string
}

const envPrefix = "DONUT_"

func defaultOverrides() Overrides {
	return Overrides{
		Preset:   "classic",
		LogLevel: "info",
		Backend:  "uv",
	}
}

// loadOverrides returns the defaults with any DONUT_* variables applied.
func loadOverrides() Overrides {
	o := defaultOverrides()
	for _, err := range struct2env.SetFromEnv(envPrefix, &o) {
		log.Warnf("environment: %v", err)
	}
	return o
}

// bind registers the persistent flags. Flag defaults are the values
// already loaded from the environment, so flags take precedence.
func (o *Overrides) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Preset, "preset", "p", o.Preset, "configuration preset ("+strings.Join(render.PresetNames(), ", ")+")")
	fs.IntVar(&o.Columns, "cols", o.Columns, "raster columns for headless output (0 uses the preset)")
	fs.IntVar(&o.Rows, "rows", o.Rows, "raster rows for headless output (0 uses the preset)")
	fs.IntVar(&o.Detail, "detail", o.Detail, "angular step in degrees")
	fs.Float64Var(&o.Zoom, "zoom", o.Zoom, "initial zoom")
	fs.Float64Var(&o.Spin, "spin", o.Spin, "initial spin speed")
	fs.StringVar(&o.Theme, "theme", o.Theme, "initial theme by name")
	fs.StringVar(&o.Glyphs, "glyphs", o.Glyphs, "glyph set for ascii mode")
	fs.StringVar(&o.GlyphMode, "glyph-mode", o.GlyphMode, "glyph selection: random or luminance")
	fs.BoolVar(&o.ASCII, "ascii", o.ASCII, "start in ascii mode")
	fs.BoolVar(&o.Transparent, "transparent", o.Transparent, "start with reduced opacity")
	fs.BoolVar(&o.Hue, "hue", o.Hue, "start with hue rotation")
	fs.BoolVar(&o.Freeze, "freeze", o.Freeze, "start frozen")
	fs.BoolVar(&o.Easing, "easing", o.Easing, "ease zoom changes with a spring")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "seed for random glyphs (0 uses the preset)")
	fs.IntVar(&o.FPS, "fps", o.FPS, "target frames per second")
	fs.StringVar(&o.Bg, "bg", o.Bg, "background color (R,G,B)")
	fs.StringVar(&o.Bind, "bind", o.Bind, "extra key bindings, e.g. \"w=zoom-in,s=zoom-out\"")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level (debug, info, warning, error)")
	fs.StringVar(&o.Backend, "backend", o.Backend, "terminal backend: uv or ansi")
}

// setupLogging validates and applies the log level.
func (o Overrides) setupLogging() error {
	lvl, err := log.ValidateLevel(o.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLogLevel(lvl)
	return nil
}

// Config builds the render configuration: preset first, then every
// non-zero override. The result is validated.
func (o Overrides) Config() (render.Config, error) {
	cfg, err := render.Preset(o.Preset)
	if err != nil {
		return render.Config{}, err
	}
	if o.Columns > 0 || o.Rows > 0 {
		cols, rows := cfg.Columns, cfg.Rows
		if o.Columns > 0 {
			cols = o.Columns
		}
		if o.Rows > 0 {
			rows = o.Rows
		}
		cfg = cfg.WithRaster(cols, rows, cfg.PitchX, cfg.PitchY)
	}
	if o.Detail > 0 {
		cfg.Detail = o.Detail
		cfg.DetailMax = max(cfg.DetailMax, o.Detail)
	}
	if o.Zoom > 0 {
		cfg.Zoom = o.Zoom
	}
	if o.Spin > 0 {
		cfg.SpinSpeed = o.Spin
	}
	if o.Theme != "" {
		i := render.ThemeIndex(cfg.Themes, o.Theme)
		if i < 0 {
			t, err := render.ThemesByName(o.Theme)
			if err != nil {
				return render.Config{}, err
			}
			cfg.Themes = append(cfg.Themes, t...)
			i = len(cfg.Themes) - 1
		}
		cfg.Theme = i
	}
	if o.Glyphs != "" {
		cfg.Glyphs = o.Glyphs
	}
	if o.GlyphMode != "" {
		m, err := render.ParseGlyphMode(o.GlyphMode)
		if err != nil {
			return render.Config{}, err
		}
		cfg.GlyphMode = m
	}
	cfg.ASCII = cfg.ASCII || o.ASCII
	cfg.Transparent = cfg.Transparent || o.Transparent
	cfg.HueRotation = cfg.HueRotation || o.Hue
	cfg.Freeze = cfg.Freeze || o.Freeze
	cfg.ZoomEasing = cfg.ZoomEasing || o.Easing
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	if o.FPS > 0 {
		cfg.FPS = o.FPS
	}
	if o.Bg != "" {
		c, err := parseRGB(o.Bg)
		if err != nil {
			return render.Config{}, err
		}
		cfg.Background = c
	}
	if err := cfg.Validate(); err != nil {
		return render.Config{}, err
	}
	return cfg, nil
}

// Keymap returns the default bindings for cfg with --bind applied.
func (o Overrides) Keymap(cfg render.Config) (control.Keymap, error) {
	km := control.DefaultKeymap(cfg)
	if o.Bind == "" {
		return km, nil
	}
	var extra []control.Binding
	for _, s := range strings.Split(o.Bind, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		b, err := control.ParseBinding(s)
		if err != nil {
			return nil, err
		}
		extra = append(extra, b)
	}
	km = km.With(extra...)
	if err := km.Validate(cfg); err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	return km, nil
}

func parseRGB(s string) (render.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return render.Color{}, fmt.Errorf("background %q: want R,G,B: %w", s, err)
	}
	return render.RGB(r, g, b), nil
}
