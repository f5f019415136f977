package render

import (
	"fmt"
	"math/rand/v2"

	"github.com/taigrr/donut/pkg/math3d"
	"github.com/taigrr/donut/pkg/surface"
)

// FrameStats counts what happened to each sample during one frame.
type FrameStats struct {
	Sampled    int // points produced by the sampler
	Written    int // points that won the depth test
	Occluded   int // points behind an earlier write to the same cell
	OutOfRange int // points projected off the raster
	Degenerate int // points whose depth cancelled the camera distance
}

// Add accumulates o into s.
func (s *FrameStats) Add(o FrameStats) {
	s.Sampled += o.Sampled
	s.Written += o.Written
	s.Occluded += o.Occluded
	s.OutOfRange += o.OutOfRange
	s.Degenerate += o.Degenerate
}

// Engine runs the per-frame pipeline: sample, rotate, project, depth test,
// shade and write. It owns its buffers and reuses them every frame. An
// Engine is used from a single goroutine.
type Engine struct {
	cfg     Config
	fb      *FrameBuffer
	proj    Projector
	sampler *surface.Sampler
	shader  *Shader
	glyphs  []rune
	rng     *rand.Rand
}

// NewEngine validates cfg and allocates the frame buffer.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()
	return &Engine{
		cfg:     cfg,
		fb:      NewFrameBuffer(cfg.Columns, cfg.Rows, cfg.Background),
		proj:    NewProjector(cfg),
		sampler: surface.NewSampler(surface.Torus{R1: cfg.R1, R2: cfg.R2}),
		shader:  NewShader(cfg),
		glyphs:  cfg.GlyphSet(),
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// FrameBuffer returns the buffer written by Render. Its contents are only
// stable between calls to Render.
func (e *Engine) FrameBuffer() *FrameBuffer {
	return e.fb
}

// Projector returns the projector as posed by the last Render.
func (e *Engine) Projector() *Projector {
	return &e.proj
}

// Resize reallocates the buffers for a new raster and refits the
// projection scales to it.
func (e *Engine) Resize(cols, rows, pitchX, pitchY int) error {
	cfg := e.cfg.WithRaster(cols, rows, pitchX, pitchY)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("resize %dx%d: %w", cols, rows, err)
	}
	e.cfg = cfg
	e.fb = NewFrameBuffer(cols, rows, cfg.Background)
	e.proj = NewProjector(cfg)
	return nil
}

// Theme returns the theme p selects.
func (e *Engine) Theme(p *Params) Theme {
	return e.cfg.Themes[wrapIndex(p.Theme, len(e.cfg.Themes))]
}

// Light returns the light direction p selects.
func (e *Engine) Light(p *Params) math3d.Vec3 {
	return e.cfg.Lights[wrapIndex(p.Light, len(e.cfg.Lights))]
}

// Render clears the frame buffer and draws the torus as posed by p.
func (e *Engine) Render(p *Params) FrameStats {
	var st FrameStats
	fb := e.fb
	fb.Clear()
	e.proj.SetAngles(p.Angles)
	theme := e.Theme(p)
	light := e.Light(p)

	for pt := range e.sampler.Points(p.Detail) {
		st.Sampled++
		pp, vis := e.proj.ProjectLocal(pt.Position, p.Zoom)
		switch vis {
		case Degenerate:
			st.Degenerate++
			continue
		case OutOfRange:
			st.OutOfRange++
			continue
		}

		idx := pp.X + fb.Columns*pp.Y
		if !fb.Nearer(idx, pp.OOZ) {
			st.Occluded++
			continue
		}
		lum := Luminance(pt.Normal, light)
		c := e.shader.Shade(theme, pt, lum, pp.OOZ, p)
		var glyph rune
		if p.ASCII {
			glyph = e.glyph(lum)
		}
		fb.WriteIfNearer(idx, pp.OOZ, c, glyph)
		st.Written++
	}

	if p.Planes != 0 {
		e.drawPlanes(p)
	}
	return st
}

// glyph picks the glyph for a written cell. Random mode consumes one draw
// from the seeded source per write.
func (e *Engine) glyph(lum float64) rune {
	if len(e.glyphs) == 0 {
		return 0
	}
	if e.cfg.GlyphMode == GlyphLuminance {
		i := int(lum * float64(len(e.glyphs)-1))
		return e.glyphs[min(max(i, 0), len(e.glyphs)-1)]
	}
	return e.glyphs[e.rng.IntN(len(e.glyphs))]
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
