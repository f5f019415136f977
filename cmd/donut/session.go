package main

import (
	"time"

	"github.com/taigrr/donut/pkg/control"
	"github.com/taigrr/donut/pkg/render"
)

// session ties one engine to the controller driving it. Every method runs
// on the frame goroutine.
type session struct {
	engine *render.Engine
	params *render.Params
	ctrl   *control.Controller
	hud    *HUD

	last   render.FrameStats
	totals render.FrameStats
	frames int
	start  time.Time
}

func newSession(cfg render.Config, keymap control.Keymap) (*session, error) {
	engine, err := render.NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	params := render.NewParams(cfg)
	ctrl, err := control.New(cfg, &params, keymap)
	if err != nil {
		return nil, err
	}
	return &session{
		engine: engine,
		params: ctrl.Params(),
		ctrl:   ctrl,
		hud:    NewHUD(),
		start:  time.Now(),
	}, nil
}

// frame renders the current pose into the frame buffer.
func (s *session) frame() *render.FrameBuffer {
	s.last = s.engine.Render(s.params)
	s.totals.Add(s.last)
	s.frames++
	s.hud.UpdateFPS()
	return s.engine.FrameBuffer()
}

// advance moves the animation to the next frame.
func (s *session) advance() {
	s.ctrl.Advance()
}

func (s *session) quitting() bool {
	return s.ctrl.QuitRequested()
}

func (s *session) hudLines() hudLines {
	return s.hud.lines(s.engine, s.params, s.last, s.ctrl.ZoomTarget())
}
