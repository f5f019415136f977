package control

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/donut/pkg/render"
)

// Controller owns the mutation of a render.Params. It is not safe for
// concurrent use: presenters queue input and hand it over between frames.
type Controller struct {
	cfg      render.Config
	params   *render.Params
	defaults render.Params
	keymap   Keymap

	dragging     bool
	lastX, lastY int

	zoomTarget   float64
	zoomVelocity float64
	spring       harmonica.Spring

	quit bool
}

// New validates keymap against cfg and returns a controller driving params.
// Every binding must name a known action that cfg supports.
func New(cfg render.Config, params *render.Params, keymap Keymap) (*Controller, error) {
	if err := keymap.Validate(cfg); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:        cfg,
		params:     params,
		defaults:   *params,
		keymap:     keymap,
		zoomTarget: params.Zoom,
		spring:     harmonica.NewSpring(harmonica.FPS(cfg.FPS), 6.0, 1.0),
	}, nil
}

// Params returns the parameters being driven.
func (c *Controller) Params() *render.Params {
	return c.params
}

// Keymap returns the active bindings.
func (c *Controller) Keymap() Keymap {
	return c.keymap
}

// QuitRequested reports whether the quit action has run.
func (c *Controller) QuitRequested() bool {
	return c.quit
}

// ZoomTarget is the zoom the displayed zoom is moving toward.
func (c *Controller) ZoomTarget() float64 {
	return c.zoomTarget
}

// Dragging reports whether a pointer button is held.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Apply runs a single action.
func (c *Controller) Apply(a Action) error {
	def, ok := actions[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
	if def.supported != nil && !def.supported(c.cfg) {
		return fmt.Errorf("%w: %q", ErrUnsupportedAction, a)
	}
	def.run(c)
	return nil
}

// HandleKey applies the first binding whose symbol matches and returns its
// action, or "" when nothing matched.
func (c *Controller) HandleKey(match func(symbol string) bool) (Action, error) {
	for _, b := range c.keymap {
		if match(b.Symbol) {
			if err := c.Apply(b.Action); err != nil {
				return b.Action, fmt.Errorf("key %q: %w", b.Symbol, err)
			}
			return b.Action, nil
		}
	}
	return "", nil
}

// Handle dispatches a queued input event. Only key events can fail.
func (c *Controller) Handle(ev Event) error {
	switch ev := ev.(type) {
	case KeyEvent:
		_, err := c.HandleKey(func(s string) bool { return s == ev.Symbol })
		return err
	case PointerEvent:
		switch ev.Kind {
		case PointerDown:
			c.PointerDown(ev.X, ev.Y)
		case PointerMove:
			c.PointerMove(ev.X, ev.Y)
		case PointerUp:
			c.PointerUp()
		}
	case WheelEvent:
		c.wheel(ev.Delta)
	case QuitEvent:
		c.quit = true
	}
	return nil
}

func (c *Controller) wheel(delta int) {
	switch {
	case delta == 0:
	case c.cfg.ZoomStep > 0 && delta > 0:
		c.setZoom(c.zoomTarget + c.cfg.ZoomStep)
	case c.cfg.ZoomStep > 0:
		c.setZoom(c.zoomTarget - c.cfg.ZoomStep)
	case len(c.cfg.ZoomLevels) > 0:
		c.cycleZoom()
	}
}

// PointerDown starts a drag at (x, y).
func (c *Controller) PointerDown(x, y int) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// PointerMove rotates by the movement since the last pointer position while
// a drag is in progress.
func (c *Controller) PointerMove(x, y int) {
	if !c.dragging {
		return
	}
	c.Drag(float64(x-c.lastX), float64(y-c.lastY))
	c.lastX, c.lastY = x, y
}

// PointerUp ends a drag.
func (c *Controller) PointerUp() {
	c.dragging = false
}

// Drag rotates the active axes by a pointer delta: vertical movement turns
// X, horizontal movement turns Y and Z.
func (c *Controller) Drag(dx, dy float64) {
	p := c.params
	s := c.cfg.Sensitivity
	if p.ActiveAxes[render.AxisX] {
		p.Angles.X += dy * s
	}
	if p.ActiveAxes[render.AxisY] {
		p.Angles.Y += dx * s
	}
	if p.ActiveAxes[render.AxisZ] {
		p.Angles.Z += dx * s
	}
}

// Advance moves the animation forward one frame: active axes spin unless
// frozen, the hue phase cycles when enabled, and eased zoom steps toward
// its target.
func (c *Controller) Advance() {
	p := c.params
	if !p.Freeze {
		for axis := range 3 {
			if p.ActiveAxes[axis] {
				step := c.cfg.AxisStep.Axis(axis) * p.SpinSpeed
				p.Angles = p.Angles.WithAxis(axis, p.Angles.Axis(axis)+step)
			}
		}
	}
	if p.HueRotation {
		p.HuePhase = math.Mod(p.HuePhase+c.cfg.HueStep, 1)
		if p.HuePhase < 0 {
			p.HuePhase++
		}
	}
	if c.cfg.ZoomEasing && p.Zoom != c.zoomTarget {
		p.Zoom, c.zoomVelocity = c.spring.Update(p.Zoom, c.zoomVelocity, c.zoomTarget)
		if math.Abs(p.Zoom-c.zoomTarget) < 1e-3 && math.Abs(c.zoomVelocity) < 1e-3 {
			p.Zoom, c.zoomVelocity = c.zoomTarget, 0
		}
	}
}

func (c *Controller) setZoom(z float64) {
	c.zoomTarget = math.Max(c.cfg.ZoomMin, math.Min(c.cfg.ZoomMax, z))
	if !c.cfg.ZoomEasing {
		c.params.Zoom = c.zoomTarget
	}
}

func (c *Controller) cycleZoom() {
	levels := c.cfg.ZoomLevels
	i := zoomIndex(levels, c.zoomTarget)
	c.setZoom(levels[(i+1)%len(levels)])
}

// reset restores the presentation defaults and keeps the pose, mode and
// overlays.
func (c *Controller) reset() {
	d := c.defaults
	p := c.params
	p.Theme = d.Theme
	p.SpinSpeed = d.SpinSpeed
	p.Detail = d.Detail
	p.HueRotation = d.HueRotation
	p.HuePhase = 0
	p.Freeze = d.Freeze
	c.setZoom(d.Zoom)
}
