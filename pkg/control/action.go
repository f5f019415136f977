// Package control turns input events into changes of the render
// parameters. All state changes go through a table of named actions so
// key bindings stay data, not code.
package control

import (
	"errors"
	"math"
	"slices"

	"github.com/taigrr/donut/pkg/math3d"
	"github.com/taigrr/donut/pkg/render"
)

var (
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnsupportedAction = errors.New("action not supported by configuration")
)

// Action names a parameter mutation.
type Action string

const (
	ActionFreeze       Action = "freeze"
	ActionAxisX        Action = "axis-x"
	ActionAxisY        Action = "axis-y"
	ActionAxisZ        Action = "axis-z"
	ActionResetAngles  Action = "reset-angles"
	ActionReset        Action = "reset"
	ActionTransparency Action = "transparency"
	ActionZoomCycle    Action = "zoom-cycle"
	ActionZoomIn       Action = "zoom-in"
	ActionZoomOut      Action = "zoom-out"
	ActionThemeNext    Action = "theme-next"
	ActionHue          Action = "hue"
	ActionSpeedUp      Action = "speed-up"
	ActionSpeedDown    Action = "speed-down"
	ActionDetailUp     Action = "detail-up"
	ActionDetailDown   Action = "detail-down"
	ActionLightNext    Action = "light-next"
	ActionASCII        Action = "ascii"
	ActionPlaneX       Action = "plane-x"
	ActionPlaneY       Action = "plane-y"
	ActionPlaneZ       Action = "plane-z"
	ActionPlaneXY      Action = "plane-xy"
	ActionPlaneXZ      Action = "plane-xz"
	ActionPlaneYZ      Action = "plane-yz"
	ActionHUD          Action = "hud"
	ActionQuit         Action = "quit"
)

type actionDef struct {
	help      string
	run       func(c *Controller)
	supported func(cfg render.Config) bool // nil means always
}

var actions = map[Action]actionDef{
	ActionFreeze:       {help: "pause or resume auto-rotation", run: func(c *Controller) { c.params.Freeze = !c.params.Freeze }},
	ActionAxisX:        {help: "include X axis in rotation", run: toggleAxis(render.AxisX)},
	ActionAxisY:        {help: "include Y axis in rotation", run: toggleAxis(render.AxisY)},
	ActionAxisZ:        {help: "include Z axis in rotation", run: toggleAxis(render.AxisZ)},
	ActionResetAngles:  {help: "reset rotation angles to zero", run: func(c *Controller) { c.params.Angles = math3d.Vec3{} }},
	ActionReset:        {help: "restore theme, speed, detail, zoom and hue defaults", run: (*Controller).reset},
	ActionTransparency: {help: "toggle translucent points", run: func(c *Controller) { c.params.Transparent = !c.params.Transparent }},
	ActionZoomCycle: {
		help:      "cycle through the zoom levels",
		run:       (*Controller).cycleZoom,
		supported: func(cfg render.Config) bool { return len(cfg.ZoomLevels) > 0 },
	},
	ActionZoomIn: {
		help:      "zoom in",
		run:       func(c *Controller) { c.setZoom(c.zoomTarget + c.cfg.ZoomStep) },
		supported: func(cfg render.Config) bool { return cfg.ZoomStep > 0 },
	},
	ActionZoomOut: {
		help:      "zoom out",
		run:       func(c *Controller) { c.setZoom(c.zoomTarget - c.cfg.ZoomStep) },
		supported: func(cfg render.Config) bool { return cfg.ZoomStep > 0 },
	},
	ActionThemeNext: {help: "next color theme", run: func(c *Controller) {
		c.params.Theme = (c.params.Theme + 1) % len(c.cfg.Themes)
	}},
	ActionHue: {
		help:      "toggle hue rotation",
		run:       func(c *Controller) { c.params.HueRotation = !c.params.HueRotation },
		supported: func(cfg render.Config) bool { return cfg.HueStep != 0 },
	},
	ActionSpeedUp: {
		help: "spin faster",
		run: func(c *Controller) {
			c.params.SpinSpeed = math3d.Clamp(c.params.SpinSpeed+c.cfg.SpinStep, c.cfg.SpinMin, c.cfg.SpinMax)
		},
		supported: func(cfg render.Config) bool { return cfg.SpinStep > 0 },
	},
	ActionSpeedDown: {
		help: "spin slower",
		run: func(c *Controller) {
			c.params.SpinSpeed = math3d.Clamp(c.params.SpinSpeed-c.cfg.SpinStep, c.cfg.SpinMin, c.cfg.SpinMax)
		},
		supported: func(cfg render.Config) bool { return cfg.SpinStep > 0 },
	},
	ActionDetailUp: {help: "finer sampling (smaller angular step)", run: func(c *Controller) {
		c.params.Detail = max(c.params.Detail-1, 1)
	}},
	ActionDetailDown: {help: "coarser sampling (larger angular step)", run: func(c *Controller) {
		c.params.Detail = min(c.params.Detail+1, c.cfg.DetailMax)
	}},
	ActionLightNext: {help: "next light direction", run: func(c *Controller) {
		c.params.Light = (c.params.Light + 1) % len(c.cfg.Lights)
	}},
	ActionASCII: {
		help:      "switch between points and glyphs",
		run:       func(c *Controller) { c.params.ASCII = !c.params.ASCII },
		supported: func(cfg render.Config) bool { return len(cfg.GlyphSet()) > 0 },
	},
	ActionPlaneX:  planeAction(render.PlaneX),
	ActionPlaneY:  planeAction(render.PlaneY),
	ActionPlaneZ:  planeAction(render.PlaneZ),
	ActionPlaneXY: planeAction(render.PlaneXY),
	ActionPlaneXZ: planeAction(render.PlaneXZ),
	ActionPlaneYZ: planeAction(render.PlaneYZ),
	ActionHUD:     {help: "show or hide the status panel", run: func(c *Controller) { c.params.HUD = !c.params.HUD }},
	ActionQuit:    {help: "quit", run: func(c *Controller) { c.quit = true }},
}

func toggleAxis(a render.Axis) func(*Controller) {
	return func(c *Controller) {
		c.params.ActiveAxes[a] = !c.params.ActiveAxes[a]
	}
}

func planeAction(p render.Plane) actionDef {
	return actionDef{
		help:      "toggle the " + p.String() + " reference plane",
		run:       func(c *Controller) { c.params.Planes ^= p },
		supported: func(cfg render.Config) bool { return cfg.PlaneLines >= 2 && cfg.PlaneExtent > 0 },
	}
}

// Actions returns every known action name in sorted order.
func Actions() []Action {
	out := make([]Action, 0, len(actions))
	for a := range actions {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Describe returns a one-line description of a, or "" if it is unknown.
func Describe(a Action) string {
	return actions[a].help
}

// Supported reports whether cfg enables a. Unknown actions return
// ErrUnknownAction.
func Supported(cfg render.Config, a Action) (bool, error) {
	def, ok := actions[a]
	if !ok {
		return false, ErrUnknownAction
	}
	return def.supported == nil || def.supported(cfg), nil
}

// zoomIndex finds the zoom level closest to z.
func zoomIndex(levels []float64, z float64) int {
	best, dist := 0, math.Inf(1)
	for i, l := range levels {
		if d := math.Abs(l - z); d < dist {
			best, dist = i, d
		}
	}
	return best
}
