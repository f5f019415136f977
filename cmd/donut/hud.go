package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/donut/pkg/render"
)

var (
	hudBase  = lipgloss.NewStyle().Background(lipgloss.Color("#101014")).Padding(0, 1)
	hudFPS   = hudBase.Foreground(lipgloss.Color("#5fd75f"))
	hudTitle = hudBase.Foreground(lipgloss.Color("#ffffff")).Bold(true)
	hudInfo  = hudBase.Foreground(lipgloss.Color("#5fd7ff"))
	hudModes = hudBase.Foreground(lipgloss.Color("#e4e4e4"))
	hudHint  = hudBase.Foreground(lipgloss.Color("#d7d75f")).Faint(true)
)

// HUD tracks the frame rate and formats the status lines.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a HUD whose frame counter starts now.
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// hudLines is the unstyled HUD content.
type hudLines struct {
	FPS, Title, Info string
	Modes, Hint      string
}

func (h *HUD) lines(e *render.Engine, p *render.Params, stats render.FrameStats, zoomTarget float64) hudLines {
	theme := e.Theme(p)
	zoom := fmt.Sprintf("%.2f", p.Zoom)
	if math.Abs(zoomTarget-p.Zoom) >= 0.005 {
		zoom += fmt.Sprintf("→%.2f", zoomTarget)
	}
	info := fmt.Sprintf("zoom %s  spin %.1f  step %d°  %d pts", zoom, p.SpinSpeed, p.Detail, stats.Written)

	check := func(on bool, label string) string {
		if on {
			return "[✓] " + label
		}
		return "[ ] " + label
	}
	axes := ""
	for a := render.AxisX; a <= render.AxisZ; a++ {
		if p.AxisActive(a) {
			axes += a.String()
		}
	}
	if axes == "" {
		axes = "-"
	}
	var planes []string
	for _, pl := range render.AllPlanes {
		if p.Planes&pl != 0 {
			planes = append(planes, pl.String())
		}
	}
	modes := strings.Join([]string{
		check(p.Freeze, "freeze"),
		check(p.ASCII, "ascii"),
		check(p.HueRotation, "hue"),
		check(p.Transparent, "transparent"),
		"axes " + axes,
	}, "  ")
	if len(planes) > 0 {
		modes += "  planes " + strings.Join(planes, ",")
	}

	return hudLines{
		FPS:   fmt.Sprintf("%.0f FPS", h.fps),
		Title: theme.Name,
		Info:  info,
		Modes: modes,
		Hint:  "? hud  q quit",
	}
}

// Draw styles the HUD and draws it over the top and bottom rows of area.
func (h *HUD) Draw(scr uv.Screen, area uv.Rectangle, l hudLines) {
	w, bottom := area.Dx(), area.Max.Y-1
	if w <= 0 || area.Dy() < 2 {
		return
	}
	put := func(x, y int, s string) {
		sw := lipgloss.Width(s)
		x = max(min(x, area.Max.X-sw), area.Min.X)
		uv.NewStyledString(s).Draw(scr, uv.Rect(x, y, sw, 1))
	}

	fps := hudFPS.Render(l.FPS)
	title := hudTitle.Render(l.Title)
	info := hudInfo.Render(l.Info)
	put(area.Min.X, area.Min.Y, fps)
	put(area.Min.X+(w-lipgloss.Width(title))/2, area.Min.Y, title)
	put(area.Max.X-lipgloss.Width(info), area.Min.Y, info)

	hint := hudHint.Render(l.Hint)
	put(area.Min.X, bottom, hudModes.Render(l.Modes))
	put(area.Max.X-lipgloss.Width(hint), bottom, hint)
}
