package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/terminal/ansipixels"
	"github.com/taigrr/donut/pkg/control"
)

// runANSI drives the session with fortio ansipixels. Each terminal cell
// shows two half-block pixels, so the raster is W x 2H with square pitch.
func runANSI(ctx context.Context, s *session) error {
	ap := ansipixels.NewAnsiPixels(float64(s.engine.Config().FPS))
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	ap.HideCursor()
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.ClearScreen()
		ap.Restore()
	}()
	ap.MouseTrackingOn()
	ap.ClearScreen()

	if err := s.engine.Resize(ap.W, ap.H*2, 1, 1); err != nil {
		return err
	}
	ap.OnResize = func() error {
		ap.ClearScreen()
		return s.engine.Resize(ap.W, ap.H*2, 1, 1)
	}

	var frameErr error
	err := ap.FPSTicks(ctx, func(context.Context) bool {
		if err := s.handleANSI(ap); err != nil {
			frameErr = err
			return false
		}
		if s.quitting() {
			return false
		}
		fb := s.frame()
		ap.StartSyncMode()
		if err := ap.DrawTrueColorImage(0, 0, fb.ToImage()); err != nil {
			frameErr = err
			return false
		}
		if s.params.HUD {
			l := s.hudLines()
			ap.WriteAt(0, 0, "%s  %s  %s", l.FPS, l.Title, l.Info)
			ap.WriteAt(0, ap.H-1, "%s  %s", l.Modes, l.Hint)
		}
		ap.EndSyncMode()
		s.advance()
		return true
	})
	if frameErr != nil {
		return fmt.Errorf("frame: %w", frameErr)
	}
	return err
}

// handleANSI feeds the input read during the last tick to the controller.
// Mouse rows are halved back to pixel rows of the raster.
func (s *session) handleANSI(ap *ansipixels.AnsiPixels) error {
	switch {
	case ap.LeftClick() && !s.ctrl.Dragging():
		s.ctrl.Handle(control.PointerEvent{Kind: control.PointerDown, X: ap.Mx, Y: ap.My * 2})
	case ap.LeftClick(), ap.LeftDrag():
		s.ctrl.Handle(control.PointerEvent{Kind: control.PointerMove, X: ap.Mx, Y: ap.My * 2})
	case s.ctrl.Dragging():
		s.ctrl.Handle(control.PointerEvent{Kind: control.PointerUp, X: ap.Mx, Y: ap.My * 2})
	}
	if ap.MouseWheelUp() {
		s.ctrl.Handle(control.WheelEvent{Delta: 1})
	}
	if ap.MouseWheelDown() {
		s.ctrl.Handle(control.WheelEvent{Delta: -1})
	}
	for _, sym := range keySymbols(ap.Data) {
		if err := s.ctrl.Handle(control.KeyEvent{Symbol: sym}); err != nil {
			return err
		}
	}
	return nil
}

var escapeKeys = map[string]string{
	"\x1b[A": "up",
	"\x1b[B": "down",
	"\x1b[C": "right",
	"\x1b[D": "left",
	"\x1bOA": "up",
	"\x1bOB": "down",
	"\x1bOC": "right",
	"\x1bOD": "left",
}

// keySymbols splits raw terminal input into key symbols matching the
// keymap's spelling. SGR mouse reports are skipped.
func keySymbols(data []byte) []string {
	var out []string
	s := string(data)
	for s != "" {
		if strings.HasPrefix(s, "\x1b[<") {
			end := strings.IndexAny(s, "mM")
			if end < 0 {
				break
			}
			s = s[end+1:]
			continue
		}
		if s[0] == 0x1b {
			matched := false
			for seq, sym := range escapeKeys {
				if strings.HasPrefix(s, seq) {
					out = append(out, sym)
					s = s[len(seq):]
					matched = true
					break
				}
			}
			if !matched {
				out = append(out, "esc")
				s = s[1:]
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		switch {
		case r == ' ':
			out = append(out, "space")
		case r == 0x03:
			out = append(out, "ctrl+c")
		case r < 0x20 || r == 0x7f:
		default:
			out = append(out, string(r))
		}
		s = s[size:]
	}
	return out
}
