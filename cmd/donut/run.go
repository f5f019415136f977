package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/donut/pkg/control"
	"github.com/taigrr/donut/pkg/render"
	"golang.org/x/sync/errgroup"
)

// Terminal cells are about twice as tall as they are wide.
const cellPitchX, cellPitchY = 1, 2

var errNotTerminal = errors.New("stdout is not a terminal; use the snapshot command for headless output")

// runUV drives the session on an ultraviolet terminal. One goroutine pumps
// input events into a queue; the frame loop drains the queue between
// frames so the controller is only touched from one goroutine.
func runUV(ctx context.Context, s *session) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := s.engine.Resize(width, height, cellPitchX, cellPitchY); err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	queue := make(chan uv.Event, 64)

	g.Go(func() error {
		events := term.Events()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				select {
				case queue <- ev:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		defer cancel()
		ticker := time.NewTicker(time.Second / time.Duration(s.engine.Config().FPS))
		defer ticker.Stop()
		for {
		drain:
			for {
				select {
				case ev := <-queue:
					if err := s.handleUV(term, ev); err != nil {
						return err
					}
				default:
					break drain
				}
			}
			if s.quitting() {
				return nil
			}

			fb := s.frame()
			area := term.Bounds()
			render.View{FB: fb}.Draw(term, area)
			if s.params.HUD {
				s.hud.Draw(term, area, s.hudLines())
			}
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
			s.advance()

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	return g.Wait()
}

// handleUV translates one terminal event for the controller.
func (s *session) handleUV(term *uv.Terminal, ev uv.Event) error {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		term.Erase()
		term.Resize(ev.Width, ev.Height)
		if ev.Width > 0 && ev.Height > 0 {
			return s.engine.Resize(ev.Width, ev.Height, cellPitchX, cellPitchY)
		}
	case uv.KeyPressEvent:
		if _, err := s.ctrl.HandleKey(func(sym string) bool { return ev.MatchString(sym) }); err != nil {
			return err
		}
	case uv.MouseClickEvent:
		if ev.Button == uv.MouseLeft {
			s.ctrl.Handle(control.PointerEvent{Kind: control.PointerDown, X: ev.X, Y: ev.Y})
		}
	case uv.MouseMotionEvent:
		s.ctrl.Handle(control.PointerEvent{Kind: control.PointerMove, X: ev.X, Y: ev.Y})
	case uv.MouseReleaseEvent:
		s.ctrl.Handle(control.PointerEvent{Kind: control.PointerUp, X: ev.X, Y: ev.Y})
	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			s.ctrl.Handle(control.WheelEvent{Delta: 1})
		case uv.MouseWheelDown:
			s.ctrl.Handle(control.WheelEvent{Delta: -1})
		}
	}
	return nil
}
