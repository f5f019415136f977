// donut - spinning shaded torus for the terminal.
//
// Controls (default keymap):
//
//	Mouse drag  - Rotate (vertical turns X, horizontal turns Y and Z)
//	Scroll      - Zoom in/out
//	Space/F     - Freeze rotation
//	X/Y/Z       - Toggle rotation about an axis
//	E           - Reset angles
//	R           - Reset theme, speed, detail, zoom and hue
//	O           - Toggle transparency
//	C           - Cycle zoom levels
//	+/-         - Adjust zoom
//	T           - Next theme
//	H           - Toggle hue rotation
//	Up/Down     - Spin speed
//	d/D         - Finer/coarser sampling
//	L           - Next light direction
//	A           - Toggle ASCII glyphs
//	1-6         - Reference planes X, Y, Z, XY, XZ, YZ
//	?           - Toggle HUD overlay
//	Q/Esc       - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := loadOverrides()
	root := &cobra.Command{
		Use:   "donut",
		Short: "A spinning, shaded torus in your terminal",
		Long: "donut samples a torus, rotates and projects it with a depth buffer,\n" +
			"and shades every point through a color theme. Settings come from a preset,\n" +
			"then DONUT_* environment variables, then flags.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return o.setupLogging()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.Context(), &o)
		},
		SilenceUsage: true,
	}
	o.bind(root.PersistentFlags())
	root.AddCommand(
		newSnapshotCmd(&o),
		newExportCmd(&o),
		newThemesCmd(&o),
		newKeysCmd(&o),
	)
	return root
}

func runInteractive(ctx context.Context, o *Overrides) error {
	cfg, err := o.Config()
	if err != nil {
		return err
	}
	km, err := o.Keymap(cfg)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	s, err := newSession(cfg, km)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debugf("preset %s, backend %s, fps %d", o.Preset, o.Backend, cfg.FPS)
	switch o.Backend {
	case "uv":
		err = runUV(ctx, s)
	case "ansi":
		err = runANSI(ctx, s)
	default:
		return fmt.Errorf("unknown backend %q (want uv or ansi)", o.Backend)
	}

	t := s.totals
	log.Infof("%d frames in %v: %d sampled, %d written, %d occluded, %d off raster, %d degenerate",
		s.frames, time.Since(s.start).Round(time.Millisecond), t.Sampled, t.Written, t.Occluded, t.OutOfRange, t.Degenerate)
	return err
}
