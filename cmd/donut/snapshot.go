package main

import (
	"fmt"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/donut/pkg/math3d"
	"github.com/taigrr/donut/pkg/render"
	"github.com/taigrr/donut/pkg/surface"
)

// pose renders and advances frames times so headless output shows the
// same pose the terminal would after that many frames.
func (s *session) pose(frames int) {
	for i := range max(frames, 1) {
		if i > 0 {
			s.advance()
		}
		s.frame()
	}
}

func newSnapshotCmd(o *Overrides) *cobra.Command {
	var (
		out    string
		frames int
		scale  int
		radius int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames headless and save the last one as PNG or PPM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.Config()
			if err != nil {
				return err
			}
			km, err := o.Keymap(cfg)
			if err != nil {
				return err
			}
			s, err := newSession(cfg, km)
			if err != nil {
				return err
			}
			s.pose(frames)

			fb := s.engine.FrameBuffer()
			img := fb.Image(render.ImageOptions{
				PitchX: cfg.PitchX,
				PitchY: cfg.PitchY,
				Radius: radius,
				Scale:  scale,
			})
			if err := render.SaveImage(out, img); err != nil {
				return fmt.Errorf("snapshot: %w", err)
			}
			log.Infof("wrote %s (%dx%d, %d frames, %d points)", out, img.Bounds().Dx(), img.Bounds().Dy(), s.frames, s.last.Written)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "donut.png", "output file (.png or .ppm)")
	cmd.Flags().IntVar(&frames, "frames", 1, "frames to advance before capturing")
	cmd.Flags().IntVar(&scale, "scale", 1, "nearest-neighbour upscale factor")
	cmd.Flags().IntVar(&radius, "radius", 0, "point radius in pixels (0 uses half the cell pitch)")
	return cmd
}

func newExportCmd(o *Overrides) *cobra.Command {
	var (
		out    string
		step   int
		frames int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the shaded torus as a binary glTF mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.Config()
			if err != nil {
				return err
			}
			if step <= 0 {
				step = cfg.Detail
			}
			s, err := newSession(cfg, nil)
			if err != nil {
				return err
			}
			if frames > 0 {
				s.pose(frames)
			}
			params := s.params

			shader := render.NewShader(cfg)
			theme := s.engine.Theme(params)
			light := s.engine.Light(params)
			colorize := func(pt surface.Point) render.Color {
				c := shader.Base(theme, pt, render.Luminance(pt.Normal, light))
				if params.HueRotation {
					c = render.RotateHue(c, params.HuePhase)
				}
				c.A = 255
				return c
			}

			mesh := surface.Torus{R1: cfg.R1, R2: cfg.R2}.Mesh("donut", step, colorize)
			// Center and pose the mesh
			mesh.Transform(math3d.Euler(params.Angles).Mul(math3d.Translate(mesh.Center().Scale(-1))))
			if err := mesh.SaveGLB(out); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			size := mesh.Size()
			log.Infof("wrote %s (%d vertices, %d triangles, %.2fx%.2fx%.2f, theme %s)",
				out, mesh.VertexCount(), mesh.TriangleCount(), size.X, size.Y, size.Z, theme.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "donut.glb", "output file")
	cmd.Flags().IntVar(&step, "step", 0, "angular step in degrees (0 uses the detail setting)")
	cmd.Flags().IntVar(&frames, "frames", 0, "frames to advance before posing the mesh")
	return cmd
}
