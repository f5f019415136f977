package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	pnm "github.com/jbuchbinder/gopnm"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageOptions controls how a frame buffer becomes a picture.
type ImageOptions struct {
	PitchX, PitchY int // pixels per cell
	Radius         int // point sprite radius; 0 uses half the smaller pitch
	Scale          int // nearest-neighbour upscale factor; values below 2 disable it
}

// ToImage returns one opaque pixel per cell: surface colors blended over the
// background, then the overlay on top.
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Columns, fb.Rows))
	for y := range fb.Rows {
		for x := range fb.Columns {
			img.SetRGBA(x, y, fb.flatten(x+fb.Columns*y))
		}
	}
	return img
}

func (fb *FrameBuffer) flatten(idx int) Color {
	c := fb.Background
	c.A = 255
	if fb.Populated(idx) {
		c = blendOver(fb.Colors[idx], c)
	}
	if ov := fb.Overlay[idx]; ov.A != 0 {
		c = blendOver(ov, c)
	}
	return c
}

// Image draws every populated cell at its pixel pitch: glyph cells as
// basicfont text, the rest as filled discs.
func (fb *FrameBuffer) Image(opts ImageOptions) *image.RGBA {
	px, py := max(opts.PitchX, 1), max(opts.PitchY, 1)
	radius := opts.Radius
	if radius <= 0 {
		radius = max(min(px, py)/2, 1)
	}

	bg := fb.Background
	bg.A = 255
	img := image.NewRGBA(image.Rect(0, 0, fb.Columns*px, fb.Rows*py))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	face := basicfont.Face7x13
	for y := range fb.Rows {
		for x := range fb.Columns {
			idx := x + fb.Columns*y
			cx, cy := x*px+px/2, y*py+py/2
			if fb.Populated(idx) {
				c := blendOver(fb.Colors[idx], bg)
				if g := fb.Glyphs[idx]; g != 0 {
					d := font.Drawer{
						Dst:  img,
						Src:  image.NewUniform(c),
						Face: face,
						Dot:  fixed.P(cx-face.Width/2, cy+face.Ascent/2),
					}
					d.DrawString(string(g))
				} else {
					fillDisc(img, cx, cy, radius, c)
				}
			}
			if ov := fb.Overlay[idx]; ov.A != 0 {
				img.SetRGBA(cx, cy, blendOver(ov, img.RGBAAt(cx, cy)))
			}
		}
	}

	if opts.Scale < 2 {
		return img
	}
	scaled := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*opts.Scale, img.Bounds().Dy()*opts.Scale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return scaled
}

func fillDisc(img *image.RGBA, cx, cy, r int, c Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}

// ImageFormat names an encoder.
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatPPM ImageFormat = "ppm"
)

// FormatFromPath picks the encoder from a file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".ppm", ".pnm":
		return FormatPPM, nil
	}
	return "", fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
}

// EncodeImage writes img in the given format.
func EncodeImage(w io.Writer, format ImageFormat, img image.Image) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatPPM:
		return pnm.Encode(w, img, pnm.PPM)
	}
	return fmt.Errorf("unsupported image format %q", format)
}

// SaveImage writes img to path, choosing the format by extension.
func SaveImage(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeImage(f, format, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return f.Close()
}
