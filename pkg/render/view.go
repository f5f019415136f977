package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// PointGlyph is drawn for populated cells that carry no glyph.
const PointGlyph = "•"

// overlayGlyph marks reference-plane cells not covered by the torus.
const overlayGlyph = "·"

// View draws a FrameBuffer onto a terminal screen, one cell per raster
// cell, starting at the top-left corner of the target area.
type View struct {
	FB *FrameBuffer
}

// Draw converts the frame buffer to terminal cells and draws them on the
// screen. Cells outside both the area and the raster are left untouched.
func (v View) Draw(scr uv.Screen, area uv.Rectangle) {
	fb := v.FB
	for row := area.Min.Y; row < area.Max.Y; row++ {
		y := row - area.Min.Y
		if y >= fb.Rows {
			break
		}
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Columns {
				break
			}
			scr.SetCell(col, row, v.cell(x+fb.Columns*y))
		}
	}
}

func (v View) cell(idx int) *uv.Cell {
	fb := v.FB
	bg := fb.Background
	content := " "
	var fg Color

	if fb.Populated(idx) {
		fg = blendOver(fb.Colors[idx], bg)
		content = PointGlyph
		if g := fb.Glyphs[idx]; g != 0 {
			content = string(g)
		}
	}
	if ov := fb.Overlay[idx]; ov.A != 0 {
		if fb.Populated(idx) {
			fg = blendOver(ov, fg)
		} else {
			ov.A = 255
			fg = ov
			content = overlayGlyph
		}
	}

	return &uv.Cell{
		Content: content,
		Width:   1,
		Style: uv.Style{
			Fg: rgbaToColor(fg),
			Bg: rgbaToColor(bg),
		},
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
