// Package render rasterizes the shaded torus into a depth-tested cell buffer
// and draws that buffer to terminals and images.
package render

import "image"

// FrameBuffer holds per-cell depth, color and glyph for one frame, plus an
// overlay layer drawn on top without depth testing. All slices are
// row-major with idx = x + Columns*y and are reused across frames.
type FrameBuffer struct {
	Columns, Rows int
	Background    Color

	Depth   []float64 // inverse depth; 0 means empty
	Colors  []Color
	Glyphs  []rune // 0 when no glyph was written
	Overlay []Color
}

// NewFrameBuffer creates a cleared buffer of cols x rows cells.
func NewFrameBuffer(cols, rows int, background Color) *FrameBuffer {
	n := cols * rows
	fb := &FrameBuffer{
		Columns:    cols,
		Rows:       rows,
		Background: background,
		Depth:      make([]float64, n),
		Colors:     make([]Color, n),
		Glyphs:     make([]rune, n),
		Overlay:    make([]Color, n),
	}
	fb.Clear()
	return fb
}

// Len returns the number of cells.
func (fb *FrameBuffer) Len() int {
	return len(fb.Depth)
}

// Clear resets every cell to the empty depth sentinel and background color.
func (fb *FrameBuffer) Clear() {
	if len(fb.Depth) == 0 {
		return
	}
	// Use copy-doubling for faster clearing
	fb.Depth[0] = 0
	fb.Colors[0] = fb.Background
	fb.Glyphs[0] = 0
	fb.Overlay[0] = Color{}
	for i := 1; i < len(fb.Depth); i *= 2 {
		copy(fb.Depth[i:], fb.Depth[:i])
		copy(fb.Colors[i:], fb.Colors[:i])
		copy(fb.Glyphs[i:], fb.Glyphs[:i])
		copy(fb.Overlay[i:], fb.Overlay[:i])
	}
}

// Index returns the cell index of (x, y) and whether it is on the raster.
func (fb *FrameBuffer) Index(x, y int) (int, bool) {
	if x < 0 || x >= fb.Columns || y < 0 || y >= fb.Rows {
		return 0, false
	}
	return x + fb.Columns*y, true
}

// WriteIfNearer stores color and glyph at idx when depth is strictly greater
// than the stored depth, so equal depths keep the earlier write. Indexes
// off the buffer are ignored. It reports whether the cell was written.
func (fb *FrameBuffer) WriteIfNearer(idx int, depth float64, c Color, glyph rune) bool {
	if idx < 0 || idx >= len(fb.Depth) || !(depth > fb.Depth[idx]) {
		return false
	}
	fb.Depth[idx] = depth
	fb.Colors[idx] = c
	fb.Glyphs[idx] = glyph
	return true
}

// Nearer reports whether depth would win the depth test at idx.
func (fb *FrameBuffer) Nearer(idx int, depth float64) bool {
	return idx >= 0 && idx < len(fb.Depth) && depth > fb.Depth[idx]
}

// Populated reports whether any surface point was written to idx this frame.
func (fb *FrameBuffer) Populated(idx int) bool {
	return fb.Depth[idx] > 0
}

// Bounds returns the smallest rectangle of cells containing every populated
// cell, or the empty rectangle when nothing was drawn.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	r := image.Rectangle{}
	found := false
	for y := range fb.Rows {
		for x := range fb.Columns {
			if !fb.Populated(x + fb.Columns*y) {
				continue
			}
			cell := image.Rect(x, y, x+1, y+1)
			if !found {
				r, found = cell, true
				continue
			}
			r = r.Union(cell)
		}
	}
	return r
}

// SetOverlay paints an overlay cell. Off-raster coordinates are ignored.
func (fb *FrameBuffer) SetOverlay(x, y int, c Color) {
	if idx, ok := fb.Index(x, y); ok {
		fb.Overlay[idx] = c
	}
}

// DrawOverlayLine draws a line from (x0, y0) to (x1, y1) into the overlay
// using Bresenham's algorithm.
func (fb *FrameBuffer) DrawOverlayLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetOverlay(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
