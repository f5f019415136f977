package render

import (
	"image"
	"testing"
)

func TestFrameBufferClear(t *testing.T) {
	bg := RGB(10, 10, 10)
	fb := NewFrameBuffer(7, 5, bg)
	fb.WriteIfNearer(3, 0.5, RGB(1, 2, 3), 'x')
	fb.SetOverlay(1, 1, RGB(9, 9, 9))
	fb.Clear()
	for i := range fb.Len() {
		if fb.Depth[i] != 0 || fb.Colors[i] != bg || fb.Glyphs[i] != 0 || fb.Overlay[i].A != 0 {
			t.Fatalf("cell %d not cleared: depth=%v color=%v glyph=%q overlay=%v",
				i, fb.Depth[i], fb.Colors[i], fb.Glyphs[i], fb.Overlay[i])
		}
	}
}

func TestWriteIfNearer(t *testing.T) {
	first, second := RGB(255, 0, 0), RGB(0, 255, 0)
	tests := []struct {
		name      string
		depths    []float64
		wantColor Color
		wantDepth float64
	}{
		{"nearer wins", []float64{0.2, 0.3}, second, 0.3},
		{"farther loses", []float64{0.3, 0.2}, first, 0.3},
		{"tie keeps first", []float64{0.25, 0.25}, first, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFrameBuffer(4, 4, RGB(0, 0, 0))
			fb.WriteIfNearer(5, tt.depths[0], first, 'a')
			fb.WriteIfNearer(5, tt.depths[1], second, 'b')
			if fb.Colors[5] != tt.wantColor || fb.Depth[5] != tt.wantDepth {
				t.Errorf("got color %v depth %v, want %v %v", fb.Colors[5], fb.Depth[5], tt.wantColor, tt.wantDepth)
			}
		})
	}
}

func TestWriteIfNearerRejects(t *testing.T) {
	fb := NewFrameBuffer(4, 4, RGB(0, 0, 0))
	for _, idx := range []int{-1, 16, 1 << 20} {
		if fb.WriteIfNearer(idx, 1, RGB(1, 1, 1), 0) {
			t.Errorf("index %d accepted", idx)
		}
	}
	if fb.WriteIfNearer(0, 0, RGB(1, 1, 1), 0) {
		t.Error("zero depth must not beat the empty sentinel")
	}
	if fb.WriteIfNearer(0, -0.5, RGB(1, 1, 1), 0) {
		t.Error("negative depth must not be written")
	}
	if fb.Bounds() != (image.Rectangle{}) {
		t.Errorf("Bounds = %v, want empty", fb.Bounds())
	}
}

func TestFrameBufferIndex(t *testing.T) {
	fb := NewFrameBuffer(6, 3, RGB(0, 0, 0))
	tests := []struct {
		x, y int
		idx  int
		ok   bool
	}{
		{0, 0, 0, true},
		{5, 2, 17, true},
		{6, 0, 0, false},
		{0, 3, 0, false},
		{-1, 1, 0, false},
	}
	for _, tt := range tests {
		idx, ok := fb.Index(tt.x, tt.y)
		if ok != tt.ok || (ok && idx != tt.idx) {
			t.Errorf("Index(%d,%d) = %d,%v want %d,%v", tt.x, tt.y, idx, ok, tt.idx, tt.ok)
		}
	}
}

func TestFrameBufferBounds(t *testing.T) {
	fb := NewFrameBuffer(10, 10, RGB(0, 0, 0))
	for _, p := range [][2]int{{2, 3}, {7, 4}, {5, 8}} {
		idx, _ := fb.Index(p[0], p[1])
		fb.WriteIfNearer(idx, 0.1, RGB(1, 1, 1), 0)
	}
	if got, want := fb.Bounds(), image.Rect(2, 3, 8, 9); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestDrawOverlayLine(t *testing.T) {
	fb := NewFrameBuffer(10, 10, RGB(0, 0, 0))
	c := RGB(9, 9, 9)
	fb.DrawOverlayLine(-3, 2, 12, 2, c)
	for x := range 10 {
		if fb.Overlay[x+10*2] != c {
			t.Fatalf("cell (%d,2) missing overlay", x)
		}
	}
	fb.DrawOverlayLine(0, 0, 4, 4, c)
	for i := range 5 {
		if fb.Overlay[i+10*i] != c {
			t.Errorf("diagonal cell %d missing", i)
		}
	}
	if fb.Populated(2 * 10) {
		t.Error("overlay must not mark cells populated")
	}
}

func BenchmarkFrameBufferClear(b *testing.B) {
	fb := NewFrameBuffer(426, 120, RGB(10, 10, 10))
	for b.Loop() {
		fb.Clear()
	}
}
