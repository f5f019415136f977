package render

import "github.com/taigrr/donut/pkg/math3d"

// planeColors are translucent so the presenter can blend them over the
// torus.
var planeColors = map[Plane]Color{
	PlaneX:  RGBA(255, 100, 100, 80),
	PlaneY:  RGBA(100, 255, 100, 80),
	PlaneZ:  RGBA(100, 100, 255, 80),
	PlaneXY: RGBA(255, 255, 100, 60),
	PlaneXZ: RGBA(255, 100, 255, 60),
	PlaneYZ: RGBA(100, 255, 255, 60),
}

// PlaneColor returns the overlay color of a single plane.
func PlaneColor(p Plane) Color {
	return planeColors[p]
}

// zeroAxes lists the coordinates held at zero by each overlay. Combined
// overlays draw both of their single planes.
func (p Plane) zeroAxes() []Axis {
	switch p {
	case PlaneX:
		return []Axis{AxisX}
	case PlaneY:
		return []Axis{AxisY}
	case PlaneZ:
		return []Axis{AxisZ}
	case PlaneXY:
		return []Axis{AxisX, AxisY}
	case PlaneXZ:
		return []Axis{AxisX, AxisZ}
	case PlaneYZ:
		return []Axis{AxisY, AxisZ}
	}
	return nil
}

// drawPlanes rasterizes the active reference grids into the overlay layer
// with the same rotation and projection as the torus.
func (e *Engine) drawPlanes(p *Params) {
	n, ext := e.cfg.PlaneLines, e.cfg.PlaneExtent
	if n < 2 || ext <= 0 {
		return
	}
	for _, pl := range AllPlanes {
		if p.Planes&pl == 0 {
			continue
		}
		for _, fixed := range pl.zeroAxes() {
			e.drawGrid(fixed, PlaneColor(pl), n, ext, p.Zoom)
		}
	}
}

func (e *Engine) drawGrid(fixed Axis, c Color, n int, ext, zoom float64) {
	u := (fixed + 1) % 3
	v := (fixed + 2) % 3
	spacing := 2 * ext / float64(n-1)
	for i := range n {
		a := -ext + float64(i)*spacing
		e.drawGridLine(u, a, v, c, n, ext, zoom)
		e.drawGridLine(v, a, u, c, n, ext, zoom)
	}
}

// drawGridLine draws the line where axis held = at, sweeping axis along
// from -ext to ext. The line is subdivided so segments leaving the raster
// are dropped rather than clipped.
func (e *Engine) drawGridLine(held Axis, at float64, along Axis, c Color, n int, ext, zoom float64) {
	segments := 2 * (n - 1)
	var prev ProjectedPoint
	havePrev := false
	for k := range segments + 1 {
		t := -ext + 2*ext*float64(k)/float64(segments)
		local := math3d.Vec3{}.WithAxis(int(held), at).WithAxis(int(along), t)
		pp, vis := e.proj.ProjectLocal(local, zoom)
		if vis != Visible || pp.OOZ <= 0 {
			havePrev = false
			continue
		}
		if havePrev {
			e.fb.DrawOverlayLine(prev.X, prev.Y, pp.X, pp.Y, c)
		}
		prev, havePrev = pp, true
	}
}
