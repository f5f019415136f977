package render

import "github.com/taigrr/donut/pkg/math3d"

// Visibility classifies a projected point.
type Visibility int

const (
	Visible    Visibility = iota
	OutOfRange            // lands outside the raster
	Degenerate            // rotated depth cancels the camera distance
)

// ProjectedPoint is a raster cell plus the inverse depth used for the depth
// test and depth shading.
type ProjectedPoint struct {
	X, Y int
	OOZ  float64
}

// Projector rotates local surface points and projects them onto the raster.
type Projector struct {
	Columns, Rows  int
	CameraDistance float64
	ScaleX, ScaleY float64

	rotation math3d.Mat4
}

// NewProjector creates a projector for cfg with no rotation applied.
func NewProjector(cfg Config) Projector {
	sx, sy := cfg.FittedScale()
	return Projector{
		Columns:        cfg.Columns,
		Rows:           cfg.Rows,
		CameraDistance: cfg.CameraDistance,
		ScaleX:         sx,
		ScaleY:         sy,
		rotation:       math3d.Identity(),
	}
}

// SetAngles sets the rotation, applied about X, then Y, then Z.
func (p *Projector) SetAngles(angles math3d.Vec3) {
	p.rotation = math3d.Euler(angles)
}

// Rotate applies the current rotation to a local point.
func (p *Projector) Rotate(v math3d.Vec3) math3d.Vec3 {
	return p.rotation.MulVec3Dir(v)
}

// Project maps a rotated point to the raster. Coordinates are truncated
// toward zero; the cell is only valid when the result is Visible.
func (p *Projector) Project(v math3d.Vec3, zoom float64) (ProjectedPoint, Visibility) {
	den := v.Z + p.CameraDistance
	if den == 0 {
		return ProjectedPoint{}, Degenerate
	}
	ooz := 1 / den
	fx := float64(p.Columns)/2 + p.ScaleX*zoom*ooz*v.X
	fy := float64(p.Rows)/2 + p.ScaleY*zoom*ooz*v.Y
	if !isFinite(ooz) || !isFinite(fx) || !isFinite(fy) {
		return ProjectedPoint{}, Degenerate
	}
	// int() truncates, so anything above -1 lands in column 0.
	if fx <= -1 || fy <= -1 || fx >= float64(p.Columns) || fy >= float64(p.Rows) {
		return ProjectedPoint{OOZ: ooz}, OutOfRange
	}
	return ProjectedPoint{X: int(fx), Y: int(fy), OOZ: ooz}, Visible
}

// ProjectLocal rotates and projects a local point in one step.
func (p *Projector) ProjectLocal(v math3d.Vec3, zoom float64) (ProjectedPoint, Visibility) {
	return p.Project(p.Rotate(v), zoom)
}

