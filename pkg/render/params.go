package render

import "github.com/taigrr/donut/pkg/math3d"

// Axis indexes a rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	return [...]string{"X", "Y", "Z"}[a]
}

// Plane is a set of reference-plane overlays.
type Plane uint8

const (
	PlaneX Plane = 1 << iota // the plane x = 0
	PlaneY                   // the plane y = 0
	PlaneZ                   // the plane z = 0
	PlaneXY                  // x = 0 and y = 0 drawn together
	PlaneXZ
	PlaneYZ
)

// AllPlanes lists every overlay in draw order.
var AllPlanes = []Plane{PlaneX, PlaneY, PlaneZ, PlaneXY, PlaneXZ, PlaneYZ}

func (p Plane) String() string {
	switch p {
	case PlaneX:
		return "X"
	case PlaneY:
		return "Y"
	case PlaneZ:
		return "Z"
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	}
	return "planes"
}

// Params is the mutable per-frame state of the renderer. The engine reads
// it; only the interaction controller writes it.
type Params struct {
	Angles     math3d.Vec3 // rotation about X, Y, Z in radians
	ActiveAxes [3]bool
	Zoom       float64
	SpinSpeed  float64
	Detail     int
	Theme      int
	Light      int

	Freeze      bool
	ASCII       bool
	HueRotation bool
	HuePhase    float64 // turns in [0, 1)
	Transparent bool
	HUD         bool
	Planes      Plane
}

// NewParams returns the initial parameters described by cfg.
func NewParams(cfg Config) Params {
	return Params{
		ActiveAxes:  cfg.ActiveAxes,
		Zoom:        cfg.Zoom,
		SpinSpeed:   cfg.SpinSpeed,
		Detail:      cfg.Detail,
		Theme:       cfg.Theme,
		Light:       cfg.Light,
		Freeze:      cfg.Freeze,
		ASCII:       cfg.ASCII,
		HueRotation: cfg.HueRotation,
		Transparent: cfg.Transparent,
	}
}

// AxisActive reports whether a is included in rotation.
func (p *Params) AxisActive(a Axis) bool {
	return p.ActiveAxes[a]
}
