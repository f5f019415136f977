// Package surface samples the torus parametric surface and builds
// exportable meshes from it.
package surface

import (
	"iter"
	"math"

	"github.com/taigrr/donut/pkg/math3d"
)

// Torus is a ring surface in its local frame. The tube circle of radius R1
// sits in the XY plane at distance R2 from the origin and is swept around
// the Y axis.
type Torus struct {
	R1 float64 // tube radius
	R2 float64 // distance from the origin to the tube center
}

// Point is a single surface sample in local (unrotated) coordinates.
type Point struct {
	Theta, Phi int // degrees
	Position   math3d.Vec3
	Normal     math3d.Vec3
}

// SinPhi returns sin(Phi), used to cross-fade palettes around the ring.
func (p Point) SinPhi() float64 {
	return math.Sin(radians(p.Phi))
}

// OutwardNormal returns the geometric unit normal of the surface at p,
// pointing away from the tube center. Normal is the lighting normal and
// differs from it; meshes carry this one.
func (p Point) OutwardNormal() math3d.Vec3 {
	ct, st := math.Cos(radians(p.Theta)), math.Sin(radians(p.Theta))
	cp, sp := math.Cos(radians(p.Phi)), math.Sin(radians(p.Phi))
	return math3d.V3(ct*cp, st, ct*sp)
}

// At evaluates the surface at the given angles in degrees.
func (t Torus) At(theta, phi int) Point {
	return t.point(theta, phi,
		math.Cos(radians(theta)), math.Sin(radians(theta)),
		math.Cos(radians(phi)), math.Sin(radians(phi)))
}

func (t Torus) point(theta, phi int, ct, st, cp, sp float64) Point {
	circleX := t.R2 + t.R1*ct
	circleY := t.R1 * st
	return Point{
		Theta:    theta,
		Phi:      phi,
		Position: math3d.V3(circleX*cp, circleY, circleX*sp),
		Normal:   math3d.V3(ct*cp, ct*sp, st),
	}
}

// Samples returns how many values a step produces over one 360° domain.
func Samples(step int) int {
	step = max(step, 1)
	return (360 + step - 1) / step
}

// Sampler walks the torus on a degree grid, caching the trig tables for the
// last step it was asked for. It is not safe for concurrent use.
type Sampler struct {
	Torus Torus

	step   int
	cosTab []float64
	sinTab []float64
}

// NewSampler creates a sampler for t.
func NewSampler(t Torus) *Sampler {
	return &Sampler{Torus: t}
}

func (s *Sampler) tables(step int) {
	if step == s.step && s.cosTab != nil {
		return
	}
	n := Samples(step)
	s.cosTab = s.cosTab[:0]
	s.sinTab = s.sinTab[:0]
	for i := range n {
		r := radians(i * step)
		s.cosTab = append(s.cosTab, math.Cos(r))
		s.sinTab = append(s.sinTab, math.Sin(r))
	}
	s.step = step
}

// Points yields every (theta, phi) sample with theta and phi in [0, 360)
// advancing by step degrees, theta in the outer loop. Steps below 1 are
// treated as 1. The order is deterministic.
func (s *Sampler) Points(step int) iter.Seq[Point] {
	step = max(step, 1)
	s.tables(step)
	cosTab, sinTab, torus := s.cosTab, s.sinTab, s.Torus
	return func(yield func(Point) bool) {
		for i, ct := range cosTab {
			st := sinTab[i]
			for j, cp := range cosTab {
				if !yield(torus.point(i*step, j*step, ct, st, cp, sinTab[j])) {
					return
				}
			}
		}
	}
}

func radians(deg int) float64 {
	return float64(deg) * math.Pi / 180
}
