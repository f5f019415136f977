package surface

import (
	"image/color"

	"github.com/taigrr/donut/pkg/math3d"
)

// Mesh is an indexed triangle mesh built from a sampled torus.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    [][3]int

	// Bounding box (calculated on build)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Vertex holds all vertex attributes.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	Color    color.RGBA
}

// ColorFunc assigns a color to a surface sample.
type ColorFunc func(Point) color.RGBA

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// Mesh samples t on a closed step-degree grid. Faces wrap around both
// angular domains so the result is watertight. A nil colorize leaves
// every vertex white.
func (t Torus) Mesh(name string, step int, colorize ColorFunc) *Mesh {
	step = max(step, 1)
	n := Samples(step)
	m := NewMesh(name)
	m.Vertices = make([]Vertex, 0, n*n)
	m.Faces = make([][3]int, 0, 2*n*n)

	s := NewSampler(t)
	for p := range s.Points(step) {
		c := color.RGBA{255, 255, 255, 255}
		if colorize != nil {
			c = colorize(p)
		}
		m.Vertices = append(m.Vertices, Vertex{Position: p.Position, Normal: p.OutwardNormal(), Color: c})
	}

	for i := range n {
		next := (i + 1) % n
		for j := range n {
			nj := (j + 1) % n
			a, b := i*n+j, next*n+j
			c, d := next*n+nj, i*n+nj
			m.Faces = append(m.Faces, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Transform rotates positions and normals in place by the upper 3x3 of mat
// and moves positions by its translation.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mat.MulVec3(v.Position)
		v.Normal = mat.MulVec3Dir(v.Normal).Normalize()
	}
	m.CalculateBounds()
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}
