package surface

import (
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/donut/pkg/math3d"
)

func TestTorusMesh(t *testing.T) {
	tor := Torus{R1: 1, R2: 2}
	m := tor.Mesh("donut", 30, nil)

	n := Samples(30)
	if m.VertexCount() != n*n {
		t.Errorf("VertexCount = %d, want %d", m.VertexCount(), n*n)
	}
	if m.TriangleCount() != 2*n*n {
		t.Errorf("TriangleCount = %d, want %d", m.TriangleCount(), 2*n*n)
	}
	for _, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= m.VertexCount() {
				t.Fatalf("face index %d out of range", idx)
			}
		}
	}

	size := m.Size()
	if math.Abs(size.X-6) > 1e-9 || math.Abs(size.Z-6) > 1e-9 {
		t.Errorf("Size = %v, want 6 across the ring", size)
	}
	if c := m.Center(); c.Len() > 1e-9 {
		t.Errorf("Center = %v, want origin", c)
	}
}

func TestTorusMeshNormalsPointOutward(t *testing.T) {
	tests := []struct {
		name  string
		torus Torus
		step  int
	}{
		{"unit tube", Torus{R1: 1, R2: 2}, 30},
		{"default donut", Torus{R1: 1.1, R2: 2.5}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.torus.Mesh("donut", tt.step, nil)
			n := Samples(tt.step)
			for i, v := range m.Vertices {
				phi := float64((i%n)*tt.step) * math.Pi / 180
				center := math3d.V3(tt.torus.R2*math.Cos(phi), 0, tt.torus.R2*math.Sin(phi))
				outward := v.Position.Sub(center).Scale(1 / tt.torus.R1)
				if d := v.Normal.Dot(outward); math.Abs(d-1) > 1e-9 {
					t.Fatalf("vertex %d: normal %v against outward %v, dot %v", i, v.Normal, outward, d)
				}
			}
		})
	}
}

func TestOutwardNormal(t *testing.T) {
	p := Torus{R1: 1, R2: 2}.At(90, 0)
	if got := p.OutwardNormal(); got.Sub(math3d.V3(0, 1, 0)).Len() > 1e-12 {
		t.Errorf("OutwardNormal at top of tube = %v, want (0,1,0)", got)
	}
	if p.Normal.Sub(math3d.V3(0, 0, 1)).Len() > 1e-12 {
		t.Errorf("lighting normal = %v, want (0,0,1)", p.Normal)
	}
}

func TestTorusMeshColorize(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	m := Torus{R1: 1, R2: 2}.Mesh("red", 90, func(Point) color.RGBA { return red })
	for _, v := range m.Vertices {
		if v.Color != red {
			t.Fatalf("vertex color %v", v.Color)
		}
	}
}

func TestMeshTransform(t *testing.T) {
	m := Torus{R1: 1, R2: 2}.Mesh("tilted", 45, nil)
	m.Transform(math3d.RotateX(math.Pi / 2))
	size := m.Size()
	if math.Abs(size.Y-6) > 1e-9 {
		t.Errorf("after rotation Size = %v, want 6 along Y", size)
	}
}

func TestSaveGLB(t *testing.T) {
	m := Torus{R1: 1, R2: 2}.Mesh("donut", 45, nil)
	path := filepath.Join(t.TempDir(), "donut.glb")
	if err := m.SaveGLB(path); err != nil {
		t.Fatalf("SaveGLB: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("open written glb: %v", err)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("meshes = %d", len(doc.Meshes))
	}
	prim := doc.Meshes[0].Primitives[0]
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		t.Fatal("missing POSITION attribute")
	}
	if got := doc.Accessors[posIdx].Count; got != m.VertexCount() {
		t.Errorf("position count = %d, want %d", got, m.VertexCount())
	}
	if _, ok := prim.Attributes[gltf.COLOR_0]; !ok {
		t.Error("missing COLOR_0 attribute")
	}
	if prim.Indices == nil || doc.Accessors[*prim.Indices].Count != 3*m.TriangleCount() {
		t.Error("index accessor does not cover every triangle")
	}
}

func TestEmptyMeshDocument(t *testing.T) {
	if _, err := NewMesh("empty").Document(); err == nil {
		t.Error("expected error for empty mesh")
	}
}
