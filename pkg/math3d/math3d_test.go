package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", V3(0, 5, 0), V3(0, 1, 0)},
		{"diagonal", V3(3, 4, 0), V3(0.6, 0.8, 0)},
		{"zero stays zero", V3(0, 0, 0), V3(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); !vecNear(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLambert(t *testing.T) {
	tests := []struct {
		name   string
		normal Vec3
		light  Vec3
		want   float64
	}{
		{"facing", V3(0, 1, -1), V3(0, 2, -2), 1},
		{"perpendicular", V3(1, 0, 0), V3(0, 1, -1), 0},
		{"facing away clamps", V3(0, -1, 1), V3(0, 1, -1), 0},
		{"unnormalized inputs", V3(0, 10, 0), V3(0, 1, -1), math.Sqrt2 / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lambert(tt.normal, tt.light)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Lambert = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a, b := V3(0, 10, -4), V3(10, 20, 4)
	if got := a.Lerp(b, 0.5); !vecNear(got, V3(5, 15, 0)) {
		t.Errorf("Lerp = %v", got)
	}
	if got := a.Lerp(b, 0); !vecNear(got, a) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
}

func TestAxisRoundTrip(t *testing.T) {
	v := V3(1, 2, 3)
	for i := range 3 {
		w := v.WithAxis(i, 9)
		if w.Axis(i) != 9 {
			t.Errorf("axis %d: got %v", i, w.Axis(i))
		}
		if v.Axis(i) == 9 {
			t.Errorf("WithAxis mutated receiver")
		}
	}
}

func TestRotations(t *testing.T) {
	half := math.Pi / 2
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x rotates y into z", RotateX(half), V3(0, 1, 0), V3(0, 0, 1)},
		{"y rotates z into x", RotateY(half), V3(0, 0, 1), V3(1, 0, 0)},
		{"z rotates x into y", RotateZ(half), V3(1, 0, 0), V3(0, 1, 0)},
		{"identity", Identity(), V3(1, 2, 3), V3(1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec3Dir(tt.in); !vecNear(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEulerOrder(t *testing.T) {
	// X first: (0,1,0) -> (0,0,1) about X, then about Y to (1,0,0).
	m := Euler(V3(math.Pi/2, math.Pi/2, 0))
	if got := m.MulVec3Dir(V3(0, 1, 0)); !vecNear(got, V3(1, 0, 0)) {
		t.Errorf("Euler order: got %v", got)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	m := Euler(V3(0.7, -1.3, 2.1))
	v := V3(3, -4, 12)
	if got := m.MulVec3Dir(v).Len(); math.Abs(got-v.Len()) > eps {
		t.Errorf("length %v, want %v", got, v.Len())
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(V3(1, 2, 3))
	if got := m.MulVec3(V3(1, 1, 1)); !vecNear(got, V3(2, 3, 4)) {
		t.Errorf("MulVec3 = %v", got)
	}
	if got := m.MulVec3Dir(V3(1, 1, 1)); !vecNear(got, V3(1, 1, 1)) {
		t.Errorf("MulVec3Dir = %v", got)
	}
}
