package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/tinyrange/dxbridge/internal/dx"
)

func TestFaceNormal(t *testing.T) {
	p0 := dx.NewVector(0, 0, 0)
	p1 := dx.NewVector(1, 0, 0)
	p2 := dx.NewVector(0, 1, 0)

	// (p2-p1) x (p1-p0) = (-1,1,0) x (1,0,0)
	raw := FaceNormal(p0, p1, p2, false)
	if raw != dx.NewVector(0, 0, -1) {
		t.Fatalf("raw normal: got %+v", raw)
	}

	big := FaceNormal(p0, p1.Scale(10), p2.Scale(10), false)
	if big != dx.NewVector(0, 0, -100) {
		t.Fatalf("raw normal is not left unnormalized: %+v", big)
	}

	unit := FaceNormal(p0, p1.Scale(10), p2.Scale(10), true)
	if l := math.Sqrt(float64(unit.Dot(unit))); math.Abs(l-1) > 1e-6 {
		t.Fatalf("expected unit length, got %v (%+v)", l, unit)
	}
}

func TestFaceNormalDegenerate(t *testing.T) {
	p := dx.NewVector(3, 4, 5)
	n := FaceNormal(p, p, p, true)
	if n != (dx.Vector{}) {
		t.Fatalf("expected zero vector, got %+v", n)
	}
	for _, c := range []float32{n.X, n.Y, n.Z} {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			t.Fatalf("non-finite component in %+v", n)
		}
	}

	// Collinear points are also degenerate.
	n = FaceNormal(dx.NewVector(0, 0, 0), dx.NewVector(1, 1, 1), dx.NewVector(2, 2, 2), true)
	if n != (dx.Vector{}) {
		t.Fatalf("collinear: expected zero vector, got %+v", n)
	}
}

func TestCalcNormalsFlat(t *testing.T) {
	vs := []dx.Vertex3DShader{
		{Pos: dx.NewVector(0, 0, 0)},
		{Pos: dx.NewVector(1, 0, 0)},
		{Pos: dx.NewVector(0, 1, 0)},
		{Pos: dx.NewVector(0, 0, 0)},
		{Pos: dx.NewVector(0, 0, 2)},
		{Pos: dx.NewVector(2, 0, 0)},
	}
	if err := CalcNormals(vs, true); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if vs[i].Norm != dx.NewVector(0, 0, -1) {
			t.Errorf("vertex %d: got %+v", i, vs[i].Norm)
		}
	}
	for i := 3; i < 6; i++ {
		if vs[i].Norm != dx.NewVector(0, -1, 0) {
			t.Errorf("vertex %d: got %+v", i, vs[i].Norm)
		}
	}

	if err := CalcNormals(vs[:4], false); !errors.Is(err, ErrNotTriangles) {
		t.Fatalf("expected ErrNotTriangles, got %v", err)
	}
}
