package shapes

import (
	"math"
	"testing"

	"github.com/tinyrange/dxbridge/internal/dx"
	"github.com/tinyrange/dxbridge/internal/geom"
)

func TestBentQuad(t *testing.T) {
	vs := BentQuad()
	if len(vs) != VPFBentQuad {
		t.Fatalf("expected %d vertices, got %d", VPFBentQuad, len(vs))
	}
	if vs[4] != vs[2] || vs[5] != vs[1] {
		t.Fatalf("trailing vertices should repeat 2 and 1")
	}
	// COLOR_U8 stores B first.
	if vs[2].Dif.R != 255 || vs[2].Dif.G != 128 || vs[2].Dif.B != 255 {
		t.Fatalf("unexpected color %+v", vs[2].Dif)
	}
	if err := geom.CalcNormals(vs, true); err != nil {
		t.Fatal(err)
	}
}

func TestCubeLayout(t *testing.T) {
	flat := CubeFlatGL()
	if len(flat) != NFacesCube*VPFCube {
		t.Fatalf("expected %d vertices, got %d", NFacesCube*VPFCube, len(flat))
	}
	faces := CubeGL()
	if len(faces) != NFacesCube {
		t.Fatalf("expected %d faces, got %d", NFacesCube, len(faces))
	}
	for f, face := range faces {
		if len(face) != VPFCube {
			t.Fatalf("face %d: expected %d vertices, got %d", f, VPFCube, len(face))
		}
		for i, v := range face {
			if v != flat[f*VPFCube+i] {
				t.Errorf("face %d vertex %d differs from flat table", f, i)
			}
		}
	}
}

func TestConvertCubeFlat(t *testing.T) {
	opts := geom.Options{
		Offset:  dx.Float4{X: 0, Y: -240, Z: 0},
		Scale:   64,
		Normals: geom.NormalsUnit,
	}
	vts := CubeFlatGL()
	vss, err := geom.ConvertFlat(vts, NFacesCube, VPFCube, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(vss) != NFacesCube {
		t.Fatalf("expected %d groups, got %d", NFacesCube, len(vss))
	}
	for f, vs := range vss {
		if len(vs) != 6 {
			t.Fatalf("face %d: expected 6 vertices, got %d", f, len(vs))
		}
		src := vts[f*VPFCube].Pos
		want := dx.Vector{X: src.X * 64, Y: -240 - src.Y*64, Z: src.Z * 64}
		if vs[0].Pos != want {
			t.Errorf("face %d: expected first vertex %+v, got %+v", f, want, vs[0].Pos)
		}
	}
}

// Conversion flips the handedness, so with the (p2-p1)x(p1-p0) convention
// every cube face ends up with a unit normal pointing at the cube centre.
func TestCubeNormalsConsistent(t *testing.T) {
	opts := geom.Options{Scale: 1, Normals: geom.NormalsUnit}
	vss, err := geom.ConvertFaces(CubeGL(), opts)
	if err != nil {
		t.Fatal(err)
	}
	for f, vs := range vss {
		var c dx.Vector
		for _, v := range vs {
			c = c.Add(v.Pos)
			if v.Norm != vs[0].Norm {
				t.Errorf("face %d: normals differ within the face", f)
			}
		}
		c = c.Scale(1 / float32(len(vs)))
		if d := c.Dot(vs[0].Norm); math.Abs(float64(d)+1) > 1e-5 {
			t.Errorf("face %d: normal %+v, centre %+v, dot %v", f, vs[0].Norm, c, d)
		}
	}
}

func TestPyramidMixedFaces(t *testing.T) {
	faces := PyramidGL()
	vss, err := geom.ConvertFaces(faces, geom.Options{Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 3, 3, 3, 6}
	for f, n := range want {
		if len(vss[f]) != n {
			t.Errorf("face %d: expected %d vertices, got %d", f, n, len(vss[f]))
		}
	}
	if got := len(geom.Flatten(vss)); got != 18 {
		t.Fatalf("expected 18 vertices, got %d", got)
	}
}

func TestPolygonGL(t *testing.T) {
	for n := 3; n <= 8; n++ {
		vts := PolygonGL(n)
		if len(vts) != n {
			t.Fatalf("n=%d: got %d vertices", n, len(vts))
		}
		vs, err := geom.Convert(vts, geom.Options{Scale: 1})
		if err != nil {
			t.Fatal(err)
		}
		if len(vs) != 3*(n-2) {
			t.Fatalf("n=%d: expected %d vertices, got %d", n, 3*(n-2), len(vs))
		}
	}
}
