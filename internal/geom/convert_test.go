package geom

import (
	"errors"
	"testing"

	"github.com/tinyrange/dxbridge/internal/dx"
)

func square() []VT {
	return []VT{
		VTOf([4]float32{-1, -1, 0, 1}, [2]float32{0, 1}),
		VTOf([4]float32{1, -1, 0, 1}, [2]float32{1, 1}),
		VTOf([4]float32{1, 1, 0, 1}, [2]float32{1, 0}),
		VTOf([4]float32{-1, 1, 0, 1}, [2]float32{0, 0}),
	}
}

func TestConvertPlacement(t *testing.T) {
	opts := Options{
		Offset: dx.Float4{X: 10, Y: 20, Z: 30, W: 1},
		Scale:  2,
	}
	vts := square()
	vs, err := Convert(vts, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 6 {
		t.Fatalf("expected 6 vertices, got %d", len(vs))
	}
	tbl, _ := FanIndices(len(vts))
	for i, k := range tbl {
		src := vts[k].Pos
		want := dx.Vector{X: 10 + src.X*2, Y: 20 - src.Y*2, Z: 30 + src.Z*2}
		if vs[i].Pos != want {
			t.Errorf("vertex %d: expected %+v, got %+v", i, want, vs[i].Pos)
		}
		if vs[i].UV != vts[k].UV {
			t.Errorf("vertex %d: uv not copied: %+v", i, vs[i].UV)
		}
		if vs[i].Dif != dx.White || vs[i].Spc != dx.White {
			t.Errorf("vertex %d: textured mode should be white, got %+v %+v", i, vs[i].Dif, vs[i].Spc)
		}
	}
}

func TestConvertYFlipWinding(t *testing.T) {
	// DxLib looks down +Z in a left-handed space, so a front facing triangle
	// has a positive (b-a)x(c-a) Z component and a normal towards -Z.
	vs, err := Convert(square(), Options{Scale: 1, Normals: NormalsUnit})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(vs); i += 3 {
		a, b, c := vs[i].Pos, vs[i+1].Pos, vs[i+2].Pos
		z := b.Sub(a).Cross(c.Sub(a)).Z
		if z <= 0 {
			t.Errorf("triangle %d faces away: z=%v", i/3, z)
		}
		if vs[i].Norm != dx.NewVector(0, 0, -1) {
			t.Errorf("triangle %d: expected normal (0,0,-1), got %+v", i/3, vs[i].Norm)
		}
	}
}

func TestConvertVertexColor(t *testing.T) {
	vts := []VT{
		VTOf([4]float32{2, -2, 0, 1}, [2]float32{}),
		VTOf([4]float32{0, 0, 0, 1}, [2]float32{}),
		VTOf([4]float32{-2, 2, 0, 1}, [2]float32{}),
	}
	vs, err := Convert(vts, Options{Scale: 1, Colors: VertexColor})
	if err != nil {
		t.Fatal(err)
	}
	// Fan order for a triangle is {0,2,1}.
	want := []dx.ColorU8{
		dx.RGBA8(255, 0, 127, 255),
		dx.RGBA8(0, 255, 127, 255),
		dx.RGBA8(127, 127, 127, 255),
	}
	for i, w := range want {
		if vs[i].Dif != w {
			t.Errorf("vertex %d: expected %+v, got %+v", i, w, vs[i].Dif)
		}
		if vs[i].Spc != (dx.ColorU8{}) {
			t.Errorf("vertex %d: expected zero specular, got %+v", i, vs[i].Spc)
		}
	}
}

func TestConvertQuadRemap(t *testing.T) {
	vts := square()
	vs, err := Convert(vts, Options{Scale: 1, Indexing: QuadRemap})
	if err != nil {
		t.Fatal(err)
	}
	order := QuadIndices()
	for i, k := range order {
		if vs[i].UV != vts[k].UV {
			t.Errorf("slot %d: expected source vertex %d", i, k)
		}
	}

	if _, err := Convert(vts[:3], Options{Indexing: QuadRemap}); !errors.Is(err, ErrLayout) {
		t.Fatalf("expected ErrLayout, got %v", err)
	}
}

func TestConvertTooFew(t *testing.T) {
	if _, err := Convert(square()[:2], Options{}); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("expected ErrTooFewVertices, got %v", err)
	}
	_, err := ConvertFaces([][]VT{square(), square()[:1]}, Options{})
	if !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("expected ErrTooFewVertices, got %v", err)
	}
}

func TestConvertUnknownMode(t *testing.T) {
	cases := []Options{
		{Colors: ColorMode(7)},
		{Normals: NormalMode(-1)},
		{Indexing: Indexing(3)},
	}
	for _, opts := range cases {
		if _, err := Convert(square(), opts); !errors.Is(err, ErrMode) {
			t.Errorf("%+v: expected ErrMode from Convert, got %v", opts, err)
		}
		if _, err := ConvertFaces([][]VT{square()}, opts); !errors.Is(err, ErrMode) {
			t.Errorf("%+v: expected ErrMode from ConvertFaces, got %v", opts, err)
		}
		if _, err := ConvertFlat(square(), 1, 4, opts); !errors.Is(err, ErrMode) {
			t.Errorf("%+v: expected ErrMode from ConvertFlat, got %v", opts, err)
		}
	}
	if _, err := FlatTable(1, 4, Indexing(9)); !errors.Is(err, ErrMode) {
		t.Fatalf("expected ErrMode from FlatTable, got %v", err)
	}
}

func TestConvertFlatLayout(t *testing.T) {
	vts := append(square(), square()...)
	vss, err := ConvertFlat(vts, 2, 4, Options{Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(vss) != 2 || len(vss[0]) != 6 || len(vss[1]) != 6 {
		t.Fatalf("unexpected shape %d", len(vss))
	}
	if got := len(Flatten(vss)); got != 12 {
		t.Fatalf("expected 12 flattened vertices, got %d", got)
	}

	if _, err := ConvertFlat(vts[:7], 2, 4, Options{}); !errors.Is(err, ErrLayout) {
		t.Fatalf("expected ErrLayout, got %v", err)
	}
}

func TestAtlas(t *testing.T) {
	a := Atlas{Cols: 3, Rows: 2}
	cases := []struct {
		face int
		uv   dx.Float2
		want dx.Float2
	}{
		{0, dx.Float2{U: 0, V: 0}, dx.Float2{U: 0, V: 0}},
		{0, dx.Float2{U: 1, V: 1}, dx.Float2{U: 1.0 / 3, V: 0.5}},
		{4, dx.Float2{U: 0, V: 0}, dx.Float2{U: 1.0 / 3, V: 0.5}},
		{5, dx.Float2{U: 1, V: 1}, dx.Float2{U: 1, V: 1}},
		{6, dx.Float2{U: 0, V: 0}, dx.Float2{U: 0, V: 0}},
	}
	for _, c := range cases {
		if got := a.place(c.face, c.uv); got != c.want {
			t.Errorf("face %d uv %+v: expected %+v, got %+v", c.face, c.uv, c.want, got)
		}
	}

	if got := (Atlas{}).place(3, dx.Float2{U: 0.25, V: 0.75}); got != (dx.Float2{U: 0.25, V: 0.75}) {
		t.Fatalf("zero atlas should copy uv, got %+v", got)
	}
}
