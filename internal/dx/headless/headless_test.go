package headless

import (
	"bytes"
	"image"
	"image/png"
	"slices"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"

	"github.com/tinyrange/dxbridge/internal/dx"
)

func encode(t *testing.T, enc func(*bytes.Buffer, image.Image) error, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := enc(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestAllocAndRelease(t *testing.T) {
	b := New(Options{})

	s := b.LoadSoundMem("a.wav")
	g := b.LoadGraph("b.png")
	if !s.Valid() || !g.Valid() || s == g {
		t.Fatalf("unexpected handles %v %v", s, g)
	}
	if got := b.Live(); !slices.Equal(got, []dx.Handle{s, g}) {
		t.Fatalf("expected live %v, got %v", []dx.Handle{s, g}, got)
	}

	// Deleting with the wrong kind fails and is still counted.
	if st := b.DeleteGraph(s, dx.FALSE); st != -1 {
		t.Fatalf("expected -1 deleting a sound as a graph, got %d", st)
	}
	if st := b.DeleteSoundMem(s, dx.FALSE); st != 0 {
		t.Fatalf("expected 0, got %d", st)
	}
	if st := b.DeleteSoundMem(s, dx.FALSE); st != -1 {
		t.Fatalf("expected -1 on second delete, got %d", st)
	}
	if got := b.DoubleReleases(); !slices.Equal(got, []dx.Handle{s}) {
		t.Fatalf("expected double release of %v, got %v", s, got)
	}
	if got := b.Live(); !slices.Equal(got, []dx.Handle{g}) {
		t.Fatalf("expected live %v, got %v", []dx.Handle{g}, got)
	}
}

func TestFailLoad(t *testing.T) {
	b := New(Options{})
	b.FailLoad("missing.ogg")
	if h := b.LoadMusicMem("missing.ogg"); h != dx.InvalidHandle {
		t.Fatalf("expected invalid handle, got %v", h)
	}
	if h := b.LoadMusicMem("other.ogg"); !h.Valid() {
		t.Fatalf("expected valid handle, got %v", h)
	}
}

func TestAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"tex.png": {Data: encode(t, func(w *bytes.Buffer, m image.Image) error { return png.Encode(w, m) }, 64, 32)},
		"tex.bmp": {Data: encode(t, func(w *bytes.Buffer, m image.Image) error { return bmp.Encode(w, m) }, 7, 5)},
		"bad.png": {Data: []byte("not an image")},
	}
	b := New(Options{Assets: fsys})

	cases := []struct {
		path  string
		w, h  int32
		valid bool
	}{
		{"tex.png", 64, 32, true},
		{"tex.bmp", 7, 5, true},
		{"bad.png", 0, 0, true},
		{"nope.png", 0, 0, false},
	}
	for _, c := range cases {
		h := b.LoadGraph(c.path)
		if h.Valid() != c.valid {
			t.Fatalf("%s: expected valid=%v, got handle %v", c.path, c.valid, h)
		}
		if !c.valid {
			continue
		}
		w, hh, st := b.GetGraphSize(h)
		if st != 0 || w != c.w || hh != c.h {
			t.Errorf("%s: expected %dx%d, got %dx%d (status %d)", c.path, c.w, c.h, w, hh, st)
		}
	}

	if h := b.LoadSoundMem("nope.wav"); h != dx.InvalidHandle {
		t.Fatalf("expected missing sound to fail, got %v", h)
	}
}

func TestInitAndQuit(t *testing.T) {
	b := New(Options{InitResult: -1})
	if got := b.DxLibInit(); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}

	b = New(Options{QuitAfter: 2})
	if b.DxLibInit() != 0 {
		t.Fatal("init failed")
	}
	for i := 0; i < 2; i++ {
		if got := b.ProcessMessage(); got != 0 {
			t.Fatalf("frame %d: expected 0, got %d", i, got)
		}
	}
	if got := b.ProcessMessage(); got != -1 {
		t.Fatalf("expected -1 after QuitAfter, got %d", got)
	}
	b.DxLibEnd()
	if !b.Ended() {
		t.Fatal("expected Ended")
	}
}

func TestConstantBuffer(t *testing.T) {
	b := New(Options{})
	h := b.CreateShaderConstantBuffer(4 * 16)
	buf := b.GetBufferShaderConstantBuffer(h, 4)
	if len(buf) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(buf))
	}
	buf[2] = dx.NewFloat4(1, 2, 3, 4)
	if again := b.GetBufferShaderConstantBuffer(h, 4); again[2] != buf[2] {
		t.Fatalf("writes are not visible: %+v", again[2])
	}
	if b.GetBufferShaderConstantBuffer(h, 5) != nil {
		t.Fatal("expected nil for an oversized view")
	}
	if st := b.SetShaderConstantBuffer(h, dx.ShaderPixel, 4); st != 0 {
		t.Fatalf("expected 0, got %d", st)
	}
}

func TestLightState(t *testing.T) {
	b := New(Options{})
	h := b.CreatePointLightHandle(dx.NewVector(1, 2, 3), 100, 0, 0.01, 0)
	if got := b.GetLightTypeHandle(h); got != dx.LightPoint {
		t.Fatalf("expected point light, got %v", got)
	}
	b.SetLightRangeAttenHandle(h, 50, 1, 2, 3)
	rng, a0, a1, a2, st := b.GetLightRangeAttenHandle(h)
	if st != 0 || rng != 50 || a0 != 1 || a1 != 2 || a2 != 3 {
		t.Fatalf("unexpected range/atten %v %v %v %v (%d)", rng, a0, a1, a2, st)
	}
	if n := b.GetEnableLightHandleNum(); n != 1 {
		t.Fatalf("expected 1 enabled light, got %d", n)
	}
	b.SetLightEnableHandle(h, dx.FALSE)
	if n := b.GetEnableLightHandleNum(); n != 0 {
		t.Fatalf("expected 0 enabled lights, got %d", n)
	}
	b.DeleteLightHandle(h)
	if _, _, _, _, st := b.GetLightRangeAttenHandle(h); st != -1 {
		t.Fatalf("expected -1 after delete, got %d", st)
	}
}

func TestLookAt(t *testing.T) {
	b := New(Options{})
	eye := dx.NewVector(0, 0, -10)
	m, st := b.CreateLookAtMatrix(eye, dx.Vector{}, dx.NewVector(0, 1, 0))
	if st != 0 {
		t.Fatalf("status %d", st)
	}
	// The eye maps to the origin and the target lies straight ahead.
	if got := m.TransformPoint(eye); got != (dx.Vector{}) {
		t.Fatalf("eye should map to origin, got %+v", got)
	}
	if got := m.TransformPoint(dx.Vector{}); got != dx.NewVector(0, 0, 10) {
		t.Fatalf("target should map to (0,0,10), got %+v", got)
	}

	if _, st := b.CreateLookAtMatrix(eye, eye, dx.NewVector(0, 1, 0)); st != -1 {
		t.Fatalf("expected -1 for a zero length view direction, got %d", st)
	}
}

func TestTriangles(t *testing.T) {
	b := New(Options{})
	if st := b.DrawPolygon3DToShader(make([]dx.Vertex3DShader, 6)); st != 0 {
		t.Fatalf("status %d", st)
	}
	if st := b.DrawPolygon3DToShader(make([]dx.Vertex3DShader, 4)); st != -1 {
		t.Fatalf("expected -1 for a partial triangle, got %d", st)
	}
	if got := b.Triangles(); got != 2 {
		t.Fatalf("expected 2 triangles, got %d", got)
	}
	if got := b.Count("DrawPolygon3DToShader"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
}
