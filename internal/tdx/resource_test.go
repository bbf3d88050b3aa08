package tdx

import (
	"testing"

	"github.com/tinyrange/dxbridge/internal/dx"
	"github.com/tinyrange/dxbridge/internal/dx/headless"
)

func TestOwnerDisposeOnce(t *testing.T) {
	b := headless.New(headless.Options{Logger: quietLogger()})

	owners := []Resource{
		NewSound(b, "a.wav"),
		NewMusic(b, "b.mid"),
		NewGraph(b, "c.png"),
		NewBlankGraph(b, 8, 8, false),
		NewScreen(b, 8, 8, false),
		NewVertexShader(b, "d.vso"),
		NewPixelShader(b, "e.pso"),
		NewGeometryShader(b, "f.gso"),
		NewConstantBuffer(b, 1, dx.ShaderVertex, 0),
		NewDirLight(b, dx.NewVector(0, 0, 1)),
		NewFont(b, FontSpec{Name: "Arial", Size: 16}),
		NewFontData(b, "g.dft", 0),
	}
	for _, r := range owners {
		h := r.Handle()
		if !h.Valid() || !r.Owned() || r.State() != StateConstructed {
			t.Fatalf("%v: unexpected fresh wrapper h=%v owned=%v state=%v", r.Kind(), h, r.Owned(), r.State())
		}
		r.Dispose()
		r.Dispose()
		if r.Handle() != dx.NoHandle || r.State() != StateDisposed {
			t.Fatalf("%v: not zeroed after dispose", r.Kind())
		}
		if n := b.Releases(h); n != 1 {
			t.Fatalf("%v: expected 1 release, got %d", r.Kind(), n)
		}
	}
	if live := b.Live(); len(live) != 0 {
		t.Fatalf("leaked handles %v", live)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindSound:          "sound",
		KindGeometryShader: "geometry-shader",
		KindConstantBuffer: "constant-buffer",
		Kind(42):           "Kind(42)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if StateDisposed.String() != "disposed" {
		t.Errorf("unexpected state name %q", StateDisposed.String())
	}
}
