package tdx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/tinyrange/dxbridge/internal/dx"
	"github.com/tinyrange/dxbridge/internal/dx/headless"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTdx(t *testing.T, hopts headless.Options) (*Tdx, *headless.Backend) {
	t.Helper()
	hopts.Logger = quietLogger()
	b := headless.New(hopts)
	x, err := New(b, Options{Windowed: true, Width: 640, Height: 480, RefreshRate: 60, Title: "test", Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { x.Close() })
	return x, b
}

// deletes returns the release calls in the order they were made.
func deletes(b *headless.Backend) []string {
	var out []string
	for _, n := range b.CallNames() {
		if strings.HasPrefix(n, "Delete") || n == "DxLib_End" {
			out = append(out, n)
		}
	}
	return out
}

func TestNewAppliesSettingsBeforeInit(t *testing.T) {
	_, b := newTestTdx(t, headless.Options{})
	want := []string{
		"SetOutApplicationLogValidFlag",
		"ChangeWindowMode",
		"SetGraphMode",
		"SetMainWindowText",
		"DxLib_Init",
	}
	if got := b.CallNames(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if args := b.Calls()[2].Args; args[2] != int32(32) {
		t.Fatalf("expected default depth 32, got %v", args[2])
	}
}

func TestNewInitFailure(t *testing.T) {
	b := headless.New(headless.Options{InitResult: -1, Logger: quietLogger()})
	x, err := New(b, Options{Logger: quietLogger()})
	if x != nil {
		t.Fatal("expected nil registry")
	}
	if !errors.Is(err, ErrInitFailed) {
		t.Fatalf("expected ErrInitFailed, got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Op != "init" {
		t.Fatalf("expected *Error with op init, got %#v", err)
	}
	if b.Count("DxLib_End") != 0 {
		t.Fatal("DxLib_End must not run after a failed init")
	}
}

func TestLoadReturnsView(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})

	s, err := x.LoadSound("a.wav")
	if err != nil {
		t.Fatal(err)
	}
	if s.Owned() {
		t.Fatal("registry must hand out non-owning views")
	}
	if s.ID() != 1 || s.Kind() != KindSound || s.State() != StateRegistered || s.Path() != "a.wav" {
		t.Fatalf("unexpected view id=%d kind=%v state=%v path=%q", s.ID(), s.Kind(), s.State(), s.Path())
	}

	s.SetVolume(128)
	if st := s.Play(dx.PlayNormal, true); st != 0 {
		t.Fatalf("play returned %d", st)
	}
	if got := b.Volume(s.Handle()); got != 128 {
		t.Fatalf("expected volume 128, got %d", got)
	}

	// Disposing a view never reaches the backend.
	h := s.Handle()
	s.Dispose()
	s.Dispose()
	if s.Handle() != dx.NoHandle || s.State() != StateDisposed {
		t.Fatalf("view not zeroed: %v %v", s.Handle(), s.State())
	}
	if n := b.Releases(h); n != 0 {
		t.Fatalf("view released handle %d times", n)
	}
	if again, err := x.Sound(1); err != nil || again.Handle() != h {
		t.Fatalf("registry entry changed: %v %v", again, err)
	}
}

func TestNarrowWrongKind(t *testing.T) {
	x, _ := newTestTdx(t, headless.Options{})
	s, _ := x.LoadSound("a.wav")

	_, err := x.Graph(s.ID())
	if !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
	var ke *KindError
	if !errors.As(err, &ke) {
		t.Fatalf("expected *KindError, got %T", err)
	}
	if ke.ID != s.ID() || ke.Want != "graph" || ke.Got != KindSound {
		t.Fatalf("unexpected error fields %+v", ke)
	}

	_, err = Narrow[Shader](x, s.ID())
	if !errors.As(err, &ke) || ke.Want != "Shader" {
		t.Fatalf("expected interface name in error, got %v", err)
	}

	if _, err := x.Sound(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMustNarrowPanics(t *testing.T) {
	x, _ := newTestTdx(t, headless.Options{})
	m, _ := x.LoadMusic("a.mid")

	if got := MustNarrow[*Music](x, m.ID()); got.Handle() != m.Handle() {
		t.Fatalf("expected handle %v, got %v", m.Handle(), got.Handle())
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNarrow[*Font](x, m.ID())
}

func TestNarrowCapability(t *testing.T) {
	x, _ := newTestTdx(t, headless.Options{})
	s, _ := x.LoadSound("a.wav")
	m, _ := x.LoadMusic("b.mid")
	g, _ := x.MakeGraph(16, 8, false)
	sc, _ := x.MakeScreen(32, 32, true)

	for _, id := range []ID{s.ID(), m.ID()} {
		p, err := Narrow[Player](x, id)
		if err != nil {
			t.Fatalf("id %d: %v", id, err)
		}
		if p.Stop() != 0 {
			t.Fatalf("id %d: stop failed", id)
		}
	}

	for _, id := range []ID{g.ID(), sc.ID()} {
		img, err := Narrow[Image](x, id)
		if err != nil {
			t.Fatalf("id %d: %v", id, err)
		}
		if _, _, ok := img.Size(); !ok {
			t.Fatalf("id %d: size query failed", id)
		}
	}
	if w, h, _ := g.Size(); w != 16 || h != 8 {
		t.Fatalf("expected 16x8, got %dx%d", w, h)
	}

	if _, err := Narrow[Image](x, s.ID()); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}

	// As narrows a value in hand and never yields ownership.
	owner := NewSound(x.Backend(), "c.wav")
	v, err := As[Player](owner)
	if err != nil {
		t.Fatal(err)
	}
	if v.Owned() || !owner.Owned() {
		t.Fatal("As must return a non-owning copy")
	}
	owner.Dispose()
}

func TestUnregister(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})
	g, _ := x.LoadGraph("a.png")
	h := g.Handle()

	if !x.Unregister(g.ID()) {
		t.Fatal("expected first unregister to succeed")
	}
	if x.Unregister(g.ID()) {
		t.Fatal("expected second unregister to be a no-op")
	}
	if n := b.Releases(h); n != 1 {
		t.Fatalf("expected 1 release, got %d", n)
	}
	if _, ok := x.LookupHandle(h); ok {
		t.Fatal("handle index not cleared")
	}
	if x.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", x.Len())
	}
}

func TestCloseReverseOrder(t *testing.T) {
	b := headless.New(headless.Options{Logger: quietLogger()})
	x, err := New(b, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}

	x.LoadSound("a.wav")
	x.LoadGraph("b.png")
	x.MakeScreen(64, 64, false)
	x.LoadVertexShader("c.vso")
	x.CreateConstantBuffer(4, dx.ShaderPixel, 4)
	x.CreatePointLight(dx.Vector{}, 100, 0, 0.01, 0)
	x.LoadFontData("d.dft", 0)

	if err := x.Close(); err != nil {
		t.Fatal(err)
	}
	if err := x.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	want := []string{
		"DeleteFontToHandle",
		"DeleteLightHandle",
		"DeleteShaderConstantBuffer",
		"DeleteShader",
		"DeleteGraph",
		"DeleteGraph",
		"DeleteSoundMem",
		"DxLib_End",
	}
	if got := deletes(b); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if live := b.Live(); len(live) != 0 {
		t.Fatalf("leaked handles %v", live)
	}
	if d := b.DoubleReleases(); len(d) != 0 {
		t.Fatalf("double releases %v", d)
	}
}

func TestDeleteFlags(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})
	x.LoadSound("a.wav")
	x.LoadGraph("b.png")
	x.Close()

	for _, c := range b.Calls() {
		switch c.Name {
		case "DeleteSoundMem", "DeleteGraph":
			if c.Args[1] != dx.FALSE {
				t.Errorf("%s: expected logOut FALSE, got %v", c.Name, c.Args[1])
			}
		}
	}
}

func TestInvalidHandleRegistered(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})
	b.FailLoad("missing.png")

	g, err := x.LoadGraph("missing.png")
	if err != nil {
		t.Fatal(err)
	}
	if g.Handle() != dx.InvalidHandle {
		t.Fatalf("expected invalid handle, got %v", g.Handle())
	}
	if x.Len() != 1 {
		t.Fatalf("expected the failed load to be registered, got %d", x.Len())
	}

	// A second failed load does not collide on the sentinel.
	if _, err := x.LoadGraph("missing.png"); err != nil {
		t.Fatal(err)
	}

	x.Close()
	if n := b.Count("DeleteGraph"); n != 0 {
		t.Fatalf("invalid handles must not be released, got %d deletes", n)
	}
}

func TestRegisterErrors(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})

	s, _ := x.LoadSound("a.wav")
	dup := &Sound{newResource(b, s.Handle(), "dup.wav", nil)}
	if _, err := x.Register(dup); !errors.Is(err, ErrHandleInUse) {
		t.Fatalf("expected ErrHandleInUse, got %v", err)
	}

	if _, err := x.Register(s); !errors.Is(err, ErrRegistered) {
		t.Fatalf("registering a view: expected ErrRegistered, got %v", err)
	}

	x.Close()
	if _, err := x.LoadSound("b.wav"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if _, err := x.Register(NewSound(b, "c.wav")); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if _, ok := x.Lookup(s.ID()); ok {
		t.Fatal("lookup after close should fail")
	}
}

func TestViewAfterUnregister(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})

	s, err := x.LoadSound("a.wav")
	if err != nil {
		t.Fatal(err)
	}
	other, err := x.Sound(s.ID())
	if err != nil {
		t.Fatal(err)
	}
	h := s.Handle()

	x.Unregister(s.ID())

	for _, v := range []*Sound{s, other} {
		if v.State() != StateDisposed || v.Handle() != dx.NoHandle {
			t.Fatalf("view not disposed with its owner: state=%v handle=%v", v.State(), v.Handle())
		}
		if st := v.Play(dx.PlayNormal, true); st != -1 {
			t.Fatalf("expected -1 from a disposed view, got %d", st)
		}
		if st := v.SetVolume(64); st != -1 {
			t.Fatalf("expected -1 from a disposed view, got %d", st)
		}
	}
	if n := b.Count("PlaySoundMem") + b.Count("ChangeVolumeSoundMem"); n != 0 {
		t.Fatalf("disposed views reached the backend %d times", n)
	}
	if n := b.Releases(h); n != 1 {
		t.Fatalf("expected 1 release, got %d", n)
	}

	// Disposing the stale view is still harmless.
	s.Dispose()
	if n := b.Releases(h); n != 1 {
		t.Fatalf("expected 1 release, got %d", n)
	}
}

func TestViewAfterClose(t *testing.T) {
	b := headless.New(headless.Options{Logger: quietLogger()})
	x, err := New(b, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	l, err := x.CreateDirLight(dx.NewVector(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	g, err := x.MakeGraph(8, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	cb, err := x.CreateConstantBuffer(1, dx.ShaderVertex, 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := x.Close(); err != nil {
		t.Fatal(err)
	}
	before := len(b.Calls())

	if l.State() != StateDisposed || l.Handle() != dx.NoHandle {
		t.Fatalf("light view survived Close: state=%v handle=%v", l.State(), l.Handle())
	}
	if st := l.SetEnable(true); st != -1 {
		t.Fatalf("expected -1, got %d", st)
	}
	if l.Enabled() || l.DifColor() != (dx.ColorF{}) {
		t.Fatal("expected zero values from a disposed light")
	}
	if _, _, ok := g.Size(); ok || g.Draw(0, 0, false) != -1 {
		t.Fatal("graph view still usable after Close")
	}
	if cb.Buffer() != nil || cb.Set(0, dx.Float4{}) == nil || cb.Update() != -1 {
		t.Fatal("constant buffer view still usable after Close")
	}
	if got := b.CallNames()[before:]; len(got) != 0 {
		t.Fatalf("disposed views called the backend after DxLib_End: %v", got)
	}
}

func TestAddReleasesRejected(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})

	a, _ := x.LoadSound("a.wav")
	released := 0
	dup := &Sound{newResource(b, a.Handle(), "dup.wav", func(dx.Backend, dx.Handle) int32 {
		released++
		return 0
	})}
	if _, err := add(x, dup); !errors.Is(err, ErrHandleInUse) {
		t.Fatalf("expected ErrHandleInUse, got %v", err)
	}
	if released != 0 || a.State() != StateRegistered {
		t.Fatalf("a rejected duplicate must not release the registered handle (released %d)", released)
	}

	x.Close()
	late := NewSound(b, "b.wav")
	h := late.Handle()
	if _, err := add(x, late); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if n := b.Releases(h); n != 1 || late.State() != StateDisposed {
		t.Fatalf("expected the unregistered wrapper to be released once, got %d", n)
	}
}

func TestHandleReuseAfterDirectDispose(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})

	owner := NewSound(b, "a.wav")
	h := owner.Handle()
	id, err := x.Register(owner)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := x.Sound(id)
	owner.Dispose()

	if v.State() != StateDisposed {
		t.Fatalf("view should follow its owner, got %v", v.State())
	}
	if x.Len() != 0 {
		t.Fatalf("directly disposed owner still counted, Len=%d", x.Len())
	}
	x.Each(func(r Resource) bool {
		t.Fatalf("Each yielded disposed resource %d", r.ID())
		return false
	})
	if _, err := x.Sound(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The native handle is free again, so a new wrapper may claim it.
	reuse := &Sound{newResource(b, h, "b.wav", nil)}
	id, err = x.Register(reuse)
	if err != nil {
		t.Fatalf("expected reuse to succeed, got %v", err)
	}
	if r, ok := x.LookupHandle(h); !ok || r.ID() != id {
		t.Fatalf("expected handle %v to map to %d", h, id)
	}
}

func TestEach(t *testing.T) {
	x, _ := newTestTdx(t, headless.Options{})
	x.LoadSound("a.wav")
	x.LoadMusic("b.mid")
	x.LoadGraph("c.png")

	var kinds []Kind
	x.Each(func(r Resource) bool {
		if r.Owned() {
			t.Fatal("Each must yield views")
		}
		kinds = append(kinds, r.Kind())
		return true
	})
	if want := []Kind{KindSound, KindMusic, KindGraph}; !slices.Equal(kinds, want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}

	n := 0
	x.Each(func(Resource) bool { n++; return false })
	if n != 1 {
		t.Fatalf("expected early stop after 1, got %d", n)
	}
}

func TestLoop(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{QuitAfter: 3})

	frames := 0
	err := x.Loop(context.Background(), func(f Frame) error {
		if f.Index != frames {
			t.Fatalf("expected frame %d, got %d", frames, f.Index)
		}
		frames++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if frames != 3 || b.Count("ScreenFlip") != 3 || b.Count("ClearDrawScreen") != 3 {
		t.Fatalf("expected 3 frames, got %d (flips %d)", frames, b.Count("ScreenFlip"))
	}
}

func TestLoopStops(t *testing.T) {
	t.Run("escape", func(t *testing.T) {
		x, b := newTestTdx(t, headless.Options{})
		err := x.Loop(context.Background(), func(f Frame) error {
			if f.Index == 1 {
				b.SetKey(dx.KeyInputEscape, true)
			}
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if n := b.Count("ScreenFlip"); n != 2 {
			t.Fatalf("expected 2 frames, got %d", n)
		}
	})

	t.Run("context", func(t *testing.T) {
		x, _ := newTestTdx(t, headless.Options{})
		ctx, cancel := context.WithCancel(context.Background())
		err := x.Loop(ctx, func(f Frame) error {
			if f.Index == 4 {
				cancel()
			}
			return nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("step error", func(t *testing.T) {
		x, _ := newTestTdx(t, headless.Options{})
		boom := errors.New("boom")
		err := x.Loop(context.Background(), func(f Frame) error { return boom })
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestConstantBufferAndShaders(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})
	def := dx.NewFloat4(1, 0.5, 0.25, 1)
	b.DefineConst("g_tint", 1, &def)

	ps, err := x.LoadPixelShader("a.pso")
	if err != nil {
		t.Fatal(err)
	}
	if ps.Bind() != 0 {
		t.Fatal("bind failed")
	}
	if idx := ps.ConstIndex("g_tint"); idx != 0 {
		t.Fatalf("expected index 0, got %d", idx)
	}
	if v, ok := ps.ConstDefault("g_tint"); !ok || v != def {
		t.Fatalf("expected default %+v, got %+v (%v)", def, v, ok)
	}
	if _, ok := ps.ConstDefault("g_missing"); ok {
		t.Fatal("expected no default for an unknown constant")
	}

	cb, err := x.CreateConstantBuffer(4, dx.ShaderPixel, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := cb.Set(1, dx.NewFloat4(1, 2, 3, 4), dx.NewFloat4(5, 6, 7, 8)); err != nil {
		t.Fatal(err)
	}
	if got := cb.Buffer()[2]; got != dx.NewFloat4(5, 6, 7, 8) {
		t.Fatalf("unexpected register 2 %+v", got)
	}
	if err := cb.Set(3, def, def); err == nil {
		t.Fatal("expected out of range error")
	}
	if cb.Update() != 0 || cb.Bind() != 0 {
		t.Fatal("update or bind failed")
	}
	calls := b.Calls()
	last := calls[len(calls)-1]
	if last.Name != "SetShaderConstantBuffer" || last.Args[1] != dx.ShaderPixel || last.Args[2] != int32(4) {
		t.Fatalf("unexpected bind call %v", last)
	}
}

func TestLight(t *testing.T) {
	x, _ := newTestTdx(t, headless.Options{})
	l, err := x.CreateSpotLight(dx.NewVector(0, 100, 0), dx.NewVector(0, -1, 0), 0.7, 0.5, 500, 0, 0.002, 0)
	if err != nil {
		t.Fatal(err)
	}
	if l.Type() != dx.LightSpot || !l.Enabled() {
		t.Fatalf("unexpected type %v enabled %v", l.Type(), l.Enabled())
	}
	l.SetDifColor(dx.NewColorF(1, 0, 0, 1))
	if got := l.DifColor(); got != dx.NewColorF(1, 0, 0, 1) {
		t.Fatalf("unexpected color %+v", got)
	}
	l.SetAngle(1, 0.25)
	if out, in, ok := l.Angle(); !ok || out != 1 || in != 0.25 {
		t.Fatalf("unexpected angle %v %v %v", out, in, ok)
	}
	l.SetEnable(false)
	if l.Enabled() {
		t.Fatal("expected disabled light")
	}
}

func TestFrameHelpers(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})
	if err := x.SetCameraLookAt(dx.NewVector(0, 0, -10), dx.Vector{}, dx.NewVector(0, 1, 0)); err != nil {
		t.Fatal(err)
	}
	if got := b.View().TransformPoint(dx.Vector{}); got != dx.NewVector(0, 0, 10) {
		t.Fatalf("unexpected view transform %+v", got)
	}
	if err := x.SetCameraLookAt(dx.Vector{}, dx.Vector{}, dx.NewVector(0, 1, 0)); err == nil {
		t.Fatal("expected error for a degenerate camera")
	}

	vss := [][]dx.Vertex3DShader{make([]dx.Vertex3DShader, 6), make([]dx.Vertex3DShader, 3)}
	if st := x.DrawFaces(vss); st != 0 {
		t.Fatalf("status %d", st)
	}
	if got := b.Triangles(); got != 3 {
		t.Fatalf("expected 3 triangles, got %d", got)
	}
}

func TestFont(t *testing.T) {
	x, b := newTestTdx(t, headless.Options{})
	f, err := x.CreateFont(FontSpec{Name: "Arial", Size: 32, Thick: 1, FontType: -1, CharSet: -1, EdgeSize: -1, Italic: true})
	if err != nil {
		t.Fatal(err)
	}
	if st := f.Printf(40, 440, x.GetColor(32, 192, 255), "%d%%", 50); st != 0 {
		t.Fatalf("status %d", st)
	}
	calls := b.Calls()
	last := calls[len(calls)-1]
	if last.Name != "DrawStringToHandle" || last.Args[2] != "50%" {
		t.Fatalf("unexpected call %v", last)
	}
}
