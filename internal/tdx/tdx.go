// Package tdx owns the native resources of a DxLib session.
//
// A Tdx starts the library, keeps every loaded or created handle in a
// registry keyed by ID, and on Close releases whatever is left, newest
// first, before shutting the library down. Callers work with non-owning
// views narrowed from the registry, so a handle is released at most once
// no matter how many views exist.
package tdx

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/tinyrange/dxbridge/internal/dx"
)

// Options are applied before DxLib_Init.
type Options struct {
	Windowed bool

	// Width and Height select the graph mode. Zero keeps the library default.
	Width         int32
	Height        int32
	ColorBitDepth int32
	RefreshRate   int32

	// Title is the main window title.
	Title string

	// AppLog enables the library's Log.txt output.
	AppLog bool

	// Direct3D selects a Direct3D version (dx.Direct3D9 etc). Zero keeps the
	// library default.
	Direct3D int32

	Logger *slog.Logger
}

// Tdx is a running DxLib session and its resource registry.
type Tdx struct {
	b   dx.Backend
	log *slog.Logger

	mu       sync.Mutex
	next     ID
	entries  map[ID]Resource
	byHandle map[dx.Handle]ID
	closed   bool
}

// New applies opts and starts the library.
func New(b dx.Backend, opts Options) (*Tdx, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	b.SetOutApplicationLogValidFlag(dx.Bool(opts.AppLog))
	b.ChangeWindowMode(dx.Bool(opts.Windowed))
	if opts.Width > 0 && opts.Height > 0 {
		depth := opts.ColorBitDepth
		if depth == 0 {
			depth = 32
		}
		b.SetGraphMode(opts.Width, opts.Height, depth, opts.RefreshRate)
	}
	if opts.Direct3D != dx.Direct3DNone {
		b.SetUseDirect3DVersion(opts.Direct3D)
	}
	if opts.Title != "" {
		b.SetMainWindowText(opts.Title)
	}

	if st := b.DxLibInit(); st == -1 {
		return nil, &Error{Op: "init", Err: ErrInitFailed}
	}
	log.Info("DxLib initialized",
		"windowed", opts.Windowed,
		"width", opts.Width,
		"height", opts.Height,
		"depth", opts.ColorBitDepth,
	)

	return &Tdx{
		b:        b,
		log:      log,
		next:     1,
		entries:  make(map[ID]Resource),
		byHandle: make(map[dx.Handle]ID),
	}, nil
}

// Backend returns the backend for calls the registry does not wrap.
func (t *Tdx) Backend() dx.Backend { return t.b }

// Register takes ownership of a freshly constructed wrapper.
//
// A wrapper whose load failed is registered anyway so it can be listed and
// unregistered like any other; its invalid handle is logged. A valid handle
// that is already registered returns ErrHandleInUse.
func (t *Tdx) Register(r Resource) (ID, error) {
	c := r.core()
	sh := c.c

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, &Error{Op: "register", Path: c.path, Err: ErrClosed}
	}
	if sh.state != StateConstructed || !c.owns {
		return 0, &Error{Op: "register", Path: c.path, Err: ErrRegistered}
	}
	t.sweep()
	if sh.h.Valid() {
		if prev, ok := t.byHandle[sh.h]; ok && t.holds(prev, sh.h) {
			return 0, &Error{
				Op:   "register",
				Path: c.path,
				Err:  fmt.Errorf("%w: handle %d held by resource %d", ErrHandleInUse, sh.h, prev),
			}
		}
	}

	id := t.next
	t.next++
	sh.id = id
	sh.state = StateRegistered
	t.entries[id] = r

	if sh.h.Valid() {
		t.byHandle[sh.h] = id
	} else {
		t.log.Warn("resource registered with invalid handle",
			"id", id, "kind", r.Kind(), "handle", sh.h, "path", c.path)
	}
	t.log.Debug("resource registered", "id", id, "kind", r.Kind(), "handle", sh.h, "path", c.path)
	return id, nil
}

// Unregister removes id and disposes it. It reports whether id was present,
// so a second call is a harmless no-op.
func (t *Tdx) Unregister(id ID) bool {
	t.mu.Lock()
	r, ok := t.entries[id]
	if ok {
		t.drop(id, r)
	}
	t.mu.Unlock()

	if !ok {
		return false
	}
	r.Dispose()
	t.log.Debug("resource unregistered", "id", id, "kind", r.Kind())
	return true
}

// holds reports whether entry id still holds native handle h. t.mu must be
// held.
func (t *Tdx) holds(id ID, h dx.Handle) bool {
	r, ok := t.entries[id]
	return ok && r.Handle() == h
}

// sweep drops entries whose owner was disposed directly rather than through
// Unregister. t.mu must be held.
func (t *Tdx) sweep() {
	for id, r := range t.entries {
		if r.State() == StateDisposed {
			delete(t.entries, id)
			for h, hid := range t.byHandle {
				if hid == id {
					delete(t.byHandle, h)
				}
			}
			t.log.Debug("dropped resource disposed outside the registry", "id", id, "kind", r.Kind())
		}
	}
}

// drop removes id from both indexes. t.mu must be held.
func (t *Tdx) drop(id ID, r Resource) {
	delete(t.entries, id)
	if h := r.Handle(); h.Valid() && t.byHandle[h] == id {
		delete(t.byHandle, h)
	}
}

// owner returns the owning wrapper for id.
func (t *Tdx) owner(id ID) (Resource, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, &Error{Op: "lookup", Err: ErrClosed}
	}
	t.sweep()
	r, ok := t.entries[id]
	if !ok {
		return nil, &Error{Op: "lookup", Err: fmt.Errorf("%w: id %d", ErrNotFound, id)}
	}
	return r, nil
}

// Lookup returns a non-owning view of id.
func (t *Tdx) Lookup(id ID) (Resource, bool) {
	r, err := t.owner(id)
	if err != nil {
		return nil, false
	}
	return r.view(), true
}

// LookupHandle returns a non-owning view of the entry holding native handle h.
func (t *Tdx) LookupHandle(h dx.Handle) (Resource, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sweep()
	id, ok := t.byHandle[h]
	if !ok {
		return nil, false
	}
	if !t.holds(id, h) {
		return nil, false
	}
	return t.entries[id].view(), true
}

// Len returns the number of registered resources that are not disposed.
func (t *Tdx) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sweep()
	return len(t.entries)
}

// ids returns the registered IDs in ascending order. t.mu must be held.
func (t *Tdx) ids() []ID {
	ids := make([]ID, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Each calls fn with a view of every resource in registration order until
// fn returns false.
func (t *Tdx) Each(fn func(r Resource) bool) {
	t.mu.Lock()
	t.sweep()
	ids := t.ids()
	views := make([]Resource, 0, len(ids))
	for _, id := range ids {
		views = append(views, t.entries[id].view())
	}
	t.mu.Unlock()

	for _, v := range views {
		if !fn(v) {
			return
		}
	}
}

// Close disposes every remaining resource, newest first, then ends the
// library. Calling Close again does nothing.
func (t *Tdx) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.sweep()
	ids := t.ids()
	slices.Reverse(ids)
	owners := make([]Resource, 0, len(ids))
	for _, id := range ids {
		owners = append(owners, t.entries[id])
	}
	clear(t.entries)
	clear(t.byHandle)
	t.mu.Unlock()

	for _, r := range owners {
		r.Dispose()
	}

	if st := t.b.DxLibEnd(); st != 0 {
		return &Error{Op: "end", Err: fmt.Errorf("DxLib_End returned %d", st)}
	}
	t.log.Info("DxLib ended", "disposed", len(owners))
	return nil
}

// open returns ErrClosed once Close has started.
func (t *Tdx) open(op, path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return &Error{Op: op, Path: path, Err: ErrClosed}
	}
	return nil
}

// add registers r and returns a view of it. If r can not be registered its
// handle is released, unless the handle belongs to another entry.
func add[T Resource](t *Tdx, r T) (T, error) {
	id, err := t.Register(r)
	if err != nil {
		if !errors.Is(err, ErrHandleInUse) {
			r.Dispose()
		}
		var zero T
		return zero, err
	}
	return Narrow[T](t, id)
}

func (t *Tdx) LoadSound(path string) (*Sound, error) {
	if err := t.open("load sound", path); err != nil {
		return nil, err
	}
	return add(t, NewSound(t.b, path))
}

func (t *Tdx) LoadMusic(path string) (*Music, error) {
	if err := t.open("load music", path); err != nil {
		return nil, err
	}
	return add(t, NewMusic(t.b, path))
}

func (t *Tdx) LoadGraph(path string) (*Graph, error) {
	if err := t.open("load graph", path); err != nil {
		return nil, err
	}
	return add(t, NewGraph(t.b, path))
}

func (t *Tdx) MakeGraph(width, height int32, notUse3D bool) (*Graph, error) {
	if err := t.open("make graph", ""); err != nil {
		return nil, err
	}
	return add(t, NewBlankGraph(t.b, width, height, notUse3D))
}

func (t *Tdx) MakeScreen(width, height int32, useAlpha bool) (*Screen, error) {
	if err := t.open("make screen", ""); err != nil {
		return nil, err
	}
	return add(t, NewScreen(t.b, width, height, useAlpha))
}

func (t *Tdx) LoadVertexShader(path string) (*VertexShader, error) {
	if err := t.open("load vertex shader", path); err != nil {
		return nil, err
	}
	return add(t, NewVertexShader(t.b, path))
}

func (t *Tdx) LoadPixelShader(path string) (*PixelShader, error) {
	if err := t.open("load pixel shader", path); err != nil {
		return nil, err
	}
	return add(t, NewPixelShader(t.b, path))
}

func (t *Tdx) LoadGeometryShader(path string) (*GeometryShader, error) {
	if err := t.open("load geometry shader", path); err != nil {
		return nil, err
	}
	return add(t, NewGeometryShader(t.b, path))
}

func (t *Tdx) CreateConstantBuffer(count int, stage dx.ShaderType, slot int32) (*ConstantBuffer, error) {
	if err := t.open("create constant buffer", ""); err != nil {
		return nil, err
	}
	return add(t, NewConstantBuffer(t.b, count, stage, slot))
}

func (t *Tdx) CreateDirLight(dir dx.Vector) (*Light, error) {
	if err := t.open("create light", ""); err != nil {
		return nil, err
	}
	return add(t, NewDirLight(t.b, dir))
}

func (t *Tdx) CreateSpotLight(pos, dir dx.Vector, outAngle, inAngle, rng, atten0, atten1, atten2 float32) (*Light, error) {
	if err := t.open("create light", ""); err != nil {
		return nil, err
	}
	return add(t, NewSpotLight(t.b, pos, dir, outAngle, inAngle, rng, atten0, atten1, atten2))
}

func (t *Tdx) CreatePointLight(pos dx.Vector, rng, atten0, atten1, atten2 float32) (*Light, error) {
	if err := t.open("create light", ""); err != nil {
		return nil, err
	}
	return add(t, NewPointLight(t.b, pos, rng, atten0, atten1, atten2))
}

func (t *Tdx) CreateFont(spec FontSpec) (*Font, error) {
	if err := t.open("create font", spec.Name); err != nil {
		return nil, err
	}
	return add(t, NewFont(t.b, spec))
}

func (t *Tdx) LoadFontData(path string, edgeSize int32) (*Font, error) {
	if err := t.open("load font data", path); err != nil {
		return nil, err
	}
	return add(t, NewFontData(t.b, path, edgeSize))
}
