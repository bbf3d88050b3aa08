// Package headless implements dx.Backend without a window or a GPU.
//
// It hands out handles from a counter, records every call, and keeps track
// of which handles are live so tests can check that each resource is
// released exactly once. Images found through Options.Assets have their
// headers decoded so size queries return real dimensions.
package headless

import (
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/tinyrange/dxbridge/internal/dx"
)

// Call is one recorded backend call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

type Options struct {
	// Assets resolves load paths. When nil every load succeeds.
	Assets fs.FS

	// InitResult is returned from DxLibInit. Set it to -1 to simulate a
	// failed start up.
	InitResult int32

	// QuitAfter makes ProcessMessage report a closed window once it has been
	// called that many times. Zero never quits.
	QuitAfter int

	Logger *slog.Logger
}

type resource struct {
	kind string
	path string
}

// Backend is a recording dx.Backend.
type Backend struct {
	opts Options
	log  *slog.Logger

	mu       sync.Mutex
	next     dx.Handle
	calls    []Call
	live     map[dx.Handle]resource
	released map[dx.Handle]int
	fail     map[string]bool
	keys     map[int32]bool

	sizes   map[dx.Handle][2]int32
	cbufs   map[dx.Handle][]dx.Float4
	lights  map[dx.Handle]*light
	consts  []shaderConst
	volumes map[dx.Handle]int32

	messages  int
	inited    bool
	ended     bool
	triangles int

	view dx.Matrix
	proj dx.Matrix
}

var _ dx.Backend = (*Backend)(nil)

func New(opts Options) *Backend {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Backend{
		opts:     opts,
		log:      log,
		next:     1,
		live:     make(map[dx.Handle]resource),
		released: make(map[dx.Handle]int),
		fail:     make(map[string]bool),
		keys:     make(map[int32]bool),
		sizes:    make(map[dx.Handle][2]int32),
		cbufs:    make(map[dx.Handle][]dx.Float4),
		lights:   make(map[dx.Handle]*light),
		volumes:  make(map[dx.Handle]int32),
		view:     dx.IdentityMatrix(),
		proj:     dx.IdentityMatrix(),
	}
}

// FailLoad makes every later load of path return dx.InvalidHandle.
func (b *Backend) FailLoad(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail[path] = true
}

// SetKey marks a key code as held down or released.
func (b *Backend) SetKey(code int32, down bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if down {
		b.keys[code] = true
	} else {
		delete(b.keys, code)
	}
}

// Calls returns a copy of the call log.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.calls)
}

// CallNames returns the names of the recorded calls in order.
func (b *Backend) CallNames() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	names := make([]string, len(b.calls))
	for i, c := range b.calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times name was called.
func (b *Backend) Count(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Live returns the allocated handles that have not been released, in
// allocation order.
func (b *Backend) Live() []dx.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	hs := make([]dx.Handle, 0, len(b.live))
	for h := range b.live {
		hs = append(hs, h)
	}
	slices.Sort(hs)
	return hs
}

// Releases returns how many times h was passed to a delete call.
func (b *Backend) Releases(h dx.Handle) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released[h]
}

// DoubleReleases returns the handles that were released more than once.
func (b *Backend) DoubleReleases() []dx.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	var hs []dx.Handle
	for h, n := range b.released {
		if n > 1 {
			hs = append(hs, h)
		}
	}
	slices.Sort(hs)
	return hs
}

// Triangles returns the number of triangles submitted so far.
func (b *Backend) Triangles() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.triangles
}

// Ended reports whether DxLibEnd has been called.
func (b *Backend) Ended() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ended
}

func (b *Backend) record(name string, args ...any) {
	b.mu.Lock()
	b.calls = append(b.calls, Call{Name: name, Args: args})
	b.mu.Unlock()
}

// alloc hands out the next handle unless path is marked as failing or
// cannot be found in the asset filesystem.
func (b *Backend) alloc(kind, path string) dx.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	if path != "" {
		if b.fail[path] {
			b.log.Debug("headless load failed", "kind", kind, "path", path)
			return dx.InvalidHandle
		}
		if b.opts.Assets != nil {
			if _, err := fs.Stat(b.opts.Assets, path); err != nil {
				b.log.Debug("headless asset missing", "kind", kind, "path", path, "error", err)
				return dx.InvalidHandle
			}
		}
	}

	h := b.next
	b.next++
	b.live[h] = resource{kind: kind, path: path}
	b.log.Debug("headless alloc", "kind", kind, "handle", h, "path", path)
	return h
}

// free releases h if it is a live handle of one of kinds. Every attempt is
// counted, including ones that fail.
func (b *Backend) free(h dx.Handle, kinds ...string) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.released[h]++
	r, ok := b.live[h]
	if !ok || !slices.Contains(kinds, r.kind) {
		b.log.Debug("headless release of dead handle", "kinds", kinds, "handle", h)
		return -1
	}
	delete(b.live, h)
	delete(b.sizes, h)
	delete(b.cbufs, h)
	delete(b.lights, h)
	delete(b.volumes, h)
	b.log.Debug("headless release", "kind", r.kind, "handle", h)
	return 0
}

func (b *Backend) isLive(h dx.Handle, kinds ...string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.live[h]
	return ok && slices.Contains(kinds, r.kind)
}

func status(ok bool) int32 {
	if ok {
		return 0
	}
	return -1
}

// Lifecycle

func (b *Backend) DxLibInit() int32 {
	b.record("DxLib_Init")
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.opts.InitResult != 0 {
		return b.opts.InitResult
	}
	b.inited = true
	return 0
}

func (b *Backend) DxLibEnd() int32 {
	b.record("DxLib_End")
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ended {
		return -1
	}
	b.ended = true
	return 0
}

func (b *Backend) ChangeWindowMode(flag int32) int32 {
	b.record("ChangeWindowMode", flag)
	return 0
}

func (b *Backend) SetGraphMode(width, height, colorBitDepth, refreshRate int32) int32 {
	b.record("SetGraphMode", width, height, colorBitDepth, refreshRate)
	return 0
}

func (b *Backend) SetOutApplicationLogValidFlag(flag int32) int32 {
	b.record("SetOutApplicationLogValidFlag", flag)
	return 0
}

func (b *Backend) SetMainWindowText(text string) int32 {
	b.record("SetMainWindowText", text)
	return 0
}

func (b *Backend) SetUseDirect3DVersion(version int32) int32 {
	b.record("SetUseDirect3DVersion", version)
	return 0
}

// Input

func (b *Backend) ProcessMessage() int32 {
	b.record("ProcessMessage")
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ended {
		return -1
	}
	b.messages++
	if b.opts.QuitAfter > 0 && b.messages > b.opts.QuitAfter {
		return -1
	}
	return 0
}

func (b *Backend) WaitKey() int32 {
	b.record("WaitKey")
	return 0
}

func (b *Backend) WaitTimer(msec int32) int32 {
	b.record("WaitTimer", msec)
	return 0
}

func (b *Backend) CheckHitKey(code int32) int32 {
	b.record("CheckHitKey", code)
	b.mu.Lock()
	defer b.mu.Unlock()
	return dx.Bool(b.keys[code])
}

func (b *Backend) CheckHitKeyAll(checkType int32) int32 {
	b.record("CheckHitKeyAll", checkType)
	b.mu.Lock()
	defer b.mu.Unlock()
	return dx.Bool(len(b.keys) > 0)
}

func (b *Backend) GetJoypadInputState(inputType int32) int32 {
	b.record("GetJoypadInputState", inputType)
	return 0
}

// Screen

func (b *Backend) ClearDrawScreen(r *dx.Rect) int32 {
	if r != nil {
		b.record("ClearDrawScreen", *r)
	} else {
		b.record("ClearDrawScreen")
	}
	return 0
}

func (b *Backend) SetDrawScreen(screen dx.Handle) int32 {
	b.record("SetDrawScreen", screen)
	if screen.Valid() {
		return status(b.isLive(screen, kindScreen))
	}
	return 0
}

func (b *Backend) ScreenFlip() int32 {
	b.record("ScreenFlip")
	return 0
}

func (b *Backend) GetColor(r, g, bl int32) uint32 {
	b.record("GetColor", r, g, bl)
	return uint32(r&0xff)<<16 | uint32(g&0xff)<<8 | uint32(bl&0xff)
}

func (b *Backend) DrawPixel(x, y int32, color uint32) int32 {
	b.record("DrawPixel", x, y, color)
	return 0
}

func (b *Backend) DrawBox(left, top, right, bottom int32, color uint32, fill int32) int32 {
	b.record("DrawBox", left, top, right, bottom, color, fill)
	return 0
}

func (b *Backend) SetDrawBlendMode(mode, param int32) int32 {
	b.record("SetDrawBlendMode", mode, param)
	return 0
}
