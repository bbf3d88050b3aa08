// Package dxbridge drives DxLib from Go. A Tdx owns every native handle
// created through it and releases them on Close; callers work with
// non-owning views narrowed by kind.
package dxbridge

import (
	"io/fs"
	"log/slog"

	"github.com/tinyrange/dxbridge/internal/dx"
	"github.com/tinyrange/dxbridge/internal/dx/headless"
	"github.com/tinyrange/dxbridge/internal/dx/native"
	"github.com/tinyrange/dxbridge/internal/geom"
	"github.com/tinyrange/dxbridge/internal/tdx"
)

// -----------------------------------------------------------------------------
// Type Aliases - These re-export types from internal packages
// -----------------------------------------------------------------------------

// Tdx is a running DxLib session and its resource registry.
type Tdx = tdx.Tdx

// Resource is implemented by every handle wrapper.
type Resource = tdx.Resource

// ID identifies a registry entry.
type ID = tdx.ID

type Kind = tdx.Kind

type (
	Sound          = tdx.Sound
	Music          = tdx.Music
	Graph          = tdx.Graph
	Screen         = tdx.Screen
	VertexShader   = tdx.VertexShader
	PixelShader    = tdx.PixelShader
	GeometryShader = tdx.GeometryShader
	ConstantBuffer = tdx.ConstantBuffer
	Light          = tdx.Light
	Font           = tdx.Font
	FontSpec       = tdx.FontSpec
	Frame          = tdx.Frame
)

// Capabilities shared by several kinds.
type (
	Player = tdx.Player
	Image  = tdx.Image
	Shader = tdx.Shader
)

// Backend is the native call surface. Use HeadlessBackend to run without
// a display.
type Backend = dx.Backend

type HeadlessBackend = headless.Backend

type Handle = dx.Handle

// VT is a GL style vertex: homogeneous position and UV.
type VT = geom.VT

// ConvertOptions controls Convert.
type ConvertOptions = geom.Options

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	ErrInitFailed  = tdx.ErrInitFailed
	ErrClosed      = tdx.ErrClosed
	ErrNotFound    = tdx.ErrNotFound
	ErrWrongKind   = tdx.ErrWrongKind
	ErrHandleInUse = tdx.ErrHandleInUse
	ErrUnsupported = native.ErrUnsupported
)

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

type settings struct {
	tdx     tdx.Options
	native  native.Options
	backend dx.Backend
}

// Option configures New.
type Option interface {
	apply(s *settings)
}

type optionFunc func(s *settings)

func (f optionFunc) apply(s *settings) { f(s) }

// WithWindowed selects windowed (true) or full screen mode.
func WithWindowed(windowed bool) Option {
	return optionFunc(func(s *settings) { s.tdx.Windowed = windowed })
}

// WithGraphMode sets the screen size, colour depth and refresh rate.
func WithGraphMode(width, height, colorBitDepth, refreshRate int32) Option {
	return optionFunc(func(s *settings) {
		s.tdx.Width = width
		s.tdx.Height = height
		s.tdx.ColorBitDepth = colorBitDepth
		s.tdx.RefreshRate = refreshRate
	})
}

func WithTitle(title string) Option {
	return optionFunc(func(s *settings) { s.tdx.Title = title })
}

// WithAppLog enables DxLib's Log.txt.
func WithAppLog(enable bool) Option {
	return optionFunc(func(s *settings) { s.tdx.AppLog = enable })
}

// WithDirect3D selects a Direct3D version such as dx.Direct3D11.
func WithDirect3D(version int32) Option {
	return optionFunc(func(s *settings) { s.tdx.Direct3D = version })
}

func WithLogger(log *slog.Logger) Option {
	return optionFunc(func(s *settings) {
		s.tdx.Logger = log
		s.native.Logger = log
	})
}

// WithDLL overrides the DxLib DLL path.
func WithDLL(path string) Option {
	return optionFunc(func(s *settings) { s.native.DLLPath = path })
}

// WithUTF8 sends strings as UTF-8 instead of CP932.
func WithUTF8() Option {
	return optionFunc(func(s *settings) { s.native.Encoding = native.EncodingUTF8 })
}

// WithBackend replaces the native DLL, for example with NewHeadless.
func WithBackend(b Backend) Option {
	return optionFunc(func(s *settings) { s.backend = b })
}

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

// New starts DxLib in a 640x480 32 bit window unless options say otherwise.
func New(opts ...Option) (*Tdx, error) {
	s := settings{tdx: tdx.Options{
		Windowed:      true,
		Width:         640,
		Height:        480,
		ColorBitDepth: 32,
		RefreshRate:   60,
	}}
	for _, o := range opts {
		o.apply(&s)
	}

	b := s.backend
	if b == nil {
		var err error
		if b, err = native.Open(s.native); err != nil {
			return nil, err
		}
	}
	return tdx.New(b, s.tdx)
}

// NewHeadless returns a backend that records calls instead of drawing.
// Loads succeed only for paths present in assets, or always when assets is
// nil.
func NewHeadless(assets fs.FS) *HeadlessBackend {
	return headless.New(headless.Options{Assets: assets})
}

// Narrow returns a view of the resource registered under id as T.
func Narrow[T Resource](t *Tdx, id ID) (T, error) { return tdx.Narrow[T](t, id) }

// MustNarrow is Narrow that panics on failure.
func MustNarrow[T Resource](t *Tdx, id ID) T { return tdx.MustNarrow[T](t, id) }

// Convert turns a GL polygon into DxLib triangles.
func Convert(vts []VT, opts ConvertOptions) ([]dx.Vertex3DShader, error) {
	return geom.Convert(vts, opts)
}

// CalcNormals fills the normals of a triangle list.
func CalcNormals(vs []dx.Vertex3DShader, normalize bool) error {
	return geom.CalcNormals(vs, normalize)
}
