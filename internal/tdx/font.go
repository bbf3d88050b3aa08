package tdx

import (
	"fmt"

	"github.com/tinyrange/dxbridge/internal/dx"
)

// FontSpec describes a system font for NewFont. Negative values select the
// library defaults.
type FontSpec struct {
	Name     string
	Size     int32
	Thick    int32
	FontType int32
	CharSet  int32
	EdgeSize int32
	Italic   bool
}

// Font is a font handle.
type Font struct{ resource }

func deleteFont(b dx.Backend, h dx.Handle) int32 { return b.DeleteFontToHandle(h) }

// NewFont creates a font from an installed system font.
func NewFont(b dx.Backend, spec FontSpec) *Font {
	h := b.CreateFontToHandle(spec.Name, spec.Size, spec.Thick, spec.FontType,
		spec.CharSet, spec.EdgeSize, dx.Bool(spec.Italic), dx.DefaultHandle)
	return &Font{newResource(b, h, spec.Name, deleteFont)}
}

// NewFontData loads a pre-rendered .dft font produced by CreateDXFontData.
func NewFontData(b dx.Backend, path string, edgeSize int32) *Font {
	return &Font{newResource(b, b.LoadFontDataToHandle(path, edgeSize), path, deleteFont)}
}

func (*Font) Kind() Kind { return KindFont }

func (f *Font) view() Resource { return &Font{f.weak()} }

// DrawString draws s verbatim.
func (f *Font) DrawString(x, y int32, s string, color, edgeColor uint32, vertical bool) int32 {
	h, ok := f.live()
	if !ok {
		return statusDisposed
	}
	return f.b.DrawStringToHandle(x, y, s, color, h, edgeColor, dx.Bool(vertical))
}

// DrawFormat passes s to the library's printf, so a literal % must be
// written as %%.
func (f *Font) DrawFormat(x, y int32, color uint32, s string) int32 {
	h, ok := f.live()
	if !ok {
		return statusDisposed
	}
	return f.b.DrawFormatStringToHandle(x, y, color, h, s)
}

// Printf formats in Go and draws the result verbatim.
func (f *Font) Printf(x, y int32, color uint32, format string, args ...any) int32 {
	return f.DrawString(x, y, fmt.Sprintf(format, args...), color, 0, false)
}
