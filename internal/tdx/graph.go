package tdx

import "github.com/tinyrange/dxbridge/internal/dx"

// Image is satisfied by Graph and Screen.
type Image interface {
	Resource
	Size() (width, height int32, ok bool)
	Draw(x, y int32, trans bool) int32
	SetToShader(stage int32) int32
}

func deleteGraph(b dx.Backend, h dx.Handle) int32 {
	return b.DeleteGraph(h, dx.FALSE)
}

// surface holds the drawing operations shared by graph handles.
type surface struct{ resource }

func (s *surface) Size() (width, height int32, ok bool) {
	h, ok := s.live()
	if !ok {
		return 0, 0, false
	}
	w, ht, st := s.b.GetGraphSize(h)
	return w, ht, st == 0
}

func (s *surface) Draw(x, y int32, trans bool) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.DrawGraph(x, y, h, dx.Bool(trans))
}

// DrawTurn draws the image mirrored horizontally.
func (s *surface) DrawTurn(x, y int32, trans bool) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.DrawTurnGraph(x, y, h, dx.Bool(trans))
}

// DrawRota draws the image centred on (x, y), scaled by extRate and rotated
// by angle radians.
func (s *surface) DrawRota(x, y int32, extRate, angle float64, trans, reverseX, reverseY bool) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.DrawRotaGraph(x, y, extRate, angle, h, dx.Bool(trans), dx.Bool(reverseX), dx.Bool(reverseY))
}

func (s *surface) DrawExtend(r dx.Rect, trans bool) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.DrawExtendGraph(r.Left, r.Top, r.Right, r.Bottom, h, dx.Bool(trans))
}

// DrawModi draws the image onto a free quadrilateral given as left-top,
// right-top, right-bottom and left-bottom corners.
func (s *surface) DrawModi(corners [4][2]int32, trans bool) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	c := corners
	return s.b.DrawModiGraph(c[0][0], c[0][1], c[1][0], c[1][1], c[2][0], c[2][1], c[3][0], c[3][1], h, dx.Bool(trans))
}

// DrawRect draws the src region of the image at (x, y).
func (s *surface) DrawRect(x, y int32, src dx.Rect, trans, reverseX, reverseY bool) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.DrawRectGraph(x, y, src.Left, src.Top, src.Right-src.Left, src.Bottom-src.Top, h,
		dx.Bool(trans), dx.Bool(reverseX), dx.Bool(reverseY))
}

// DrawRectExtend stretches the src region of the image over dst.
func (s *surface) DrawRectExtend(dst, src dx.Rect, trans bool) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.DrawRectExtendGraph(dst.Left, dst.Top, dst.Right, dst.Bottom,
		src.Left, src.Top, src.Right-src.Left, src.Bottom-src.Top, h, dx.Bool(trans))
}

// SetToShader binds the image as the texture of shader stage.
func (s *surface) SetToShader(stage int32) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.SetUseTextureToShader(stage, h)
}

// CaptureScreen copies r of the current draw screen into the image. Right
// and bottom are exclusive.
func (s *surface) CaptureScreen(r dx.Rect, useClient bool) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.GetDrawScreenGraph(r.Left, r.Top, r.Right, r.Bottom, h, dx.Bool(useClient))
}

// Graph is an image loaded from a file or created blank.
type Graph struct{ surface }

// NewGraph loads an image file with LoadGraph.
func NewGraph(b dx.Backend, path string) *Graph {
	return &Graph{surface{newResource(b, b.LoadGraph(path), path, deleteGraph)}}
}

// NewBlankGraph creates an empty image, typically as a CaptureScreen target.
func NewBlankGraph(b dx.Backend, width, height int32, notUse3D bool) *Graph {
	h := b.MakeGraph(width, height, dx.Bool(notUse3D))
	return &Graph{surface{newResource(b, h, "", deleteGraph)}}
}

func (*Graph) Kind() Kind { return KindGraph }

func (g *Graph) view() Resource { return &Graph{surface{g.weak()}} }

// Screen is an off screen draw target.
type Screen struct{ surface }

// NewScreen creates a draw target with MakeScreen.
func NewScreen(b dx.Backend, width, height int32, useAlpha bool) *Screen {
	h := b.MakeScreen(width, height, dx.Bool(useAlpha))
	return &Screen{surface{newResource(b, h, "", deleteGraph)}}
}

func (*Screen) Kind() Kind { return KindScreen }

func (s *Screen) view() Resource { return &Screen{surface{s.weak()}} }

// Activate makes the screen the current draw target.
func (s *Screen) Activate() int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.SetDrawScreen(h)
}

// SetAsRenderTarget binds the screen as shader render target index.
func (s *Screen) SetAsRenderTarget(index int32) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.SetRenderTargetToShader(index, h, 0, 0)
}
