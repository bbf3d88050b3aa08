// Package geom converts GL style polygon tables into DxLib triangle lists.
//
// Source tables use counter-clockwise front faces in a right-handed, Y-up
// space. DxLib culls clockwise triangles, so every emitted position has its
// Y contribution negated, which swaps front and back faces, and every
// polygon is re-indexed so the result is a clockwise triangle list.
package geom

import "github.com/tinyrange/dxbridge/internal/dx"

// VT is the interchange vertex produced by shape generators.
type VT struct {
	Pos dx.Float4
	UV  dx.Float2
}

func NewVT(pos dx.Float4, uv dx.Float2) VT { return VT{Pos: pos, UV: uv} }

// VTOf builds a vertex from plain arrays.
func VTOf(pos [4]float32, uv [2]float32) VT {
	return VT{Pos: dx.Float4Of(pos), UV: dx.Float2Of(uv)}
}
