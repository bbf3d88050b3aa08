// Package shapes holds the shape tables drawn by the demo scenes.
package shapes

import (
	"github.com/chewxy/math32"

	"github.com/tinyrange/dxbridge/internal/dx"
	"github.com/tinyrange/dxbridge/internal/geom"
)

const (
	// NFacesCube is the number of faces of Cube.
	NFacesCube = 6
	// VPFCube is the number of vertices per cube face.
	VPFCube = 4
	// VPFBentQuad is the vertex count of BentQuad.
	VPFBentQuad = 6
)

// BentQuad is a square bent along its diagonal, already in DxLib order.
//
// The four corners form a clockwise triangle {0,1,2} followed by the
// counter-clockwise {1,2,3}; vertices 2 and 1 are appended again so the
// second triangle becomes the clockwise {3,2,1}.
func BentQuad() []dx.Vertex3DShader {
	corners := []struct {
		pos [3]float32
		dif [4]uint8
		uv  [2]float32
	}{
		{[3]float32{-128, -256, 128}, [4]uint8{255, 255, 255, 255}, [2]float32{0, 0}},
		{[3]float32{128, -384, 128}, [4]uint8{128, 128, 128, 255}, [2]float32{1, 0}},
		{[3]float32{-128, -384, -128}, [4]uint8{255, 128, 255, 255}, [2]float32{0, 1}},
		{[3]float32{128, -256, -128}, [4]uint8{255, 255, 255, 255}, [2]float32{1, 1}},
	}
	vert := make([]dx.Vertex3DShader, 0, VPFBentQuad)
	for _, c := range corners {
		vert = append(vert, dx.Vertex3DShader{
			Pos: dx.VectorOf(c.pos),
			Dif: dx.ColorU8FromArray(c.dif),
			UV:  dx.Float2Of(c.uv),
		})
	}
	vert = append(vert, vert[2], vert[1])
	return vert
}

// BentQuadGL is a bent square in GL order.
func BentQuadGL() []geom.VT {
	return []geom.VT{
		geom.VTOf([4]float32{-1, -1.5, 0, 1}, [2]float32{0, 1}),
		geom.VTOf([4]float32{-1, -2, 1, 1}, [2]float32{1, 1}),
		geom.VTOf([4]float32{1, -2, 0, 1}, [2]float32{1, 0}),
		geom.VTOf([4]float32{1, -1.5, -0.5, 1}, [2]float32{0, 0}),
	}
}

// PolygonGL is a regular n-gon tilted around the X axis, in GL order.
func PolygonGL(n int) []geom.VT {
	vts := make([]geom.VT, 0, n)
	for i := 0; i < n; i++ {
		t := 2 * math32.Pi * float32(i) / float32(n)
		c, s := math32.Cos(t), math32.Sin(t)
		vts = append(vts, geom.VTOf(
			[4]float32{c, s - 1, s, 1},
			[2]float32{(1 + c) / 2, 1 - (1+s)/2},
		))
	}
	return vts
}

// cubeGL lists the cube faces as (position, uv) pairs, four per face, in
// the order +X, -X, +Y, -Y, +Z, -Z.
var cubeGL = [NFacesCube * VPFCube]struct {
	pos [4]float32
	uv  [2]float32
}{
	// +X right
	{[4]float32{1, -1, 1, 1}, [2]float32{0, 1}},
	{[4]float32{1, -1, -1, 1}, [2]float32{1, 1}},
	{[4]float32{1, 1, -1, 1}, [2]float32{1, 0}},
	{[4]float32{1, 1, 1, 1}, [2]float32{0, 0}},
	// -X left
	{[4]float32{-1, -1, 1, 1}, [2]float32{0, 1}},
	{[4]float32{-1, 1, 1, 1}, [2]float32{1, 1}},
	{[4]float32{-1, 1, -1, 1}, [2]float32{1, 0}},
	{[4]float32{-1, -1, -1, 1}, [2]float32{0, 0}},
	// +Y back
	{[4]float32{1, 1, -1, 1}, [2]float32{0, 1}},
	{[4]float32{-1, 1, -1, 1}, [2]float32{1, 1}},
	{[4]float32{-1, 1, 1, 1}, [2]float32{1, 0}},
	{[4]float32{1, 1, 1, 1}, [2]float32{0, 0}},
	// -Y front
	{[4]float32{1, -1, -1, 1}, [2]float32{0, 1}},
	{[4]float32{1, -1, 1, 1}, [2]float32{1, 1}},
	{[4]float32{-1, -1, 1, 1}, [2]float32{1, 0}},
	{[4]float32{-1, -1, -1, 1}, [2]float32{0, 0}},
	// +Z top
	{[4]float32{-1, 1, 1, 1}, [2]float32{0, 1}},
	{[4]float32{-1, -1, 1, 1}, [2]float32{1, 1}},
	{[4]float32{1, -1, 1, 1}, [2]float32{1, 0}},
	{[4]float32{1, 1, 1, 1}, [2]float32{0, 0}},
	// -Z bottom
	{[4]float32{-1, 1, -1, 1}, [2]float32{0, 1}},
	{[4]float32{1, 1, -1, 1}, [2]float32{1, 1}},
	{[4]float32{1, -1, -1, 1}, [2]float32{1, 0}},
	{[4]float32{-1, -1, -1, 1}, [2]float32{0, 0}},
}

// CubeFlatGL returns the cube as one flat table of NFacesCube*VPFCube
// vertices, for geom.ConvertFlat.
func CubeFlatGL() []geom.VT {
	vts := make([]geom.VT, 0, len(cubeGL))
	for _, t := range cubeGL {
		vts = append(vts, geom.VTOf(t.pos, t.uv))
	}
	return vts
}

// CubeGL returns the cube split into NFacesCube faces.
func CubeGL() [][]geom.VT {
	flat := CubeFlatGL()
	faces := make([][]geom.VT, 0, NFacesCube)
	for f := 0; f < NFacesCube; f++ {
		faces = append(faces, flat[f*VPFCube:(f+1)*VPFCube:(f+1)*VPFCube])
	}
	return faces
}

// PyramidGL is a square based pyramid with its apex pointing towards -Z:
// four triangles and one quad, so faces have mixed vertex counts.
func PyramidGL() [][]geom.VT {
	apex := [4]float32{0, 0, 1 - 0.707, 1}
	apexUV := [2]float32{0.5, 1 - 0.866}
	return [][]geom.VT{
		{
			geom.VTOf([4]float32{-1, -1, 2, 1}, [2]float32{1, 1}),
			geom.VTOf(apex, apexUV),
			geom.VTOf([4]float32{1, -1, 2, 1}, [2]float32{0, 1}),
		},
		{
			geom.VTOf([4]float32{1, -1, 2, 1}, [2]float32{1, 1}),
			geom.VTOf(apex, apexUV),
			geom.VTOf([4]float32{1, 1, 2, 1}, [2]float32{0, 1}),
		},
		{
			geom.VTOf([4]float32{1, 1, 2, 1}, [2]float32{1, 1}),
			geom.VTOf(apex, apexUV),
			geom.VTOf([4]float32{-1, 1, 2, 1}, [2]float32{0, 1}),
		},
		{
			geom.VTOf([4]float32{-1, 1, 2, 1}, [2]float32{1, 1}),
			geom.VTOf(apex, apexUV),
			geom.VTOf([4]float32{-1, -1, 2, 1}, [2]float32{0, 1}),
		},
		{
			geom.VTOf([4]float32{-1, -1, 2, 1}, [2]float32{0, 1}),
			geom.VTOf([4]float32{1, -1, 2, 1}, [2]float32{1, 1}),
			geom.VTOf([4]float32{1, 1, 2, 1}, [2]float32{1, 0}),
			geom.VTOf([4]float32{-1, 1, 2, 1}, [2]float32{0, 0}),
		},
	}
}
