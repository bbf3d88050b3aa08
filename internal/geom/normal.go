package geom

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/tinyrange/dxbridge/internal/dx"
)

// normalEpsilon is the length below which a triangle is treated as degenerate.
const normalEpsilon = 1e-6

// FaceNormal returns (p2-p1) × (p1-p0).
//
// For the clockwise triangles produced by this package the result points
// out of the front face. When normalize is set the vector is divided by its
// length, unless the length is below normalEpsilon, in which case the raw
// (near zero) vector is returned unchanged.
func FaceNormal(p0, p1, p2 dx.Vector, normalize bool) dx.Vector {
	n := p2.Sub(p1).Cross(p1.Sub(p0))
	if !normalize {
		return n
	}
	l := math32.Sqrt(n.Dot(n))
	if l < normalEpsilon {
		l = 1
	}
	return n.Scale(1 / l)
}

// CalcNormals assigns every vertex of each triangle the triangle's face
// normal. Shared vertices are not averaged, so shading is flat.
func CalcNormals(vs []dx.Vertex3DShader, normalize bool) error {
	if len(vs)%3 != 0 {
		return fmt.Errorf("calc normals over %d vertices: %w", len(vs), ErrNotTriangles)
	}
	for i := 0; i < len(vs); i += 3 {
		n := FaceNormal(vs[i].Pos, vs[i+1].Pos, vs[i+2].Pos, normalize)
		vs[i].Norm = n
		vs[i+1].Norm = n
		vs[i+2].Norm = n
	}
	return nil
}
