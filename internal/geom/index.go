package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewVertices is returned for polygons with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")
	// ErrNotTriangles is returned when a vertex list length is not a multiple of 3.
	ErrNotTriangles = errors.New("vertex count is not a multiple of 3")
	// ErrLayout is returned when a flat table does not match its face layout.
	ErrLayout = errors.New("vertex table does not match face layout")
	// ErrMode is returned for a ColorMode, NormalMode or Indexing outside
	// the declared constants.
	ErrMode = errors.New("unknown conversion mode")
)

// FanIndices triangulates a convex n-gon anchored on vertex 0, walking the
// remaining vertices backwards: triangle i is {0, n-1-i, n-2-i}.
//
// The backwards walk turns a CCW polygon into CW triangles.
func FanIndices(n int) ([]int, error) {
	if n < 3 {
		return nil, fmt.Errorf("fan of %d vertices: %w", n, ErrTooFewVertices)
	}
	npolys := n - 2
	tbl := make([]int, 3*npolys)
	for i := 0; i < npolys; i++ {
		tbl[i*3] = 0
		tbl[i*3+1] = n - 1 - i
		tbl[i*3+2] = n - 2 - i
	}
	return tbl, nil
}

// quadRemap reverses the winding of a 4 vertex quad while keeping vertex 0 first.
var quadRemap = [4]int{0, 3, 2, 1}

// QuadIndices returns the fixed 6 index expansion of a quad.
//
// The quad is remapped through [0,3,2,1] and split along the 0-2 diagonal.
// The shared vertex 2 is duplicated into slot 3 (not appended), then the
// second triangle closes on vertex 0: [0,3,2,2,1,0].
func QuadIndices() [6]int {
	r := quadRemap
	return [6]int{r[0], r[1], r[2], r[2], r[3], r[0]}
}
