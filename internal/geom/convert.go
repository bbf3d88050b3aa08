package geom

import (
	"fmt"

	"github.com/tinyrange/dxbridge/internal/dx"
)

// ColorMode selects how vertex colors are filled.
type ColorMode int

const (
	// Textured forces opaque white diffuse and specular so the texture shows
	// unmodified.
	Textured ColorMode = iota
	// VertexColor derives the diffuse color from the source position and
	// leaves specular zero.
	VertexColor
)

func (m ColorMode) String() string {
	switch m {
	case Textured:
		return "textured"
	case VertexColor:
		return "vertex-color"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// NormalMode selects the normal pass run after conversion.
type NormalMode int

const (
	NormalsNone NormalMode = iota
	NormalsRaw
	NormalsUnit
)

// Indexing selects the triangulation strategy.
type Indexing int

const (
	// Fan triangulates any convex polygon with FanIndices.
	Fan Indexing = iota
	// QuadRemap expands exactly 4 vertices with QuadIndices.
	QuadRemap
)

// Atlas lays faces out on a single texture, one cell per face, row by row.
// The zero value copies UVs unchanged.
type Atlas struct {
	Cols, Rows int
}

func (a Atlas) enabled() bool { return a.Cols > 0 && a.Rows > 0 }

func (a Atlas) place(face int, uv dx.Float2) dx.Float2 {
	if !a.enabled() {
		return uv
	}
	cell := face % (a.Cols * a.Rows)
	col := float32(cell % a.Cols)
	row := float32(cell / a.Cols)
	return dx.Float2{
		U: (col + uv.U) / float32(a.Cols),
		V: (row + uv.V) / float32(a.Rows),
	}
}

// Options controls placement and attribute generation.
type Options struct {
	// Offset is added after scaling. Only X, Y and Z are used.
	Offset dx.Float4
	Scale  float32

	Colors   ColorMode
	Normals  NormalMode
	Indexing Indexing
	Atlas    Atlas
}

// indices returns the triangle list index table for an n vertex polygon.
func (o Options) indices(n int) ([]int, error) {
	switch o.Indexing {
	case Fan:
		return FanIndices(n)
	case QuadRemap:
		if n != 4 {
			return nil, fmt.Errorf("quad remap of %d vertices: %w", n, ErrLayout)
		}
		q := QuadIndices()
		return q[:], nil
	default:
		return nil, fmt.Errorf("indexing %d: %w", o.Indexing, ErrMode)
	}
}

// check rejects modes outside the declared constants.
func (o Options) check() error {
	switch o.Colors {
	case Textured, VertexColor:
	default:
		return fmt.Errorf("color mode %d: %w", o.Colors, ErrMode)
	}
	switch o.Normals {
	case NormalsNone, NormalsRaw, NormalsUnit:
	default:
		return fmt.Errorf("normal mode %d: %w", o.Normals, ErrMode)
	}
	switch o.Indexing {
	case Fan, QuadRemap:
	default:
		return fmt.Errorf("indexing %d: %w", o.Indexing, ErrMode)
	}
	return nil
}

// vertex places one source vertex.
func (o Options) vertex(face int, v VT) dx.Vertex3DShader {
	out := dx.Vertex3DShader{
		Pos: dx.Vector{
			X: o.Offset.X + v.Pos.X*o.Scale,
			Y: o.Offset.Y - v.Pos.Y*o.Scale,
			Z: o.Offset.Z + v.Pos.Z*o.Scale,
		},
		UV: o.Atlas.place(face, v.UV),
	}
	switch o.Colors {
	case VertexColor:
		out.Dif = dx.ColorU8FromFloat4(v.Pos)
	case Textured:
		out.Dif = dx.White
		out.Spc = dx.White
	}
	return out
}

func (o Options) normals(vs []dx.Vertex3DShader) error {
	switch o.Normals {
	case NormalsRaw:
		return CalcNormals(vs, false)
	case NormalsUnit:
		return CalcNormals(vs, true)
	}
	return nil
}

func (o Options) emit(face int, vts []VT, tbl []int) ([]dx.Vertex3DShader, error) {
	vs := make([]dx.Vertex3DShader, 0, len(tbl))
	for _, k := range tbl {
		vs = append(vs, o.vertex(face, vts[k]))
	}
	if err := o.normals(vs); err != nil {
		return nil, err
	}
	return vs, nil
}

// Convert turns one GL polygon into a DxLib triangle list.
func Convert(vts []VT, opts Options) ([]dx.Vertex3DShader, error) {
	return convertFace(0, vts, opts)
}

func convertFace(face int, vts []VT, opts Options) ([]dx.Vertex3DShader, error) {
	if err := opts.check(); err != nil {
		return nil, err
	}
	tbl, err := opts.indices(len(vts))
	if err != nil {
		return nil, err
	}
	return opts.emit(face, vts, tbl)
}

// ConvertFaces converts each face independently. Faces may have different
// vertex counts.
func ConvertFaces(faces [][]VT, opts Options) ([][]dx.Vertex3DShader, error) {
	out := make([][]dx.Vertex3DShader, 0, len(faces))
	for f, vts := range faces {
		vs, err := convertFace(f, vts, opts)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", f, err)
		}
		out = append(out, vs)
	}
	return out, nil
}

// ConvertGroups converts nested face groups, one group per polyhedron.
func ConvertGroups(groups [][][]VT, opts Options) ([][][]dx.Vertex3DShader, error) {
	out := make([][][]dx.Vertex3DShader, 0, len(groups))
	for g, faces := range groups {
		vss, err := ConvertFaces(faces, opts)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", g, err)
		}
		out = append(out, vss)
	}
	return out, nil
}

// FlatTable returns, for each of nfaces faces of vpf vertices stored back to
// back in one buffer, the buffer offsets of that face's triangle list.
func FlatTable(nfaces, vpf int, indexing Indexing) ([][]int, error) {
	if nfaces < 0 {
		return nil, fmt.Errorf("%d faces: %w", nfaces, ErrLayout)
	}
	local, err := Options{Indexing: indexing}.indices(vpf)
	if err != nil {
		return nil, err
	}
	tbl := make([][]int, nfaces)
	for f := range tbl {
		tbl[f] = make([]int, len(local))
		for i, k := range local {
			tbl[f][i] = f*vpf + k
		}
	}
	return tbl, nil
}

// ConvertFlat converts nfaces faces of vpf vertices each that share one flat
// vertex buffer, such as a cube with 6 faces of 4 vertices.
func ConvertFlat(vts []VT, nfaces, vpf int, opts Options) ([][]dx.Vertex3DShader, error) {
	if err := opts.check(); err != nil {
		return nil, err
	}
	if len(vts) != nfaces*vpf {
		return nil, fmt.Errorf("%d vertices for %d faces of %d: %w", len(vts), nfaces, vpf, ErrLayout)
	}
	tbl, err := FlatTable(nfaces, vpf, opts.Indexing)
	if err != nil {
		return nil, err
	}
	out := make([][]dx.Vertex3DShader, 0, nfaces)
	for f, idx := range tbl {
		vs, err := opts.emit(f, vts, idx)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", f, err)
		}
		out = append(out, vs)
	}
	return out, nil
}

// Flatten concatenates per-face triangle lists into one draw buffer.
func Flatten(vss [][]dx.Vertex3DShader) []dx.Vertex3DShader {
	n := 0
	for _, vs := range vss {
		n += len(vs)
	}
	out := make([]dx.Vertex3DShader, 0, n)
	for _, vs := range vss {
		out = append(out, vs...)
	}
	return out
}
