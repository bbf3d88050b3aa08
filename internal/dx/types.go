// Package dx holds the value types, constants and backend interface shared by
// every layer of the DxLib binding.
//
// All struct types mirror the C layout of their DxLib counterpart field for
// field so a pointer to them can be handed to the native library directly.
package dx

// Handle is an opaque DxLib resource handle.
//
// A value of -1 is returned by DxLib when an allocation fails and is also used
// as "system default" for some calls. A value of 0 means the handle was never
// allocated or has already been released.
type Handle int32

const (
	// InvalidHandle is the failure sentinel returned by DxLib.
	InvalidHandle Handle = -1
	// NoHandle marks a released or never allocated resource.
	NoHandle Handle = 0
)

// Valid reports whether h refers to a live native resource.
func (h Handle) Valid() bool { return h > 0 }

// Vector mirrors VECTOR.
type Vector struct {
	X, Y, Z float32
}

func NewVector(x, y, z float32) Vector { return Vector{X: x, Y: y, Z: z} }

func VectorOf(v [3]float32) Vector { return Vector{X: v[0], Y: v[1], Z: v[2]} }

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vector) Scale(s float32) Vector { return Vector{v.X * s, v.Y * s, v.Z * s} }

func (v Vector) Dot(o Vector) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v × o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// VectorD mirrors VECTOR_D.
type VectorD struct {
	X, Y, Z float64
}

func NewVectorD(x, y, z float64) VectorD { return VectorD{X: x, Y: y, Z: z} }

func VectorDOf(v [3]float64) VectorD { return VectorD{X: v[0], Y: v[1], Z: v[2]} }

// Float2 mirrors FLOAT2. It is mostly used for texture coordinates.
type Float2 struct {
	U, V float32
}

func NewFloat2(u, v float32) Float2 { return Float2{U: u, V: v} }

func Float2Of(v [2]float32) Float2 { return Float2{U: v[0], V: v[1]} }

// Float4 mirrors FLOAT4.
type Float4 struct {
	X, Y, Z, W float32
}

func NewFloat4(x, y, z, w float32) Float4 { return Float4{X: x, Y: y, Z: z, W: w} }

func Float4Of(v [4]float32) Float4 { return Float4{X: v[0], Y: v[1], Z: v[2], W: v[3]} }

// XYZ drops the homogeneous component.
func (f Float4) XYZ() Vector { return Vector{X: f.X, Y: f.Y, Z: f.Z} }

// Double4 mirrors DOUBLE4.
type Double4 struct {
	X, Y, Z, W float64
}

func NewDouble4(x, y, z, w float64) Double4 { return Double4{X: x, Y: y, Z: z, W: w} }

func Double4Of(v [4]float64) Double4 { return Double4{X: v[0], Y: v[1], Z: v[2], W: v[3]} }

// Rect mirrors the Win32 RECT accepted by ClearDrawScreen.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// CubeData mirrors CUBEDATA.
type CubeData struct {
	P0, P1 Vector
	Dif    ColorU8
	Spc    ColorU8
}

// Vertex3D mirrors VERTEX3D, the fixed function vertex.
type Vertex3D struct {
	Pos  Vector
	Norm Vector
	Dif  ColorU8
	Spc  ColorU8
	UV   Float2
	SUV  Float2
}

// Vertex3DShader mirrors VERTEX3DSHADER, the vertex consumed by
// DrawPolygon3DToShader.
type Vertex3DShader struct {
	Pos    Vector
	SPos   Float4
	Norm   Vector
	Tan    Vector
	Binorm Vector
	Dif    ColorU8
	Spc    ColorU8
	UV     Float2
	SUV    Float2
}

// LightParam mirrors LIGHTPARAM.
type LightParam struct {
	LightType    int32
	Diffuse      ColorF
	Specular     ColorF
	Ambient      ColorF
	Position     Vector
	Direction    Vector
	Range        float32
	FallOff      float32
	Attenuation0 float32
	Attenuation1 float32
	Attenuation2 float32
	Theta        float32
	Phi          float32
}

// MaterialParam mirrors MATERIALPARAM.
type MaterialParam struct {
	Diffuse  ColorF
	Ambient  ColorF
	Specular ColorF
	Emissive ColorF
	Power    float32
}
