package headless

import (
	"github.com/chewxy/math32"

	"github.com/tinyrange/dxbridge/internal/dx"
)

func (b *Backend) SetUseBackCulling(flag int32) int32 {
	b.record("SetUseBackCulling", flag)
	return 0
}

func (b *Backend) SetUseZBuffer3D(flag int32) int32 {
	b.record("SetUseZBuffer3D", flag)
	return 0
}

func (b *Backend) SetWriteZBuffer3D(flag int32) int32 {
	b.record("SetWriteZBuffer3D", flag)
	return 0
}

func normalize(v dx.Vector) (dx.Vector, bool) {
	l := math32.Sqrt(v.Dot(v))
	if l == 0 {
		return v, false
	}
	return v.Scale(1 / l), true
}

// CreateLookAtMatrix builds a left-handed, row-major view matrix.
func (b *Backend) CreateLookAtMatrix(eye, at, up dx.Vector) (dx.Matrix, int32) {
	b.record("CreateLookAtMatrix", eye, at, up)

	z, ok := normalize(at.Sub(eye))
	if !ok {
		return dx.IdentityMatrix(), -1
	}
	x, ok := normalize(up.Cross(z))
	if !ok {
		return dx.IdentityMatrix(), -1
	}
	y := z.Cross(x)

	return dx.Matrix{M: [4][4]float32{
		{x.X, y.X, z.X, 0},
		{x.Y, y.Y, z.Y, 0},
		{x.Z, y.Z, z.Z, 0},
		{-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1},
	}}, 0
}

// CreatePerspectiveFovMatrix builds a left-handed projection matrix. aspect
// is height over width.
func (b *Backend) CreatePerspectiveFovMatrix(fov, zNear, zFar, aspect float32) (dx.Matrix, int32) {
	b.record("CreatePerspectiveFovMatrix", fov, zNear, zFar, aspect)
	if zFar <= zNear || fov <= 0 {
		return dx.IdentityMatrix(), -1
	}
	ys := 1 / math32.Tan(fov/2)
	xs := ys * aspect
	q := zFar / (zFar - zNear)
	return dx.Matrix{M: [4][4]float32{
		{xs, 0, 0, 0},
		{0, ys, 0, 0},
		{0, 0, q, 1},
		{0, 0, -q * zNear, 0},
	}}, 0
}

func (b *Backend) SetCameraNearFar(zNear, zFar float32) int32 {
	b.record("SetCameraNearFar", zNear, zFar)
	return 0
}

func (b *Backend) SetCameraViewMatrix(m dx.Matrix) int32 {
	b.record("SetCameraViewMatrix", m)
	b.mu.Lock()
	b.view = m
	b.mu.Unlock()
	return 0
}

// View returns the last view matrix set.
func (b *Backend) View() dx.Matrix {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view
}

func (b *Backend) GetCameraProjectionMatrix() dx.Matrix {
	b.record("GetCameraProjectionMatrix")
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.proj
}

func (b *Backend) SetTransformToProjection(m dx.Matrix) int32 {
	b.record("SetTransformToProjection", m)
	b.mu.Lock()
	b.proj = m
	b.mu.Unlock()
	return 0
}

func (b *Backend) submit(n int) int32 {
	if n%3 != 0 {
		return -1
	}
	b.mu.Lock()
	b.triangles += n / 3
	b.mu.Unlock()
	return 0
}

func (b *Backend) DrawPolygon3DToShader(vs []dx.Vertex3DShader) int32 {
	b.record("DrawPolygon3DToShader", len(vs))
	return b.submit(len(vs))
}

func (b *Backend) DrawPolygon3D(vs []dx.Vertex3D, h dx.Handle, trans int32) int32 {
	b.record("DrawPolygon3D", len(vs), h, trans)
	if h != dx.InvalidHandle && !b.isLive(h, kindGraph, kindScreen) {
		return -1
	}
	return b.submit(len(vs))
}

func (b *Backend) DrawLine3D(start, end dx.Vector, color uint32) int32 {
	b.record("DrawLine3D", start, end, color)
	return 0
}
