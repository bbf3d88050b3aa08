package dx

import (
	"testing"
	"unsafe"
)

// The binding hands pointers to these types straight to the native library,
// so their sizes must match the C structs.
func TestStructSizes(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"VECTOR", unsafe.Sizeof(Vector{}), 12},
		{"FLOAT2", unsafe.Sizeof(Float2{}), 8},
		{"FLOAT4", unsafe.Sizeof(Float4{}), 16},
		{"COLOR_U8", unsafe.Sizeof(ColorU8{}), 4},
		{"COLOR_F", unsafe.Sizeof(ColorF{}), 16},
		{"MATRIX", unsafe.Sizeof(Matrix{}), 64},
		{"VERTEX3D", unsafe.Sizeof(Vertex3D{}), 48},
		{"VERTEX3DSHADER", unsafe.Sizeof(Vertex3DShader{}), 88},
		{"CUBEDATA", unsafe.Sizeof(CubeData{}), 32},
		{"MATERIALPARAM", unsafe.Sizeof(MaterialParam{}), 68},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d bytes, got %d", tt.name, tt.want, tt.got)
		}
	}
}

func TestHandleValid(t *testing.T) {
	for h, want := range map[Handle]bool{
		InvalidHandle: false,
		NoHandle:      false,
		1:             true,
		0x7fffffff:    true,
	} {
		if got := h.Valid(); got != want {
			t.Errorf("Handle(%d).Valid() = %v, want %v", h, got, want)
		}
	}
}

func TestVectorCross(t *testing.T) {
	x := NewVector(1, 0, 0)
	y := NewVector(0, 1, 0)
	if got := x.Cross(y); got != NewVector(0, 0, 1) {
		t.Fatalf("x cross y = %+v", got)
	}
	if got := y.Cross(x); got != NewVector(0, 0, -1) {
		t.Fatalf("y cross x = %+v", got)
	}
}

func TestMatrixTranspose(t *testing.T) {
	m := IdentityMatrix()
	m.M[3][0], m.M[3][1], m.M[3][2] = 1, 2, 3

	if got := m.TransformPoint(NewVector(1, 1, 1)); got != NewVector(2, 3, 4) {
		t.Fatalf("translate: got %+v", got)
	}

	tr := m.Transpose()
	if tr.M[0][3] != 1 || tr.M[1][3] != 2 || tr.M[2][3] != 3 {
		t.Fatalf("transpose did not move translation: %+v", tr)
	}
	if tr.Transpose() != m {
		t.Fatal("transpose is not an involution")
	}
	if m.Mul(IdentityMatrix()) != m {
		t.Fatal("identity is not neutral")
	}
}
