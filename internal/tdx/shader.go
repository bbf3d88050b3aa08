package tdx

import (
	"fmt"

	"github.com/tinyrange/dxbridge/internal/dx"
)

// Shader is satisfied by the three compiled shader wrappers.
type Shader interface {
	Resource
	// Bind makes the shader current for its pipeline stage.
	Bind() int32
	ConstIndex(name string) int32
	ConstCount(name string) int32
	ConstDefault(name string) (dx.Float4, bool)
}

func deleteShader(b dx.Backend, h dx.Handle) int32 { return b.DeleteShader(h) }

// program holds the constant queries shared by all shader stages.
type program struct{ resource }

// ConstIndex returns the register index of a named constant, or -1.
func (p *program) ConstIndex(name string) int32 {
	h, ok := p.live()
	if !ok {
		return statusDisposed
	}
	return p.b.GetConstIndexToShader(name, h)
}

// ConstCount returns the number of registers a named constant uses.
func (p *program) ConstCount(name string) int32 {
	h, ok := p.live()
	if !ok {
		return statusDisposed
	}
	return p.b.GetConstCountToShader(name, h)
}

// ConstDefault returns the default value of a named float constant.
func (p *program) ConstDefault(name string) (dx.Float4, bool) {
	h, ok := p.live()
	if !ok {
		return dx.Float4{}, false
	}
	return p.b.GetConstDefaultParamFToShader(name, h)
}

// bind calls use with the shader handle.
func (p *program) bind(use func(h dx.Handle) int32) int32 {
	h, ok := p.live()
	if !ok {
		return statusDisposed
	}
	return use(h)
}

type VertexShader struct{ program }

// NewVertexShader loads a compiled vertex shader (.vso).
func NewVertexShader(b dx.Backend, path string) *VertexShader {
	return &VertexShader{program{newResource(b, b.LoadVertexShader(path), path, deleteShader)}}
}

func (*VertexShader) Kind() Kind { return KindVertexShader }

func (s *VertexShader) view() Resource { return &VertexShader{program{s.weak()}} }

func (s *VertexShader) Bind() int32 { return s.bind(s.b.SetUseVertexShader) }

type PixelShader struct{ program }

// NewPixelShader loads a compiled pixel shader (.pso).
func NewPixelShader(b dx.Backend, path string) *PixelShader {
	return &PixelShader{program{newResource(b, b.LoadPixelShader(path), path, deleteShader)}}
}

func (*PixelShader) Kind() Kind { return KindPixelShader }

func (s *PixelShader) view() Resource { return &PixelShader{program{s.weak()}} }

func (s *PixelShader) Bind() int32 { return s.bind(s.b.SetUsePixelShader) }

type GeometryShader struct{ program }

// NewGeometryShader loads a compiled geometry shader (.gso).
func NewGeometryShader(b dx.Backend, path string) *GeometryShader {
	return &GeometryShader{program{newResource(b, b.LoadGeometryShader(path), path, deleteShader)}}
}

func (*GeometryShader) Kind() Kind { return KindGeometryShader }

func (s *GeometryShader) view() Resource { return &GeometryShader{program{s.weak()}} }

func (s *GeometryShader) Bind() int32 { return s.bind(s.b.SetUseGeometryShader) }

// float4Size is the byte size of one FLOAT4 register.
const float4Size = 16

// ConstantBuffer is a DX11 shader constant buffer of Len FLOAT4 registers,
// bound to one stage and slot.
type ConstantBuffer struct {
	resource
	count int
	stage dx.ShaderType
	slot  int32
}

// NewConstantBuffer creates a buffer of count FLOAT4 registers.
func NewConstantBuffer(b dx.Backend, count int, stage dx.ShaderType, slot int32) *ConstantBuffer {
	h := b.CreateShaderConstantBuffer(int32(count * float4Size))
	return &ConstantBuffer{
		resource: newResource(b, h, "", func(b dx.Backend, h dx.Handle) int32 {
			return b.DeleteShaderConstantBuffer(h)
		}),
		count: count,
		stage: stage,
		slot:  slot,
	}
}

func (*ConstantBuffer) Kind() Kind { return KindConstantBuffer }

func (c *ConstantBuffer) view() Resource {
	v := *c
	v.resource = c.weak()
	return &v
}

func (c *ConstantBuffer) Len() int             { return c.count }
func (c *ConstantBuffer) Stage() dx.ShaderType { return c.stage }
func (c *ConstantBuffer) Slot() int32          { return c.slot }

// Buffer returns the system memory copy of the buffer. Writes become
// visible to shaders after Update.
func (c *ConstantBuffer) Buffer() []dx.Float4 {
	h, ok := c.live()
	if !ok {
		return nil
	}
	return c.b.GetBufferShaderConstantBuffer(h, c.count)
}

// Set writes values starting at register i.
func (c *ConstantBuffer) Set(i int, values ...dx.Float4) error {
	buf := c.Buffer()
	if buf == nil {
		return &Error{Op: "constant buffer set", Err: fmt.Errorf("handle %d has no buffer", c.Handle())}
	}
	if i < 0 || i+len(values) > len(buf) {
		return &Error{Op: "constant buffer set", Err: fmt.Errorf("registers %d..%d out of range [0,%d)", i, i+len(values), len(buf))}
	}
	copy(buf[i:], values)
	return nil
}

// Update uploads the system memory copy to the GPU.
func (c *ConstantBuffer) Update() int32 {
	h, ok := c.live()
	if !ok {
		return statusDisposed
	}
	return c.b.UpdateShaderConstantBuffer(h)
}

// Bind binds the buffer to its configured stage and slot.
func (c *ConstantBuffer) Bind() int32 { return c.BindTo(c.stage, c.slot) }

func (c *ConstantBuffer) BindTo(stage dx.ShaderType, slot int32) int32 {
	h, ok := c.live()
	if !ok {
		return statusDisposed
	}
	return c.b.SetShaderConstantBuffer(h, stage, slot)
}
