package headless

import (
	"github.com/tinyrange/dxbridge/internal/dx"
)

type shaderConst struct {
	name  string
	count int32
	def   dx.Float4
	isDef bool
}

// DefineConst declares a named shader constant for the Get*ToShader queries.
// Indexes are assigned in declaration order.
func (b *Backend) DefineConst(name string, count int32, def *dx.Float4) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := shaderConst{name: name, count: count}
	if def != nil {
		c.def, c.isDef = *def, true
	}
	b.consts = append(b.consts, c)
}

func (b *Backend) lookupConst(name string) (int32, shaderConst, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, c := range b.consts {
		if c.name == name {
			return int32(i), c, true
		}
	}
	return -1, shaderConst{}, false
}

func (b *Backend) InitShader() int32 {
	b.record("InitShader")
	return 0
}

func (b *Backend) LoadVertexShader(path string) dx.Handle {
	b.record("LoadVertexShader", path)
	return b.alloc(kindShader, path)
}

func (b *Backend) LoadPixelShader(path string) dx.Handle {
	b.record("LoadPixelShader", path)
	return b.alloc(kindShader, path)
}

func (b *Backend) LoadGeometryShader(path string) dx.Handle {
	b.record("LoadGeometryShader", path)
	return b.alloc(kindShader, path)
}

func (b *Backend) DeleteShader(h dx.Handle) int32 {
	b.record("DeleteShader", h)
	return b.free(h, kindShader)
}

func (b *Backend) useShader(h dx.Handle) int32 {
	if h == dx.InvalidHandle {
		return 0
	}
	return status(b.isLive(h, kindShader))
}

func (b *Backend) SetUseVertexShader(h dx.Handle) int32 {
	b.record("SetUseVertexShader", h)
	return b.useShader(h)
}

func (b *Backend) SetUsePixelShader(h dx.Handle) int32 {
	b.record("SetUsePixelShader", h)
	return b.useShader(h)
}

func (b *Backend) SetUseGeometryShader(h dx.Handle) int32 {
	b.record("SetUseGeometryShader", h)
	return b.useShader(h)
}

func (b *Backend) GetConstIndexToShader(name string, h dx.Handle) int32 {
	b.record("GetConstIndexToShader", name, h)
	if !b.isLive(h, kindShader) {
		return -1
	}
	idx, _, _ := b.lookupConst(name)
	return idx
}

func (b *Backend) GetConstCountToShader(name string, h dx.Handle) int32 {
	b.record("GetConstCountToShader", name, h)
	if !b.isLive(h, kindShader) {
		return -1
	}
	_, c, ok := b.lookupConst(name)
	if !ok {
		return -1
	}
	return c.count
}

func (b *Backend) GetConstDefaultParamFToShader(name string, h dx.Handle) (dx.Float4, bool) {
	b.record("GetConstDefaultParamFToShader", name, h)
	if !b.isLive(h, kindShader) {
		return dx.Float4{}, false
	}
	_, c, ok := b.lookupConst(name)
	if !ok || !c.isDef {
		return dx.Float4{}, false
	}
	return c.def, true
}

func (b *Backend) SetVSConstF(index int32, v dx.Float4) int32 {
	b.record("SetVSConstF", index, v)
	return 0
}

func (b *Backend) SetPSConstF(index int32, v dx.Float4) int32 {
	b.record("SetPSConstF", index, v)
	return 0
}

// Constant buffers

func (b *Backend) InitShaderConstantBuffer() int32 {
	b.record("InitShaderConstantBuffer")
	return 0
}

// float4Size is the size of one FLOAT4 element in a constant buffer.
const float4Size = 16

func (b *Backend) CreateShaderConstantBuffer(size int32) dx.Handle {
	b.record("CreateShaderConstantBuffer", size)
	if size <= 0 {
		return dx.InvalidHandle
	}
	h := b.alloc(kindCBuffer, "")
	b.mu.Lock()
	b.cbufs[h] = make([]dx.Float4, (size+float4Size-1)/float4Size)
	b.mu.Unlock()
	return h
}

func (b *Backend) DeleteShaderConstantBuffer(h dx.Handle) int32 {
	b.record("DeleteShaderConstantBuffer", h)
	return b.free(h, kindCBuffer)
}

func (b *Backend) GetBufferShaderConstantBuffer(h dx.Handle, n int) []dx.Float4 {
	b.record("GetBufferShaderConstantBuffer", h, n)
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.cbufs[h]
	if !ok || n < 0 || n > len(buf) {
		return nil
	}
	return buf[:n:n]
}

func (b *Backend) UpdateShaderConstantBuffer(h dx.Handle) int32 {
	b.record("UpdateShaderConstantBuffer", h)
	return status(b.isLive(h, kindCBuffer))
}

func (b *Backend) SetShaderConstantBuffer(h dx.Handle, stage dx.ShaderType, slot int32) int32 {
	b.record("SetShaderConstantBuffer", h, stage, slot)
	return status(b.isLive(h, kindCBuffer))
}
