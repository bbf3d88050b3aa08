package headless

import "github.com/tinyrange/dxbridge/internal/dx"

type light struct {
	typ      dx.LightType
	enable   bool
	dif      dx.ColorF
	spc      dx.ColorF
	amb      dx.ColorF
	dir      dx.Vector
	pos      dx.Vector
	rng      float32
	atten    [3]float32
	outAngle float32
	inAngle  float32
}

func (b *Backend) newLight(l *light) dx.Handle {
	h := b.alloc(kindLight, "")
	l.enable = true
	l.dif = dx.NewColorF(1, 1, 1, 1)
	l.spc = dx.NewColorF(1, 1, 1, 1)
	b.mu.Lock()
	b.lights[h] = l
	b.mu.Unlock()
	return h
}

// withLight runs fn on the state of a live light handle.
func (b *Backend) withLight(h dx.Handle, fn func(l *light)) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.lights[h]
	if !ok {
		return -1
	}
	fn(l)
	return 0
}

func (b *Backend) CreateDirLightHandle(dir dx.Vector) dx.Handle {
	b.record("CreateDirLightHandle", dir)
	return b.newLight(&light{typ: dx.LightDirectional, dir: dir})
}

func (b *Backend) CreateSpotLightHandle(pos, dir dx.Vector, outAngle, inAngle, rng, atten0, atten1, atten2 float32) dx.Handle {
	b.record("CreateSpotLightHandle", pos, dir, outAngle, inAngle, rng, atten0, atten1, atten2)
	return b.newLight(&light{
		typ:      dx.LightSpot,
		pos:      pos,
		dir:      dir,
		outAngle: outAngle,
		inAngle:  inAngle,
		rng:      rng,
		atten:    [3]float32{atten0, atten1, atten2},
	})
}

func (b *Backend) CreatePointLightHandle(pos dx.Vector, rng, atten0, atten1, atten2 float32) dx.Handle {
	b.record("CreatePointLightHandle", pos, rng, atten0, atten1, atten2)
	return b.newLight(&light{
		typ:   dx.LightPoint,
		pos:   pos,
		rng:   rng,
		atten: [3]float32{atten0, atten1, atten2},
	})
}

func (b *Backend) DeleteLightHandle(h dx.Handle) int32 {
	b.record("DeleteLightHandle", h)
	return b.free(h, kindLight)
}

func (b *Backend) DeleteLightHandleAll() int32 {
	b.record("DeleteLightHandleAll")
	b.mu.Lock()
	defer b.mu.Unlock()
	for h := range b.lights {
		delete(b.lights, h)
		delete(b.live, h)
		b.released[h]++
	}
	return 0
}

func (b *Backend) GetEnableLightHandleNum() int32 {
	b.record("GetEnableLightHandleNum")
	b.mu.Lock()
	defer b.mu.Unlock()
	var n int32
	for _, l := range b.lights {
		if l.enable {
			n++
		}
	}
	return n
}

func (b *Backend) SetLightTypeHandle(h dx.Handle, lightType dx.LightType) int32 {
	b.record("SetLightTypeHandle", h, lightType)
	return b.withLight(h, func(l *light) { l.typ = lightType })
}

func (b *Backend) SetLightEnableHandle(h dx.Handle, flag int32) int32 {
	b.record("SetLightEnableHandle", h, flag)
	return b.withLight(h, func(l *light) { l.enable = flag != dx.FALSE })
}

func (b *Backend) SetLightDifColorHandle(h dx.Handle, c dx.ColorF) int32 {
	b.record("SetLightDifColorHandle", h, c)
	return b.withLight(h, func(l *light) { l.dif = c })
}

func (b *Backend) SetLightSpcColorHandle(h dx.Handle, c dx.ColorF) int32 {
	b.record("SetLightSpcColorHandle", h, c)
	return b.withLight(h, func(l *light) { l.spc = c })
}

func (b *Backend) SetLightAmbColorHandle(h dx.Handle, c dx.ColorF) int32 {
	b.record("SetLightAmbColorHandle", h, c)
	return b.withLight(h, func(l *light) { l.amb = c })
}

func (b *Backend) SetLightDirectionHandle(h dx.Handle, dir dx.Vector) int32 {
	b.record("SetLightDirectionHandle", h, dir)
	return b.withLight(h, func(l *light) { l.dir = dir })
}

func (b *Backend) SetLightPositionHandle(h dx.Handle, pos dx.Vector) int32 {
	b.record("SetLightPositionHandle", h, pos)
	return b.withLight(h, func(l *light) { l.pos = pos })
}

func (b *Backend) SetLightRangeAttenHandle(h dx.Handle, rng, atten0, atten1, atten2 float32) int32 {
	b.record("SetLightRangeAttenHandle", h, rng, atten0, atten1, atten2)
	return b.withLight(h, func(l *light) {
		l.rng = rng
		l.atten = [3]float32{atten0, atten1, atten2}
	})
}

func (b *Backend) SetLightAngleHandle(h dx.Handle, outAngle, inAngle float32) int32 {
	b.record("SetLightAngleHandle", h, outAngle, inAngle)
	return b.withLight(h, func(l *light) {
		l.outAngle = outAngle
		l.inAngle = inAngle
	})
}

func (b *Backend) GetLightTypeHandle(h dx.Handle) dx.LightType {
	b.record("GetLightTypeHandle", h)
	var t dx.LightType = -1
	b.withLight(h, func(l *light) { t = l.typ })
	return t
}

func (b *Backend) GetLightEnableHandle(h dx.Handle) int32 {
	b.record("GetLightEnableHandle", h)
	flag := int32(-1)
	b.withLight(h, func(l *light) { flag = dx.Bool(l.enable) })
	return flag
}

func (b *Backend) GetLightDifColorHandle(h dx.Handle) dx.ColorF {
	b.record("GetLightDifColorHandle", h)
	var c dx.ColorF
	b.withLight(h, func(l *light) { c = l.dif })
	return c
}

func (b *Backend) GetLightSpcColorHandle(h dx.Handle) dx.ColorF {
	b.record("GetLightSpcColorHandle", h)
	var c dx.ColorF
	b.withLight(h, func(l *light) { c = l.spc })
	return c
}

func (b *Backend) GetLightAmbColorHandle(h dx.Handle) dx.ColorF {
	b.record("GetLightAmbColorHandle", h)
	var c dx.ColorF
	b.withLight(h, func(l *light) { c = l.amb })
	return c
}

func (b *Backend) GetLightDirectionHandle(h dx.Handle) dx.Vector {
	b.record("GetLightDirectionHandle", h)
	var v dx.Vector
	b.withLight(h, func(l *light) { v = l.dir })
	return v
}

func (b *Backend) GetLightPositionHandle(h dx.Handle) dx.Vector {
	b.record("GetLightPositionHandle", h)
	var v dx.Vector
	b.withLight(h, func(l *light) { v = l.pos })
	return v
}

func (b *Backend) GetLightRangeAttenHandle(h dx.Handle) (rng, atten0, atten1, atten2 float32, st int32) {
	b.record("GetLightRangeAttenHandle", h)
	st = b.withLight(h, func(l *light) {
		rng = l.rng
		atten0, atten1, atten2 = l.atten[0], l.atten[1], l.atten[2]
	})
	return
}

func (b *Backend) GetLightAngleHandle(h dx.Handle) (outAngle, inAngle float32, st int32) {
	b.record("GetLightAngleHandle", h)
	st = b.withLight(h, func(l *light) {
		outAngle, inAngle = l.outAngle, l.inAngle
	})
	return
}

// Global lighting state is recorded only.

func (b *Backend) SetUseLighting(flag int32) int32 {
	b.record("SetUseLighting", flag)
	return 0
}

func (b *Backend) SetLightEnable(flag int32) int32 {
	b.record("SetLightEnable", flag)
	return 0
}

func (b *Backend) SetGlobalAmbientLight(c dx.ColorF) int32 {
	b.record("SetGlobalAmbientLight", c)
	return 0
}

func (b *Backend) SetMaterialUseVertDifColor(flag int32) int32 {
	b.record("SetMaterialUseVertDifColor", flag)
	return 0
}

func (b *Backend) SetMaterialUseVertSpcColor(flag int32) int32 {
	b.record("SetMaterialUseVertSpcColor", flag)
	return 0
}

func (b *Backend) SetMaterialParam(m dx.MaterialParam) int32 {
	b.record("SetMaterialParam", m)
	return 0
}

func (b *Backend) SetUseSpecular(flag int32) int32 {
	b.record("SetUseSpecular", flag)
	return 0
}
