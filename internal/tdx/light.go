package tdx

import "github.com/tinyrange/dxbridge/internal/dx"

// Light is a light handle. Lights start enabled.
type Light struct{ resource }

func newLight(b dx.Backend, h dx.Handle) *Light {
	return &Light{newResource(b, h, "", func(b dx.Backend, h dx.Handle) int32 {
		return b.DeleteLightHandle(h)
	})}
}

// NewDirLight creates a directional light shining along dir.
func NewDirLight(b dx.Backend, dir dx.Vector) *Light {
	return newLight(b, b.CreateDirLightHandle(dir))
}

// NewSpotLight creates a spot light. Angles are in radians; outAngle is the
// cone edge and inAngle the start of the falloff.
func NewSpotLight(b dx.Backend, pos, dir dx.Vector, outAngle, inAngle, rng, atten0, atten1, atten2 float32) *Light {
	return newLight(b, b.CreateSpotLightHandle(pos, dir, outAngle, inAngle, rng, atten0, atten1, atten2))
}

// NewPointLight creates a point light. Attenuation is
// 1 / (atten0 + atten1*d + atten2*d*d) within rng.
func NewPointLight(b dx.Backend, pos dx.Vector, rng, atten0, atten1, atten2 float32) *Light {
	return newLight(b, b.CreatePointLightHandle(pos, rng, atten0, atten1, atten2))
}

func (*Light) Kind() Kind { return KindLight }

func (l *Light) view() Resource { return &Light{l.weak()} }

func (l *Light) SetType(t dx.LightType) int32 {
	h, ok := l.live()
	if !ok {
		return statusDisposed
	}
	return l.b.SetLightTypeHandle(h, t)
}

func (l *Light) SetEnable(enable bool) int32 {
	h, ok := l.live()
	if !ok {
		return statusDisposed
	}
	return l.b.SetLightEnableHandle(h, dx.Bool(enable))
}

func (l *Light) SetDifColor(c dx.ColorF) int32 {
	h, ok := l.live()
	if !ok {
		return statusDisposed
	}
	return l.b.SetLightDifColorHandle(h, c)
}

func (l *Light) SetSpcColor(c dx.ColorF) int32 {
	h, ok := l.live()
	if !ok {
		return statusDisposed
	}
	return l.b.SetLightSpcColorHandle(h, c)
}

func (l *Light) SetAmbColor(c dx.ColorF) int32 {
	h, ok := l.live()
	if !ok {
		return statusDisposed
	}
	return l.b.SetLightAmbColorHandle(h, c)
}

func (l *Light) SetDirection(dir dx.Vector) int32 {
	h, ok := l.live()
	if !ok {
		return statusDisposed
	}
	return l.b.SetLightDirectionHandle(h, dir)
}

func (l *Light) SetPosition(pos dx.Vector) int32 {
	h, ok := l.live()
	if !ok {
		return statusDisposed
	}
	return l.b.SetLightPositionHandle(h, pos)
}

func (l *Light) SetRangeAtten(rng, atten0, atten1, atten2 float32) int32 {
	h, ok := l.live()
	if !ok {
		return statusDisposed
	}
	return l.b.SetLightRangeAttenHandle(h, rng, atten0, atten1, atten2)
}

func (l *Light) SetAngle(outAngle, inAngle float32) int32 {
	h, ok := l.live()
	if !ok {
		return statusDisposed
	}
	return l.b.SetLightAngleHandle(h, outAngle, inAngle)
}

// The getters below return zero values once the light is disposed.

func (l *Light) Type() dx.LightType {
	h, ok := l.live()
	if !ok {
		return 0
	}
	return l.b.GetLightTypeHandle(h)
}

func (l *Light) Enabled() bool {
	h, ok := l.live()
	return ok && l.b.GetLightEnableHandle(h) == dx.TRUE
}

func (l *Light) DifColor() dx.ColorF { return l.color(l.b.GetLightDifColorHandle) }
func (l *Light) SpcColor() dx.ColorF { return l.color(l.b.GetLightSpcColorHandle) }
func (l *Light) AmbColor() dx.ColorF { return l.color(l.b.GetLightAmbColorHandle) }

func (l *Light) color(get func(h dx.Handle) dx.ColorF) dx.ColorF {
	h, ok := l.live()
	if !ok {
		return dx.ColorF{}
	}
	return get(h)
}

func (l *Light) Direction() dx.Vector { return l.vector(l.b.GetLightDirectionHandle) }
func (l *Light) Position() dx.Vector  { return l.vector(l.b.GetLightPositionHandle) }

func (l *Light) vector(get func(h dx.Handle) dx.Vector) dx.Vector {
	h, ok := l.live()
	if !ok {
		return dx.Vector{}
	}
	return get(h)
}

func (l *Light) RangeAtten() (rng, atten0, atten1, atten2 float32, ok bool) {
	h, ok := l.live()
	if !ok {
		return 0, 0, 0, 0, false
	}
	rng, atten0, atten1, atten2, st := l.b.GetLightRangeAttenHandle(h)
	return rng, atten0, atten1, atten2, st == 0
}

func (l *Light) Angle() (outAngle, inAngle float32, ok bool) {
	h, ok := l.live()
	if !ok {
		return 0, 0, false
	}
	outAngle, inAngle, st := l.b.GetLightAngleHandle(h)
	return outAngle, inAngle, st == 0
}
