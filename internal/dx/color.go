package dx

import "encoding/binary"

// ColorF mirrors COLOR_F: normalized float channels in R,G,B,A order.
type ColorF struct {
	R, G, B, A float32
}

// ColorU8 mirrors COLOR_U8. The in-memory channel order is B,G,R,A, which is
// why constructors taking logical R,G,B,A order exist alongside the literal.
type ColorU8 struct {
	B, G, R, A uint8
}

func NewColorF(r, g, b, a float32) ColorF { return ColorF{R: r, G: g, B: b, A: a} }

// ColorFOf builds a color from an R,G,B,A array.
func ColorFOf(v [4]float32) ColorF { return ColorF{R: v[0], G: v[1], B: v[2], A: v[3]} }

// RGBA8 builds a byte color from logical R,G,B,A channels.
func RGBA8(r, g, b, a uint8) ColorU8 { return ColorU8{B: b, G: g, R: r, A: a} }

// ColorU8FromArray builds a byte color from an R,G,B,A array.
func ColorU8FromArray(v [4]uint8) ColorU8 { return RGBA8(v[0], v[1], v[2], v[3]) }

var (
	White = RGBA8(255, 255, 255, 255)
	Black = RGBA8(0, 0, 0, 255)
	Blue  = RGBA8(0, 0, 255, 255)
)

// ColorFFromU8 scales each channel by 1/255.
func ColorFFromU8(u ColorU8) ColorF {
	return ColorF{
		R: float32(u.R) / 255,
		G: float32(u.G) / 255,
		B: float32(u.B) / 255,
		A: float32(u.A) / 255,
	}
}

// ColorU8FromF scales each channel by 255 and truncates toward zero.
// Out of range values saturate and NaN maps to 0.
func ColorU8FromF(f ColorF) ColorU8 {
	return ColorU8{
		B: unitToByte(f.B),
		G: unitToByte(f.G),
		R: unitToByte(f.R),
		A: unitToByte(f.A),
	}
}

func unitToByte(c float32) uint8 {
	v := c * 255
	switch {
	case v != v: // NaN
		return 0
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// ColorFFromFloat4 maps a position in [-2,2] to a debug color: (c+2)/4 for
// x, y and z with alpha forced to 1. It is not the inverse of Float4 and it
// does not clamp, so positions outside [-2,2] produce out of range channels.
func ColorFFromFloat4(p Float4) ColorF {
	return ColorF{
		R: (p.X + 2) / 4,
		G: (p.Y + 2) / 4,
		B: (p.Z + 2) / 4,
		A: 1,
	}
}

func ColorU8FromFloat4(p Float4) ColorU8 { return ColorU8FromF(ColorFFromFloat4(p)) }

// ColorU8FromU32 reinterprets a packed 0xAARRGGBB value.
func ColorU8FromU32(u uint32) ColorU8 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], u)
	return ColorU8{B: b[0], G: b[1], R: b[2], A: b[3]}
}

// U32 packs the color the way DxLib lays it out in memory (0xAARRGGBB).
func (c ColorU8) U32() uint32 {
	return binary.LittleEndian.Uint32([]byte{c.B, c.G, c.R, c.A})
}

func ColorFFromU32(u uint32) ColorF { return ColorFFromU8(ColorU8FromU32(u)) }

// Float4 reinterprets the channels as a vector (R,G,B,A → X,Y,Z,W).
func (c ColorF) Float4() Float4 { return Float4{X: c.R, Y: c.G, Z: c.B, W: c.A} }
