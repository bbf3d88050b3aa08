package dx

// DxLib boolean values.
const (
	FALSE int32 = 0
	TRUE  int32 = 1
)

// Bool converts a Go bool to a DxLib flag.
func Bool(b bool) int32 {
	if b {
		return TRUE
	}
	return FALSE
}

// Draw screens accepted by SetDrawScreen.
const (
	ScreenBack  Handle = -2
	ScreenWork  Handle = -3
	ScreenFront Handle = -4
)

// PlayType selects how a sound or music handle is played.
type PlayType int32

const (
	PlayTypeLoopBit PlayType = 2
	PlayTypeBackBit PlayType = 1

	PlayNormal PlayType = 0
	PlayBack   PlayType = PlayTypeBackBit
	PlayLoop   PlayType = PlayTypeLoopBit | PlayTypeBackBit
)

// MIDI playback modes.
const (
	MidiModeMCI int32 = 0
	MidiModeDM  int32 = 1
)

// Blend modes accepted by SetDrawBlendMode.
const (
	BlendModeNoBlend      int32 = 0
	BlendModeAlpha        int32 = 1
	BlendModeAdd          int32 = 2
	BlendModeSub          int32 = 3
	BlendModeMul          int32 = 4
	BlendModeXor          int32 = 6
	BlendModeDestColor    int32 = 8
	BlendModeInvDestColor int32 = 9
	BlendModeInvSrc       int32 = 10
	BlendModeMulA         int32 = 11
	BlendModeSrcColor     int32 = 14
	BlendModePMAAlpha     int32 = 17
	BlendModePMAAdd       int32 = 18
	BlendModePMASub       int32 = 19
	BlendModePMAInvSrc    int32 = 20
	BlendModeCustom       int32 = 32
	BlendModeNum          int32 = 33
)

// Direct3D versions accepted by SetUseDirect3DVersion.
const (
	Direct3DNone int32 = 0
	Direct3D9    int32 = 1
	Direct3D9Ex  int32 = 2
	Direct3D11   int32 = 3
)

// ShaderType selects a pipeline stage.
type ShaderType int32

const (
	ShaderVertex   ShaderType = 0
	ShaderPixel    ShaderType = 1
	ShaderGeometry ShaderType = 2
	ShaderCompute  ShaderType = 3
	ShaderDomain   ShaderType = 4
	ShaderHull     ShaderType = 5
)

func (s ShaderType) String() string {
	switch s {
	case ShaderVertex:
		return "vertex"
	case ShaderPixel:
		return "pixel"
	case ShaderGeometry:
		return "geometry"
	case ShaderCompute:
		return "compute"
	case ShaderDomain:
		return "domain"
	case ShaderHull:
		return "hull"
	default:
		return "unknown"
	}
}

// LightType is returned by GetLightTypeHandle.
type LightType int32

const (
	LightPoint       LightType = 1
	LightSpot        LightType = 2
	LightDirectional LightType = 3
)

func (l LightType) String() string {
	switch l {
	case LightPoint:
		return "point"
	case LightSpot:
		return "spot"
	case LightDirectional:
		return "directional"
	default:
		return "unknown"
	}
}

// CheckInputAll is the CheckHitKeyAll mask for every input device.
const CheckInputAll int32 = 7

// Key codes accepted by CheckHitKey (KEY_INPUT_*).
const (
	KeyInputBack   int32 = 0x0E
	KeyInputTab    int32 = 0x0F
	KeyInputReturn int32 = 0x1C
	KeyInputEscape int32 = 0x01
	KeyInputSpace  int32 = 0x39
	KeyInputLeft   int32 = 0xCB
	KeyInputUp     int32 = 0xC8
	KeyInputRight  int32 = 0xCD
	KeyInputDown   int32 = 0xD0
	KeyInputZ      int32 = 0x2C
	KeyInputX      int32 = 0x2D
	KeyInputQ      int32 = 0x10
)

// Font types accepted by CreateFontToHandle; -1 selects the default.
const (
	FontTypeDefault   int32 = -1
	FontTypeNormal    int32 = 0x00
	FontTypeEdge      int32 = 0x01
	FontTypeAntialias int32 = 0x02
)

// DefaultHandle requests a freshly allocated handle from Create*ToHandle.
const DefaultHandle Handle = -1
