package tdx

import "fmt"

// Kind tags the wrapper type stored in a registry entry.
type Kind int

const (
	KindSound Kind = iota + 1
	KindMusic
	KindGraph
	KindScreen
	KindVertexShader
	KindPixelShader
	KindGeometryShader
	KindConstantBuffer
	KindLight
	KindFont
)

var kindNames = map[Kind]string{
	KindSound:          "sound",
	KindMusic:          "music",
	KindGraph:          "graph",
	KindScreen:         "screen",
	KindVertexShader:   "vertex-shader",
	KindPixelShader:    "pixel-shader",
	KindGeometryShader: "geometry-shader",
	KindConstantBuffer: "constant-buffer",
	KindLight:          "light",
	KindFont:           "font",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// State is the lifecycle position of a wrapper.
type State int

const (
	StateConstructed State = iota
	StateRegistered
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateRegistered:
		return "registered"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
