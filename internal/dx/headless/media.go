package headless

import (
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/tinyrange/dxbridge/internal/dx"
)

const (
	kindSound   = "sound"
	kindMusic   = "music"
	kindGraph   = "graph"
	kindScreen  = "screen"
	kindShader  = "shader"
	kindCBuffer = "cbuffer"
	kindLight   = "light"
	kindFont    = "font"
)

// Audio

func (b *Backend) InitMusicMem() int32 {
	b.record("InitMusicMem")
	return 0
}

func (b *Backend) SelectMidiMode(mode int32) int32 {
	b.record("SelectMidiMode", mode)
	return 0
}

func (b *Backend) LoadMusicMem(path string) dx.Handle {
	b.record("LoadMusicMem", path)
	return b.alloc(kindMusic, path)
}

func (b *Backend) DeleteMusicMem(h dx.Handle) int32 {
	b.record("DeleteMusicMem", h)
	return b.free(h, kindMusic)
}

func (b *Backend) PlayMusicMem(h dx.Handle, playType dx.PlayType) int32 {
	b.record("PlayMusicMem", h, playType)
	return status(b.isLive(h, kindMusic))
}

func (b *Backend) StopMusicMem(h dx.Handle) int32 {
	b.record("StopMusicMem", h)
	return status(b.isLive(h, kindMusic))
}

func (b *Backend) ProcessMusicMem() int32 {
	b.record("ProcessMusicMem")
	return 0
}

func (b *Backend) SetVolumeMusicMem(volume int32, h dx.Handle) int32 {
	b.record("SetVolumeMusicMem", volume, h)
	return b.setVolume(h, kindMusic, volume)
}

func (b *Backend) LoadSoundMem(path string) dx.Handle {
	b.record("LoadSoundMem", path)
	return b.alloc(kindSound, path)
}

func (b *Backend) DeleteSoundMem(h dx.Handle, logOut int32) int32 {
	b.record("DeleteSoundMem", h, logOut)
	return b.free(h, kindSound)
}

func (b *Backend) PlaySoundMem(h dx.Handle, playType dx.PlayType, topPosition int32) int32 {
	b.record("PlaySoundMem", h, playType, topPosition)
	return status(b.isLive(h, kindSound))
}

func (b *Backend) StopSoundMem(h dx.Handle) int32 {
	b.record("StopSoundMem", h)
	return status(b.isLive(h, kindSound))
}

func (b *Backend) ChangeVolumeSoundMem(volume int32, h dx.Handle) int32 {
	b.record("ChangeVolumeSoundMem", volume, h)
	return b.setVolume(h, kindSound, volume)
}

// Volume returns the last volume set on h.
func (b *Backend) Volume(h dx.Handle) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.volumes[h]
}

func (b *Backend) setVolume(h dx.Handle, kind string, volume int32) int32 {
	if !b.isLive(h, kind) {
		return -1
	}
	b.mu.Lock()
	b.volumes[h] = volume
	b.mu.Unlock()
	return 0
}

// Images

func (b *Backend) MakeScreen(width, height, useAlpha int32) dx.Handle {
	b.record("MakeScreen", width, height, useAlpha)
	return b.allocSized(kindScreen, width, height)
}

func (b *Backend) MakeGraph(width, height, notUse3D int32) dx.Handle {
	b.record("MakeGraph", width, height, notUse3D)
	return b.allocSized(kindGraph, width, height)
}

func (b *Backend) allocSized(kind string, width, height int32) dx.Handle {
	if width <= 0 || height <= 0 {
		return dx.InvalidHandle
	}
	h := b.alloc(kind, "")
	b.mu.Lock()
	b.sizes[h] = [2]int32{width, height}
	b.mu.Unlock()
	return h
}

func (b *Backend) LoadGraph(path string) dx.Handle {
	b.record("LoadGraph", path)
	h := b.alloc(kindGraph, path)
	if !h.Valid() || b.opts.Assets == nil {
		return h
	}

	f, err := b.opts.Assets.Open(path)
	if err != nil {
		return h
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		b.log.Warn("headless image header unreadable", "path", path, "error", err)
		return h
	}
	b.log.Debug("headless image", "path", path, "format", format, "width", cfg.Width, "height", cfg.Height)

	b.mu.Lock()
	b.sizes[h] = [2]int32{int32(cfg.Width), int32(cfg.Height)}
	b.mu.Unlock()
	return h
}

func (b *Backend) DeleteGraph(h dx.Handle, logOut int32) int32 {
	b.record("DeleteGraph", h, logOut)
	return b.free(h, kindGraph, kindScreen)
}

func (b *Backend) GetGraphSize(h dx.Handle) (width, height int32, st int32) {
	b.record("GetGraphSize", h)
	if !b.isLive(h, kindGraph, kindScreen) {
		return 0, 0, -1
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	sz := b.sizes[h]
	return sz[0], sz[1], 0
}

func (b *Backend) GetDrawScreenGraph(left, top, right, bottom int32, h dx.Handle, useClient int32) int32 {
	b.record("GetDrawScreenGraph", left, top, right, bottom, h, useClient)
	return b.graphStatus(h)
}

func (b *Backend) graphStatus(h dx.Handle) int32 {
	return status(b.isLive(h, kindGraph, kindScreen))
}

func (b *Backend) DrawGraph(x, y int32, h dx.Handle, trans int32) int32 {
	b.record("DrawGraph", x, y, h, trans)
	return b.graphStatus(h)
}

func (b *Backend) DrawTurnGraph(x, y int32, h dx.Handle, trans int32) int32 {
	b.record("DrawTurnGraph", x, y, h, trans)
	return b.graphStatus(h)
}

func (b *Backend) DrawExtendGraph(left, top, right, bottom int32, h dx.Handle, trans int32) int32 {
	b.record("DrawExtendGraph", left, top, right, bottom, h, trans)
	return b.graphStatus(h)
}

func (b *Backend) DrawRotaGraph(x, y int32, extRate, angle float64, h dx.Handle, trans, reverseX, reverseY int32) int32 {
	b.record("DrawRotaGraph", x, y, extRate, angle, h, trans, reverseX, reverseY)
	return b.graphStatus(h)
}

func (b *Backend) DrawModiGraph(xlt, ylt, xrt, yrt, xrb, yrb, xlb, ylb int32, h dx.Handle, trans int32) int32 {
	b.record("DrawModiGraph", xlt, ylt, xrt, yrt, xrb, yrb, xlb, ylb, h, trans)
	return b.graphStatus(h)
}

func (b *Backend) DrawRectGraph(x, y, srcX, srcY, width, height int32, h dx.Handle, trans, reverseX, reverseY int32) int32 {
	b.record("DrawRectGraph", x, y, srcX, srcY, width, height, h, trans, reverseX, reverseY)
	return b.graphStatus(h)
}

func (b *Backend) DrawRectExtendGraph(left, top, right, bottom, srcX, srcY, width, height int32, h dx.Handle, trans int32) int32 {
	b.record("DrawRectExtendGraph", left, top, right, bottom, srcX, srcY, width, height, h, trans)
	return b.graphStatus(h)
}

func (b *Backend) SetUseTextureToShader(stage int32, h dx.Handle) int32 {
	b.record("SetUseTextureToShader", stage, h)
	if h == dx.InvalidHandle {
		return 0
	}
	return b.graphStatus(h)
}

func (b *Backend) SetRenderTargetToShader(targetIndex int32, drawScreen dx.Handle, surfaceIndex, mipLevel int32) int32 {
	b.record("SetRenderTargetToShader", targetIndex, drawScreen, surfaceIndex, mipLevel)
	if drawScreen == dx.InvalidHandle {
		return 0
	}
	return status(b.isLive(drawScreen, kindScreen))
}

// Fonts

func (b *Backend) InitFontToHandle() int32 {
	b.record("InitFontToHandle")
	return 0
}

func (b *Backend) CreateFontToHandle(name string, size, thick, fontType, charSet, edgeSize, italic int32, h dx.Handle) dx.Handle {
	b.record("CreateFontToHandle", name, size, thick, fontType, charSet, edgeSize, italic, h)
	if h.Valid() {
		if !b.isLive(h, kindFont) {
			return dx.InvalidHandle
		}
		return h
	}
	return b.alloc(kindFont, "")
}

func (b *Backend) LoadFontDataToHandle(path string, edgeSize int32) dx.Handle {
	b.record("LoadFontDataToHandle", path, edgeSize)
	return b.alloc(kindFont, path)
}

func (b *Backend) DeleteFontToHandle(h dx.Handle) int32 {
	b.record("DeleteFontToHandle", h)
	return b.free(h, kindFont)
}

func (b *Backend) DrawStringToHandle(x, y int32, s string, color uint32, h dx.Handle, edgeColor uint32, vertical int32) int32 {
	b.record("DrawStringToHandle", x, y, s, color, h, edgeColor, vertical)
	return status(b.isLive(h, kindFont))
}

func (b *Backend) DrawFormatStringToHandle(x, y int32, color uint32, h dx.Handle, s string) int32 {
	b.record("DrawFormatStringToHandle", x, y, color, h, s)
	return status(b.isLive(h, kindFont))
}
