//go:build windows && amd64

package native

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"

	"github.com/tinyrange/dxbridge/internal/dx"
)

var (
	modDxLib = windows.NewLazyDLL(DefaultDLL)

	procs []*windows.LazyProc
)

func newProc(name string) *windows.LazyProc {
	p := modDxLib.NewProc(name)
	procs = append(procs, p)
	return p
}

var (
	// Lifecycle
	procDxLibInit                     = newProc("DxLib_Init")
	procDxLibEnd                      = newProc("DxLib_End")
	procChangeWindowMode              = newProc("ChangeWindowMode")
	procSetGraphMode                  = newProc("SetGraphMode")
	procSetOutApplicationLogValidFlag = newProc("SetOutApplicationLogValidFlag")
	procSetMainWindowText             = newProc("SetMainWindowText")
	procSetUseDirect3DVersion         = newProc("SetUseDirect3DVersion")

	// Input
	procProcessMessage      = newProc("ProcessMessage")
	procWaitKey             = newProc("WaitKey")
	procWaitTimer           = newProc("WaitTimer")
	procCheckHitKey         = newProc("CheckHitKey")
	procCheckHitKeyAll      = newProc("CheckHitKeyAll")
	procGetJoypadInputState = newProc("GetJoypadInputState")

	// Screen
	procClearDrawScreen  = newProc("ClearDrawScreen")
	procSetDrawScreen    = newProc("SetDrawScreen")
	procScreenFlip       = newProc("ScreenFlip")
	procGetColor         = newProc("GetColor")
	procDrawPixel        = newProc("DrawPixel")
	procDrawBox          = newProc("DrawBox")
	procSetDrawBlendMode = newProc("SetDrawBlendMode")

	// Audio
	procInitMusicMem         = newProc("InitMusicMem")
	procSelectMidiMode       = newProc("SelectMidiMode")
	procLoadMusicMem         = newProc("LoadMusicMem")
	procDeleteMusicMem       = newProc("DeleteMusicMem")
	procPlayMusicMem         = newProc("PlayMusicMem")
	procStopMusicMem         = newProc("StopMusicMem")
	procProcessMusicMem      = newProc("ProcessMusicMem")
	procSetVolumeMusicMem    = newProc("SetVolumeMusicMem")
	procLoadSoundMem         = newProc("LoadSoundMem")
	procDeleteSoundMem       = newProc("DeleteSoundMem")
	procPlaySoundMem         = newProc("PlaySoundMem")
	procStopSoundMem         = newProc("StopSoundMem")
	procChangeVolumeSoundMem = newProc("ChangeVolumeSoundMem")

	// Images
	procMakeScreen              = newProc("MakeScreen")
	procMakeGraph               = newProc("MakeGraph")
	procLoadGraph               = newProc("LoadGraph")
	procDeleteGraph             = newProc("DeleteGraph")
	procGetGraphSize            = newProc("GetGraphSize")
	procGetDrawScreenGraph      = newProc("GetDrawScreenGraph")
	procDrawGraph               = newProc("DrawGraph")
	procDrawTurnGraph           = newProc("DrawTurnGraph")
	procDrawExtendGraph         = newProc("DrawExtendGraph")
	procDrawRotaGraph           = newProc("DrawRotaGraph")
	procDrawModiGraph           = newProc("DrawModiGraph")
	procDrawRectGraph           = newProc("DrawRectGraph")
	procDrawRectExtendGraph     = newProc("DrawRectExtendGraph")
	procSetUseTextureToShader   = newProc("SetUseTextureToShader")
	procSetRenderTargetToShader = newProc("SetRenderTargetToShader")

	// Shaders
	procInitShader                    = newProc("InitShader")
	procLoadVertexShader              = newProc("LoadVertexShader")
	procLoadPixelShader               = newProc("LoadPixelShader")
	procLoadGeometryShader            = newProc("LoadGeometryShader")
	procDeleteShader                  = newProc("DeleteShader")
	procSetUseVertexShader            = newProc("SetUseVertexShader")
	procSetUsePixelShader             = newProc("SetUsePixelShader")
	procSetUseGeometryShader          = newProc("SetUseGeometryShader")
	procGetConstIndexToShader         = newProc("GetConstIndexToShader")
	procGetConstCountToShader         = newProc("GetConstCountToShader")
	procGetConstDefaultParamFToShader = newProc("GetConstDefaultParamFToShader")
	procSetVSConstF                   = newProc("SetVSConstF")
	procSetPSConstF                   = newProc("SetPSConstF")

	// Constant buffers
	procInitShaderConstantBuffer      = newProc("InitShaderConstantBuffer")
	procCreateShaderConstantBuffer    = newProc("CreateShaderConstantBuffer")
	procDeleteShaderConstantBuffer    = newProc("DeleteShaderConstantBuffer")
	procGetBufferShaderConstantBuffer = newProc("GetBufferShaderConstantBuffer")
	procUpdateShaderConstantBuffer    = newProc("UpdateShaderConstantBuffer")
	procSetShaderConstantBuffer       = newProc("SetShaderConstantBuffer")

	// Lights
	procCreateDirLightHandle       = newProc("CreateDirLightHandle")
	procCreateSpotLightHandle      = newProc("CreateSpotLightHandle")
	procCreatePointLightHandle     = newProc("CreatePointLightHandle")
	procDeleteLightHandle          = newProc("DeleteLightHandle")
	procDeleteLightHandleAll       = newProc("DeleteLightHandleAll")
	procGetEnableLightHandleNum    = newProc("GetEnableLightHandleNum")
	procSetLightTypeHandle         = newProc("SetLightTypeHandle")
	procSetLightEnableHandle       = newProc("SetLightEnableHandle")
	procSetLightDifColorHandle     = newProc("SetLightDifColorHandle")
	procSetLightSpcColorHandle     = newProc("SetLightSpcColorHandle")
	procSetLightAmbColorHandle     = newProc("SetLightAmbColorHandle")
	procSetLightDirectionHandle    = newProc("SetLightDirectionHandle")
	procSetLightPositionHandle     = newProc("SetLightPositionHandle")
	procSetLightRangeAttenHandle   = newProc("SetLightRangeAttenHandle")
	procSetLightAngleHandle        = newProc("SetLightAngleHandle")
	procGetLightTypeHandle         = newProc("GetLightTypeHandle")
	procGetLightEnableHandle       = newProc("GetLightEnableHandle")
	procGetLightDifColorHandle     = newProc("GetLightDifColorHandle")
	procGetLightSpcColorHandle     = newProc("GetLightSpcColorHandle")
	procGetLightAmbColorHandle     = newProc("GetLightAmbColorHandle")
	procGetLightDirectionHandle    = newProc("GetLightDirectionHandle")
	procGetLightPositionHandle     = newProc("GetLightPositionHandle")
	procGetLightRangeAttenHandle   = newProc("GetLightRangeAttenHandle")
	procGetLightAngleHandle        = newProc("GetLightAngleHandle")
	procSetUseLighting             = newProc("SetUseLighting")
	procSetLightEnable             = newProc("SetLightEnable")
	procSetGlobalAmbientLight      = newProc("SetGlobalAmbientLight")
	procSetMaterialUseVertDifColor = newProc("SetMaterialUseVertDifColor")
	procSetMaterialUseVertSpcColor = newProc("SetMaterialUseVertSpcColor")
	procSetMaterialParam           = newProc("SetMaterialParam")
	procSetUseSpecular             = newProc("SetUseSpecular")

	// Camera and 3D
	procSetUseBackCulling          = newProc("SetUseBackCulling")
	procSetUseZBuffer3D            = newProc("SetUseZBuffer3D")
	procSetWriteZBuffer3D          = newProc("SetWriteZBuffer3D")
	procCreateLookAtMatrix         = newProc("CreateLookAtMatrix")
	procCreatePerspectiveFovMatrix = newProc("CreatePerspectiveFovMatrix")
	procSetCameraNearFar           = newProc("SetCameraNearFar")
	procSetCameraViewMatrix        = newProc("SetCameraViewMatrix")
	procGetCameraProjectionMatrix  = newProc("GetCameraProjectionMatrix")
	procSetTransformToProjection   = newProc("SetTransformToProjection")
	procDrawPolygon3DToShader      = newProc("DrawPolygon3DToShader")
	procDrawPolygon3D              = newProc("DrawPolygon3D")
	procDrawLine3D                 = newProc("DrawLine3D")

	// Fonts
	procInitFontToHandle         = newProc("InitFontToHandle")
	procCreateFontToHandle       = newProc("CreateFontToHandle")
	procLoadFontDataToHandle     = newProc("LoadFontDataToHandle")
	procDeleteFontToHandle       = newProc("DeleteFontToHandle")
	procDrawStringToHandle       = newProc("DrawStringToHandle")
	procDrawFormatStringToHandle = newProc("DrawFormatStringToHandle")
)

var (
	loadOnce sync.Once
	loadErr  error
)

// load resolves the DLL and every export up front so a missing symbol is
// reported by Open instead of panicking mid frame.
func load() error {
	if err := modDxLib.Load(); err != nil {
		return fmt.Errorf("load %s: %w", modDxLib.Name, err)
	}
	var missing []string
	for _, p := range procs {
		if err := p.Find(); err != nil {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", modDxLib.Name, ErrMissingProc, strings.Join(missing, ", "))
	}
	return nil
}

// Open loads the library. Only the first call's DLLPath is honoured.
func Open(opts Options) (dx.Backend, error) {
	loadOnce.Do(func() {
		if opts.DLLPath != "" {
			modDxLib.Name = opts.DLLPath
		}
		loadErr = load()
	})
	if loadErr != nil {
		return nil, loadErr
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log.Debug("DxLib loaded", "dll", modDxLib.Name, "exports", len(procs), "encoding", opts.Encoding)
	return &Backend{enc: opts.Encoding, log: log}, nil
}

// Backend calls straight into DxLib. It holds no state beyond the string
// encoding.
type Backend struct {
	enc Encoding
	log *slog.Logger
}

var _ dx.Backend = (*Backend)(nil)

// call invokes an export using the Win64 convention. Structs wider than
// eight bytes are passed as a pointer to a copy and returned through a
// hidden first argument. Go's stdcall trampoline mirrors the first four
// arguments into XMM0-3, so float arguments are passed as their bit patterns.
//
//go:uintptrescapes
func call(p *windows.LazyProc, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(p.Addr(), args...)
	return r1
}

func i32(v int32) uintptr        { return uintptr(v) }
func u32(v uint32) uintptr       { return uintptr(v) }
func hnd(h dx.Handle) uintptr    { return uintptr(h) }
func f32(v float32) uintptr      { return uintptr(math.Float32bits(v)) }
func f64(v float64) uintptr      { return uintptr(math.Float64bits(v)) }
func status(r uintptr) int32     { return int32(r) }
func handle(r uintptr) dx.Handle { return dx.Handle(int32(r)) }

// cstr encodes s, logging and returning nil when it can not be passed.
func (b *Backend) cstr(op, s string) []byte {
	buf, err := b.enc.CString(s)
	if err != nil {
		b.log.Warn("DxLib string argument rejected", "op", op, "err", err)
		return nil
	}
	return buf
}

// Lifecycle

func (b *Backend) DxLibInit() int32 { return status(call(procDxLibInit)) }
func (b *Backend) DxLibEnd() int32  { return status(call(procDxLibEnd)) }

func (b *Backend) ChangeWindowMode(flag int32) int32 {
	return status(call(procChangeWindowMode, i32(flag)))
}

func (b *Backend) SetGraphMode(width, height, colorBitDepth, refreshRate int32) int32 {
	return status(call(procSetGraphMode, i32(width), i32(height), i32(colorBitDepth), i32(refreshRate)))
}

func (b *Backend) SetOutApplicationLogValidFlag(flag int32) int32 {
	return status(call(procSetOutApplicationLogValidFlag, i32(flag)))
}

func (b *Backend) SetMainWindowText(text string) int32 {
	s := b.cstr("SetMainWindowText", text)
	if s == nil {
		return -1
	}
	return status(call(procSetMainWindowText, uintptr(unsafe.Pointer(&s[0]))))
}

func (b *Backend) SetUseDirect3DVersion(version int32) int32 {
	return status(call(procSetUseDirect3DVersion, i32(version)))
}

// Input

func (b *Backend) ProcessMessage() int32        { return status(call(procProcessMessage)) }
func (b *Backend) WaitKey() int32               { return status(call(procWaitKey)) }
func (b *Backend) WaitTimer(msec int32) int32   { return status(call(procWaitTimer, i32(msec))) }
func (b *Backend) CheckHitKey(code int32) int32 { return status(call(procCheckHitKey, i32(code))) }

func (b *Backend) CheckHitKeyAll(checkType int32) int32 {
	return status(call(procCheckHitKeyAll, i32(checkType)))
}

func (b *Backend) GetJoypadInputState(inputType int32) int32 {
	return status(call(procGetJoypadInputState, i32(inputType)))
}

// Screen

func (b *Backend) ClearDrawScreen(r *dx.Rect) int32 {
	if r == nil {
		return status(call(procClearDrawScreen, 0))
	}
	c := *r
	return status(call(procClearDrawScreen, uintptr(unsafe.Pointer(&c))))
}

func (b *Backend) SetDrawScreen(screen dx.Handle) int32 {
	return status(call(procSetDrawScreen, hnd(screen)))
}

func (b *Backend) ScreenFlip() int32 { return status(call(procScreenFlip)) }

func (b *Backend) GetColor(r, g, bl int32) uint32 {
	return uint32(call(procGetColor, i32(r), i32(g), i32(bl)))
}

func (b *Backend) DrawPixel(x, y int32, color uint32) int32 {
	return status(call(procDrawPixel, i32(x), i32(y), u32(color)))
}

func (b *Backend) DrawBox(left, top, right, bottom int32, color uint32, fill int32) int32 {
	return status(call(procDrawBox, i32(left), i32(top), i32(right), i32(bottom), u32(color), i32(fill)))
}

func (b *Backend) SetDrawBlendMode(mode, param int32) int32 {
	return status(call(procSetDrawBlendMode, i32(mode), i32(param)))
}

// Audio

func (b *Backend) InitMusicMem() int32    { return status(call(procInitMusicMem)) }
func (b *Backend) ProcessMusicMem() int32 { return status(call(procProcessMusicMem)) }

func (b *Backend) SelectMidiMode(mode int32) int32 {
	return status(call(procSelectMidiMode, i32(mode)))
}

func (b *Backend) LoadMusicMem(path string) dx.Handle {
	s := b.cstr("LoadMusicMem", path)
	if s == nil {
		return dx.InvalidHandle
	}
	return handle(call(procLoadMusicMem, uintptr(unsafe.Pointer(&s[0]))))
}

func (b *Backend) DeleteMusicMem(h dx.Handle) int32 { return status(call(procDeleteMusicMem, hnd(h))) }
func (b *Backend) StopMusicMem(h dx.Handle) int32   { return status(call(procStopMusicMem, hnd(h))) }

func (b *Backend) PlayMusicMem(h dx.Handle, playType dx.PlayType) int32 {
	return status(call(procPlayMusicMem, hnd(h), i32(int32(playType))))
}

func (b *Backend) SetVolumeMusicMem(volume int32, h dx.Handle) int32 {
	return status(call(procSetVolumeMusicMem, i32(volume), hnd(h)))
}

func (b *Backend) LoadSoundMem(path string) dx.Handle {
	s := b.cstr("LoadSoundMem", path)
	if s == nil {
		return dx.InvalidHandle
	}
	return handle(call(procLoadSoundMem, uintptr(unsafe.Pointer(&s[0]))))
}

func (b *Backend) DeleteSoundMem(h dx.Handle, logOut int32) int32 {
	return status(call(procDeleteSoundMem, hnd(h), i32(logOut)))
}

func (b *Backend) PlaySoundMem(h dx.Handle, playType dx.PlayType, topPosition int32) int32 {
	return status(call(procPlaySoundMem, hnd(h), i32(int32(playType)), i32(topPosition)))
}

func (b *Backend) StopSoundMem(h dx.Handle) int32 { return status(call(procStopSoundMem, hnd(h))) }

func (b *Backend) ChangeVolumeSoundMem(volume int32, h dx.Handle) int32 {
	return status(call(procChangeVolumeSoundMem, i32(volume), hnd(h)))
}

// Images

func (b *Backend) MakeScreen(width, height, useAlpha int32) dx.Handle {
	return handle(call(procMakeScreen, i32(width), i32(height), i32(useAlpha)))
}

func (b *Backend) MakeGraph(width, height, notUse3D int32) dx.Handle {
	return handle(call(procMakeGraph, i32(width), i32(height), i32(notUse3D)))
}

func (b *Backend) LoadGraph(path string) dx.Handle {
	s := b.cstr("LoadGraph", path)
	if s == nil {
		return dx.InvalidHandle
	}
	return handle(call(procLoadGraph, uintptr(unsafe.Pointer(&s[0]))))
}

func (b *Backend) DeleteGraph(h dx.Handle, logOut int32) int32 {
	return status(call(procDeleteGraph, hnd(h), i32(logOut)))
}

func (b *Backend) GetGraphSize(h dx.Handle) (width, height int32, st int32) {
	var w, ht int32
	st = status(call(procGetGraphSize, hnd(h), uintptr(unsafe.Pointer(&w)), uintptr(unsafe.Pointer(&ht))))
	return w, ht, st
}

func (b *Backend) GetDrawScreenGraph(left, top, right, bottom int32, h dx.Handle, useClient int32) int32 {
	return status(call(procGetDrawScreenGraph, i32(left), i32(top), i32(right), i32(bottom), hnd(h), i32(useClient)))
}

func (b *Backend) DrawGraph(x, y int32, h dx.Handle, trans int32) int32 {
	return status(call(procDrawGraph, i32(x), i32(y), hnd(h), i32(trans)))
}

func (b *Backend) DrawTurnGraph(x, y int32, h dx.Handle, trans int32) int32 {
	return status(call(procDrawTurnGraph, i32(x), i32(y), hnd(h), i32(trans)))
}

func (b *Backend) DrawExtendGraph(left, top, right, bottom int32, h dx.Handle, trans int32) int32 {
	return status(call(procDrawExtendGraph, i32(left), i32(top), i32(right), i32(bottom), hnd(h), i32(trans)))
}

func (b *Backend) DrawRotaGraph(x, y int32, extRate, angle float64, h dx.Handle, trans, reverseX, reverseY int32) int32 {
	return status(call(procDrawRotaGraph, i32(x), i32(y), f64(extRate), f64(angle), hnd(h), i32(trans), i32(reverseX), i32(reverseY)))
}

func (b *Backend) DrawModiGraph(xlt, ylt, xrt, yrt, xrb, yrb, xlb, ylb int32, h dx.Handle, trans int32) int32 {
	return status(call(procDrawModiGraph,
		i32(xlt), i32(ylt), i32(xrt), i32(yrt), i32(xrb), i32(yrb), i32(xlb), i32(ylb),
		hnd(h), i32(trans)))
}

func (b *Backend) DrawRectGraph(x, y, srcX, srcY, width, height int32, h dx.Handle, trans, reverseX, reverseY int32) int32 {
	return status(call(procDrawRectGraph,
		i32(x), i32(y), i32(srcX), i32(srcY), i32(width), i32(height),
		hnd(h), i32(trans), i32(reverseX), i32(reverseY)))
}

func (b *Backend) DrawRectExtendGraph(left, top, right, bottom, srcX, srcY, width, height int32, h dx.Handle, trans int32) int32 {
	return status(call(procDrawRectExtendGraph,
		i32(left), i32(top), i32(right), i32(bottom), i32(srcX), i32(srcY), i32(width), i32(height),
		hnd(h), i32(trans)))
}

func (b *Backend) SetUseTextureToShader(stage int32, h dx.Handle) int32 {
	return status(call(procSetUseTextureToShader, i32(stage), hnd(h)))
}

func (b *Backend) SetRenderTargetToShader(targetIndex int32, drawScreen dx.Handle, surfaceIndex, mipLevel int32) int32 {
	return status(call(procSetRenderTargetToShader, i32(targetIndex), hnd(drawScreen), i32(surfaceIndex), i32(mipLevel)))
}

// Shaders

func (b *Backend) InitShader() int32 { return status(call(procInitShader)) }

func (b *Backend) loadShader(op string, p *windows.LazyProc, path string) dx.Handle {
	s := b.cstr(op, path)
	if s == nil {
		return dx.InvalidHandle
	}
	return handle(call(p, uintptr(unsafe.Pointer(&s[0]))))
}

func (b *Backend) LoadVertexShader(path string) dx.Handle {
	return b.loadShader("LoadVertexShader", procLoadVertexShader, path)
}

func (b *Backend) LoadPixelShader(path string) dx.Handle {
	return b.loadShader("LoadPixelShader", procLoadPixelShader, path)
}

func (b *Backend) LoadGeometryShader(path string) dx.Handle {
	return b.loadShader("LoadGeometryShader", procLoadGeometryShader, path)
}

func (b *Backend) DeleteShader(h dx.Handle) int32         { return status(call(procDeleteShader, hnd(h))) }
func (b *Backend) SetUseVertexShader(h dx.Handle) int32   { return status(call(procSetUseVertexShader, hnd(h))) }
func (b *Backend) SetUsePixelShader(h dx.Handle) int32    { return status(call(procSetUsePixelShader, hnd(h))) }
func (b *Backend) SetUseGeometryShader(h dx.Handle) int32 { return status(call(procSetUseGeometryShader, hnd(h))) }

func (b *Backend) GetConstIndexToShader(name string, h dx.Handle) int32 {
	s := b.cstr("GetConstIndexToShader", name)
	if s == nil {
		return -1
	}
	return status(call(procGetConstIndexToShader, uintptr(unsafe.Pointer(&s[0])), hnd(h)))
}

func (b *Backend) GetConstCountToShader(name string, h dx.Handle) int32 {
	s := b.cstr("GetConstCountToShader", name)
	if s == nil {
		return -1
	}
	return status(call(procGetConstCountToShader, uintptr(unsafe.Pointer(&s[0])), hnd(h)))
}

func (b *Backend) GetConstDefaultParamFToShader(name string, h dx.Handle) (dx.Float4, bool) {
	s := b.cstr("GetConstDefaultParamFToShader", name)
	if s == nil {
		return dx.Float4{}, false
	}
	r := call(procGetConstDefaultParamFToShader, uintptr(unsafe.Pointer(&s[0])), hnd(h))
	if r == 0 {
		return dx.Float4{}, false
	}
	// r points into DxLib's memory, not the Go heap; vet's unsafeptr warning does not apply.
	return *(*dx.Float4)(unsafe.Pointer(r)), true
}

func (b *Backend) SetVSConstF(index int32, v dx.Float4) int32 {
	return status(call(procSetVSConstF, i32(index), uintptr(unsafe.Pointer(&v))))
}

func (b *Backend) SetPSConstF(index int32, v dx.Float4) int32 {
	return status(call(procSetPSConstF, i32(index), uintptr(unsafe.Pointer(&v))))
}

// Constant buffers

func (b *Backend) InitShaderConstantBuffer() int32 { return status(call(procInitShaderConstantBuffer)) }

func (b *Backend) CreateShaderConstantBuffer(size int32) dx.Handle {
	return handle(call(procCreateShaderConstantBuffer, i32(size)))
}

func (b *Backend) DeleteShaderConstantBuffer(h dx.Handle) int32 {
	return status(call(procDeleteShaderConstantBuffer, hnd(h)))
}

func (b *Backend) GetBufferShaderConstantBuffer(h dx.Handle, n int) []dx.Float4 {
	r := call(procGetBufferShaderConstantBuffer, hnd(h))
	if r == 0 || n <= 0 {
		return nil
	}
	// The buffer is owned by DxLib until DeleteShaderConstantBuffer; vet's
	// unsafeptr warning does not apply.
	return unsafe.Slice((*dx.Float4)(unsafe.Pointer(r)), n)
}

func (b *Backend) UpdateShaderConstantBuffer(h dx.Handle) int32 {
	return status(call(procUpdateShaderConstantBuffer, hnd(h)))
}

func (b *Backend) SetShaderConstantBuffer(h dx.Handle, stage dx.ShaderType, slot int32) int32 {
	return status(call(procSetShaderConstantBuffer, hnd(h), i32(int32(stage)), i32(slot)))
}

// Lights

func (b *Backend) CreateDirLightHandle(dir dx.Vector) dx.Handle {
	return handle(call(procCreateDirLightHandle, uintptr(unsafe.Pointer(&dir))))
}

func (b *Backend) CreateSpotLightHandle(pos, dir dx.Vector, outAngle, inAngle, rng, atten0, atten1, atten2 float32) dx.Handle {
	return handle(call(procCreateSpotLightHandle,
		uintptr(unsafe.Pointer(&pos)), uintptr(unsafe.Pointer(&dir)),
		f32(outAngle), f32(inAngle), f32(rng), f32(atten0), f32(atten1), f32(atten2)))
}

func (b *Backend) CreatePointLightHandle(pos dx.Vector, rng, atten0, atten1, atten2 float32) dx.Handle {
	return handle(call(procCreatePointLightHandle,
		uintptr(unsafe.Pointer(&pos)), f32(rng), f32(atten0), f32(atten1), f32(atten2)))
}

func (b *Backend) DeleteLightHandle(h dx.Handle) int32 { return status(call(procDeleteLightHandle, hnd(h))) }
func (b *Backend) DeleteLightHandleAll() int32         { return status(call(procDeleteLightHandleAll)) }
func (b *Backend) GetEnableLightHandleNum() int32      { return status(call(procGetEnableLightHandleNum)) }

func (b *Backend) SetLightTypeHandle(h dx.Handle, lightType dx.LightType) int32 {
	return status(call(procSetLightTypeHandle, hnd(h), i32(int32(lightType))))
}

func (b *Backend) SetLightEnableHandle(h dx.Handle, flag int32) int32 {
	return status(call(procSetLightEnableHandle, hnd(h), i32(flag)))
}

func (b *Backend) SetLightDifColorHandle(h dx.Handle, c dx.ColorF) int32 {
	return status(call(procSetLightDifColorHandle, hnd(h), uintptr(unsafe.Pointer(&c))))
}

func (b *Backend) SetLightSpcColorHandle(h dx.Handle, c dx.ColorF) int32 {
	return status(call(procSetLightSpcColorHandle, hnd(h), uintptr(unsafe.Pointer(&c))))
}

func (b *Backend) SetLightAmbColorHandle(h dx.Handle, c dx.ColorF) int32 {
	return status(call(procSetLightAmbColorHandle, hnd(h), uintptr(unsafe.Pointer(&c))))
}

func (b *Backend) SetLightDirectionHandle(h dx.Handle, dir dx.Vector) int32 {
	return status(call(procSetLightDirectionHandle, hnd(h), uintptr(unsafe.Pointer(&dir))))
}

func (b *Backend) SetLightPositionHandle(h dx.Handle, pos dx.Vector) int32 {
	return status(call(procSetLightPositionHandle, hnd(h), uintptr(unsafe.Pointer(&pos))))
}

func (b *Backend) SetLightRangeAttenHandle(h dx.Handle, rng, atten0, atten1, atten2 float32) int32 {
	return status(call(procSetLightRangeAttenHandle, hnd(h), f32(rng), f32(atten0), f32(atten1), f32(atten2)))
}

func (b *Backend) SetLightAngleHandle(h dx.Handle, outAngle, inAngle float32) int32 {
	return status(call(procSetLightAngleHandle, hnd(h), f32(outAngle), f32(inAngle)))
}

func (b *Backend) GetLightTypeHandle(h dx.Handle) dx.LightType {
	return dx.LightType(int32(call(procGetLightTypeHandle, hnd(h))))
}

func (b *Backend) GetLightEnableHandle(h dx.Handle) int32 {
	return status(call(procGetLightEnableHandle, hnd(h)))
}

func (b *Backend) lightColor(p *windows.LazyProc, h dx.Handle) dx.ColorF {
	var c dx.ColorF
	call(p, uintptr(unsafe.Pointer(&c)), hnd(h))
	return c
}

func (b *Backend) lightVector(p *windows.LazyProc, h dx.Handle) dx.Vector {
	var v dx.Vector
	call(p, uintptr(unsafe.Pointer(&v)), hnd(h))
	return v
}

func (b *Backend) GetLightDifColorHandle(h dx.Handle) dx.ColorF {
	return b.lightColor(procGetLightDifColorHandle, h)
}

func (b *Backend) GetLightSpcColorHandle(h dx.Handle) dx.ColorF {
	return b.lightColor(procGetLightSpcColorHandle, h)
}

func (b *Backend) GetLightAmbColorHandle(h dx.Handle) dx.ColorF {
	return b.lightColor(procGetLightAmbColorHandle, h)
}

func (b *Backend) GetLightDirectionHandle(h dx.Handle) dx.Vector {
	return b.lightVector(procGetLightDirectionHandle, h)
}

func (b *Backend) GetLightPositionHandle(h dx.Handle) dx.Vector {
	return b.lightVector(procGetLightPositionHandle, h)
}

func (b *Backend) GetLightRangeAttenHandle(h dx.Handle) (rng, atten0, atten1, atten2 float32, st int32) {
	var v [4]float32
	st = status(call(procGetLightRangeAttenHandle, hnd(h),
		uintptr(unsafe.Pointer(&v[0])), uintptr(unsafe.Pointer(&v[1])),
		uintptr(unsafe.Pointer(&v[2])), uintptr(unsafe.Pointer(&v[3]))))
	return v[0], v[1], v[2], v[3], st
}

func (b *Backend) GetLightAngleHandle(h dx.Handle) (outAngle, inAngle float32, st int32) {
	var v [2]float32
	st = status(call(procGetLightAngleHandle, hnd(h), uintptr(unsafe.Pointer(&v[0])), uintptr(unsafe.Pointer(&v[1]))))
	return v[0], v[1], st
}

func (b *Backend) SetUseLighting(flag int32) int32 { return status(call(procSetUseLighting, i32(flag))) }
func (b *Backend) SetLightEnable(flag int32) int32 { return status(call(procSetLightEnable, i32(flag))) }
func (b *Backend) SetUseSpecular(flag int32) int32 { return status(call(procSetUseSpecular, i32(flag))) }

func (b *Backend) SetGlobalAmbientLight(c dx.ColorF) int32 {
	return status(call(procSetGlobalAmbientLight, uintptr(unsafe.Pointer(&c))))
}

func (b *Backend) SetMaterialUseVertDifColor(flag int32) int32 {
	return status(call(procSetMaterialUseVertDifColor, i32(flag)))
}

func (b *Backend) SetMaterialUseVertSpcColor(flag int32) int32 {
	return status(call(procSetMaterialUseVertSpcColor, i32(flag)))
}

func (b *Backend) SetMaterialParam(m dx.MaterialParam) int32 {
	return status(call(procSetMaterialParam, uintptr(unsafe.Pointer(&m))))
}

// Camera and 3D

func (b *Backend) SetUseBackCulling(flag int32) int32 { return status(call(procSetUseBackCulling, i32(flag))) }
func (b *Backend) SetUseZBuffer3D(flag int32) int32   { return status(call(procSetUseZBuffer3D, i32(flag))) }
func (b *Backend) SetWriteZBuffer3D(flag int32) int32 { return status(call(procSetWriteZBuffer3D, i32(flag))) }

func (b *Backend) CreateLookAtMatrix(eye, at, up dx.Vector) (dx.Matrix, int32) {
	var m dx.Matrix
	st := status(call(procCreateLookAtMatrix,
		uintptr(unsafe.Pointer(&m)),
		uintptr(unsafe.Pointer(&eye)), uintptr(unsafe.Pointer(&at)), uintptr(unsafe.Pointer(&up))))
	return m, st
}

func (b *Backend) CreatePerspectiveFovMatrix(fov, zNear, zFar, aspect float32) (dx.Matrix, int32) {
	var m dx.Matrix
	st := status(call(procCreatePerspectiveFovMatrix,
		uintptr(unsafe.Pointer(&m)), f32(fov), f32(zNear), f32(zFar), f32(aspect)))
	return m, st
}

func (b *Backend) SetCameraNearFar(zNear, zFar float32) int32 {
	return status(call(procSetCameraNearFar, f32(zNear), f32(zFar)))
}

func (b *Backend) SetCameraViewMatrix(m dx.Matrix) int32 {
	return status(call(procSetCameraViewMatrix, uintptr(unsafe.Pointer(&m))))
}

func (b *Backend) GetCameraProjectionMatrix() dx.Matrix {
	var m dx.Matrix
	call(procGetCameraProjectionMatrix, uintptr(unsafe.Pointer(&m)))
	return m
}

func (b *Backend) SetTransformToProjection(m dx.Matrix) int32 {
	return status(call(procSetTransformToProjection, uintptr(unsafe.Pointer(&m))))
}

func (b *Backend) DrawPolygon3DToShader(vs []dx.Vertex3DShader) int32 {
	n := len(vs) / 3
	if n == 0 {
		return 0
	}
	return status(call(procDrawPolygon3DToShader, uintptr(unsafe.Pointer(&vs[0])), i32(int32(n))))
}

func (b *Backend) DrawPolygon3D(vs []dx.Vertex3D, h dx.Handle, trans int32) int32 {
	n := len(vs) / 3
	if n == 0 {
		return 0
	}
	return status(call(procDrawPolygon3D, uintptr(unsafe.Pointer(&vs[0])), i32(int32(n)), hnd(h), i32(trans)))
}

func (b *Backend) DrawLine3D(start, end dx.Vector, color uint32) int32 {
	return status(call(procDrawLine3D, uintptr(unsafe.Pointer(&start)), uintptr(unsafe.Pointer(&end)), u32(color)))
}

// Fonts

func (b *Backend) InitFontToHandle() int32 { return status(call(procInitFontToHandle)) }

func (b *Backend) CreateFontToHandle(name string, size, thick, fontType, charSet, edgeSize, italic int32, h dx.Handle) dx.Handle {
	// A NULL name selects the default face.
	if name == "" {
		return handle(call(procCreateFontToHandle, 0,
			i32(size), i32(thick), i32(fontType), i32(charSet), i32(edgeSize), i32(italic), hnd(h)))
	}
	s := b.cstr("CreateFontToHandle", name)
	if s == nil {
		return dx.InvalidHandle
	}
	return handle(call(procCreateFontToHandle, uintptr(unsafe.Pointer(&s[0])),
		i32(size), i32(thick), i32(fontType), i32(charSet), i32(edgeSize), i32(italic), hnd(h)))
}

func (b *Backend) LoadFontDataToHandle(path string, edgeSize int32) dx.Handle {
	s := b.cstr("LoadFontDataToHandle", path)
	if s == nil {
		return dx.InvalidHandle
	}
	return handle(call(procLoadFontDataToHandle, uintptr(unsafe.Pointer(&s[0])), i32(edgeSize)))
}

func (b *Backend) DeleteFontToHandle(h dx.Handle) int32 {
	return status(call(procDeleteFontToHandle, hnd(h)))
}

func (b *Backend) DrawStringToHandle(x, y int32, str string, color uint32, h dx.Handle, edgeColor uint32, vertical int32) int32 {
	s := b.cstr("DrawStringToHandle", str)
	if s == nil {
		return -1
	}
	return status(call(procDrawStringToHandle,
		i32(x), i32(y), uintptr(unsafe.Pointer(&s[0])), u32(color), hnd(h), u32(edgeColor), i32(vertical)))
}

func (b *Backend) DrawFormatStringToHandle(x, y int32, color uint32, h dx.Handle, format string) int32 {
	s := b.cstr("DrawFormatStringToHandle", format)
	if s == nil {
		return -1
	}
	return status(call(procDrawFormatStringToHandle, i32(x), i32(y), u32(color), hnd(h), uintptr(unsafe.Pointer(&s[0]))))
}
