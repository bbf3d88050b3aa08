package dx

// Backend is the full surface of the native library used by the binding.
//
// Method names match the DxLib exports. Every call must be made from the
// goroutine (and locked OS thread) that called DxLibInit.
type Backend interface {
	Lifecycle
	Input
	Screen
	Audio
	Images
	Shaders
	ConstantBuffers
	Lights
	Camera
	Fonts
}

// Lifecycle covers library start up, shutdown and the settings that must be
// applied before DxLibInit.
type Lifecycle interface {
	DxLibInit() int32
	DxLibEnd() int32
	ChangeWindowMode(flag int32) int32
	SetGraphMode(width, height, colorBitDepth, refreshRate int32) int32
	SetOutApplicationLogValidFlag(flag int32) int32
	SetMainWindowText(text string) int32
	SetUseDirect3DVersion(version int32) int32
}

// Input covers the message pump and device polling.
type Input interface {
	ProcessMessage() int32
	WaitKey() int32
	WaitTimer(msec int32) int32
	CheckHitKey(code int32) int32
	CheckHitKeyAll(checkType int32) int32
	GetJoypadInputState(inputType int32) int32
}

// Screen covers draw targets, frame presentation and primitive 2D drawing.
type Screen interface {
	// ClearDrawScreen clears r, or the whole target when r is nil.
	ClearDrawScreen(r *Rect) int32
	SetDrawScreen(screen Handle) int32
	ScreenFlip() int32
	GetColor(r, g, b int32) uint32
	DrawPixel(x, y int32, color uint32) int32
	DrawBox(left, top, right, bottom int32, color uint32, fill int32) int32
	SetDrawBlendMode(mode, param int32) int32
}

// Audio covers sound and music handles.
type Audio interface {
	InitMusicMem() int32
	SelectMidiMode(mode int32) int32
	LoadMusicMem(path string) Handle
	DeleteMusicMem(h Handle) int32
	PlayMusicMem(h Handle, playType PlayType) int32
	StopMusicMem(h Handle) int32
	ProcessMusicMem() int32
	SetVolumeMusicMem(volume int32, h Handle) int32

	LoadSoundMem(path string) Handle
	DeleteSoundMem(h Handle, logOut int32) int32
	PlaySoundMem(h Handle, playType PlayType, topPosition int32) int32
	StopSoundMem(h Handle) int32
	ChangeVolumeSoundMem(volume int32, h Handle) int32
}

// Images covers graph handles, off screen targets and texture binding.
type Images interface {
	MakeScreen(width, height, useAlpha int32) Handle
	MakeGraph(width, height, notUse3D int32) Handle
	LoadGraph(path string) Handle
	DeleteGraph(h Handle, logOut int32) int32
	GetGraphSize(h Handle) (width, height int32, status int32)
	GetDrawScreenGraph(left, top, right, bottom int32, h Handle, useClient int32) int32
	DrawGraph(x, y int32, h Handle, trans int32) int32
	DrawTurnGraph(x, y int32, h Handle, trans int32) int32
	DrawExtendGraph(left, top, right, bottom int32, h Handle, trans int32) int32
	DrawRotaGraph(x, y int32, extRate, angle float64, h Handle, trans, reverseX, reverseY int32) int32
	DrawModiGraph(xlt, ylt, xrt, yrt, xrb, yrb, xlb, ylb int32, h Handle, trans int32) int32
	DrawRectGraph(x, y, srcX, srcY, width, height int32, h Handle, trans, reverseX, reverseY int32) int32
	DrawRectExtendGraph(left, top, right, bottom, srcX, srcY, width, height int32, h Handle, trans int32) int32
	SetUseTextureToShader(stage int32, h Handle) int32
	SetRenderTargetToShader(targetIndex int32, drawScreen Handle, surfaceIndex, mipLevel int32) int32
}

// Shaders covers compiled shader handles and the DX9 constant queries.
type Shaders interface {
	InitShader() int32
	LoadVertexShader(path string) Handle
	LoadPixelShader(path string) Handle
	LoadGeometryShader(path string) Handle
	DeleteShader(h Handle) int32
	SetUseVertexShader(h Handle) int32
	SetUsePixelShader(h Handle) int32
	SetUseGeometryShader(h Handle) int32
	GetConstIndexToShader(name string, h Handle) int32
	GetConstCountToShader(name string, h Handle) int32
	// GetConstDefaultParamFToShader reports false when the constant has no
	// default value.
	GetConstDefaultParamFToShader(name string, h Handle) (Float4, bool)
	SetVSConstF(index int32, v Float4) int32
	SetPSConstF(index int32, v Float4) int32
}

// ConstantBuffers covers DX11 shader constant buffers.
type ConstantBuffers interface {
	InitShaderConstantBuffer() int32
	// CreateShaderConstantBuffer takes the buffer size in bytes.
	CreateShaderConstantBuffer(size int32) Handle
	DeleteShaderConstantBuffer(h Handle) int32
	// GetBufferShaderConstantBuffer returns the first n elements of the
	// buffer's system memory copy. Writes are visible to the library.
	GetBufferShaderConstantBuffer(h Handle, n int) []Float4
	UpdateShaderConstantBuffer(h Handle) int32
	SetShaderConstantBuffer(h Handle, stage ShaderType, slot int32) int32
}

// Lights covers light handles and the global lighting state.
type Lights interface {
	CreateDirLightHandle(dir Vector) Handle
	CreateSpotLightHandle(pos, dir Vector, outAngle, inAngle, rng, atten0, atten1, atten2 float32) Handle
	CreatePointLightHandle(pos Vector, rng, atten0, atten1, atten2 float32) Handle
	DeleteLightHandle(h Handle) int32
	DeleteLightHandleAll() int32
	GetEnableLightHandleNum() int32

	SetLightTypeHandle(h Handle, lightType LightType) int32
	SetLightEnableHandle(h Handle, flag int32) int32
	SetLightDifColorHandle(h Handle, c ColorF) int32
	SetLightSpcColorHandle(h Handle, c ColorF) int32
	SetLightAmbColorHandle(h Handle, c ColorF) int32
	SetLightDirectionHandle(h Handle, dir Vector) int32
	SetLightPositionHandle(h Handle, pos Vector) int32
	SetLightRangeAttenHandle(h Handle, rng, atten0, atten1, atten2 float32) int32
	SetLightAngleHandle(h Handle, outAngle, inAngle float32) int32

	GetLightTypeHandle(h Handle) LightType
	GetLightEnableHandle(h Handle) int32
	GetLightDifColorHandle(h Handle) ColorF
	GetLightSpcColorHandle(h Handle) ColorF
	GetLightAmbColorHandle(h Handle) ColorF
	GetLightDirectionHandle(h Handle) Vector
	GetLightPositionHandle(h Handle) Vector
	GetLightRangeAttenHandle(h Handle) (rng, atten0, atten1, atten2 float32, status int32)
	GetLightAngleHandle(h Handle) (outAngle, inAngle float32, status int32)

	SetUseLighting(flag int32) int32
	SetLightEnable(flag int32) int32
	SetGlobalAmbientLight(c ColorF) int32
	SetMaterialUseVertDifColor(flag int32) int32
	SetMaterialUseVertSpcColor(flag int32) int32
	SetMaterialParam(m MaterialParam) int32
	SetUseSpecular(flag int32) int32
}

// Camera covers the 3D transform state and triangle submission.
type Camera interface {
	SetUseBackCulling(flag int32) int32
	SetUseZBuffer3D(flag int32) int32
	SetWriteZBuffer3D(flag int32) int32
	CreateLookAtMatrix(eye, at, up Vector) (Matrix, int32)
	CreatePerspectiveFovMatrix(fov, zNear, zFar, aspect float32) (Matrix, int32)
	SetCameraNearFar(zNear, zFar float32) int32
	// SetCameraViewMatrix takes a row-major view matrix. GL style column-major
	// matrices must be transposed first.
	SetCameraViewMatrix(m Matrix) int32
	GetCameraProjectionMatrix() Matrix
	SetTransformToProjection(m Matrix) int32
	// DrawPolygon3DToShader draws len(vs)/3 triangles with the active shaders.
	DrawPolygon3DToShader(vs []Vertex3DShader) int32
	DrawPolygon3D(vs []Vertex3D, h Handle, trans int32) int32
	DrawLine3D(start, end Vector, color uint32) int32
}

// Fonts covers font handles.
type Fonts interface {
	InitFontToHandle() int32
	CreateFontToHandle(name string, size, thick, fontType, charSet, edgeSize, italic int32, h Handle) Handle
	LoadFontDataToHandle(path string, edgeSize int32) Handle
	DeleteFontToHandle(h Handle) int32
	DrawStringToHandle(x, y int32, s string, color uint32, h Handle, edgeColor uint32, vertical int32) int32
	// DrawFormatStringToHandle treats s as a printf format, so "%" must be
	// written as "%%".
	DrawFormatStringToHandle(x, y int32, color uint32, h Handle, s string) int32
}
