package tdx

import (
	"context"
	"fmt"
	"time"

	"github.com/tinyrange/dxbridge/internal/dx"
)

// Frame is passed to the Loop step function.
type Frame struct {
	// Index counts frames from 0.
	Index int
	// Elapsed is the time since the loop started.
	Elapsed time.Duration
}

// Loop clears the draw screen, runs step and flips, once per frame.
//
// It returns nil when the window is closed or escape is pressed, ctx.Err()
// when ctx is done, and the step's error if it fails.
func (t *Tdx) Loop(ctx context.Context, step func(f Frame) error) error {
	if err := t.open("loop", ""); err != nil {
		return err
	}

	start := time.Now()
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if t.b.ProcessMessage() != 0 {
			t.log.Debug("window closed", "frames", i)
			return nil
		}
		if t.b.CheckHitKey(dx.KeyInputEscape) != dx.FALSE {
			t.log.Debug("escape pressed", "frames", i)
			return nil
		}

		t.b.ClearDrawScreen(nil)
		if err := step(Frame{Index: i, Elapsed: time.Since(start)}); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		t.b.ScreenFlip()
	}
}

// SetCameraLookAt points the camera from eye at target and re-applies the
// current projection.
func (t *Tdx) SetCameraLookAt(eye, target, up dx.Vector) error {
	m, st := t.b.CreateLookAtMatrix(eye, target, up)
	if st != 0 {
		return &Error{Op: "look at", Err: fmt.Errorf("CreateLookAtMatrix returned %d", st)}
	}
	t.b.SetCameraViewMatrix(m)
	t.b.SetTransformToProjection(t.b.GetCameraProjectionMatrix())
	return nil
}

// DrawTriangles draws a triangle list with the current shaders.
func (t *Tdx) DrawTriangles(vs []dx.Vertex3DShader) int32 {
	return t.b.DrawPolygon3DToShader(vs)
}

// DrawFaces draws each per-face triangle list in turn and returns the first
// non-zero status.
func (t *Tdx) DrawFaces(vss [][]dx.Vertex3DShader) int32 {
	var st int32
	for _, vs := range vss {
		if r := t.b.DrawPolygon3DToShader(vs); r != 0 && st == 0 {
			st = r
		}
	}
	return st
}

func (t *Tdx) ProcessMessage() int32 { return t.b.ProcessMessage() }
func (t *Tdx) ScreenFlip() int32     { return t.b.ScreenFlip() }

// ClearDrawScreen clears r, or the whole draw screen when r is nil.
func (t *Tdx) ClearDrawScreen(r *dx.Rect) int32 { return t.b.ClearDrawScreen(r) }

// SetDrawScreen selects dx.ScreenBack, dx.ScreenFront, dx.ScreenWork or a
// Screen handle as the draw target.
func (t *Tdx) SetDrawScreen(screen dx.Handle) int32 { return t.b.SetDrawScreen(screen) }

func (t *Tdx) WaitKey() int32              { return t.b.WaitKey() }
func (t *Tdx) WaitTimer(msec int32) int32  { return t.b.WaitTimer(msec) }
func (t *Tdx) CheckHitKey(code int32) bool { return t.b.CheckHitKey(code) != dx.FALSE }

func (t *Tdx) GetColor(r, g, b int32) uint32 { return t.b.GetColor(r, g, b) }

func (t *Tdx) DrawPixel(x, y int32, color uint32) int32 { return t.b.DrawPixel(x, y, color) }

func (t *Tdx) SetMainWindowText(text string) int32 { return t.b.SetMainWindowText(text) }

func (t *Tdx) InitMusicMem() int32             { return t.b.InitMusicMem() }
func (t *Tdx) ProcessMusicMem() int32          { return t.b.ProcessMusicMem() }
func (t *Tdx) SelectMidiMode(mode int32) int32 { return t.b.SelectMidiMode(mode) }
func (t *Tdx) InitShader() int32               { return t.b.InitShader() }
func (t *Tdx) InitFontToHandle() int32         { return t.b.InitFontToHandle() }

func (t *Tdx) InitShaderConstantBuffer() int32 { return t.b.InitShaderConstantBuffer() }
