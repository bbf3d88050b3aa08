package main

import (
	"context"
	"fmt"

	"github.com/tinyrange/dxbridge/internal/dx"
	"github.com/tinyrange/dxbridge/internal/geom"
	"github.com/tinyrange/dxbridge/internal/shapes"
	"github.com/tinyrange/dxbridge/internal/tdx"
)

var textColor = [3]int32{32, 192, 255}

// screenScene plays music over a colour gradient until a key is pressed.
func screenScene(ctx context.Context, a *app) error {
	t := a.t

	t.InitMusicMem()
	l := newLoader(a, 1)
	music := load(l, t.LoadMusic, a.cfg.Assets.ShortSound)
	if err := l.close(); err != nil {
		return err
	}
	t.SelectMidiMode(dx.MidiModeMCI)
	music.SetVolume(96)
	music.Play(dx.PlayBack)

	t.SetDrawScreen(dx.ScreenWork)
	t.ClearDrawScreen(nil)

	t.SetDrawScreen(dx.ScreenBack)
	t.ClearDrawScreen(nil)
	drawGradient(t, 160, 120)
	t.SetMainWindowText("click or hit any key...")
	t.ScreenFlip()
	t.WaitKey()

	t.SetDrawScreen(dx.ScreenFront)
	t.SetMainWindowText("end")
	t.WaitTimer(1000)
	return nil
}

// typScene plays a single sound to completion.
func typScene(ctx context.Context, a *app) error {
	t := a.t

	l := newLoader(a, 1)
	sound := load(l, t.LoadSound, a.cfg.Assets.ShortSound)
	if err := l.close(); err != nil {
		return err
	}
	t.WaitTimer(1000)
	sound.SetVolume(128)
	sound.Play(dx.PlayNormal, true)
	t.WaitTimer(2000)
	t.SetMainWindowText("end")
	sound.Stop()
	return nil
}

// dumScene is the full 3D scene: a bent quad, a textured cube and a vertex
// coloured pyramid seen from an orbiting camera.
func dumScene(ctx context.Context, a *app) error {
	t := a.t
	as := a.cfg.Assets

	vert := shapes.BentQuad()
	cube, err := geom.ConvertFlat(shapes.CubeFlatGL(), shapes.NFacesCube, shapes.VPFCube, geom.Options{
		Offset:  dx.NewFloat4(0, 0, 0, 1),
		Scale:   128,
		Colors:  geom.Textured,
		Normals: geom.NormalsUnit,
	})
	if err != nil {
		return fmt.Errorf("convert cube: %w", err)
	}
	pyramid, err := geom.ConvertFaces(shapes.PyramidGL(), geom.Options{
		Offset:  dx.NewFloat4(0, 320, 0, 1),
		Scale:   64,
		Colors:  geom.VertexColor,
		Normals: geom.NormalsUnit,
	})
	if err != nil {
		return fmt.Errorf("convert pyramid: %w", err)
	}

	t.InitMusicMem()
	t.InitShader()
	t.InitFontToHandle()
	l := newLoader(a, 8)
	music := load(l, t.LoadMusic, as.Music)
	long := load(l, t.LoadSound, as.LongSound)
	short := load(l, t.LoadSound, as.ShortSound)
	img := load(l, t.LoadGraph, as.Image)
	tex := load(l, t.LoadGraph, as.Texture)
	vs := load(l, t.LoadVertexShader, as.VertexShader)
	ps := load(l, t.LoadPixelShader, as.PixelShader)
	font := load(l, func(path string) (*tdx.Font, error) { return t.LoadFontData(path, 0) }, as.Font)
	if err := l.close(); err != nil {
		return err
	}

	light, err := t.CreateDirLight(dx.NewVector(-1, -1, -1))
	if err != nil {
		return err
	}
	light.SetDifColor(dx.NewColorF(1, 1, 1, 1))
	light.SetAmbColor(dx.NewColorF(0.25, 0.25, 0.25, 1))

	t.InitShaderConstantBuffer()
	params, err := t.CreateConstantBuffer(1, dx.ShaderPixel, 4)
	if err != nil {
		return err
	}

	backdrop, err := t.MakeScreen(320, 240, false)
	if err != nil {
		return err
	}
	backdrop.Activate()
	drawGradient(t, 0, 0)

	a.log.Info("resources loaded", "count", t.Len(),
		"sound", long.Handle(), "graph", img.Handle(), "font", font.Handle())

	t.SelectMidiMode(dx.MidiModeMCI)
	music.SetVolume(96)
	music.Play(dx.PlayBack)
	long.SetVolume(128)
	long.Play(dx.PlayBack, true)

	color := t.GetColor(textColor[0], textColor[1], textColor[2])
	t.SetDrawScreen(dx.ScreenWork)
	t.ClearDrawScreen(nil)
	font.DrawFormat(40, 440, color, "waiting...")
	t.ScreenFlip()
	t.SetMainWindowText("click or hit any key...")
	t.WaitKey()

	short.SetVolume(128)
	short.Play(dx.PlayLoop, true)

	b := t.Backend()
	t.SetDrawScreen(dx.ScreenBack)
	err = a.loop(ctx, func(f tdx.Frame) error {
		i := int32(f.Index)
		backdrop.Draw(160, 120, false)
		img.Draw(i*4/8, i*3/8, true)

		b.SetUseBackCulling(dx.TRUE)
		tex.SetToShader(0)
		vs.Bind()
		ps.Bind()
		if err := params.Set(0, dx.NewFloat4(float32(f.Elapsed.Seconds()), float32(f.Index), 0, 0)); err == nil {
			params.Update()
			params.Bind()
		}

		if err := t.SetCameraLookAt(orbit(f.Index+1, cameraRadius), dx.Vector{}, cameraUp); err != nil {
			return err
		}
		t.DrawTriangles(vert)
		t.DrawFaces(cube)
		t.DrawFaces(pyramid)
		return nil
	})
	if err != nil {
		return err
	}

	short.Stop()
	short.SetVolume(255)
	short.Play(dx.PlayBack, true)

	t.SetDrawScreen(dx.ScreenFront)
	font.DrawString(40, 440, "aBc日本語漢字表示申能utf8", color, 0, false)
	for _, title := range []string{"clicked", "click", "cli", "c"} {
		t.SetMainWindowText(title)
		t.WaitTimer(1000)
	}

	short.Stop()
	short.SetVolume(128)
	short.Play(dx.PlayNormal, true)
	return nil
}

// gradientCell is the side of the boxes the gradient is drawn with.
const gradientCell = 8

// drawGradient fills a 320x240 area at (x, y) on the current draw screen.
func drawGradient(t *tdx.Tdx, x, y int32) {
	b := t.Backend()
	for r := int32(0); r < 240; r += gradientCell {
		for c := int32(0); c < 320; c += gradientCell {
			color := t.GetColor(255-c/2, 192-r/2, 32)
			b.DrawBox(x+c, y+r, x+c+gradientCell, y+r+gradientCell, color, dx.TRUE)
		}
	}
}
