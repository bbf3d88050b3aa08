package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/tinyrange/dxbridge/internal/config"
	"github.com/tinyrange/dxbridge/internal/tdx"
)

var errFramesDone = errors.New("frame limit reached")

type scene func(ctx context.Context, a *app) error

var scenes = map[string]scene{
	"screen":    screenScene,
	"typ":       typScene,
	"dum":       dumScene,
	"inventory": inventoryScene,
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type app struct {
	t     *tdx.Tdx
	cfg   config.Config
	log   *slog.Logger
	out   io.Writer
	asset func(name string) string
	prof  profile
}

// loop runs step until the window closes or cfg.Frames frames have been
// drawn. The time between steps (flip, message pump and clear) is recorded
// as frame_present.
func (a *app) loop(ctx context.Context, step func(f tdx.Frame) error) error {
	rec := a.prof.rec
	last := time.Now()
	err := a.t.Loop(ctx, func(f tdx.Frame) error {
		if a.cfg.Frames > 0 && f.Index >= a.cfg.Frames {
			return errFramesDone
		}
		rec.SetFrame(f.Index)
		start := rec.Since(a.prof.present, last)
		if err := step(f); err != nil {
			return err
		}
		last = rec.Since(a.prof.step, start)
		return nil
	})
	if errors.Is(err, errFramesDone) {
		return nil
	}
	return err
}
