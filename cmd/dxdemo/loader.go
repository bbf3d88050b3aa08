package main

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/tinyrange/dxbridge/internal/tdx"
)

// loader loads assets in order, stopping at the first error. A progress bar
// is shown when stderr is a terminal.
type loader struct {
	a   *app
	bar *progressbar.ProgressBar
	err error
}

func newLoader(a *app, n int) *loader {
	l := &loader{a: a}
	if n > 0 && term.IsTerminal(int(os.Stderr.Fd())) {
		l.bar = progressbar.Default(int64(n), "preload")
	}
	return l
}

func (l *loader) step(name string) {
	if l.bar == nil {
		return
	}
	l.bar.Describe("preload " + name)
	l.bar.Add(1)
}

func (l *loader) close() error {
	if l.bar != nil {
		l.bar.Close()
	}
	return l.err
}

// load calls fn with the resolved asset path. Missing files still register
// a resource holding the library's failure handle.
func load[T tdx.Resource](l *loader, fn func(path string) (T, error), name string) T {
	var zero T
	if l.err != nil {
		return zero
	}
	start := time.Now()
	r, err := fn(l.a.asset(name))
	l.a.prof.rec.Since(l.a.prof.load, start)
	if err != nil {
		l.err = err
		return zero
	}
	if !r.Handle().Valid() {
		l.a.log.Warn("asset not loaded", "kind", r.Kind(), "path", r.Path())
	}
	l.step(name)
	return r
}
