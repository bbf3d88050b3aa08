// Package native binds dx.Backend to DxLib_x64_R.dll.
//
// The DLL is only available on Windows/amd64; elsewhere Open returns
// ErrUnsupported and callers fall back to the headless backend.
package native

import (
	"errors"
	"log/slog"
)

// DefaultDLL is the bridge DLL that re-exports DxLib_x64.dll with C names.
const DefaultDLL = "DxLib_x64_R.dll"

var (
	ErrUnsupported = errors.New("native DxLib backend requires windows/amd64")
	ErrMissingProc = errors.New("DxLib export not found")
)

type Options struct {
	// DLLPath overrides DefaultDLL. It must be set before the first Open.
	DLLPath string

	// Encoding is used for every string passed to the library.
	Encoding Encoding

	Logger *slog.Logger
}
