//go:build !(windows && amd64)

package native

import "github.com/tinyrange/dxbridge/internal/dx"

// Open always fails off Windows/amd64.
func Open(opts Options) (dx.Backend, error) {
	return nil, ErrUnsupported
}
