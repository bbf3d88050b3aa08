// Package assets embeds stand-in images for running the demo without the
// DxLib sample resources.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:demo
var demo embed.FS

// Demo holds _img_320x240_0000.png and _texture_128x128_0000.bmp at its
// root. Names match the default config.
func Demo() fs.FS {
	sub, err := fs.Sub(demo, "demo")
	if err != nil {
		panic(err)
	}
	return sub
}
