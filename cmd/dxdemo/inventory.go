package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/tinyrange/dxbridge/internal/tdx"
)

// inventoryScene loads every configured asset and prints the registry.
func inventoryScene(ctx context.Context, a *app) error {
	if err := preloadAll(a); err != nil {
		return err
	}
	return writeInventory(a.out, a.t)
}

func preloadAll(a *app) error {
	t := a.t
	as := a.cfg.Assets

	t.InitMusicMem()
	t.InitShader()
	t.InitFontToHandle()

	n := 9
	if as.GeometryShader != "" {
		n++
	}
	l := newLoader(a, n)
	load(l, t.LoadMusic, as.Music)
	load(l, t.LoadMusic, as.AltMusic)
	load(l, t.LoadSound, as.LongSound)
	load(l, t.LoadSound, as.ShortSound)
	load(l, t.LoadGraph, as.Image)
	load(l, t.LoadGraph, as.Texture)
	load(l, t.LoadVertexShader, as.VertexShader)
	load(l, t.LoadPixelShader, as.PixelShader)
	if as.GeometryShader != "" {
		load(l, t.LoadGeometryShader, as.GeometryShader)
	}
	load(l, func(path string) (*tdx.Font, error) { return t.LoadFontData(path, 0) }, as.Font)
	return l.close()
}

// writeInventory prints one row per registered resource. Columns are padded
// by display width so CP932 and other wide paths line up.
func writeInventory(w io.Writer, t *tdx.Tdx) error {
	rows := [][]string{{"ID", "KIND", "HANDLE", "STATE", "PATH"}}
	t.Each(func(r tdx.Resource) bool {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(r.ID()), 10),
			r.Kind().String(),
			fmt.Sprintf("%d", r.Handle()),
			r.State().String(),
			r.Path(),
		})
		return true
	})

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-ansi.StringWidth(cell)+2))
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
