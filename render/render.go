// Package render sketches two collaborator rasterizers over a *qrcore.QrMatrix:
// a terminal half-block writer and a minimal PNG encoder. Neither belongs to
// the encoding pipeline itself, which stops at the module matrix; both exist
// here so the CLI in cmd/qrcore has something to show for a generated
// symbol.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/lumenqr/qrcore"
)

// Terminal renders m as a string using half-block characters, two module
// rows per printed line, so a symbol is roughly square in a monospace
// terminal. Dark modules use the default palette (black on white); there
// is no option to recolor.
func Terminal(m *qrcore.QrMatrix) string {
	var b strings.Builder
	for row := 0; row < m.Size; row += 2 {
		for col := 0; col < m.Size; col++ {
			top := m.At(row, col)
			bottom := m.At(row+1, col)
			b.WriteRune(halfBlock(top, bottom))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// halfBlock picks the Unicode block character whose top/bottom half-cells
// match (top, bottom). Size is always odd, so on the last printed line
// bottom reads one row past the grid; At reports that row as light.
func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top && !bottom:
		return '▀'
	case !top && bottom:
		return '▄'
	default:
		return ' '
	}
}

// PNG writes m to w as a 1-bit-per-module PNG, scale pixels per module.
// scale below 1 is clamped to 1.
func PNG(w io.Writer, m *qrcore.QrMatrix, scale int) error {
	if scale < 1 {
		scale = 1
	}

	dim := m.Size * scale
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	for row := 0; row < m.Size; row++ {
		for col := 0; col < m.Size; col++ {
			if !m.At(row, col) {
				continue
			}
			startX := col * scale
			startY := row * scale
			for y := 0; y < scale; y++ {
				for x := 0; x < scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}

	return png.Encode(w, img)
}

// Summary returns a short, human-readable description of m: version, ECC
// level and chosen mask. Used by the CLI's --verbose flag.
func Summary(m *qrcore.QrMatrix) string {
	return fmt.Sprintf("version=%d ecc=%v mask=%d size=%d",
		m.Version.Value(), m.EccLevel, m.Mask, m.Size)
}
