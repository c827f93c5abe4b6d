// Package qrcode renders share links as PNG QR codes.
package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	qr "github.com/skip2/go-qrcode"

	"wishboard/internal/domain"
)

// Defaults match the printed cards: 10px modules with a 2-module quiet zone.
const (
	DefaultModuleSize = 10
	DefaultBorder     = 2
)

type generator struct {
	moduleSize int
	border     int
	level      qr.RecoveryLevel
}

// NewGenerator returns a domain.QRGenerator with the default module size and border.
func NewGenerator() domain.QRGenerator {
	return NewGeneratorWithSize(DefaultModuleSize, DefaultBorder)
}

// NewGeneratorWithSize returns a generator drawing moduleSize pixels per module
// and border modules of white space around the symbol.
func NewGeneratorWithSize(moduleSize, border int) domain.QRGenerator {
	if moduleSize < 1 {
		moduleSize = 1
	}
	if border < 0 {
		border = 0
	}
	return &generator{moduleSize: moduleSize, border: border, level: qr.Medium}
}

// Generate encodes url as a black-on-white PNG. The output is deterministic for a given url.
func (g *generator) Generate(url string) ([]byte, error) {
	code, err := qr.New(url, g.level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	// go-qrcode's own quiet zone is fixed at 4 modules; draw ours instead.
	code.DisableBorder = true
	bitmap := code.Bitmap()

	size := (len(bitmap) + 2*g.border) * g.moduleSize
	palette := color.Palette{color.White, color.Black}
	img := image.NewPaletted(image.Rect(0, 0, size, size), palette)
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0 := (x + g.border) * g.moduleSize
			y0 := (y + g.border) * g.moduleSize
			for py := y0; py < y0+g.moduleSize; py++ {
				for px := x0; px < x0+g.moduleSize; px++ {
					img.SetColorIndex(px, py, 1)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
