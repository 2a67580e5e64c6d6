package render

import (
	"fmt"
	"image/color"
)

// Palette maps every 8-bit intensity to a color.
type Palette [256]color.RGBA

// GrayPalette renders intensity i as the gray level i.
func GrayPalette() *Palette {
	var p Palette
	for i := range p {
		v := uint8(i)
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return &p
}

// RampPalette interpolates linearly from lo at intensity 0 to hi at 255.
func RampPalette(lo, hi color.RGBA) *Palette {
	var p Palette
	for i := range p {
		t := float64(i) / 255
		p[i] = color.RGBA{
			R: lerp8(lo.R, hi.R, t),
			G: lerp8(lo.G, hi.G, t),
			B: lerp8(lo.B, hi.B, t),
			A: lerp8(lo.A, hi.A, t),
		}
	}
	return &p
}

// PaletteByName resolves the -palette flag values.
func PaletteByName(name string) (*Palette, error) {
	switch name {
	case "", "gray":
		return GrayPalette(), nil
	case "ocean":
		return RampPalette(color.RGBA{R: 4, G: 12, B: 40, A: 255}, color.RGBA{R: 170, G: 240, B: 255, A: 255}), nil
	case "ember":
		return RampPalette(color.RGBA{R: 10, G: 0, B: 0, A: 255}, color.RGBA{R: 255, G: 200, B: 80, A: 255}), nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// fillIntensityRGBA converts gray levels into RGBA pixels in buf.
func fillIntensityRGBA(buf []byte, cells []uint8, palette *Palette) {
	for i, c := range cells {
		col := palette[c]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
