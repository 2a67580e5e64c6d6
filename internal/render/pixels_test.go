package render

import (
	"image/color"
	"testing"
)

func TestGrayPaletteIsIdentity(t *testing.T) {
	p := GrayPalette()
	for i, c := range p {
		if c.R != uint8(i) || c.G != uint8(i) || c.B != uint8(i) || c.A != 255 {
			t.Fatalf("entry %d = %+v", i, c)
		}
	}
}

func TestRampPaletteEndpoints(t *testing.T) {
	lo := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	hi := color.RGBA{R: 250, G: 120, B: 0, A: 255}
	p := RampPalette(lo, hi)
	if p[0] != lo || p[255] != hi {
		t.Fatalf("endpoints %+v / %+v", p[0], p[255])
	}
	for i := 1; i < 256; i++ {
		if p[i].R < p[i-1].R {
			t.Fatalf("red channel not monotonic at %d", i)
		}
	}
}

func TestPaletteByName(t *testing.T) {
	for _, name := range []string{"", "gray", "ocean", "ember"} {
		if _, err := PaletteByName(name); err != nil {
			t.Errorf("PaletteByName(%q): %v", name, err)
		}
	}
	if _, err := PaletteByName("neon"); err == nil {
		t.Error("unknown palette should fail")
	}
}

func TestFillIntensityRGBA(t *testing.T) {
	cells := []uint8{0, 128, 255}
	buf := make([]byte, 4*len(cells))
	fillIntensityRGBA(buf, cells, GrayPalette())
	want := []byte{0, 0, 0, 255, 128, 128, 128, 255, 255, 255, 255, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}
}
