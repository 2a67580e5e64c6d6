//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the frame counter and status lines over the simulation view.
type Overlay struct {
	visible bool
	frames  uint64
	lines   []string
	backing *ebiten.Image
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles visibility on F and records the status lines for Draw.
func (o *Overlay) Update(lines []string) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.visible = !o.visible
	}
	o.lines = append(o.lines[:0], lines...)
}

// Frames reports how many frames the overlay has drawn.
func (o *Overlay) Frames() uint64 { return o.frames }

// Draw renders the status lines in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.frames++
	if !o.visible || len(o.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range o.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * overlayPadding
	height := len(o.lines)*lineHeight + 2*overlayPadding - lineGap
	if o.backing == nil || o.backing.Bounds().Dx() != width || o.backing.Bounds().Dy() != height {
		o.backing = ebiten.NewImage(width, height)
	}
	o.backing.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 160})
	for i, line := range o.lines {
		y := overlayPadding + i*lineHeight + textBaseline
		text.Draw(o.backing, line, face, overlayPadding, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(overlayMargin, overlayMargin)
	screen.DrawImage(o.backing, op)
}

const (
	overlayMargin  = 6
	overlayPadding = 6
	lineHeight     = 16
	lineGap        = 3
	textBaseline   = 11
)
