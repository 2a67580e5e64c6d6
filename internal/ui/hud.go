//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"turing/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only parameter panel in the top-right corner of the view.
type HUD struct {
	sim      core.Sim
	width    int
	visible  bool
	title    string
	snapshot core.ParameterSnapshot
	panel    *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update toggles the panel on H and refreshes the parameter snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the panel anchored to the right edge of a view viewWidth wide.
func (h *HUD) Draw(screen *ebiten.Image, viewWidth int) {
	if h == nil || !h.visible || h.width <= 0 {
		return
	}
	rows := 1
	for _, group := range h.snapshot.Groups {
		rows += 1 + len(group.Params)
	}
	height := 2*panelPadding + rows*rowHeight
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	y := panelPadding + textBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, group := range h.snapshot.Groups {
		y += rowHeight
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 150, G: 180, B: 220, A: 255})
		for _, param := range group.Params {
			y += rowHeight
			text.Draw(h.panel, param.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			valueX := h.width - panelPadding - text.BoundString(face, param.Value).Dx()
			text.Draw(h.panel, param.Value, face, valueX, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(viewWidth-h.width-panelMargin), panelMargin)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s parameters", strings.ToUpper(name[:1]), name[1:])
}

const (
	panelPadding = 10
	panelMargin  = 6
	rowHeight    = 16
)
