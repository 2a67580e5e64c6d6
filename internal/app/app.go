//go:build ebiten

package app

import (
	"fmt"
	"time"

	"turing/internal/core"
	"turing/internal/render"
	"turing/internal/sims/grayscott"
	"turing/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

type stepCounter interface {
	Steps() uint64
}

type speciesDisplay interface {
	Display() grayscott.Species
	SetDisplay(grayscott.Species)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	status   []string
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, palette *render.Palette) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, palette),
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(sim, hudWidth),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation by one step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if d, ok := g.sim.(speciesDisplay); ok {
			d.SetDisplay(d.Display().Other())
		}
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	g.overlay.Update(g.statusLines())
	g.hud.Update()
	return nil
}

func (g *Game) statusLines() []string {
	lines := g.status[:0]
	lines = append(lines, fmt.Sprintf("frame %d", g.overlay.Frames()))
	if c, ok := g.sim.(stepCounter); ok {
		lines = append(lines, fmt.Sprintf("step  %d", c.Steps()))
	}
	lines = append(lines, fmt.Sprintf("tps   %.1f", ebiten.ActualTPS()))
	if d, ok := g.sim.(speciesDisplay); ok {
		lines = append(lines, "field "+d.Display().String())
	}
	if g.paused {
		lines = append(lines, "paused")
	}
	g.status = lines
	return lines
}

// Draw renders the current simulation state. The simulation only steps in
// Update, so Draw always sees a completed field.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
