//go:build ebiten

package app

import (
	"context"
	"image/color"

	"lifeloop/internal/render"
	"lifeloop/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the generation stream to the ebiten.Game interface. The loop
// runs on its own goroutine and publishes into slot; Game only reads it.
type Game struct {
	slot     *Slot
	controls *Controls
	ctx      context.Context

	painter *render.GridPainter
	hud     *ui.HUD
	stats   *Stats
	lastGen int
	showHUD bool

	onColor  color.Color
	offColor color.Color

	scale int
	cfg   *Config
}

// New constructs a Game that displays whatever slot holds. The game ends when
// the user quits or ctx is done.
func New(ctx context.Context, cfg *Config, slot *Slot, controls *Controls) *Game {
	return &Game{
		slot:     slot,
		controls: controls,
		ctx:      ctx,
		painter:  render.NewGridPainter(cfg.Size()),
		hud:      ui.NewHUD(),
		stats:    NewStats(),
		lastGen:  -1,
		showHUD:  true,
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		cfg:      cfg,
	}
}

// Update handles per-frame input and refreshes stats for new generations.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.controls.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.controls.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.controls.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	if grid, gen, ok := g.slot.Load(); ok && gen != g.lastGen {
		g.stats.Observe(grid, gen)
		g.lastGen = gen
	}
	return nil
}

// Draw renders the latest generation.
func (g *Game) Draw(screen *ebiten.Image) {
	grid, _, ok := g.slot.Load()
	if !ok {
		return
	}
	g.painter.Blit(screen, grid, g.onColor, g.offColor)
	if g.showHUD {
		line := g.stats.Line()
		if g.controls.Paused() {
			line += " | PAUSED"
		}
		g.hud.Draw(screen, line)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.cfg.Size()
	return s.Width * g.scale, s.Height * g.scale
}
