//go:build ebiten

package app

import (
	"image/color"
	"time"

	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game drives one simulation inside an ebiten window: the grid on the left,
// the stats panel on the right, community colours on demand.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	scale   int
	seed    int64

	running bool
	step    bool
	quit    bool
}

// New constructs a Game for sim drawn at scale pixels per cell with a stats
// panel hudWidth pixels wide (0 hides it). The game starts running.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, hudWidth),
		scale:   scale,
		seed:    seed,
		running: true,
	}
}

// Reset restarts the simulation from seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.step = false
}

// keyActions maps the viewer's keys to their effect on the game.
var keyActions = []struct {
	keys []ebiten.Key
	do   func(*Game)
}{
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, func(g *Game) { g.quit = true }},
	{[]ebiten.Key{ebiten.KeySpace}, func(g *Game) { g.running = !g.running }},
	{[]ebiten.Key{ebiten.KeyEnter}, func(g *Game) { g.running = true }},
	{[]ebiten.Key{ebiten.KeyN}, func(g *Game) { g.step = true }},
	{[]ebiten.Key{ebiten.KeyR}, func(g *Game) { g.Reset(g.seed) }},
	{[]ebiten.Key{ebiten.KeyS}, func(g *Game) { g.Reset(time.Now().UnixNano()) }},
}

// Update applies key presses, advances one generation unless paused, and
// refreshes the stats panel.
func (g *Game) Update() error {
	for _, a := range keyActions {
		for _, k := range a.keys {
			if inpututil.IsKeyJustPressed(k) {
				a.do(g)
				break
			}
		}
	}
	if g.quit {
		return ebiten.Termination
	}
	g.overlay.Update()

	if g.running || g.step {
		g.sim.Step()
		g.step = false
	}
	g.hud.Update()
	return nil
}

// Draw paints alive cells white on black, then the community overlay and the
// stats panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), color.White, color.Black, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout sizes the screen to the scaled grid plus the stats panel.
func (g *Game) Layout(_, _ int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
