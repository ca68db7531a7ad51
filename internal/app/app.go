//go:build ebiten

package app

import (
	"image/color"
	"time"

	"overworld/internal/core"
	"overworld/internal/render"
	"overworld/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a world source to the ebiten.Game interface: it paints the
// biome grid, overlays the scalar fields, hosts the parameter HUD and darkens
// the scene with the source's light level.
type Game struct {
	src     core.Source
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	shade *ebiten.Image

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	nightDim bool
	seed     int64
}

// New constructs a Game for the provided source. simTPS decouples simulation
// ticks from the render rate.
func New(src core.Source, scale int, seed int64, simTPS int, hudWidth int) *Game {
	size := src.Size()
	shade := ebiten.NewImage(1, 1)
	shade.Fill(color.Black)
	return &Game{
		src:      src,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(src, scale),
		hud:      ui.NewHUD(src, hudWidth),
		timer:    core.NewFixedStep(simTPS),
		shade:    shade,
		scale:    scale,
		hudWidth: hudWidth,
		nightDim: true,
		seed:     seed,
	}
}

// Reset reinitializes the source with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.src.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation at its own rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.nightDim = !g.nightDim
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if pannable, ok := g.src.(core.Pannable); ok {
		dx, dy := 0, 0
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			dx--
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			dx++
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			dy--
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			dy++
		}
		if dx != 0 || dy != 0 {
			pannable.Pan(dx, dy)
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.src.Size().W * g.scale)
	}

	if g.timer.ShouldStep() && (!g.paused || g.tickOnce) {
		g.src.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.src.Cells(), g.src.Palette(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	g.drawNight(screen)
	if g.hud != nil {
		g.hud.Draw(screen, g.src.Size().W*g.scale, g.scale)
	}
}

// drawNight dims the map area by the source's light level: full light draws
// nothing, zero light blacks the map out. L toggles it off for inspection.
func (g *Game) drawNight(screen *ebiten.Image) {
	if !g.nightDim {
		return
	}
	provider, ok := g.src.(core.LightProvider)
	if !ok {
		return
	}
	light := provider.LightLevel()
	if light < 0 {
		light = 0
	}
	if light > 1 {
		light = 1
	}
	alpha := 1 - light
	if alpha <= 0 {
		return
	}

	size := g.src.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size.W*g.scale), float64(size.H*g.scale))
	op.ColorM.Scale(1, 1, 1, alpha)
	screen.DrawImage(g.shade, op)
}

// Layout returns the logical screen size: the scaled map plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.src.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
