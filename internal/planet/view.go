package planet

import (
	"image/color"

	"overworld/internal/biome"
	"overworld/internal/core"
	"overworld/internal/daycycle"
	"overworld/internal/noise"
	"overworld/internal/worldmap"
)

func init() {
	core.Register("planet", func(cfg map[string]string) core.Source {
		return NewView(FromMap(cfg))
	})
}

// View is a camera over the unbounded chunked plane. It materializes only the
// chunks the viewport touches and re-renders its display buffer after every
// pan or reset.
type View struct {
	cfg Config

	gen        *Generator
	camX, camY int

	display []uint8
	clock   *daycycle.Clock
}

// NewView builds a View with its camera at the origin.
func NewView(cfg Config) *View {
	v := &View{
		cfg:     cfg,
		display: make([]uint8, cfg.ViewW*cfg.ViewH),
		clock:   daycycle.NewClock(),
	}
	v.clock.DayLength = cfg.Params.DayLength
	v.gen = NewGenerator(cfg, noise.NewPerlin)
	v.render()
	return v
}

// Name returns the source identifier.
func (v *View) Name() string { return "planet" }

// Size reports the viewport dimensions.
func (v *View) Size() core.Size { return core.Size{W: v.cfg.ViewW, H: v.cfg.ViewH} }

// Cells exposes the display buffer of biome palette indices.
func (v *View) Cells() []uint8 { return v.display }

// Palette returns the biome display palette.
func (v *View) Palette() []color.RGBA { return biome.Palette() }

// Generator exposes the underlying chunk generator.
func (v *View) Generator() *Generator { return v.gen }

// Clock exposes the clock driving the day/night cycle.
func (v *View) Clock() *daycycle.Clock { return v.clock }

// LightLevel reports the current scalar light level for night shading.
func (v *View) LightLevel() float64 { return v.clock.LightLevel() }

// Camera reports the world coordinates of the viewport's top-left tile.
func (v *View) Camera() (int, int) { return v.camX, v.camY }

// TileAt returns the tile under viewport cell (x, y).
func (v *View) TileAt(x, y int) worldmap.Tile {
	return v.gen.TileAt(v.camX+x, v.camY+y)
}

// Reset rebuilds the generator from the seed and returns the camera to the
// origin. Passing 0 keeps the configured seed. Terrain is static here; time
// only drives the light level.
func (v *View) Reset(seed int64) {
	cfg := v.cfg
	if seed != 0 {
		cfg.Seed = seed
	}
	v.cfg = cfg
	v.gen = NewGenerator(cfg, noise.NewPerlin)
	v.camX, v.camY = 0, 0
	v.clock = daycycle.NewClock()
	v.clock.DayLength = cfg.Params.DayLength
	v.render()
}

// Step advances the clock by one tick.
func (v *View) Step() {
	v.clock.Advance(v.cfg.Params.TickSeconds)
}

// Pan moves the camera by (dx, dy) tiles and re-renders the viewport,
// generating any chunks it newly uncovers.
func (v *View) Pan(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	v.camX += dx
	v.camY += dy
	v.render()
}

// render fills the display buffer from the chunks under the viewport, walking
// chunk by chunk so each one is fetched once.
func (v *View) render() {
	size := v.gen.ChunkSize()
	w, h := v.cfg.ViewW, v.cfg.ViewH

	firstCX := floorDiv(v.camX, size)
	lastCX := floorDiv(v.camX+w-1, size)
	firstCY := floorDiv(v.camY, size)
	lastCY := floorDiv(v.camY+h-1, size)

	for cy := firstCY; cy <= lastCY; cy++ {
		for cx := firstCX; cx <= lastCX; cx++ {
			c := v.gen.Chunk(cx, cy)
			v.blit(c, cx*size, cy*size, size)
		}
	}
}

// blit copies the overlap between one chunk and the viewport into the display
// buffer.
func (v *View) blit(c *Chunk, originX, originY, size int) {
	w, h := v.cfg.ViewW, v.cfg.ViewH
	for ty := 0; ty < size; ty++ {
		sy := originY + ty - v.camY
		if sy < 0 || sy >= h {
			continue
		}
		for tx := 0; tx < size; tx++ {
			sx := originX + tx - v.camX
			if sx < 0 || sx >= w {
				continue
			}
			v.display[sy*w+sx] = uint8(c.Tiles[ty*size+tx].Biome)
		}
	}
}
