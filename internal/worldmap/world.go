package worldmap

import (
	"image/color"
	"path/filepath"

	"overworld/internal/biome"
	"overworld/internal/core"
	"overworld/internal/daycycle"
	"overworld/internal/noise"
)

func init() {
	core.Register("worldmap", func(cfg map[string]string) core.Source {
		return NewWithConfig(FromMap(cfg))
	})
}

// World is the fixed-size wrapped-grid generator: four fractal fields, seam
// surgery onto a cylinder, per-cell biome classification, and a dynamic
// climate that drifts tile temperature and moisture with the clock.
type World struct {
	cfg Config

	w, h int

	tiles   []Tile
	display []uint8

	continent   *core.Field
	elevation   *core.Field
	moisture    *core.Field
	temperature *core.Field

	classifier *biome.Classifier
	wrapper    Wrapper
	samplers   noise.Factory

	clock    *daycycle.Clock
	dayNight *daycycle.Gradient
	seasonal *daycycle.Gradient
}

// New returns a World of the given dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options.
func NewWithConfig(cfg Config) *World {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}
	w := &World{
		cfg:        cfg,
		w:          cfg.Width,
		h:          cfg.Height,
		tiles:      make([]Tile, total),
		display:    make([]uint8, total),
		classifier: biome.NewWorldClassifier(),
		wrapper: Wrapper{
			EdgeTolerance: cfg.Params.EdgeTolerance,
			SeamTolerance: cfg.Params.SeamTolerance,
		},
		samplers: noise.NewPerlin,
		clock:    daycycle.NewClock(),
		dayNight: daycycle.FlatGradient(),
		seasonal: daycycle.FlatGradient(),
	}
	w.clock.DayLength = cfg.Params.DayLength
	if cfg.GradientDir != "" {
		w.dayNight = daycycle.Load(filepath.Join(cfg.GradientDir, "day_night.png"))
		w.seasonal = daycycle.Load(filepath.Join(cfg.GradientDir, "seasonal.png"))
	}
	return w
}

// Name returns the source identifier.
func (w *World) Name() string { return "worldmap" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the display buffer of biome palette indices.
func (w *World) Cells() []uint8 { return w.display }

// Palette returns the biome display palette.
func (w *World) Palette() []color.RGBA { return biome.Palette() }

// Tiles exposes the tile grid in row-major order.
func (w *World) Tiles() []Tile { return w.tiles }

// TileAt returns the tile at (x, y).
func (w *World) TileAt(x, y int) Tile { return w.tiles[y*w.w+x] }

// Clock exposes the world clock driving the day/night and seasonal cycles.
func (w *World) Clock() *daycycle.Clock { return w.clock }

// LightLevel reports the current scalar light level for night shading.
func (w *World) LightLevel() float64 { return w.clock.LightLevel() }

// SetGradients replaces the day/night and seasonal gradient lookups. Hosts
// with custom assets (and tests) inject them here; nil keeps the current one.
func (w *World) SetGradients(dayNight, seasonal *daycycle.Gradient) {
	if dayNight != nil {
		w.dayNight = dayNight
	}
	if seasonal != nil {
		w.seasonal = seasonal
	}
}

// SetNoiseFactory replaces the noise source used for generation. Tests use
// this to substitute spies; callers must Reset afterwards.
func (w *World) SetNoiseFactory(f noise.Factory) {
	if f != nil {
		w.samplers = f
	}
}

// ContinentField exposes the normalized continent field.
func (w *World) ContinentField() []float64 { return w.continent.Values() }

// ElevationField exposes the normalized elevation field.
func (w *World) ElevationField() []float64 { return w.elevation.Values() }

// MoistureField returns the tiles' current moisture, assembled row-major.
func (w *World) MoistureField() []float64 {
	out := make([]float64, len(w.tiles))
	for i := range w.tiles {
		out[i] = w.tiles[i].CurrentMoisture
	}
	return out
}

// TemperatureField returns the tiles' current temperature, assembled
// row-major.
func (w *World) TemperatureField() []float64 {
	out := make([]float64, len(w.tiles))
	for i := range w.tiles {
		out[i] = w.tiles[i].CurrentTemp
	}
	return out
}

// Reset regenerates the whole world from the seed. Passing 0 keeps the
// configured seed. Generation is one eager, blocking pass.
func (w *World) Reset(seed int64) {
	if w.w == 0 || w.h == 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.clock = daycycle.NewClock()
	w.clock.DayLength = w.cfg.Params.DayLength
	w.generate(effective)
}

// generate runs the full pipeline: four decorrelated fractal fields, seam
// wrap plus normalization, then one tile per cell.
func (w *World) generate(seed int64) {
	p := w.cfg.Params
	base := noise.FractalParams{
		Octaves:     p.Octaves,
		Persistence: p.Persistence,
		Lacunarity:  p.Lacunarity,
	}

	continentParams := base
	continentParams.Scale = p.ContinentScale
	detailParams := base
	detailParams.Scale = p.DetailScale
	temperatureParams := base
	temperatureParams.Scale = p.TemperatureScale

	w.continent = fractalField(w.samplers(seed), 0, 0, w.w, w.h, continentParams)
	w.elevation = fractalField(w.samplers(seed+1), 0, 0, w.w, w.h, detailParams)
	w.moisture = fractalField(w.samplers(seed+2), 0, 0, w.w, w.h, detailParams)
	w.temperature = fractalField(w.samplers(seed+3), 0, 0, w.w, w.h, temperatureParams)

	w.wrapper.Wrap(w.continent, w.elevation, w.moisture, w.temperature)

	w.wrapper.CheckContinuity("continent", w.continent)
	w.wrapper.CheckContinuity("elevation", w.elevation)
	w.wrapper.CheckContinuity("moisture", w.moisture)
	w.wrapper.CheckContinuity("temperature", w.temperature)

	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			i := y*w.w + x
			w.tiles[i] = NewTile(w.classifier,
				w.continent.At(x, y),
				w.elevation.At(x, y),
				w.moisture.At(x, y),
				w.temperature.At(x, y))
			w.display[i] = uint8(w.tiles[i].Biome)
		}
	}
}

// Step advances the world clock by one tick and applies the climate drift.
func (w *World) Step() {
	if w.w == 0 || w.h == 0 {
		return
	}
	w.clock.Advance(w.cfg.Params.TickSeconds)
	w.stepClimate()
}
