package worldmap

import (
	"image"
	"image/color"
	"math"
	"testing"

	"overworld/internal/biome"
	"overworld/internal/daycycle"
)

func TestStepAdvancesClock(t *testing.T) {
	w := NewWithConfig(smallConfig())
	w.Reset(0)

	w.Step()
	w.Step()

	want := 2 * w.cfg.Params.TickSeconds
	if got := w.Clock().Elapsed(); got != want {
		t.Fatalf("elapsed = %v, want %v", got, want)
	}
}

func TestFlatGradientsNoClimateDrift(t *testing.T) {
	// Without gradient assets the shifts vanish, so ticking must not move
	// any tile off its base climate or touch its biome.
	w := NewWithConfig(smallConfig())
	w.Reset(0)

	before := make([]uint8, len(w.Cells()))
	copy(before, w.Cells())

	for i := 0; i < 10; i++ {
		w.Step()
	}

	for i, tile := range w.Tiles() {
		if tile.CurrentTemp != tile.BaseTemp {
			t.Fatalf("tile %d temp drifted under flat gradients", i)
		}
		if tile.CurrentMoisture != tile.BaseMoisture {
			t.Fatalf("tile %d moisture drifted under flat gradients", i)
		}
	}
	for i, c := range w.Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed under flat gradients", i)
		}
	}
}

func uniformGradient(level uint8) *daycycle.Gradient {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: level, G: level, B: level, A: 255})
		}
	}
	return daycycle.FromImage(img)
}

func TestBrightGradientsDriftAndReclassify(t *testing.T) {
	cfg := smallConfig()
	cfg.Width = 32
	cfg.Height = 16
	cfg.Params.DayTempAmplitude = 0.4
	cfg.Params.SeasonTempAmplitude = 0.4
	cfg.Params.SeasonMoistureAmplitude = 0.4
	cfg.Params.ReclassifyDelta = 0.1

	w := NewWithConfig(cfg)
	bright := uniformGradient(255)
	w.SetGradients(bright, bright)
	w.Reset(0)

	w.Step()

	// A full-white gradient samples at exactly 1.0, shifting temperature up
	// by 0.4 and moisture down by 0.2 everywhere (before clamping).
	const sample = 1.0
	tempShift := (sample - daycycle.NeutralLevel) * (cfg.Params.DayTempAmplitude + cfg.Params.SeasonTempAmplitude)
	moistShift := (sample - daycycle.NeutralLevel) * cfg.Params.SeasonMoistureAmplitude

	reclassified := 0
	fresh := biome.NewWorldClassifier()
	for i, tile := range w.Tiles() {
		wantTemp := clamp01(tile.BaseTemp + tempShift)
		if math.Abs(tile.CurrentTemp-wantTemp) > 1e-9 {
			t.Fatalf("tile %d temp = %v, want %v", i, tile.CurrentTemp, wantTemp)
		}
		wantMoist := clamp01(tile.BaseMoisture - moistShift)
		if math.Abs(tile.CurrentMoisture-wantMoist) > 1e-9 {
			t.Fatalf("tile %d moisture = %v, want %v", i, tile.CurrentMoisture, wantMoist)
		}

		if math.Abs(tile.CurrentTemp-tile.BaseTemp) > cfg.Params.ReclassifyDelta {
			want := fresh.Classify(tile.Continent, tile.Elevation, tile.CurrentMoisture, tile.CurrentTemp)
			if tile.Biome != want {
				t.Fatalf("tile %d biome %v, want reclassified %v", i, tile.Biome, want)
			}
			reclassified++
		}
		if w.Cells()[i] != uint8(tile.Biome) {
			t.Fatalf("display cell %d out of sync with tile biome", i)
		}
	}
	if reclassified == 0 {
		t.Fatal("expected at least one tile to cross the reclassification threshold")
	}
}

func TestSmallDriftSkipsReclassification(t *testing.T) {
	cfg := smallConfig()
	cfg.Width = 32
	cfg.Height = 16
	cfg.Params.DayTempAmplitude = 0.02
	cfg.Params.SeasonTempAmplitude = 0.02
	cfg.Params.SeasonMoistureAmplitude = 0
	cfg.Params.ReclassifyDelta = 0.1

	w := NewWithConfig(cfg)
	bright := uniformGradient(255)
	w.SetGradients(bright, bright)
	w.Reset(0)

	before := make([]biome.ID, len(w.Tiles()))
	for i, tile := range w.Tiles() {
		before[i] = tile.Biome
	}

	w.Step()

	for i, tile := range w.Tiles() {
		// Max drift is 0.02 total, well under the threshold.
		if tile.Biome != before[i] {
			t.Fatalf("tile %d reclassified on a sub-threshold drift", i)
		}
	}
}

func TestClimateStepDeterministic(t *testing.T) {
	run := func() []uint8 {
		cfg := smallConfig()
		cfg.Width = 24
		cfg.Height = 12
		w := NewWithConfig(cfg)
		bright := uniformGradient(200)
		w.SetGradients(bright, bright)
		w.Reset(0)
		for i := 0; i < 5; i++ {
			w.Step()
		}
		out := make([]uint8, len(w.Cells()))
		copy(out, w.Cells())
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between identical runs", i)
		}
	}
}
