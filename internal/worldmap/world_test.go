package worldmap

import (
	"math"
	"testing"

	"overworld/internal/biome"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 8
	cfg.Height = 4
	cfg.Seed = 1234
	cfg.Params.Octaves = 1
	return cfg
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewWithConfig(smallConfig())
	b := NewWithConfig(smallConfig())
	a.Reset(0)
	b.Reset(0)

	ac, bc := a.Cells(), b.Cells()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("cell %d differs: %d vs %d", i, ac[i], bc[i])
		}
	}
	at, bt := a.Tiles(), b.Tiles()
	for i := range at {
		if at[i] != bt[i] {
			t.Fatalf("tile %d differs: %+v vs %+v", i, at[i], bt[i])
		}
	}
}

func TestSeedChangesWorld(t *testing.T) {
	cfg := smallConfig()
	cfg.Width = 32
	cfg.Height = 16
	a := NewWithConfig(cfg)
	b := NewWithConfig(cfg)
	a.Reset(1)
	b.Reset(2)

	av := a.ElevationField()
	bv := b.ElevationField()
	same := true
	for i := range av {
		if av[i] != bv[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical elevation fields")
	}
}

func TestResetZeroUsesConfiguredSeed(t *testing.T) {
	a := NewWithConfig(smallConfig())
	b := NewWithConfig(smallConfig())
	a.Reset(0)
	b.Reset(1234)

	ac, bc := a.Cells(), b.Cells()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("Reset(0) differs from Reset(seed) at cell %d", i)
		}
	}
}

func TestSmallWorldFieldsAndBiomes(t *testing.T) {
	w := NewWithConfig(smallConfig())
	w.Reset(0)

	fields := [][]float64{
		w.ContinentField(),
		w.ElevationField(),
		w.MoistureField(),
		w.TemperatureField(),
	}
	for fi, vals := range fields {
		if len(vals) != 8*4 {
			t.Fatalf("field %d has %d values, want 32", fi, len(vals))
		}
		for i, v := range vals {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("field %d value %d = %v outside [0,1]", fi, i, v)
			}
		}
	}
	for i, c := range w.Cells() {
		if c >= uint8(biome.Count) {
			t.Fatalf("cell %d has invalid biome index %d", i, c)
		}
		if c != uint8(w.Tiles()[i].Biome) {
			t.Fatalf("display cell %d disagrees with tile biome", i)
		}
	}
}

func TestSmallWorldSeamBand(t *testing.T) {
	// Width 8 puts the relocated seam band at columns 2..5, interpolated
	// between the real columns 1 and 6. Normalization is affine, so the
	// interpolation structure survives into the final field values.
	w := NewWithConfig(smallConfig())
	w.Reset(0)

	elev := w.ElevationField()
	at := func(x, y int) float64 { return elev[y*8+x] }

	for y := 0; y < 4; y++ {
		left := at(1, y)
		right := at(6, y)
		for k, x := range []int{2, 3, 4, 5} {
			tv := float64(k) / 3
			want := left*(1-tv) + right*tv
			if math.Abs(at(x, y)-want) > 1e-9 {
				t.Fatalf("row %d column %d = %v, want blend %v", y, x, at(x, y), want)
			}
		}
	}
}

func TestTileAt(t *testing.T) {
	w := NewWithConfig(smallConfig())
	w.Reset(0)

	tiles := w.Tiles()
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if w.TileAt(x, y) != tiles[y*8+x] {
				t.Fatalf("TileAt(%d,%d) disagrees with Tiles()", x, y)
			}
		}
	}
}

func TestTileBaselines(t *testing.T) {
	w := NewWithConfig(smallConfig())
	w.Reset(0)

	for i, tile := range w.Tiles() {
		if tile.CurrentTemp != tile.BaseTemp {
			t.Fatalf("tile %d current temp drifted before any step", i)
		}
		if tile.CurrentMoisture != tile.BaseMoisture {
			t.Fatalf("tile %d current moisture drifted before any step", i)
		}
		if tile.Vegetation != 1.0 {
			t.Fatalf("tile %d vegetation = %v, want 1", i, tile.Vegetation)
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":           "12",
		"h":           "6",
		"seed":        "42",
		"octaves":     "3",
		"persistence": "0.7",
		"day_length":  "120",
		"octaves_bad": "ignored",
	})
	if cfg.Width != 12 || cfg.Height != 6 || cfg.Seed != 42 {
		t.Fatalf("dimensions/seed not applied: %+v", cfg)
	}
	if cfg.Params.Octaves != 3 || cfg.Params.Persistence != 0.7 {
		t.Fatalf("fractal params not applied: %+v", cfg.Params)
	}
	if cfg.Params.DayLength != 120 {
		t.Fatalf("day length not applied: %v", cfg.Params.DayLength)
	}
}

func TestFromMapRejectsInvalid(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":       "-5",
		"octaves": "0",
		"seed":    "notanumber",
	})
	if cfg.Width != def.Width || cfg.Params.Octaves != def.Params.Octaves || cfg.Seed != def.Seed {
		t.Fatalf("invalid values should keep defaults: %+v", cfg)
	}
}
