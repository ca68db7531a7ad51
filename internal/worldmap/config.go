package worldmap

import "strconv"

// Params holds the tunable constants of the generation pipeline and the
// dynamic climate model. The defaults reproduce the stock world; none of
// them are invariants.
type Params struct {
	// Fractal accumulation.
	Octaves     int
	Persistence float64
	Lacunarity  float64

	// Per-field noise scales, in tiles per noise unit. Elevation and
	// moisture share the detail scale; temperature varies over a longer
	// wavelength.
	ContinentScale   float64
	DetailScale      float64
	TemperatureScale float64

	// Seam surgery tolerances. Violations are logged, never fatal.
	EdgeTolerance float64
	SeamTolerance float64

	// Dynamic climate.
	DayTempAmplitude        float64
	SeasonTempAmplitude     float64
	SeasonMoistureAmplitude float64
	// ReclassifyDelta is how far a tile's temperature must drift from the
	// value it was last classified with before its biome is recomputed.
	ReclassifyDelta float64
	// TickSeconds is how many game seconds one Step advances the clock.
	TickSeconds float64
	DayLength   float64
}

// Config controls the wrapped-grid world dimensions and seeds.
type Config struct {
	Width  int
	Height int

	Seed int64

	// GradientDir holds the optional day_night.png / seasonal.png assets.
	// Empty means no assets: flat neutral gradients.
	GradientDir string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 160,
		Seed:   1337,
		Params: Params{
			Octaves:     6,
			Persistence: 0.5,
			Lacunarity:  2.0,

			ContinentScale:   80,
			DetailScale:      40,
			TemperatureScale: 120,

			EdgeTolerance: 0.0001,
			SeamTolerance: 0.05,

			DayTempAmplitude:        0.08,
			SeasonTempAmplitude:     0.15,
			SeasonMoistureAmplitude: 0.10,
			ReclassifyDelta:         0.1,
			TickSeconds:             10,
			DayLength:               600,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["gradient_dir"]; ok {
		c.GradientDir = v
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.Octaves = parsed
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Persistence = parsed
		}
	}
	if v, ok := cfg["lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Lacunarity = parsed
		}
	}
	if v, ok := cfg["continent_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.ContinentScale = parsed
		}
	}
	if v, ok := cfg["detail_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DetailScale = parsed
		}
	}
	if v, ok := cfg["temperature_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TemperatureScale = parsed
		}
	}
	if v, ok := cfg["edge_tolerance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.EdgeTolerance = parsed
		}
	}
	if v, ok := cfg["seam_tolerance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.SeamTolerance = parsed
		}
	}
	if v, ok := cfg["day_temp_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DayTempAmplitude = parsed
		}
	}
	if v, ok := cfg["season_temp_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SeasonTempAmplitude = parsed
		}
	}
	if v, ok := cfg["season_moisture_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SeasonMoistureAmplitude = parsed
		}
	}
	if v, ok := cfg["reclassify_delta"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.ReclassifyDelta = parsed
		}
	}
	if v, ok := cfg["tick_seconds"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TickSeconds = parsed
		}
	}
	if v, ok := cfg["day_length"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DayLength = parsed
		}
	}
	return c
}
