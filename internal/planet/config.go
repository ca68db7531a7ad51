package planet

import "strconv"

// Params holds the chunked generator's noise and simulation constants. Each
// scalar field gets its own scale; there is no whole-grid normalization pass,
// so the fractal output is rescaled per cell instead.
type Params struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64

	ElevScale  float64
	TempScale  float64
	HumidScale float64

	// TickSeconds is how many game seconds one Step advances the clock.
	TickSeconds float64
	DayLength   float64
}

// Config controls the chunked planet generator and its viewport.
type Config struct {
	Seed int64

	// ChunkSize is the side length of a square chunk in tiles.
	ChunkSize int
	// CacheSize bounds how many generated chunks stay resident. Evicted
	// chunks regenerate identically on demand.
	CacheSize int

	// Viewport dimensions in tiles.
	ViewW int
	ViewH int

	Params Params
}

// DefaultConfig returns the standard chunked-planet configuration.
func DefaultConfig() Config {
	return Config{
		Seed:      1337,
		ChunkSize: 32,
		CacheSize: 256,
		ViewW:     256,
		ViewH:     160,
		Params: Params{
			Octaves:     6,
			Persistence: 0.5,
			Lacunarity:  2.0,

			ElevScale:  60,
			TempScale:  120,
			HumidScale: 80,

			TickSeconds: 10,
			DayLength:   600,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["chunk_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg["cache_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CacheSize = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ViewW = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ViewH = parsed
		}
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
	if v, ok := cfg["elev_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.ElevScale = parsed
		}
	}
	if v, ok := cfg["temp_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TempScale = parsed
		}
	}
	if v, ok := cfg["humid_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.HumidScale = parsed
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
