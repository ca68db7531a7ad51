package planet

import (
	"strconv"

	"overworld/internal/core"
)

func (v *View) Parameters() core.ParameterSnapshot {
	p := v.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Planet",
			Params: []core.Parameter{
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(v.cfg.Seed, 10)},
				{Key: "chunk_size", Label: "Chunk size", Type: core.ParamTypeInt, Value: strconv.Itoa(v.cfg.ChunkSize)},
				{Key: "cache_size", Label: "Cache size", Type: core.ParamTypeInt, Value: strconv.Itoa(v.cfg.CacheSize)},
				{Key: "cached", Label: "Cached chunks", Type: core.ParamTypeInt, Value: strconv.Itoa(v.gen.CachedChunks())},
			},
		},
		{
			Name: "Fractal",
			Params: []core.Parameter{
				{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Value: strconv.Itoa(p.Octaves)},
				{Key: "persistence", Label: "Persistence", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.Persistence, 'f', -1, 64)},
				{Key: "elev_scale", Label: "Elevation scale", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.ElevScale, 'f', -1, 64)},
				{Key: "temp_scale", Label: "Temperature scale", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.TempScale, 'f', -1, 64)},
				{Key: "humid_scale", Label: "Humidity scale", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.HumidScale, 'f', -1, 64)},
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the HUD. All of them
// affect generation, so every change rebuilds the generator.
func (v *View) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true},
		{Key: "elev_scale", Label: "Elev scale", Type: core.ParamTypeFloat, Step: 5, Min: 5, Max: 400, HasMin: true, HasMax: true},
		{Key: "temp_scale", Label: "Temp scale", Type: core.ParamTypeFloat, Step: 5, Min: 5, Max: 400, HasMin: true, HasMax: true},
		{Key: "humid_scale", Label: "Humid scale", Type: core.ParamTypeFloat, Step: 5, Min: 5, Max: 400, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter and rebuilds the generator.
func (v *View) SetIntParameter(key string, value int) bool {
	switch key {
	case "octaves":
		if value < 1 {
			return false
		}
		v.cfg.Params.Octaves = value
		v.Reset(0)
		return true
	}
	return false
}

// SetFloatParameter updates a float parameter and rebuilds the generator.
func (v *View) SetFloatParameter(key string, value float64) bool {
	if value <= 0 {
		return false
	}
	switch key {
	case "elev_scale":
		v.cfg.Params.ElevScale = value
	case "temp_scale":
		v.cfg.Params.TempScale = value
	case "humid_scale":
		v.cfg.Params.HumidScale = value
	default:
		return false
	}
	v.Reset(0)
	return true
}
