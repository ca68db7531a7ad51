package worldmap

import (
	"strconv"

	"overworld/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Fractal",
			Params: []core.Parameter{
				intParam("octaves", "Octaves", params.Octaves),
				floatParam("persistence", "Persistence", params.Persistence),
				floatParam("lacunarity", "Lacunarity", params.Lacunarity),
				floatParam("continent_scale", "Continent scale", params.ContinentScale),
				floatParam("detail_scale", "Detail scale", params.DetailScale),
				floatParam("temperature_scale", "Temperature scale", params.TemperatureScale),
			},
		},
		{
			Name: "Climate",
			Params: []core.Parameter{
				floatParam("day_temp_amplitude", "Day temp amplitude", params.DayTempAmplitude),
				floatParam("season_temp_amplitude", "Season temp amplitude", params.SeasonTempAmplitude),
				floatParam("season_moisture_amplitude", "Season moisture amplitude", params.SeasonMoistureAmplitude),
				floatParam("reclassify_delta", "Reclassify delta", params.ReclassifyDelta),
				floatParam("tick_seconds", "Tick seconds", params.TickSeconds),
				floatParam("day_length", "Day length", params.DayLength),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the HUD. Generation
// parameters trigger a full regenerate when changed; climate parameters take
// effect on the next tick.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true},
		{Key: "persistence", Label: "Persistence", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 1, HasMin: true, HasMax: true},
		{Key: "lacunarity", Label: "Lacunarity", Type: core.ParamTypeFloat, Step: 0.25, Min: 1, Max: 4, HasMin: true, HasMax: true},
		{Key: "day_temp_amplitude", Label: "Day temp amp", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
		{Key: "season_temp_amplitude", Label: "Season temp amp", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter, regenerating when it affects
// generation.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "octaves":
		if value < 1 {
			return false
		}
		w.cfg.Params.Octaves = value
		w.Reset(0)
		return true
	}
	return false
}

// SetFloatParameter updates a float parameter, regenerating when it affects
// generation.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "persistence":
		if value <= 0 {
			return false
		}
		w.cfg.Params.Persistence = value
		w.Reset(0)
		return true
	case "lacunarity":
		if value <= 0 {
			return false
		}
		w.cfg.Params.Lacunarity = value
		w.Reset(0)
		return true
	case "day_temp_amplitude":
		if value < 0 {
			return false
		}
		w.cfg.Params.DayTempAmplitude = value
		return true
	case "season_temp_amplitude":
		if value < 0 {
			return false
		}
		w.cfg.Params.SeasonTempAmplitude = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
