package worldmap

import (
	"math"

	"overworld/internal/daycycle"
)

// stepClimate drifts every tile's current temperature and moisture around
// its base value, driven by the day/night gradient (scrolled by longitude
// and day fraction) and the seasonal gradient (latitude vs. season
// progress). A tile's biome is only recomputed once its temperature has
// moved more than ReclassifyDelta from the value it was last classified
// with; smaller drifts leave the biome untouched.
func (w *World) stepClimate() {
	p := w.cfg.Params

	dayFrac := w.clock.DayFraction()
	seasonFrac := w.clock.DayOfYear() / daycycle.YearDays

	fw := float64(w.w)
	fh := float64(w.h)
	for y := 0; y < w.h; y++ {
		lat := float64(y) / fh
		seasonShift := (w.seasonal.Sample(seasonFrac, lat) - daycycle.NeutralLevel)
		for x := 0; x < w.w; x++ {
			i := y*w.w + x
			tile := &w.tiles[i]

			lon := float64(x) / fw
			dayShift := w.dayNight.Sample(dayFrac+lon, lat) - daycycle.NeutralLevel

			temp := clamp01(tile.BaseTemp +
				dayShift*p.DayTempAmplitude +
				seasonShift*p.SeasonTempAmplitude)
			moist := clamp01(tile.BaseMoisture - seasonShift*p.SeasonMoistureAmplitude)

			tile.CurrentTemp = temp
			tile.CurrentMoisture = moist

			if math.Abs(temp-tile.classifiedTemp) > p.ReclassifyDelta {
				tile.Biome = w.classifier.Classify(tile.Continent, tile.Elevation, moist, temp)
				tile.classifiedTemp = temp
				w.display[i] = uint8(tile.Biome)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
