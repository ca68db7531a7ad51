// Package daycycle models game time: day fraction, season progress, sun
// altitude and the scalar light level the renderer darkens tiles with.
package daycycle

import "math"

const (
	// DefaultDayLength is how many game seconds one full day lasts.
	DefaultDayLength = 600.0
	// YearDays is the length of the year in days.
	YearDays = 365.0
	// DefaultAxialTilt is the planet's axial tilt in radians (~23.5 deg).
	DefaultAxialTilt = 0.41

	// Day-of-year season boundaries.
	springStart = 79
	summerStart = 172
	autumnStart = 265
	winterStart = 355
)

// Season enumerates the four seasons derived from the day of year.
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Autumn
)

func (s Season) String() string {
	switch s {
	case Winter:
		return "winter"
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	}
	return "unknown"
}

// Clock accumulates elapsed game time and derives the sun position and light
// level from it. Everything is a pure function of the accumulated total;
// there is no hidden state beyond the counter.
type Clock struct {
	DayLength float64
	AxialTilt float64

	elapsed float64
}

// NewClock returns a clock with the default day length and axial tilt,
// starting at midnight of day zero.
func NewClock() *Clock {
	return &Clock{DayLength: DefaultDayLength, AxialTilt: DefaultAxialTilt}
}

// Advance adds dt game seconds to the clock. Negative deltas are ignored.
func (c *Clock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
}

// Elapsed returns the total accumulated game seconds.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// DayFraction returns the position within the current day in [0, 1), with 0
// at midnight.
func (c *Clock) DayFraction() float64 {
	day := c.DayLength
	if day <= 0 {
		day = DefaultDayLength
	}
	f := math.Mod(c.elapsed/day, 1)
	if f < 0 {
		f += 1
	}
	return f
}

// DayOfYear returns the season-progress counter in [0, 365).
func (c *Clock) DayOfYear() float64 {
	day := c.DayLength
	if day <= 0 {
		day = DefaultDayLength
	}
	d := math.Mod(c.elapsed/day, YearDays)
	if d < 0 {
		d += YearDays
	}
	return d
}

// SunAltitude returns the sun's altitude in radians, driven by the seasonal
// cycle scaled by the axial tilt.
func (c *Clock) SunAltitude() float64 {
	return math.Sin(2*math.Pi*c.DayOfYear()/YearDays) * c.AxialTilt
}

// LightLevel returns the scalar light level in [0, 1]: max(0, sin(altitude)).
func (c *Clock) LightLevel() float64 {
	l := math.Sin(c.SunAltitude())
	if l < 0 {
		return 0
	}
	return l
}

// SeasonOf maps a day of year to its season using the fixed thresholds.
func SeasonOf(dayOfYear float64) Season {
	switch {
	case dayOfYear < springStart:
		return Winter
	case dayOfYear < summerStart:
		return Spring
	case dayOfYear < autumnStart:
		return Summer
	case dayOfYear < winterStart:
		return Autumn
	}
	return Winter
}

// Season returns the current season.
func (c *Clock) Season() Season {
	return SeasonOf(c.DayOfYear())
}
