package daycycle

import (
	"math"
	"testing"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock()
	c.Advance(100)
	c.Advance(50)
	if c.Elapsed() != 150 {
		t.Fatalf("elapsed = %v, want 150", c.Elapsed())
	}
	c.Advance(-10)
	if c.Elapsed() != 150 {
		t.Fatal("negative delta must be ignored")
	}
}

func TestDayFractionWraps(t *testing.T) {
	c := NewClock()
	c.DayLength = 100
	c.Advance(250)
	if got := c.DayFraction(); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("day fraction = %v, want 0.5", got)
	}
	if got := c.DayOfYear(); math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("day of year = %v, want 2.5", got)
	}
}

func TestSeasonThresholds(t *testing.T) {
	cases := []struct {
		day  float64
		want Season
	}{
		{0, Winter},
		{78.9, Winter},
		{79, Spring},
		{171.9, Spring},
		{172, Summer},
		{264.9, Summer},
		{265, Autumn},
		{354.9, Autumn},
		{355, Winter},
		{364.9, Winter},
	}
	for _, tc := range cases {
		if got := SeasonOf(tc.day); got != tc.want {
			t.Fatalf("SeasonOf(%v) = %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestLightLevel(t *testing.T) {
	c := NewClock()
	c.DayLength = 1

	// Day 0: sun altitude 0, light 0.
	if got := c.LightLevel(); got != 0 {
		t.Fatalf("light at day 0 = %v, want 0", got)
	}

	// A quarter year in, the seasonal term peaks at the axial tilt.
	c.Advance(YearDays / 4)
	want := math.Sin(c.AxialTilt)
	if got := c.LightLevel(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("peak light = %v, want %v", got, want)
	}

	// Three quarters in, the altitude is negative and light clamps to 0.
	c.Advance(YearDays / 2)
	if got := c.LightLevel(); got != 0 {
		t.Fatalf("light at negative altitude = %v, want 0", got)
	}
}

func TestLightLevelPure(t *testing.T) {
	a := NewClock()
	b := NewClock()
	a.Advance(12345)
	b.Advance(12345)
	if a.LightLevel() != b.LightLevel() || a.Season() != b.Season() {
		t.Fatal("clocks with equal elapsed time must agree")
	}
}
