// Package biome assigns a named biome to a cell from its position in the
// (continent, elevation, moisture, temperature) parameter space. The
// classifier is table-driven so biome boundaries are tuned as data, not code.
package biome

import "math"

// ID identifies a biome. The zero value is Ocean.
type ID uint8

const (
	Ocean ID = iota
	Coast
	Grassland
	Forest
	Jungle
	Savanna
	Desert
	Swamp
	Taiga
	Tundra
	Mountain
	Snowcap

	// Count is the number of defined biomes.
	Count
)

var names = [Count]string{
	Ocean:     "ocean",
	Coast:     "coast",
	Grassland: "grassland",
	Forest:    "forest",
	Jungle:    "jungle",
	Savanna:   "savanna",
	Desert:    "desert",
	Swamp:     "swamp",
	Taiga:     "taiga",
	Tundra:    "tundra",
	Mountain:  "mountain",
	Snowcap:   "snowcap",
}

func (id ID) String() string {
	if id < Count {
		return names[id]
	}
	return "unknown"
}

// Range is a closed interval on [0, 1].
type Range struct {
	Lo, Hi float64
}

// Full spans the whole axis, accepting any value.
var Full = Range{Lo: 0, Hi: 1}

// Contains reports whether v falls inside the interval, endpoints included.
func (r Range) Contains(v float64) bool { return v >= r.Lo && v <= r.Hi }

// Mid returns the interval midpoint, used as the biome's implicit center.
func (r Range) Mid() float64 { return (r.Lo + r.Hi) / 2 }

// Def gives the acceptance box of one biome across the four axes. A cell
// belongs to the biome only if all four coordinates fall inside the ranges.
type Def struct {
	ID          ID
	Continent   Range
	Elevation   Range
	Moisture    Range
	Temperature Range
}

// DefaultLapse is how strongly elevation cools temperature before matching:
// adjusted = temp - elevation*lapse.
const DefaultLapse = 0.5

// Classifier assigns biomes by rectangular-range membership with a nearest
// range-midpoint tie break. The result depends only on the four inputs, so
// cells can be reclassified at simulation time without resampling noise.
type Classifier struct {
	Table    []Def
	Fallback ID
	Lapse    float64
	// Weights scale each axis' contribution to the tie-break distance, in
	// continent/elevation/moisture/temperature order. A zero weight removes
	// the axis from the comparison.
	Weights [4]float64
}

// worldTable covers the full 4-axis parameter space of the wrapped-grid
// generator. Continent below ~0.42 is open water regardless of climate.
var worldTable = []Def{
	{ID: Ocean, Continent: Range{0, 0.42}, Elevation: Full, Moisture: Full, Temperature: Full},
	{ID: Coast, Continent: Range{0.42, 0.50}, Elevation: Full, Moisture: Full, Temperature: Full},
	{ID: Snowcap, Continent: Range{0.50, 1}, Elevation: Range{0.85, 1}, Moisture: Full, Temperature: Range{0, 0.25}},
	{ID: Mountain, Continent: Range{0.50, 1}, Elevation: Range{0.75, 1}, Moisture: Full, Temperature: Range{0, 0.50}},
	{ID: Tundra, Continent: Range{0.50, 1}, Elevation: Full, Moisture: Full, Temperature: Range{0, 0.20}},
	{ID: Taiga, Continent: Range{0.50, 1}, Elevation: Range{0, 0.85}, Moisture: Range{0.30, 1}, Temperature: Range{0.15, 0.40}},
	{ID: Grassland, Continent: Range{0.50, 1}, Elevation: Range{0, 0.75}, Moisture: Range{0.20, 0.60}, Temperature: Range{0.30, 0.70}},
	{ID: Forest, Continent: Range{0.50, 1}, Elevation: Range{0, 0.75}, Moisture: Range{0.45, 0.80}, Temperature: Range{0.30, 0.70}},
	{ID: Jungle, Continent: Range{0.50, 1}, Elevation: Range{0, 0.60}, Moisture: Range{0.65, 1}, Temperature: Range{0.60, 1}},
	{ID: Savanna, Continent: Range{0.50, 1}, Elevation: Range{0, 0.60}, Moisture: Range{0.15, 0.50}, Temperature: Range{0.60, 0.90}},
	{ID: Desert, Continent: Range{0.50, 1}, Elevation: Range{0, 0.70}, Moisture: Range{0, 0.25}, Temperature: Range{0.55, 1}},
	{ID: Swamp, Continent: Range{0.50, 0.62}, Elevation: Range{0, 0.30}, Moisture: Range{0.70, 1}, Temperature: Range{0.40, 0.80}},
}

// planetTable is the chunked generator's smaller 3-axis table. The continent
// axis spans the full range at weight zero, so it never affects the result;
// open water comes from low elevation instead.
var planetTable = []Def{
	{ID: Ocean, Continent: Full, Elevation: Range{0, 0.30}, Moisture: Full, Temperature: Full},
	{ID: Snowcap, Continent: Full, Elevation: Range{0.85, 1}, Moisture: Full, Temperature: Range{0, 0.20}},
	{ID: Mountain, Continent: Full, Elevation: Range{0.80, 1}, Moisture: Full, Temperature: Range{0, 0.60}},
	{ID: Tundra, Continent: Full, Elevation: Range{0.30, 0.80}, Moisture: Full, Temperature: Range{0, 0.25}},
	{ID: Desert, Continent: Full, Elevation: Range{0.30, 0.75}, Moisture: Range{0, 0.30}, Temperature: Range{0.55, 1}},
	{ID: Jungle, Continent: Full, Elevation: Range{0.30, 0.70}, Moisture: Range{0.60, 1}, Temperature: Range{0.65, 1}},
	{ID: Forest, Continent: Full, Elevation: Range{0.30, 0.80}, Moisture: Range{0.45, 1}, Temperature: Range{0.25, 0.70}},
	{ID: Grassland, Continent: Full, Elevation: Range{0.30, 0.80}, Moisture: Range{0.15, 0.60}, Temperature: Range{0.25, 0.75}},
}

// NewWorldClassifier returns the full 4-axis classifier used by the
// wrapped-grid generator.
func NewWorldClassifier() *Classifier {
	return &Classifier{
		Table:    worldTable,
		Fallback: Grassland,
		Lapse:    DefaultLapse,
		Weights:  [4]float64{1, 1, 1, 1},
	}
}

// NewPlanetClassifier returns the chunked generator's 3-axis configuration of
// the same classifier (elevation, moisture, temperature only).
func NewPlanetClassifier() *Classifier {
	return &Classifier{
		Table:    planetTable,
		Fallback: Grassland,
		Lapse:    DefaultLapse,
		Weights:  [4]float64{0, 1, 1, 1},
	}
}

// Classify returns the biome for a cell. Temperature is elevation-adjusted
// before matching; among biomes whose ranges all contain the cell, the one
// with the smallest weighted squared distance to its range midpoints wins.
// When nothing matches, the fallback biome is returned so every cell ends up
// renderable.
func (c *Classifier) Classify(continent, elevation, moisture, temperature float64) ID {
	adj := clamp01(temperature - elevation*c.Lapse)

	best := c.Fallback
	bestDist := math.MaxFloat64
	found := false
	for _, d := range c.Table {
		if !d.Continent.Contains(continent) ||
			!d.Elevation.Contains(elevation) ||
			!d.Moisture.Contains(moisture) ||
			!d.Temperature.Contains(adj) {
			continue
		}
		dist := c.Weights[0]*sq(continent-d.Continent.Mid()) +
			c.Weights[1]*sq(elevation-d.Elevation.Mid()) +
			c.Weights[2]*sq(moisture-d.Moisture.Mid()) +
			c.Weights[3]*sq(adj-d.Temperature.Mid())
		if !found || dist < bestDist {
			found = true
			best = d.ID
			bestDist = dist
		}
	}
	return best
}

func sq(v float64) float64 { return v * v }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
