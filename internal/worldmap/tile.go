package worldmap

import "overworld/internal/biome"

// Tile is one cell of a generated world. The Base* values are fixed at
// generation time; Current* drift with the day/night and seasonal cycles.
// Both generators share this record.
type Tile struct {
	Continent float64
	Elevation float64

	BaseMoisture    float64
	CurrentMoisture float64
	BaseTemp        float64
	CurrentTemp     float64

	// Vegetation is reserved for future growth simulation. It is carried
	// on every tile at 1.0 but not yet consumed.
	Vegetation float64

	Biome biome.ID

	// classifiedTemp is the temperature Biome was last derived from; the
	// biome is only recomputed once CurrentTemp drifts far enough from it.
	classifiedTemp float64
}

// NewTile builds a tile from its four normalized base field values and
// classifies it.
func NewTile(c *biome.Classifier, continent, elevation, moisture, temp float64) Tile {
	return Tile{
		Continent:       continent,
		Elevation:       elevation,
		BaseMoisture:    moisture,
		CurrentMoisture: moisture,
		BaseTemp:        temp,
		CurrentTemp:     temp,
		Vegetation:      1.0,
		Biome:           c.Classify(continent, elevation, moisture, temp),
		classifiedTemp:  temp,
	}
}
