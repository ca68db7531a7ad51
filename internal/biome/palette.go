package biome

import "image/color"

var colors = [Count]color.RGBA{
	Ocean:     {R: 24, G: 54, B: 120, A: 255},
	Coast:     {R: 214, G: 196, B: 138, A: 255},
	Grassland: {R: 112, G: 168, B: 70, A: 255},
	Forest:    {R: 52, G: 118, B: 58, A: 255},
	Jungle:    {R: 28, G: 94, B: 44, A: 255},
	Savanna:   {R: 178, G: 166, B: 84, A: 255},
	Desert:    {R: 226, G: 200, B: 124, A: 255},
	Swamp:     {R: 70, G: 92, B: 60, A: 255},
	Taiga:     {R: 88, G: 120, B: 96, A: 255},
	Tundra:    {R: 150, G: 160, B: 150, A: 255},
	Mountain:  {R: 130, G: 126, B: 122, A: 255},
	Snowcap:   {R: 238, G: 240, B: 244, A: 255},
}

// Color returns the renderable color for a biome. Unknown ids render magenta
// so table mistakes are visible instead of silent.
func Color(id ID) color.RGBA {
	if id < Count {
		return colors[id]
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}

// Palette returns the display palette indexed by ID, suitable for the
// palette-based grid painter.
func Palette() []color.RGBA {
	p := make([]color.RGBA, Count)
	for i := range p {
		p[i] = colors[i]
	}
	return p
}
