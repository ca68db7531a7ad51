package core

import "image/color"

// Size describes the dimensions of a world view in tiles.
type Size struct {
	W int
	H int
}

// Source defines the minimal contract a world generator must implement to be
// driven by the viewer. Reset performs (or re-performs) generation, Step
// advances one simulation tick, and Cells exposes the display buffer of
// palette indices.
type Source interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Palette() []color.RGBA
}

// Factory constructs a Source using an optional configuration map.
type Factory func(cfg map[string]string) Source

var sources = map[string]Factory{}

// Register adds a source factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available source factories.
func Sources() map[string]Factory {
	return sources
}

// Pannable is implemented by sources with a movable camera.
type Pannable interface {
	Pan(dx, dy int)
}

// LightProvider exposes the current light level in [0, 1] so the viewer can
// darken the scene at night.
type LightProvider interface {
	LightLevel() float64
}
