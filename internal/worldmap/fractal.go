package worldmap

import (
	"overworld/internal/core"
	"overworld/internal/noise"
)

// fractalField samples a multi-octave fractal over a w×h grid whose top-left
// cell sits at (originX, originY) in world tile coordinates. The raw sums are
// unbounded; WorldWrapper normalizes them afterwards.
func fractalField(s noise.Sampler, originX, originY, w, h int, p noise.FractalParams) *core.Field {
	f := core.NewField(w, h)
	for y := 0; y < h; y++ {
		wy := float64(originY + y)
		for x := 0; x < w; x++ {
			wx := float64(originX + x)
			f.Set(x, y, noise.Fractal(s, wx, wy, p))
		}
	}
	return f
}
