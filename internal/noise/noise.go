// Package noise wraps the coherent-noise primitive the generators consume.
// The generators never implement noise themselves; they only require a
// deterministic, band-limited 2D sampler.
package noise

import "github.com/aquilax/go-perlin"

// Perlin shape parameters. alpha/beta control the harmonic falloff inside the
// library; n is its internal iteration count. The values match common terrain
// usage of the library.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// Sampler produces deterministic 2D coherent noise, roughly in [-1, 1].
// The same sampler must return the same value for the same coordinates.
type Sampler interface {
	Noise2(x, y float64) float64
}

// Factory builds a Sampler for a seed. Generators derive one sampler per
// scalar field (seed, seed+1, ...) so the fields stay decorrelated from one
// another while remaining deterministic for a fixed world seed.
type Factory func(seed int64) Sampler

// NewPerlin returns a Sampler backed by aquilax/go-perlin for the given seed.
func NewPerlin(seed int64) Sampler {
	return perlinSampler{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}
}

type perlinSampler struct {
	p *perlin.Perlin
}

func (s perlinSampler) Noise2(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// FractalParams controls a multi-octave fractal accumulation.
type FractalParams struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Scale       float64
}

// Fractal sums octaves of s at the world coordinate (x, y). Octave o
// contributes persistence^o * noise2(x*lacunarity^o/scale, y*lacunarity^o/scale),
// so persistence < 1 shrinks and lacunarity > 1 sharpens successive octaves.
// Octaves below 1 are treated as 1.
func Fractal(s Sampler, x, y float64, p FractalParams) float64 {
	octaves := p.Octaves
	if octaves < 1 {
		octaves = 1
	}
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}

	amp := 1.0
	freq := 1.0 / scale
	var sum float64
	for o := 0; o < octaves; o++ {
		sum += amp * s.Noise2(x*freq, y*freq)
		amp *= p.Persistence
		freq *= p.Lacunarity
	}
	return sum
}

// FractalUnit is Fractal rescaled into [0, 1] by the total octave amplitude.
// Chunked generation uses it for per-cell normalization, where no whole-grid
// min/max pass is possible.
func FractalUnit(s Sampler, x, y float64, p FractalParams) float64 {
	octaves := p.Octaves
	if octaves < 1 {
		octaves = 1
	}
	maxAmp := 0.0
	amp := 1.0
	for o := 0; o < octaves; o++ {
		maxAmp += amp
		amp *= p.Persistence
	}
	if maxAmp <= 0 {
		maxAmp = 1
	}
	v := Fractal(s, x, y, p)/maxAmp + 1
	v /= 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
