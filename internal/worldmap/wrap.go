package worldmap

import (
	"log"
	"math"

	"overworld/internal/core"
)

// seamHalfWidth is the fixed extent of the blended band around the relocated
// seam: the wrap boundary plus one column to each side.
const seamHalfWidth = 3

// Wrapper re-maps flat noise fields onto an east-west wrapping cylinder.
// Noise is not naturally periodic, so the grid is column-rotated by half its
// width, moving the discontinuous cut to the map center where a small band is
// blended away. The new map edges were never cut and stay noise-continuous.
type Wrapper struct {
	// EdgeTolerance bounds the post-wrap difference between a row's true
	// edge columns; SeamTolerance bounds the residual step across the
	// blended band. Exceeding either is a generation-quality warning, not
	// an error.
	EdgeTolerance float64
	SeamTolerance float64
}

// Wrap rotates each field by half the width, linearly blends the relocated
// seam band and min-max normalizes every field into [0, 1]. Fields narrower
// than the seam band are normalized only.
func (wr Wrapper) Wrap(fields ...*core.Field) {
	for _, f := range fields {
		rotateHalf(f)
		blendSeam(f)
		f.Normalize(core.NormalizeEpsilon)
	}
}

// rotateHalf relocates column x to (x + width/2) mod width on every row.
func rotateHalf(f *core.Field) {
	w, h := f.W, f.H
	if w < 2 {
		return
	}
	half := w / 2
	row := make([]float64, w)
	vals := f.Values()
	for y := 0; y < h; y++ {
		base := y * w
		copy(row, vals[base:base+w])
		for x := 0; x < w; x++ {
			vals[base+(x+half)%w] = row[x]
		}
	}
}

// blendSeam linearly interpolates the band around the relocated seam between
// the two real columns just outside it, so the cut vanishes.
func blendSeam(f *core.Field) {
	w, h := f.W, f.H
	seam := w/2 - 1
	blendStart := seam - 1
	blendEnd := seam + 2
	if blendStart-1 < 0 || blendEnd+1 >= w {
		return
	}
	width := float64(blendEnd - blendStart)

	for y := 0; y < h; y++ {
		left := f.At(blendStart-1, y)
		right := f.At(blendEnd+1, y)
		for x := blendStart; x <= blendEnd; x++ {
			t := float64(x-blendStart) / width
			f.Set(x, y, left*(1-t)+right*t)
		}
	}
}

// CheckContinuity samples every row's true edge columns and the two blend
// boundary pairs and logs a warning when a discontinuity exceeds the
// configured tolerances. It exists to catch noise or configuration
// regressions during development; a visually imperfect seam is a quality
// defect, not a runtime failure.
func (wr Wrapper) CheckContinuity(name string, f *core.Field) {
	w, h := f.W, f.H
	seam := w/2 - 1
	blendStart := seam - 1
	blendEnd := seam + 2
	if blendStart-1 < 0 || blendEnd+1 >= w {
		return
	}

	worstEdge := 0.0
	worstSeam := 0.0
	for y := 0; y < h; y++ {
		if d := math.Abs(f.At(0, y) - f.At(w-1, y)); d > worstEdge {
			worstEdge = d
		}
		if d := math.Abs(f.At(blendStart, y) - f.At(blendStart-1, y)); d > worstSeam {
			worstSeam = d
		}
		if d := math.Abs(f.At(blendEnd, y) - f.At(blendEnd+1, y)); d > worstSeam {
			worstSeam = d
		}
	}

	if worstEdge > wr.EdgeTolerance {
		log.Printf("worldmap: %s edge discontinuity %.6f exceeds tolerance %.6f", name, worstEdge, wr.EdgeTolerance)
	}
	if worstSeam > wr.SeamTolerance {
		log.Printf("worldmap: %s seam discontinuity %.6f exceeds tolerance %.6f", name, worstSeam, wr.SeamTolerance)
	}
}
