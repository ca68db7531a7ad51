package daycycle

import (
	"image"
	"image/png"
	"log"
	"math"
	"os"
)

// NeutralLevel is what flat fallback gradients report everywhere, chosen so
// (sample - NeutralLevel) shifts vanish when no asset is present.
const NeutralLevel = 0.5

// Gradient is a read-only lookup into a precomputed gradient image. The red
// channel carries the intensity; coordinates wrap so the day/night gradient
// can be scrolled by the day fraction.
type Gradient struct {
	img  image.Image
	w, h int
	flat bool
}

// FlatGradient returns the neutral fallback used when no asset is available.
func FlatGradient() *Gradient {
	return &Gradient{flat: true}
}

// FromImage wraps an already-decoded image as a gradient.
func FromImage(img image.Image) *Gradient {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return FlatGradient()
	}
	return &Gradient{img: img, w: b.Dx(), h: b.Dy()}
}

// Load reads a PNG gradient asset from disk. A missing or undecodable file
// degrades to the flat neutral gradient so generation keeps working without
// the optional assets; the problem is logged, not returned.
func Load(path string) *Gradient {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("daycycle: gradient %s unavailable, using flat fallback: %v", path, err)
		return FlatGradient()
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		log.Printf("daycycle: gradient %s undecodable, using flat fallback: %v", path, err)
		return FlatGradient()
	}
	return FromImage(img)
}

// IsFlat reports whether this is the neutral fallback gradient.
func (g *Gradient) IsFlat() bool { return g.flat }

// Sample returns the normalized intensity at (u, v). Both coordinates wrap
// into [0, 1). Flat gradients always return NeutralLevel.
func (g *Gradient) Sample(u, v float64) float64 {
	if g.flat {
		return NeutralLevel
	}
	u = wrap01(u)
	v = wrap01(v)

	b := g.img.Bounds()
	x := b.Min.X + int(u*float64(g.w))
	y := b.Min.Y + int(v*float64(g.h))
	if x >= b.Max.X {
		x = b.Max.X - 1
	}
	if y >= b.Max.Y {
		y = b.Max.Y - 1
	}
	r, _, _, _ := g.img.At(x, y).RGBA()
	return float64(r) / 0xffff
}

func wrap01(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v += 1
	}
	return v
}
