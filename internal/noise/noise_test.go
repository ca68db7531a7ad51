package noise

import (
	"math"
	"testing"
)

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlin(1234)
	b := NewPerlin(1234)

	for i := 0; i < 64; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.61
		if a.Noise2(x, y) != b.Noise2(x, y) {
			t.Fatalf("same seed diverged at (%v, %v)", x, y)
		}
	}
}

func TestPerlinSeedsDecorrelated(t *testing.T) {
	a := NewPerlin(1)
	b := NewPerlin(2)

	same := 0
	const samples = 64
	for i := 0; i < samples; i++ {
		x := float64(i)*0.41 + 0.13
		y := float64(i)*0.29 + 0.07
		if a.Noise2(x, y) == b.Noise2(x, y) {
			same++
		}
	}
	if same == samples {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestFractalOctaveClamp(t *testing.T) {
	s := NewPerlin(7)
	p := FractalParams{Octaves: 0, Persistence: 0.5, Lacunarity: 2, Scale: 10}
	got := Fractal(s, 3, 4, p)
	p.Octaves = 1
	want := Fractal(s, 3, 4, p)
	if got != want {
		t.Fatalf("octaves<1 should behave like one octave: got %v want %v", got, want)
	}
}

func TestFractalUnitRange(t *testing.T) {
	s := NewPerlin(99)
	p := FractalParams{Octaves: 5, Persistence: 0.5, Lacunarity: 2, Scale: 17}
	for i := 0; i < 256; i++ {
		v := FractalUnit(s, float64(i)*1.3, float64(i)*0.7, p)
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("FractalUnit out of range: %v", v)
		}
	}
}

type constSampler struct{ v float64 }

func (c constSampler) Noise2(x, y float64) float64 { return c.v }

func TestFractalConstantSampler(t *testing.T) {
	p := FractalParams{Octaves: 3, Persistence: 0.5, Lacunarity: 2, Scale: 10}
	// 1 + 0.5 + 0.25 octave amplitudes.
	got := Fractal(constSampler{v: 1}, 5, 5, p)
	if math.Abs(got-1.75) > 1e-12 {
		t.Fatalf("constant fractal sum = %v, want 1.75", got)
	}
	if u := FractalUnit(constSampler{v: 1}, 5, 5, p); math.Abs(u-1) > 1e-12 {
		t.Fatalf("constant unit fractal = %v, want 1", u)
	}
}
