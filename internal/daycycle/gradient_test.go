package daycycle

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestFlatGradient(t *testing.T) {
	g := FlatGradient()
	if !g.IsFlat() {
		t.Fatal("FlatGradient must report flat")
	}
	for _, u := range []float64{-1.5, 0, 0.25, 0.99, 3.2} {
		if got := g.Sample(u, 0.5); got != NeutralLevel {
			t.Fatalf("flat sample(%v) = %v, want %v", u, got, NeutralLevel)
		}
	}
}

func TestLoadMissingFallsBack(t *testing.T) {
	g := Load(filepath.Join(t.TempDir(), "no_such_gradient.png"))
	if !g.IsFlat() {
		t.Fatal("missing asset must fall back to the flat gradient")
	}
}

func TestLoadAndSample(t *testing.T) {
	// Left half black, right half full red.
	img := image.NewRGBA(image.Rect(0, 0, 8, 2))
	for y := 0; y < 2; y++ {
		for x := 4; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "day_night.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	g := Load(path)
	if g.IsFlat() {
		t.Fatal("valid asset must not fall back")
	}
	if got := g.Sample(0.1, 0.5); got != 0 {
		t.Fatalf("dark half sample = %v, want 0", got)
	}
	if got := g.Sample(0.9, 0.5); math.Abs(got-1) > 1e-3 {
		t.Fatalf("bright half sample = %v, want 1", got)
	}
	// u wraps: 1.1 lands back in the dark half.
	if got := g.Sample(1.1, 0.5); got != 0 {
		t.Fatalf("wrapped sample = %v, want 0", got)
	}
}
