// mapimg generates a world headlessly and exports it as a PNG, optionally
// darkened by the current light level. Useful for comparing seeds and for
// inspecting the seam by tiling the output horizontally.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"overworld/internal/app"
	"overworld/internal/config"
	"overworld/internal/core"
	_ "overworld/internal/planet"
	_ "overworld/internal/worldmap"
)

func main() {
	source := flag.String("source", "worldmap", "world source to generate")
	seed := flag.Int64("seed", 0, "world seed (0 uses the source default)")
	steps := flag.Int("steps", 0, "simulation ticks to run before exporting")
	out := flag.String("out", "world.png", "output PNG path")
	night := flag.Bool("night", false, "darken the image by the current light level")
	configFile := flag.String("config", "", "optional configuration file")
	var overrides app.KVList
	flag.Var(&overrides, "set", "source parameter override in key=value form (repeatable)")
	flag.Parse()

	params, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	params = config.Merge(params, overrides)

	factory, ok := core.Sources()[*source]
	if !ok {
		log.Fatalf("unknown source %q", *source)
	}
	src := factory(params)
	src.Reset(*seed)
	for i := 0; i < *steps; i++ {
		src.Step()
	}

	img := renderImage(src, *night)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}

func renderImage(src core.Source, night bool) *image.RGBA {
	size := src.Size()
	palette := src.Palette()
	cells := src.Cells()

	// Moonlight floor so a midnight export is dim, not black.
	dim := 1.0
	if night {
		if provider, ok := src.(core.LightProvider); ok {
			dim = 0.2 + 0.8*provider.LightLevel()
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	last := len(palette) - 1
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := int(cells[y*size.W+x])
			if idx > last {
				idx = last
			}
			col := palette[idx]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(col.R) * dim),
				G: uint8(float64(col.G) * dim),
				B: uint8(float64(col.B) * dim),
				A: 255,
			})
		}
	}
	return img
}
