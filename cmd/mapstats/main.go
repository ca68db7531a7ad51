// mapstats generates a world headlessly and reports its biome distribution
// and wrap-seam quality. It is the quick feedback loop for tuning noise and
// classifier parameters without launching the viewer.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"sort"

	"overworld/internal/app"
	"overworld/internal/biome"
	"overworld/internal/config"
	"overworld/internal/core"
	_ "overworld/internal/planet"
	_ "overworld/internal/worldmap"
)

type fieldProvider interface {
	ContinentField() []float64
	ElevationField() []float64
	MoistureField() []float64
	TemperatureField() []float64
}

func main() {
	source := flag.String("source", "worldmap", "world source to generate")
	seed := flag.Int64("seed", 0, "world seed (0 uses the source default)")
	steps := flag.Int("steps", 0, "simulation ticks to run before reporting")
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

	size := src.Size()
	fmt.Printf("%s %dx%d\n\n", src.Name(), size.W, size.H)

	printHistogram(src.Cells())

	if provider, ok := src.(fieldProvider); ok {
		fmt.Println("\nSeam report (worst per-row edge difference):")
		printSeam("continent", provider.ContinentField(), size)
		printSeam("elevation", provider.ElevationField(), size)
		printSeam("moisture", provider.MoistureField(), size)
		printSeam("temperature", provider.TemperatureField(), size)
	}
}

func printHistogram(cells []uint8) {
	counts := map[uint8]int{}
	for _, c := range cells {
		counts[c]++
	}
	ids := make([]uint8, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return counts[ids[i]] > counts[ids[j]] })

	total := len(cells)
	fmt.Println("Biomes:")
	for _, id := range ids {
		share := 100 * float64(counts[id]) / float64(total)
		fmt.Printf("  %-10s %6.2f%% (%d tiles)\n", biome.ID(id), share, counts[id])
	}
}

func printSeam(name string, field []float64, size core.Size) {
	if len(field) != size.W*size.H || size.W < 2 {
		return
	}
	worst := 0.0
	for y := 0; y < size.H; y++ {
		d := math.Abs(field[y*size.W] - field[y*size.W+size.W-1])
		if d > worst {
			worst = d
		}
	}
	fmt.Printf("  %-12s %.6f\n", name, worst)
}
