//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"overworld/internal/app"
	"overworld/internal/config"
	"overworld/internal/core"
	_ "overworld/internal/planet"
	_ "overworld/internal/worldmap"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params, err := config.Load(cfg.ConfigFile)
	if err != nil {
		log.Fatal(err)
	}
	params = config.Merge(params, cfg.Set)

	factory, ok := core.Sources()[cfg.Source]
	if !ok {
		log.Fatalf("unknown source %q", cfg.Source)
	}

	src := factory(params)
	src.Reset(cfg.Seed)

	game := app.New(src, cfg.Scale, cfg.Seed, cfg.SimTPS, cfg.HUDWidth)
	size := src.Size()

	ebiten.SetWindowTitle("overworld — " + src.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
