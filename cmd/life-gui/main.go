//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"toroid-life/internal/app"
	"toroid-life/internal/engine"
	"toroid-life/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	eng, err := engine.New(cfg.EngineName())
	if err != nil {
		log.Fatalf("backend unavailable: %v", err)
	}

	h, w := cfg.Height, cfg.Width
	if h <= 0 {
		h = 240
	}
	if w <= 0 {
		w = 320
	}

	drv, err := sim.New(eng, h, w, cfg.Seed, cfg.Fill)
	if err != nil {
		log.Fatalf("grid setup: %v", err)
	}

	game := app.New(drv, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("toroid-life — " + eng.Name())
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
