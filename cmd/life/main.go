package main

import (
	"flag"
	"fmt"
	"log"

	"toroid-life/internal/app"
	"toroid-life/internal/core"
	"toroid-life/internal/engine"
	"toroid-life/internal/sim"
	"toroid-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// Backend construction happens exactly once, before the loop starts; a
	// failure here never falls back to another backend.
	eng, err := engine.New(cfg.EngineName())
	if err != nil {
		log.Fatalf("backend unavailable: %v", err)
	}

	r, err := term.New()
	if err != nil {
		log.Fatalf("terminal init: %v", err)
	}

	h, w := cfg.Height, cfg.Width
	if h <= 0 || w <= 0 {
		ah, aw := r.AutoSize()
		if h <= 0 {
			h = ah
		}
		if w <= 0 {
			w = aw
		}
	}

	drv, err := sim.New(eng, h, w, cfg.Seed, cfg.Fill)
	if err != nil {
		r.Close()
		log.Fatalf("grid setup: %v", err)
	}
	drv.SetPacer(core.NewPacer(cfg.TPS))

	runErr := drv.Run(r)
	r.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
	fmt.Println("Done")
}
