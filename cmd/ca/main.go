//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-ca/internal/app"
	"life-ca/internal/core"
	_ "life-ca/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.NewSim(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUD)
	size := sim.Size()

	ebiten.SetWindowTitle("life-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUD, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
