package main

import (
	"flag"
	"log"
	"time"

	"life-ca/internal/core"
	"life-ca/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 40, 24
	flag.StringVar(&cfg.Pattern, "pattern", "", `pattern file to load, or "default" for the built-in 5x5 seed`)
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid width for random soups")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid height for random soups")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "initial alive probability for random soups")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for random soups")
	tps := flag.Int("tps", 8, "generations per second")
	flag.Parse()

	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.Clear()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v := newView(screen, sim)
	pace := core.NewFixedStep(*tps)
	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	v.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.handleKey(ev) {
					return
				}
				v.draw()
			case *tcell.EventResize:
				screen.Sync()
				v.draw()
			}
		case <-frame.C:
			if !v.paused && pace.ShouldStep() {
				sim.NextGeneration()
				v.draw()
			}
		}
	}
}
