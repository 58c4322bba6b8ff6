package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/render"
	"github.com/automoto/maskfall/scenes"
	"github.com/automoto/maskfall/server/core"
	"github.com/automoto/maskfall/systems"
)

func main() {
	configPath := flag.String("config", "", "Tuning YAML file (empty = built-in defaults)")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = tuning value)")
	addr := flag.String("addr", "127.0.0.1:6060", "Debug HTTP address")
	steps := flag.Int("steps", 0, "Run this many ticks headless, print the state and exit")
	snapshot := flag.String("snapshot", "", "With -steps, write a PNG of the final frame here")
	verbose := flag.Bool("v", false, "Log audio events")
	flag.Parse()

	tuning := config.Default()
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning = t
	}
	if *tickRate <= 0 {
		*tickRate = tuning.Sim.TickRate
	}

	world, err := scenes.NewWorld(tuning, scenes.Options{
		Audio: &systems.LogAudio{Verbose: *verbose},
	})
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}

	if *steps > 0 {
		runHeadless(world, *steps, *tickRate, *snapshot)
		return
	}

	server := core.NewServer(world, *tickRate)

	if *watch && *configPath != "" {
		watcher, err := config.Watch(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer watcher.Close()
		go func() {
			for t := range watcher.Updates {
				if err := server.Retune(t); err != nil {
					log.Printf("Warning: tuning rejected: %v", err)
				}
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
	}()

	log.Printf("Starting maskfall simulation on %s (tick rate: %d/s, difficulty: %s)",
		*addr, *tickRate, tuning.Brain.Difficulty)
	if err := server.Start(*addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func runHeadless(world *scenes.World, steps, tickRate int, snapshotPath string) {
	dt := 1 / float64(tickRate)
	for i := 0; i < steps; i++ {
		world.Advance(dt)
		if world.PlayerDead() {
			log.Printf("Player died after %d ticks", i+1)
			break
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(world.State()); err != nil {
		log.Fatalf("Failed to write state: %v", err)
	}

	if snapshotPath == "" {
		return
	}
	f, err := os.Create(snapshotPath)
	if err != nil {
		log.Fatalf("Failed to create snapshot: %v", err)
	}
	defer f.Close()

	snap := render.Snapshot{
		ArenaWidth:    float64(world.Tuning.Arena.Width),
		ArenaHeight:   float64(world.Tuning.Arena.Height),
		PixelsPerUnit: 16,
	}
	if err := snap.EncodePNG(f, world.Render); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}
}
