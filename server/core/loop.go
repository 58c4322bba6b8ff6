package core

import (
	"log"
	"time"
)

// maxFrameTime caps the dt handed to the world after a stall.
const maxFrameTime = 0.25

// GameLoop steps the server's world from a wall-clock ticker. Each step receives the real
// time since the previous one, so a late tick catches the accumulator up.
type GameLoop struct {
	server   *Server
	period   time.Duration
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		period:   time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.period)
	defer ticker.Stop()

	log.Printf("Game loop started at %v per tick", g.period)

	last := time.Now()
	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameTime {
				log.Printf("Warning: tick %.0fms late, clamping", (dt-g.period.Seconds())*1000)
				dt = maxFrameTime
			}

			start := time.Now()
			g.server.Step(dt)
			if took := time.Since(start); took > g.period {
				log.Printf("Warning: tick took %v, over the %v budget", took, g.period)
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
