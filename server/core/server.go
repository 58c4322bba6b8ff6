package core

import (
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/render"
	"github.com/automoto/maskfall/scenes"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// snapshotScale is the snapshot resolution in pixels per world unit.
const snapshotScale = 16

// Server runs a world on a fixed ticker and serves its state over HTTP. Every access to
// the world goes through mu.
type Server struct {
	world    *scenes.World
	loop     *GameLoop
	snapshot render.Snapshot
	http     *http.Server

	mu       sync.RWMutex
	stopOnce sync.Once
}

// NewServer wraps world. Nothing runs until Start.
func NewServer(world *scenes.World, tickRate int) *Server {
	s := &Server{
		world: world,
		snapshot: render.Snapshot{
			ArenaWidth:    float64(world.Tuning.Arena.Width),
			ArenaHeight:   float64(world.Tuning.Arena.Height),
			PixelsPerUnit: snapshotScale,
		},
	}
	s.loop = NewGameLoop(s, tickRate)
	subscribeMetrics(world.World)
	return s
}

// Start begins ticking and serves HTTP on addr until Stop.
func (s *Server) Start(addr string) error {
	go s.loop.Run()

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("HTTP listening on %s", addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop halts the loop and the HTTP server.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		s.loop.Stop()
		if s.http == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.http.Shutdown(ctx); err != nil {
			log.Printf("Warning: HTTP shutdown: %v", err)
		}
	})
}

// Step advances the world by dt.
func (s *Server) Step(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.world.Advance(dt)
	recordTick(time.Since(start), s.world.EnemiesAlive())
}

// Retune applies new tuning between ticks.
func (s *Server) Retune(t *config.Tuning) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Retune(t)
}

// State returns a summary of the world.
func (s *Server) State() scenes.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.world.State()
}

// Router builds the debug HTTP routes. It starts nothing, so tests can mount it on
// httptest.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/state", s.handleState)
	r.Get("/snapshot.png", s.handleSnapshot)
	return r
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.State())
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	img := s.snapshot.Draw(s.world.Render)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Warning: snapshot encode: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Warning: encode response: %v", err)
	}
}
