package core

import (
	"time"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/systems"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/yohamta/donburi"
)

// Labels stay bounded: faction is "player" or "enemy", never an entity id.
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "maskfall_tick_duration_seconds",
		Help:    "Time spent in one simulation tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025},
	})

	ticksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maskfall_ticks_total",
		Help: "Simulation ticks run",
	})

	attacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maskfall_attacks_total",
		Help: "Attacks started",
	}, []string{"faction"})

	hitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maskfall_hits_total",
		Help: "Hits landed, by attacker faction",
	}, []string{"faction"})

	dodgesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maskfall_dodges_total",
		Help: "Dodges triggered",
	}, []string{"faction"})

	deathsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maskfall_deaths_total",
		Help: "Characters killed",
	}, []string{"faction"})

	enemiesAlive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "maskfall_enemies_alive",
		Help: "Enemies still in the arena",
	})
)

func factionLabel(e *donburi.Entry) string {
	if e != nil && e.Valid() && e.HasComponent(components.Character) &&
		components.Character.Get(e).Faction == components.FactionEnemy {
		return "enemy"
	}
	return "player"
}

// subscribeMetrics counts gameplay events published in w.
func subscribeMetrics(w donburi.World) {
	systems.AttackStartedEvent.Subscribe(w, func(_ donburi.World, e systems.AttackStarted) {
		attacksTotal.WithLabelValues(factionLabel(e.Attacker)).Inc()
	})
	systems.HitLandedEvent.Subscribe(w, func(_ donburi.World, e systems.HitLanded) {
		hitsTotal.WithLabelValues(factionLabel(e.Attacker)).Inc()
	})
	systems.DodgedEvent.Subscribe(w, func(_ donburi.World, e systems.Dodged) {
		dodgesTotal.WithLabelValues(factionLabel(e.Entry)).Inc()
	})
	systems.DiedEvent.Subscribe(w, func(_ donburi.World, e systems.Died) {
		label := "player"
		if e.Faction == components.FactionEnemy {
			label = "enemy"
		}
		deathsTotal.WithLabelValues(label).Inc()
	})
}

func recordTick(d time.Duration, enemies int) {
	tickDuration.Observe(d.Seconds())
	ticksTotal.Inc()
	enemiesAlive.Set(float64(enemies))
}
