// internal/metrics/exporter.go
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-shmup/internal/event"
	"go-shmup/internal/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter считает игровые события и отдаёт их в формате Prometheus.
// Метрики регистрируются в собственном реестре, чтобы несколько миров
// (например, в тестах) не конфликтовали в глобальном.
type Exporter struct {
	registry *prometheus.Registry

	kills     *prometheus.CounterVec
	shots     prometheus.Counter
	hits      prometheus.Counter
	damage    prometheus.Counter
	waves     prometheus.Counter
	levelUps  prometheus.Counter
	entities  prometheus.Gauge
	wave      prometheus.Gauge
	tickDelta prometheus.Histogram

	server *http.Server
}

func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		kills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shmup",
			Name:      "units_killed_total",
			Help:      "Units sunk, by archetype.",
		}, []string{"archetype"}),
		shots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shmup",
			Name:      "projectiles_fired_total",
			Help:      "Projectiles launched by any unit.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shmup",
			Name:      "projectile_hits_total",
			Help:      "Projectiles that struck a unit.",
		}),
		damage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shmup",
			Name:      "damage_dealt_total",
			Help:      "Sum of projectile power applied to units.",
		}),
		waves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shmup",
			Name:      "waves_started_total",
			Help:      "Waves spawned.",
		}),
		levelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shmup",
			Name:      "player_level_ups_total",
			Help:      "Player level-ups.",
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shmup",
			Name:      "entities_live",
			Help:      "Live entities in the world.",
		}),
		wave: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shmup",
			Name:      "wave_current",
			Help:      "Number of the wave in progress.",
		}),
		tickDelta: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shmup",
			Name:      "tick_delta_seconds",
			Help:      "Unclamped frame time fed to the simulation.",
			Buckets:   []float64{0.008, 0.016, 0.017, 0.033, 0.06, 0.1, 0.25},
		}),
	}
	e.registry.MustRegister(e.kills, e.shots, e.hits, e.damage, e.waves, e.levelUps, e.entities, e.wave, e.tickDelta)
	return e
}

// Subscribe hooks the exporter up to every event it counts.
func (e *Exporter) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(e, event.UnitKilled, event.UnitDamaged, event.ProjectileFired, event.WaveStarted, event.PlayerLevelUp)
}

func (e *Exporter) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.UnitKilled:
		name := "player"
		if data, ok := ev.Data.(event.UnitKilledData); ok && !data.IsPlayer {
			name = data.Archetype
		}
		e.kills.WithLabelValues(name).Inc()
	case event.UnitDamaged:
		e.hits.Inc()
		if data, ok := ev.Data.(event.UnitDamagedData); ok {
			e.damage.Add(float64(data.Power))
		}
	case event.ProjectileFired:
		e.shots.Inc()
	case event.WaveStarted:
		e.waves.Inc()
		if data, ok := ev.Data.(event.WaveStartedData); ok {
			e.wave.Set(float64(data.Number))
		}
	case event.PlayerLevelUp:
		e.levelUps.Inc()
	}
}

// ObserveTick records per-update figures that are not events.
func (e *Exporter) ObserveTick(deltaTime float64, liveEntities int) {
	e.tickDelta.Observe(deltaTime)
	e.entities.Set(float64(liveEntities))
}

// Registry exposes the exporter's registry, mostly for tests.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Handler serves the metrics endpoint.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Serve starts the /metrics endpoint in the background.
func (e *Exporter) Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())
	e.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logging.Logger.Info("metrics endpoint up", "addr", addr)
		if err := e.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Error("metrics server stopped", "err", err)
		}
	}()
}

// Close stops the endpoint started by Serve.
func (e *Exporter) Close(ctx context.Context) error {
	if e.server == nil {
		return nil
	}
	return e.server.Shutdown(ctx)
}
