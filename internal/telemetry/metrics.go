// Package telemetry exposes Prometheus metrics for Bomber sessions and an
// HTTP router serving them next to a JSON view of the score tables.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bomber"

// Metrics holds the game counters. Each Metrics owns its registry so several
// can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	gamesStarted   *prometheus.CounterVec
	gamesFinished  *prometheus.CounterVec
	mapsCleared    prometheus.Counter
	enemiesKilled  prometheus.Counter
	bombsPlaced    prometheus.Counter
	activeSessions prometheus.Gauge
}

// NewMetrics creates and registers the metric set.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		gamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games started, by mode.",
		}, []string{"mode"}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Games that reached game over, by mode.",
		}, []string{"mode"}),
		mapsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "maps_cleared_total",
			Help:      "Maps finished by reaching the door.",
		}),
		enemiesKilled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_killed_total",
			Help:      "Enemies destroyed by blasts.",
		}),
		bombsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bombs_placed_total",
			Help:      "Bombs placed by players.",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ssh_sessions_active",
			Help:      "SSH sessions currently connected.",
		}),
	}

	m.registry.MustRegister(
		m.gamesStarted,
		m.gamesFinished,
		m.mapsCleared,
		m.enemiesKilled,
		m.bombsPlaced,
		m.activeSessions,
	)
	return m
}

// Registry returns the registry the metrics are registered in.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GameStarted counts a new game in mode.
func (m *Metrics) GameStarted(mode string) { m.gamesStarted.WithLabelValues(mode).Inc() }

// GameFinished counts a game over in mode.
func (m *Metrics) GameFinished(mode string) { m.gamesFinished.WithLabelValues(mode).Inc() }

// MapsCleared adds n cleared maps.
func (m *Metrics) MapsCleared(n int) { m.mapsCleared.Add(float64(n)) }

// EnemiesKilled adds n killed enemies.
func (m *Metrics) EnemiesKilled(n int) { m.enemiesKilled.Add(float64(n)) }

// BombsPlaced adds n placed bombs.
func (m *Metrics) BombsPlaced(n int) { m.bombsPlaced.Add(float64(n)) }

// SessionOpened marks an SSH session as connected.
func (m *Metrics) SessionOpened() { m.activeSessions.Inc() }

// SessionClosed marks an SSH session as gone.
func (m *Metrics) SessionClosed() { m.activeSessions.Dec() }
