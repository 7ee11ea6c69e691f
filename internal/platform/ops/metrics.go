// Package ops exposes operational surfaces of the barista server:
// Prometheus metrics and a small HTTP endpoint for health, metrics and
// recent solves.
package ops

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "barista"

// Metrics holds the counters updated by game runners.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	sessions       prometheus.Counter
	activeSessions prometheus.Gauge
	roundsStarted  *prometheus.CounterVec
	pours          *prometheus.CounterVec
	solves         *prometheus.CounterVec
	solveMoves     *prometheus.HistogramVec
}

// NewMetrics registers the barista metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		sessions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ssh",
			Name:      "sessions_total",
			Help:      "Total SSH sessions accepted",
		}),
		activeSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ssh",
			Name:      "active_sessions",
			Help:      "SSH sessions currently connected",
		}),
		roundsStarted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rounds",
			Name:      "started_total",
			Help:      "Rounds started by difficulty",
		}, []string{"difficulty"}),
		pours: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rounds",
			Name:      "pours_total",
			Help:      "Successful pours by difficulty",
		}, []string{"difficulty"}),
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rounds",
			Name:      "solved_total",
			Help:      "Rounds solved by difficulty",
		}, []string{"difficulty"}),
		solveMoves: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rounds",
			Name:      "solve_moves",
			Help:      "Pours needed to solve a round",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}, []string{"difficulty"}),
	}
}

// SessionStarted records a new SSH session.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessions.Inc()
	m.activeSessions.Inc()
}

// SessionEnded records a closed SSH session.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

// RoundStarted records a new round.
func (m *Metrics) RoundStarted(difficulty string) {
	if m == nil {
		return
	}
	m.roundsStarted.WithLabelValues(difficulty).Inc()
}

// Poured records n successful pours.
func (m *Metrics) Poured(difficulty string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.pours.WithLabelValues(difficulty).Add(float64(n))
}

// Solved records a finished round.
func (m *Metrics) Solved(difficulty string, moves int) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(difficulty).Inc()
	m.solveMoves.WithLabelValues(difficulty).Observe(float64(moves))
}
