package core

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SimulationMetrics exposes counters about the work done by
// the engine. A nil *SimulationMetrics records nothing.
type SimulationMetrics struct {
	Simulations prometheus.Counter
	Iterations  prometheus.Counter
	Fixtures    prometheus.Counter
	Duration    prometheus.Histogram

	// Solved knockout structures by kind ("bracket", "path")
	KnockoutSolves *prometheus.CounterVec
}

// Creates the metrics and registers them with reg
func NewSimulationMetrics(reg prometheus.Registerer) *SimulationMetrics {
	factory := promauto.With(reg)
	return &SimulationMetrics{
		Simulations: factory.NewCounter(prometheus.CounterOpts{
			Name: "goqualifier_group_simulations_total",
			Help: "Total number of group simulations run",
		}),
		Iterations: factory.NewCounter(prometheus.CounterOpts{
			Name: "goqualifier_group_iterations_total",
			Help: "Total number of simulated group playouts",
		}),
		Fixtures: factory.NewCounter(prometheus.CounterOpts{
			Name: "goqualifier_fixtures_resolved_total",
			Help: "Total number of randomly resolved fixtures",
		}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goqualifier_group_simulation_duration_seconds",
			Help:    "Duration of complete group simulations",
			Buckets: prometheus.DefBuckets,
		}),
		KnockoutSolves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "goqualifier_knockout_solves_total",
			Help: "Total number of solved knockout structures",
		}, []string{"kind"}),
	}
}

func (m *SimulationMetrics) observeSimulation(iterations, fixtures int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Simulations.Inc()
	m.Iterations.Add(float64(iterations))
	m.Fixtures.Add(float64(iterations * fixtures))
	m.Duration.Observe(elapsed.Seconds())
}

// Counts a solved knockout structure of the given kind
func (m *SimulationMetrics) ObserveKnockout(kind string) {
	if m == nil {
		return
	}
	m.KnockoutSolves.WithLabelValues(kind).Inc()
}
