package core

import (
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSimulationMetrics(t *testing.T) {
	metrics := NewSimulationMetrics(prometheus.NewRegistry())
	simulator := NewGroupSimulator(testModel{draw: 0.25}, WithMetrics(metrics))

	_, err := simulator.Simulate(testTeams(1500, 1600, 1700, 1800), 100, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	if testutil.ToFloat64(metrics.Simulations) != 1 {
		t.Fatal("The simulation was not counted")
	}
	if testutil.ToFloat64(metrics.Iterations) != 100 {
		t.Fatal("The iterations were not counted")
	}
	if testutil.ToFloat64(metrics.Fixtures) != 600 {
		t.Fatal("The resolved fixtures were not counted")
	}

	metrics.ObserveKnockout("path")
	metrics.ObserveKnockout("path")
	if testutil.ToFloat64(metrics.KnockoutSolves.WithLabelValues("path")) != 2 {
		t.Fatal("The knockout solves were not counted")
	}
}

func TestNilSimulationMetrics(t *testing.T) {
	var metrics *SimulationMetrics
	metrics.ObserveKnockout("bracket")
	metrics.observeSimulation(10, 6, 0)
}
