package soccer

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/ezBadminton/goqualifier/core"
)

func TestSimulateGroupEqualTeams(t *testing.T) {
	teams := core.TeamsFromRatings([]float64{1500, 1500, 1500, 1500})

	forecast, err := SimulateGroup(teams, 50000, rand.New(rand.NewSource(2024)))
	if err != nil {
		t.Fatal(err)
	}

	for _, team := range forecast.Teams {
		if math.Abs(team.PointsPerMatch()-1.365) > 0.02 {
			t.Fatalf("%v took %v points per match", team.Team, team.PointsPerMatch())
		}
		if math.Abs(team.AvgDraws/3-0.27) > 0.02 {
			t.Fatal("The simulated draw rate does not match the model")
		}
	}
}

func TestSimulateGroupPositions(t *testing.T) {
	teams := []core.Team{
		{Code: "ESP", Rating: 2050},
		{Code: "SCO", Rating: 1750},
		{Code: "NOR", Rating: 1800},
		{Code: "CYP", Rating: 1350},
	}

	simulator := NewGroupSimulator(core.WithWorkers(4))
	forecast, err := simulator.SimulateSeeded(context.Background(), teams, 50000, 11)
	if err != nil {
		t.Fatal(err)
	}

	spain, _ := forecast.Team("ESP")
	norway, _ := forecast.Team("NOR")
	cyprus, _ := forecast.Team("CYP")

	if spain.PositionProbabilities[0] < 0.6 {
		t.Fatal("The strongest team is not the clear favourite to win the group")
	}
	if norway.QualifyProbability(2) <= cyprus.QualifyProbability(2) {
		t.Fatal("A stronger team is less likely to qualify")
	}
	if cyprus.PositionProbabilities[3] < 0.6 {
		t.Fatal("The weakest team is not the clear favourite to finish last")
	}

	for position := range teams {
		if math.Abs(forecast.PositionMass(position)-1) > 1e-9 {
			t.Fatal("A position is not taken exactly once per run")
		}
	}

	// Expected points against the whole group match the simulation
	for i, team := range forecast.Teams {
		expected := 0.0
		for j, opponent := range teams {
			if i != j {
				expected += ExpectedPoints(team.Team.Rating, opponent.Rating)
			}
		}
		if math.Abs(team.AvgPoints-expected) > 0.05 {
			t.Fatalf("%v averaged %v points instead of %v", team.Team, team.AvgPoints, expected)
		}
	}
}

func TestSimulateGroupErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := SimulateGroup(core.TeamsFromRatings([]float64{1500, 1600}), 0, rng)
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatal("Zero iterations did not return an invalid argument error")
	}
	_, err = SimulateGroup(nil, 100, rng)
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatal("An empty group did not return an invalid argument error")
	}
}
