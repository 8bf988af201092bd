package core

import (
	"errors"
	"math"
	"testing"
)

func TestSeededKnockoutPairings(t *testing.T) {
	seeded := testTeams(2000, 1900, 1800, 1700)
	k, err := NewSeededKnockout(seeded, Branching)
	if err != nil {
		t.Fatal(err)
	}

	result, err := k.Solve()
	if err != nil {
		t.Fatal(err)
	}

	// Seed 1 plays seed 4 in the semi-final
	semi := WinProbability(2000, 1700)
	if math.Abs(result.Entrants[0].FinalProbability-semi) > 1e-12 {
		t.Fatal("The top seed did not meet the bottom seed in the semi-final")
	}
	semi = WinProbability(1900, 1800)
	if math.Abs(result.Entrants[1].FinalProbability-semi) > 1e-12 {
		t.Fatal("The second seed did not meet the third seed in the semi-final")
	}

	finalists := 0.0
	for _, e := range result.Entrants {
		finalists += e.FinalProbability
	}
	if math.Abs(finalists-2) > 1e-9 {
		t.Fatal("The final does not have exactly two participants")
	}
}

func TestSeededKnockoutSums(t *testing.T) {
	cases := [][]float64{
		{1500, 1500},
		{1500, 1500, 1500, 1500, 1500, 1500, 1500, 1500},
		{2100, 1300, 1750, 1600, 1420, 1980, 1555, 1700},
		{0, 4000, 200, 3900},
	}

	for _, ratings := range cases {
		for _, fidelity := range []Fidelity{Branching, Blended} {
			k, err := NewSeededKnockout(SeedByRating(testTeams(ratings...)), fidelity)
			if err != nil {
				t.Fatal(err)
			}
			result, err := k.Solve()
			if err != nil {
				t.Fatal(err)
			}

			if math.Abs(result.TotalProbability()-1) > 1e-9 {
				t.Fatalf("The %v knockout of %v does not sum to 1", fidelity, ratings)
			}
			for _, e := range result.Entrants {
				if e.WinProbability < 0 || e.WinProbability > 1 {
					t.Fatal("A win probability left the unit interval")
				}
			}
		}
	}
}

func TestEqualRatingsKnockout(t *testing.T) {
	k, err := NewSeededKnockout(testTeams(1500, 1500, 1500, 1500, 1500, 1500, 1500, 1500), Branching)
	if err != nil {
		t.Fatal(err)
	}
	result, err := k.Solve()
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range result.Entrants {
		if math.Abs(e.WinProbability-0.125) > 1e-12 {
			t.Fatal("Equal entrants do not have equal chances")
		}
	}
	if math.Abs(result.ExpectedWinnerRating-1500) > 1e-9 {
		t.Fatal("The expected winner rating of equal entrants is not their rating")
	}
}

func TestSeededKnockoutErrors(t *testing.T) {
	_, err := NewSeededKnockout(testTeams(1500), Branching)
	if err != ErrTooFewEntries {
		t.Fatal("A single entrant knockout did not return an error")
	}
	_, err = NewSeededKnockout(testTeams(1500, 1600, 1700), Branching)
	if !errors.Is(err, ErrNotPowerOfTwo) {
		t.Fatal("A knockout of three did not return an error")
	}
}

func TestMalformedKnockout(t *testing.T) {
	// No matches at all
	k := NewKnockout(testTeams(1500, 1600))
	if _, err := k.Solve(); !errors.Is(err, ErrMalformedKnockout) {
		t.Fatal("A knockout without matches was solved")
	}

	// Two unconnected matches
	k = NewKnockout(testTeams(1500, 1600, 1700, 1800))
	k.AddMatch(k.Leaf(0), k.Leaf(1), Branching)
	k.AddMatch(k.Leaf(2), k.Leaf(3), Branching)
	if _, err := k.Solve(); !errors.Is(err, ErrMalformedKnockout) {
		t.Fatal("A knockout without a single final was solved")
	}
}

func TestFidelity(t *testing.T) {
	teams := testTeams(1800, 1700, 1600, 1500)

	solve := func(fidelity Fidelity) KnockoutResult {
		k := NewKnockout(teams)
		semi1, _ := k.AddMatch(k.Leaf(0), k.Leaf(3), Branching)
		semi2, _ := k.AddMatch(k.Leaf(1), k.Leaf(2), Branching)
		k.AddMatch(semi1, semi2, fidelity)
		result, err := k.Solve()
		if err != nil {
			t.Fatal(err)
		}
		return result
	}

	branching := solve(Branching)
	blended := solve(Blended)

	if math.Abs(branching.Entrants[0].FinalProbability-blended.Entrants[0].FinalProbability) > 1e-12 {
		t.Fatal("The fidelity of the final changed the semi-finals")
	}
	if math.Abs(branching.Entrants[0].WinProbability-blended.Entrants[0].WinProbability) < 1e-6 {
		t.Fatal("Blending the final did not change the outcome")
	}
	if Branching.String() != "branching" || Blended.String() != "blended" {
		t.Fatal("The fidelity names are wrong")
	}
}

func TestKnockoutEntrantLookup(t *testing.T) {
	k, err := NewSeededKnockout(testTeams(1500, 1600), Branching)
	if err != nil {
		t.Fatal(err)
	}
	result, err := k.Solve()
	if err != nil {
		t.Fatal(err)
	}

	e, ok := result.Entrant("#2")
	if !ok || e.Team.Rating != 1600 {
		t.Fatal("The entrant was not found by its code")
	}
	if _, ok := result.Entrant("#3"); ok {
		t.Fatal("An unknown entrant was found")
	}
}
