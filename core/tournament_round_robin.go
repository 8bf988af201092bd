package core

import (
	"cmp"
	"slices"
)

// A Fixture is one pairing of a round robin with the outcome
// distribution from the perspective of Team1. Team1 is always
// the lower team index.
type Fixture struct {
	// Index of the first named team in the schedule's teams
	Team1 int
	// Index of the second named team
	Team2 int

	Outcome
}

// A GroupSchedule contains every pairing of a group's teams
// exactly once. The fixtures are arranged into rounds where
// every team plays at most once.
//
// Rounds lists the fixtures by matchday. Fixtures lists the same
// fixtures ordered by (Team1, Team2), which is the order a
// simulation plays them in.
type GroupSchedule struct {
	Teams    []Team
	Rounds   [][]Fixture
	Fixtures []Fixture
}

// Returns the number of fixtures each team plays
func (s *GroupSchedule) MatchesPerTeam() int {
	return len(s.Teams) - 1
}

// Creates the round robin schedule of the given teams with the
// outcome of each fixture derived from the model.
//
// An odd number of teams gets a bye per round.
func NewGroupSchedule(teams []Team, model MatchModel) (*GroupSchedule, error) {
	if len(teams) < 2 {
		return nil, ErrTooFewEntries
	}

	const bye = -1

	entrySlots := make([]int, 0, len(teams)+1)
	for i := range teams {
		entrySlots = append(entrySlots, i)
	}
	if len(entrySlots)%2 != 0 {
		entrySlots = append(entrySlots, bye)
	}

	numRounds := len(entrySlots) - 1
	numMatches := len(entrySlots) / 2

	rounds := make([][]Fixture, 0, numRounds)
	fixtures := make([]Fixture, 0, len(teams)*(len(teams)-1)/2)
	for roundI := range numRounds {
		round := make([]Fixture, 0, numMatches)
		for matchI := range numMatches {
			i1, i2 := pickOpponents(entrySlots, roundI, matchI)
			if i1 == bye || i2 == bye {
				continue
			}
			outcome := model.Outcome(teams[i1].Rating, teams[i2].Rating)
			round = append(round, Fixture{Team1: i1, Team2: i2, Outcome: outcome})
		}
		rounds = append(rounds, round)
		fixtures = append(fixtures, round...)
	}
	slices.SortFunc(fixtures, func(a, b Fixture) int {
		return cmp.Or(cmp.Compare(a.Team1, b.Team1), cmp.Compare(a.Team2, b.Team2))
	})

	schedule := &GroupSchedule{
		Teams:    teams,
		Rounds:   rounds,
		Fixtures: fixtures,
	}
	return schedule, nil
}

// Returns the opponents of the specified match by its round and
// match index. The lower index comes first.
func pickOpponents(entrySlots []int, roundI, matchI int) (int, int) {
	i1 := matchI
	i2 := len(entrySlots) - 1 - matchI

	i1 = roundRobinCircleIndex(i1, len(entrySlots), roundI)
	i2 = roundRobinCircleIndex(i2, len(entrySlots), roundI)

	slot1 := entrySlots[i1]
	slot2 := entrySlots[i2]

	if slot2 < slot1 {
		slot1, slot2 = slot2, slot1
	}

	return slot1, slot2
}

// Rotates the given index according to https://en.wikipedia.org/wiki/Round-robin_tournament#Circle_method
func roundRobinCircleIndex(index, length, round int) int {
	if index == 0 {
		return 0
	}
	index -= 1
	index -= round
	index += length - 1
	index %= length - 1
	index += 1
	return index
}
