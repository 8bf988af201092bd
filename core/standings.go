package core

import (
	"cmp"
	"slices"
)

// Controls how teams with equal points are ordered in the
// standings of a single simulated run.
type TieBreak int

const (
	// Teams with equal points keep the order in which
	// they were entered into the group
	TieBreakEntryOrder TieBreak = iota
	// Teams with equal points are ordered randomly
	TieBreakRandom
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakRandom:
		return "random"
	default:
		return "entry"
	}
}

// A simulationRun is one random playout of a group schedule.
// It is reused across iterations to avoid allocations.
type simulationRun struct {
	standings []StandingMetrics
	ranking   []int
}

func newSimulationRun(numTeams int) *simulationRun {
	return &simulationRun{
		standings: make([]StandingMetrics, numTeams),
		ranking:   make([]int, numTeams),
	}
}

// Plays every fixture of the schedule by drawing one uniform
// number per fixture from rng.
func (r *simulationRun) play(schedule *GroupSchedule, rng RandomSource) {
	clear(r.standings)
	for _, f := range schedule.Fixtures {
		result := f.Resolve(rng.Float64())
		r.standings[f.Team1].record(result)
		r.standings[f.Team2].record(result.Invert())
	}
}

// Returns the team indices ordered by descending points.
// The returned slice is only valid until the next call.
func (r *simulationRun) rank(tieBreak TieBreak, rng RandomSource) []int {
	for i := range r.ranking {
		r.ranking[i] = i
	}

	slices.SortStableFunc(r.ranking, func(a, b int) int {
		return cmp.Compare(r.standings[b].Points, r.standings[a].Points)
	})

	if tieBreak == TieBreakRandom {
		r.shuffleTies(rng)
	}

	return r.ranking
}

func (r *simulationRun) shuffleTies(rng RandomSource) {
	start := 0
	for start < len(r.ranking) {
		points := r.standings[r.ranking[start]].Points
		end := start + 1
		for end < len(r.ranking) && r.standings[r.ranking[end]].Points == points {
			end += 1
		}
		if end-start > 1 {
			shuffle(r.ranking[start:end], rng)
		}
		start = end
	}
}
