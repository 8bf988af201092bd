package core

import "slices"

// The forecast of a single team in a group
type TeamForecast struct {
	Team Team `json:"team"`

	AvgWins   float64 `json:"avgWins"`
	AvgDraws  float64 `json:"avgDraws"`
	AvgLosses float64 `json:"avgLosses"`
	AvgPoints float64 `json:"avgPoints"`

	// Empirical probability of finishing in each position.
	// Index 0 is the group winner.
	PositionProbabilities []float64 `json:"positionProbabilities"`

	matchesPerIteration int
}

// Returns the probability of finishing in the top n positions
func (f TeamForecast) QualifyProbability(topN int) float64 {
	topN = min(topN, len(f.PositionProbabilities))
	total := 0.0
	for _, p := range f.PositionProbabilities[:max(topN, 0)] {
		total += p
	}
	return total
}

// Returns the average points per played fixture
func (f TeamForecast) PointsPerMatch() float64 {
	if f.matchesPerIteration == 0 {
		return 0
	}
	return f.AvgPoints / float64(f.matchesPerIteration)
}

// A GroupForecast aggregates all simulated runs of a group.
// The teams are in the order they were entered.
type GroupForecast struct {
	Iterations int            `json:"iterations"`
	Teams      []TeamForecast `json:"teams"`
}

// Returns the forecast of the team with the given code
func (f *GroupForecast) Team(code string) (TeamForecast, bool) {
	i := slices.IndexFunc(f.Teams, func(t TeamForecast) bool { return t.Team.Code == code })
	if i < 0 {
		return TeamForecast{}, false
	}
	return f.Teams[i], true
}

// Returns the probability mass of all teams for the given
// 0-based position. It is 1 for every valid position.
func (f *GroupForecast) PositionMass(position int) float64 {
	total := 0.0
	for _, t := range f.Teams {
		if position < len(t.PositionProbabilities) {
			total += t.PositionProbabilities[position]
		}
	}
	return total
}

// A groupTally accumulates the standings and finishing positions
// of simulated runs. Tallies of independent workers are merged with Add.
type groupTally struct {
	iterations int
	metrics    []StandingMetrics

	// positions[team][position] counts the finishes
	positions [][]int
}

func newGroupTally(numTeams int) *groupTally {
	positions := make([][]int, numTeams)
	for i := range positions {
		positions[i] = make([]int, numTeams)
	}
	return &groupTally{
		metrics:   make([]StandingMetrics, numTeams),
		positions: positions,
	}
}

func (t *groupTally) record(run *simulationRun, ranking []int) {
	t.iterations += 1
	for i := range run.standings {
		t.metrics[i].Add(&run.standings[i])
	}
	for position, team := range ranking {
		t.positions[team][position] += 1
	}
}

// Add the counts of the other tally to this one
func (t *groupTally) Add(other *groupTally) {
	t.iterations += other.iterations
	for i := range t.metrics {
		t.metrics[i].Add(&other.metrics[i])
		for position, count := range other.positions[i] {
			t.positions[i][position] += count
		}
	}
}

func (t *groupTally) forecast(schedule *GroupSchedule) *GroupForecast {
	n := float64(t.iterations)
	teams := make([]TeamForecast, 0, len(schedule.Teams))
	for i, team := range schedule.Teams {
		m := t.metrics[i]
		probabilities := make([]float64, len(t.positions[i]))
		for position, count := range t.positions[i] {
			probabilities[position] = float64(count) / n
		}

		teams = append(teams, TeamForecast{
			Team:                  team,
			AvgWins:               float64(m.Wins) / n,
			AvgDraws:              float64(m.Draws) / n,
			AvgLosses:             float64(m.Losses) / n,
			AvgPoints:             float64(m.Points) / n,
			PositionProbabilities: probabilities,
			matchesPerIteration:   schedule.MatchesPerTeam(),
		})
	}

	return &GroupForecast{Iterations: t.iterations, Teams: teams}
}
