package soccer

import "github.com/ezBadminton/goqualifier/core"

// Returns the win/draw/loss probabilities of a match between
// a team and an opponent under the Default model
func MatchProbabilities(teamRating, opponentRating float64) core.Outcome {
	return Default.Outcome(teamRating, opponentRating)
}

// Returns the mean league points a team takes from
// a match against the opponent
func ExpectedPoints(teamRating, opponentRating float64) float64 {
	return MatchProbabilities(teamRating, opponentRating).ExpectedPoints()
}

// Creates a group simulator that plays its fixtures
// with the Default model
func NewGroupSimulator(opts ...core.SimulatorOption) *core.GroupSimulator {
	return core.NewGroupSimulator(Default, opts...)
}

// Forecasts the standings of a round robin group by playing it
// iterations times with the Default model. Every fixture draws one
// number from rng and ties on points are broken by entry order.
func SimulateGroup(teams []core.Team, iterations int, rng core.RandomSource) (*core.GroupForecast, error) {
	return NewGroupSimulator().Simulate(teams, iterations, rng)
}
