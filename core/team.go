package core

import (
	"errors"
	"fmt"
)

// The root of all precondition errors of the engine.
// Every error below wraps it.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrTooFewEntries     = fmt.Errorf("%w: not enough entries", ErrInvalidArgument)
	ErrEntrantCount      = fmt.Errorf("%w: wrong number of entrants", ErrInvalidArgument)
	ErrInvalidIterations = fmt.Errorf("%w: iterations must be positive", ErrInvalidArgument)
	ErrNilRandomSource   = fmt.Errorf("%w: no random source", ErrInvalidArgument)
	ErrMalformedKnockout = fmt.Errorf("%w: malformed knockout tree", ErrInvalidArgument)
	ErrNotPowerOfTwo     = fmt.Errorf("%w: number of entrants is not a power of two", ErrInvalidArgument)
)

// A Team is a national side with its strength rating.
// The Code is unique among the teams of a forecast.
type Team struct {
	Code   string  `json:"code"`
	Name   string  `json:"name,omitempty"`
	Rating float64 `json:"rating"`
}

func (t Team) String() string {
	if t.Name == "" {
		return t.Code
	}
	return t.Name
}

// Creates anonymous teams for bare ratings. The codes are
// the 1-based positions in the ratings slice ("#1", "#2", ...).
func TeamsFromRatings(ratings []float64) []Team {
	teams := make([]Team, 0, len(ratings))
	for i, r := range ratings {
		teams = append(teams, Team{Code: fmt.Sprintf("#%d", i+1), Rating: r})
	}
	return teams
}
