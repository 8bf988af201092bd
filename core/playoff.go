package core

// Number of entrants of a playoff path
const PathSize = 4

// The result of a 3-entrant bracket where the seeded entrant
// has a bye into the final against the winner of a play-in
// between the two unseeded entrants.
type BracketResult struct {
	KnockoutResult
}

func (r BracketResult) Seeded() EntrantResult {
	return r.Entrants[0]
}

func (r BracketResult) UnseededA() EntrantResult {
	return r.Entrants[1]
}

func (r BracketResult) UnseededB() EntrantResult {
	return r.Entrants[2]
}

// The result of a 4-entrant playoff path.
// The entrants are ordered by seed.
type PathResult struct {
	KnockoutResult
}

// Solves the 3-entrant bracket for bare ratings.
// See SolveBracketTeams.
func SolveBracket(seededRating, ratingA, ratingB float64) BracketResult {
	teams := TeamsFromRatings([]float64{seededRating, ratingA, ratingB})
	return SolveBracketTeams(teams[0], teams[1], teams[2])
}

// Computes the exact outcome of a bracket where seeded meets the
// winner of unseededA vs unseededB in the final.
//
// The final is evaluated against the play-in winner's expected
// rating rather than branching on which team it is.
func SolveBracketTeams(seeded, unseededA, unseededB Team) BracketResult {
	k := NewKnockout([]Team{seeded, unseededA, unseededB})

	playIn, err := k.AddMatch(k.Leaf(1), k.Leaf(2), Branching)
	if err != nil {
		panic("could not create the play-in match")
	}
	if _, err := k.AddMatch(k.Leaf(0), playIn, Blended); err != nil {
		panic("could not create the bracket final")
	}

	result, err := k.Solve()
	if err != nil {
		panic("could not solve the bracket: " + err.Error())
	}
	result.Entrants[0].Seed = 1

	return BracketResult{KnockoutResult: result}
}

// Solves the 4-entrant path for bare ratings.
// See SolvePathTeams.
func SolvePath(ratings []float64) (PathResult, error) {
	return SolvePathTeams(TeamsFromRatings(ratings))
}

// Computes the exact outcome of a playoff path of exactly four teams.
// The teams are seeded by rating and the semi-finals are seed 1
// vs seed 4 and seed 2 vs seed 3. The final branches on every
// possible pairing of the semi-final winners.
func SolvePathTeams(teams []Team) (PathResult, error) {
	if len(teams) != PathSize {
		return PathResult{}, ErrEntrantCount
	}

	seeded := SeedByRating(teams)
	k, err := NewSeededKnockout(seeded, Branching)
	if err != nil {
		return PathResult{}, err
	}

	result, err := k.Solve()
	if err != nil {
		return PathResult{}, err
	}
	for i := range result.Entrants {
		result.Entrants[i].Seed = i + 1
	}

	return PathResult{KnockoutResult: result}, nil
}
