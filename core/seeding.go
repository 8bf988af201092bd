package core

import (
	"cmp"
	"slices"
)

// Returns a copy of the teams sorted by descending rating.
// The first team is seed 1. Equal ratings keep their input order.
func SeedByRating(teams []Team) []Team {
	seeded := slices.Clone(teams)
	slices.SortStableFunc(seeded, func(a, b Team) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return seeded
}

type seedMatchup struct {
	seed1 int
	seed2 int
}

// Arranges the seeds for the first elimination round of
// a total of numRounds.
//
// The arrangement ensures that the top 2 seeds can only
// meet in the final, the top 4 seeds can only meet
// in the semi-final, etc...
//
// More info: https://en.wikipedia.org/wiki/Single-elimination_tournament#Seeding
func arrangeSeeds(numRounds int) []*seedMatchup {
	// Start with the final between the first two seeds
	matchups := []*seedMatchup{{0, 1}}
	totalSeeds := 2

	// Work down the tournament tree by round (semis, quarters, ...)
	for i := 1; i < numRounds; i += 1 {
		nextMatchups := make([]*seedMatchup, 0, totalSeeds)
		totalSeeds *= 2
		for _, parent := range matchups {
			s1 := parent.seed1
			s2 := parent.seed2

			nextMatchups = append(
				nextMatchups,
				&seedMatchup{s1, totalSeeds - 1 - s1},
				&seedMatchup{s2, totalSeeds - 1 - s2},
			)
		}

		matchups = nextMatchups
	}

	return matchups
}

// Shuffles the slice in place drawing from rng (Fisher-Yates)
func shuffle[S ~[]E, E any](slice S, rng RandomSource) {
	for i := len(slice) - 1; i > 0; i -= 1 {
		j := int(rng.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		slice[i], slice[j] = slice[j], slice[i]
	}
}

func getNumRounds(numSlots int) int {
	rounds := 0
	for numSlots > 1 {
		numSlots >>= 1
		rounds += 1
	}
	return rounds
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
