package core

import "math"

// The rating difference at which the stronger side is expected
// to win ten times as often as the weaker side.
const RatingScale = 400.0

// Returns the probability that a side rated ratingA beats a side
// rated ratingB in a match that cannot be drawn.
//
// WinProbability(a, b) + WinProbability(b, a) is 1 and equal
// ratings yield exactly 0.5.
func WinProbability(ratingA, ratingB float64) float64 {
	return 1 / (1 + math.Pow(10, (ratingB-ratingA)/RatingScale))
}
