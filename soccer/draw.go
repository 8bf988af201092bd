// Package soccer contains the three-outcome match model of
// association football where a match can end in a draw.
package soccer

import (
	"fmt"
	"math"

	"github.com/ezBadminton/goqualifier/core"
)

// Calibrated draw model constants
const (
	// Draw probability of two equally rated teams
	BaseDraw = 0.27
	// Decrease of the draw probability per rating point of difference
	DrawDecay = 0.0004
	// Lowest draw probability, reached at a gap of 300 rating points
	MinDraw = 0.15
)

var (
	ErrProbabilityRange = fmt.Errorf("%w: draw probability is outside of [0,1]", core.ErrInvalidArgument)
	ErrFloorAboveBase   = fmt.Errorf("%w: draw floor is above the base draw probability", core.ErrInvalidArgument)
	ErrNegativeDecay    = fmt.Errorf("%w: draw decay is negative or not a number", core.ErrInvalidArgument)
)

// A DrawModel derives the win/draw/loss distribution of a match
// from the ratings of the two teams.
//
// The draw probability starts at BaseDraw for equal ratings and
// decays linearly with the rating gap down to MinDraw. The
// remaining probability is split between win and loss in
// proportion to the Elo win expectancy.
type DrawModel struct {
	BaseDraw  float64 `json:"baseDraw"`
	DrawDecay float64 `json:"drawDecay"`
	MinDraw   float64 `json:"minDraw"`
}

// The calibrated model used by all package level functions
var Default = DrawModel{BaseDraw: BaseDraw, DrawDecay: DrawDecay, MinDraw: MinDraw}

func NewDrawModel(baseDraw, drawDecay, minDraw float64) (DrawModel, error) {
	model := DrawModel{BaseDraw: baseDraw, DrawDecay: drawDecay, MinDraw: minDraw}
	return model, model.Validate()
}

func (m DrawModel) Validate() error {
	if !isProbability(m.BaseDraw) || !isProbability(m.MinDraw) {
		return ErrProbabilityRange
	}
	if m.MinDraw > m.BaseDraw {
		return ErrFloorAboveBase
	}
	if !(m.DrawDecay >= 0) {
		return ErrNegativeDecay
	}
	return nil
}

func (m DrawModel) DrawProbability(rating, opponentRating float64) float64 {
	gap := math.Abs(rating - opponentRating)
	return max(m.MinDraw, m.BaseDraw-gap*m.DrawDecay)
}

// Returns the outcome from the perspective of the team with
// the given rating
func (m DrawModel) Outcome(rating, opponentRating float64) core.Outcome {
	winExpectancy := core.WinProbability(rating, opponentRating)
	draw := m.DrawProbability(rating, opponentRating)
	return core.Outcome{
		Win:  winExpectancy * (1 - draw),
		Draw: draw,
		Loss: (1 - winExpectancy) * (1 - draw),
	}
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
