package core

// League points for the result of a group match
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// The result of a single fixture from the perspective
// of the first named team.
type Result int

const (
	ResultWin Result = iota
	ResultDraw
	ResultLoss
)

// Returns the same result seen from the opponent's side
func (r Result) Invert() Result {
	switch r {
	case ResultWin:
		return ResultLoss
	case ResultLoss:
		return ResultWin
	default:
		return ResultDraw
	}
}

func (r Result) Points() int {
	switch r {
	case ResultWin:
		return PointsWin
	case ResultDraw:
		return PointsDraw
	default:
		return PointsLoss
	}
}

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	default:
		return "loss"
	}
}

// An Outcome is the probability distribution over the three
// results of a fixture. The probabilities sum to 1.
type Outcome struct {
	Win  float64 `json:"win"`
	Draw float64 `json:"draw"`
	Loss float64 `json:"loss"`
}

// Returns the outcome from the opponent's perspective
func (o Outcome) Invert() Outcome {
	return Outcome{Win: o.Loss, Draw: o.Draw, Loss: o.Win}
}

func (o Outcome) Total() float64 {
	return o.Win + o.Draw + o.Loss
}

// The mean league points the first named team takes from the fixture
func (o Outcome) ExpectedPoints() float64 {
	return PointsWin*o.Win + PointsDraw*o.Draw + PointsLoss*o.Loss
}

// Maps a uniform random number u in [0,1) onto a result by
// comparing it against the cumulative thresholds Win and Win+Draw.
func (o Outcome) Resolve(u float64) Result {
	switch {
	case u < o.Win:
		return ResultWin
	case u < o.Win+o.Draw:
		return ResultDraw
	default:
		return ResultLoss
	}
}

// A MatchModel turns the ratings of two teams into the
// win/draw/loss distribution of a fixture between them.
type MatchModel interface {
	// Returns the Outcome from the perspective of the team
	// with the given rating.
	Outcome(rating, opponentRating float64) Outcome
}
