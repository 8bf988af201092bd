package soccer

import (
	"errors"
	"math"
	"testing"

	"github.com/ezBadminton/goqualifier/core"
)

func TestDrawProbability(t *testing.T) {
	cases := map[float64]float64{
		0:    0.27,
		100:  0.23,
		200:  0.19,
		300:  0.15,
		450:  0.15,
		1000: 0.15,
	}
	for gap, expected := range cases {
		draw := MatchProbabilities(1500+gap, 1500).Draw
		if math.Abs(draw-expected) > 1e-9 {
			t.Fatalf("The draw probability at a gap of %v is %v instead of %v", gap, draw, expected)
		}
	}

	previous := 1.0
	for gap := 0.0; gap <= 600; gap += 25 {
		draw := Default.DrawProbability(1500, 1500-gap)
		if draw > previous {
			t.Fatal("The draw probability grew with the rating gap")
		}
		previous = draw
	}
}

func TestMatchProbabilities(t *testing.T) {
	ratings := [][2]float64{{1500, 1500}, {1800, 1650}, {1200, 2000}, {0, 0}, {1999.5, 2000}}
	for _, r := range ratings {
		o := MatchProbabilities(r[0], r[1])
		if math.Abs(o.Total()-1) > 1e-9 {
			t.Fatalf("The outcome of %v vs %v does not sum to 1", r[0], r[1])
		}
		for _, p := range []float64{o.Win, o.Draw, o.Loss} {
			if p < 0 || p > 1 {
				t.Fatal("A match probability left the unit interval")
			}
		}

		swapped := MatchProbabilities(r[1], r[0])
		if swapped.Draw != o.Draw {
			t.Fatal("The draw probability is not symmetric")
		}
		if math.Abs(swapped.Win-o.Loss) > 1e-12 || math.Abs(swapped.Loss-o.Win) > 1e-12 {
			t.Fatal("Swapping the ratings did not swap win and loss")
		}
	}

	o := MatchProbabilities(1500, 1500)
	if math.Abs(o.Win-0.365) > 1e-12 || math.Abs(o.Loss-0.365) > 1e-12 {
		t.Fatal("Equal ratings did not split the remaining probability evenly")
	}
	if math.Abs(ExpectedPoints(1500, 1500)-1.365) > 1e-9 {
		t.Fatal("The expected points of an even match are wrong")
	}
}

func TestNewDrawModel(t *testing.T) {
	model, err := NewDrawModel(0.3, 0.001, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(model.DrawProbability(1600, 1500)-0.2) > 1e-9 {
		t.Fatal("The custom draw model did not decay")
	}

	if _, err := NewDrawModel(BaseDraw, DrawDecay, MinDraw); err != nil {
		t.Fatal("The calibrated constants are invalid")
	}
	if Default.Validate() != nil {
		t.Fatal("The default model is invalid")
	}

	invalid := []struct {
		base, decay, floor float64
		err                error
	}{
		{1.2, 0.001, 0.1, ErrProbabilityRange},
		{0.3, 0.001, -0.1, ErrProbabilityRange},
		{math.NaN(), 0.001, 0.1, ErrProbabilityRange},
		{0.2, 0.001, 0.3, ErrFloorAboveBase},
		{0.3, -0.001, 0.1, ErrNegativeDecay},
		{0.3, math.NaN(), 0.1, ErrNegativeDecay},
	}
	for _, c := range invalid {
		_, err := NewDrawModel(c.base, c.decay, c.floor)
		if !errors.Is(err, c.err) || !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("The draw model %v/%v/%v did not return %v", c.base, c.decay, c.floor, c.err)
		}
	}
}
