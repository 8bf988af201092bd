package core

import (
	"math"
	"testing"
)

func TestWinProbability(t *testing.T) {
	for _, r := range []float64{0, 1200, 1850.5, -300} {
		if WinProbability(r, r) != 0.5 {
			t.Fatalf("Equal ratings of %v did not give an even chance", r)
		}
	}

	pairs := [][2]float64{{1800, 1700}, {2100, 1200}, {1500, 1499}, {0, 4000}}
	for _, p := range pairs {
		sum := WinProbability(p[0], p[1]) + WinProbability(p[1], p[0])
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("The win probabilities of %v and %v are not complementary", p[0], p[1])
		}
	}

	if math.Abs(WinProbability(1600, 1200)-0.909091) > 1e-6 {
		t.Fatal("A 400 point gap did not give a 10:1 expectancy")
	}
	if math.Abs(WinProbability(1700, 1500)-0.7597) > 1e-4 {
		t.Fatal("A 200 point gap did not give the expected win probability")
	}

	if WinProbability(3000, 0) > 1 || WinProbability(0, 3000) < 0 {
		t.Fatal("A win probability left the unit interval")
	}
}
