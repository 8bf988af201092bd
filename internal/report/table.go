package report

import (
	"fmt"
	"io"

	"github.com/ezBadminton/goqualifier/core"
)

// Rating gaps listed by ProbabilityTable
var ReferenceGaps = []float64{0, 50, 100, 150, 200, 250, 300, 350, 400, 450, 500}

// Writes the win expectancy and the win/draw/loss probabilities
// of the stronger team for each of the ReferenceGaps
func ProbabilityTable(w io.Writer, model core.MatchModel) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "GAP\tWIN EXP\tWIN\tDRAW\tLOSS\tPTS")
	for _, gap := range ReferenceGaps {
		o := model.Outcome(gap, 0)
		fmt.Fprintf(tw, "%.0f\t%.4f\t%.4f\t%.4f\t%.4f\t%.3f\n",
			gap, core.WinProbability(gap, 0), o.Win, o.Draw, o.Loss, o.ExpectedPoints())
	}
	return tw.Flush()
}
