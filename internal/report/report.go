// Package report renders forecast results as text tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ezBadminton/goqualifier/core"
)

const (
	KindBracket = "bracket"
	KindPath    = "path"
)

type GroupReport struct {
	Name       string              `json:"name"`
	Qualifiers int                 `json:"qualifiers"`
	Forecast   *core.GroupForecast `json:"forecast"`

	// Probability of each team (by code) to finish in
	// the qualifying positions
	Qualify map[string]float64 `json:"qualifyProbabilities"`
}

func NewGroupReport(name string, qualifiers int, forecast *core.GroupForecast) GroupReport {
	qualify := make(map[string]float64, len(forecast.Teams))
	for _, t := range forecast.Teams {
		qualify[t.Team.Code] = t.QualifyProbability(qualifiers)
	}
	return GroupReport{
		Name:       name,
		Qualifiers: qualifiers,
		Forecast:   forecast,
		Qualify:    qualify,
	}
}

type KnockoutReport struct {
	Name   string              `json:"name"`
	Kind   string              `json:"kind"`
	Result core.KnockoutResult `json:"result"`
}

// A Report collects the results of one forecast run
type Report struct {
	RunID      string `json:"runId"`
	Scenario   string `json:"scenario,omitempty"`
	Seed       int64  `json:"seed"`
	Iterations int    `json:"iterations"`
	TieBreak   string `json:"tieBreak"`

	Groups   []GroupReport    `json:"groups,omitempty"`
	Brackets []KnockoutReport `json:"brackets,omitempty"`
	Paths    []KnockoutReport `json:"paths,omitempty"`
}

func (r *Report) AddGroup(name string, qualifiers int, forecast *core.GroupForecast) {
	r.Groups = append(r.Groups, NewGroupReport(name, qualifiers, forecast))
}

func (r *Report) AddBracket(name string, result core.BracketResult) {
	r.Brackets = append(r.Brackets, KnockoutReport{Name: name, Kind: KindBracket, Result: result.KnockoutResult})
}

func (r *Report) AddPath(name string, result core.PathResult) {
	r.Paths = append(r.Paths, KnockoutReport{Name: name, Kind: KindPath, Result: result.KnockoutResult})
}

func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// Writes one table per group, bracket and path
func (r *Report) WriteTable(w io.Writer) error {
	header := r.Scenario
	if header == "" {
		header = "Forecast"
	}
	fmt.Fprintf(w, "%s (run %s, seed %d, %d iterations, %s tie-break)\n\n", header, r.RunID, r.Seed, r.Iterations, r.TieBreak)

	for _, g := range r.Groups {
		if err := writeGroup(w, g); err != nil {
			return err
		}
	}
	for _, k := range r.Brackets {
		if err := writeKnockout(w, k); err != nil {
			return err
		}
	}
	for _, k := range r.Paths {
		if err := writeKnockout(w, k); err != nil {
			return err
		}
	}
	return nil
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeGroup(w io.Writer, g GroupReport) error {
	fmt.Fprintf(w, "Group %s (top %d qualify)\n", g.Name, g.Qualifiers)

	tw := newTabWriter(w)
	columns := []string{"TEAM", "RATING", "W", "D", "L", "PTS"}
	for position := range g.Forecast.Teams {
		columns = append(columns, ordinal(position+1))
	}
	columns = append(columns, "QUALIFY")
	fmt.Fprintln(tw, strings.Join(columns, "\t"))

	for _, t := range g.Forecast.Teams {
		fmt.Fprintf(tw, "%s\t%.0f\t%.2f\t%.2f\t%.2f\t%.2f",
			t.Team, t.Team.Rating, t.AvgWins, t.AvgDraws, t.AvgLosses, t.AvgPoints)
		for _, p := range t.PositionProbabilities {
			fmt.Fprintf(tw, "\t%s", percent(p))
		}
		fmt.Fprintf(tw, "\t%s\n", percent(g.Qualify[t.Team.Code]))
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeKnockout(w io.Writer, k KnockoutReport) error {
	fmt.Fprintf(w, "%s %s (expected winner rating %.0f)\n", strings.ToUpper(k.Kind[:1])+k.Kind[1:], k.Name, k.Result.ExpectedWinnerRating)

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "SEED\tTEAM\tRATING\tFINAL\tWIN")
	for _, e := range k.Result.Entrants {
		seed := "-"
		if e.Seed > 0 {
			seed = fmt.Sprint(e.Seed)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.0f\t%s\t%s\n", seed, e.Team, e.Team.Rating, percent(e.FinalProbability), percent(e.WinProbability))
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
