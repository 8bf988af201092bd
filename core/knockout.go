package core

import (
	"slices"

	"github.com/ezBadminton/goqualifier/internal"
)

// Fidelity controls how a knockout match accounts for not knowing
// which entrant will come out of each of its two sides.
type Fidelity int

const (
	// Every possible pairing of the two sides is played out
	// separately and weighted by its probability
	Branching Fidelity = iota
	// Each side is represented by a single opponent with the
	// probability weighted mean rating of the side's entrants
	Blended
)

func (f Fidelity) String() string {
	if f == Blended {
		return "blended"
	}
	return "branching"
}

// A KnockoutNode is either an entrant (leaf) or a match
// between the winners of two other nodes.
type KnockoutNode struct {
	// Index into the knockout's entrants or -1 for a match
	Entrant  int
	Fidelity Fidelity

	id int
}

func (n *KnockoutNode) Id() int {
	return n.id
}

func (n *KnockoutNode) IsMatch() bool {
	return n.Entrant < 0
}

// A Knockout is a tree of elimination matches whose leaves are
// the entrants. Its edges lead from the two sides of a match to the
// match itself. The one match without a successor is the final.
type Knockout struct {
	Entrants []Team

	graph  *internal.DependencyGraph[*KnockoutNode]
	leaves []*KnockoutNode
}

// Creates a knockout with a leaf for each entrant and no matches
func NewKnockout(entrants []Team) *Knockout {
	k := &Knockout{
		Entrants: entrants,
		graph:    internal.NewDependencyGraph[*KnockoutNode](),
		leaves:   make([]*KnockoutNode, 0, len(entrants)),
	}
	for i := range entrants {
		leaf := &KnockoutNode{Entrant: i, id: internal.NextNodeId()}
		k.graph.AddVertex(leaf)
		k.leaves = append(k.leaves, leaf)
	}
	return k
}

// Returns the leaf node of the i-th entrant
func (k *Knockout) Leaf(i int) *KnockoutNode {
	return k.leaves[i]
}

// Adds a match between the winners of side1 and side2
func (k *Knockout) AddMatch(side1, side2 *KnockoutNode, fidelity Fidelity) (*KnockoutNode, error) {
	match := &KnockoutNode{Entrant: -1, Fidelity: fidelity, id: internal.NextNodeId()}
	if err := k.graph.AddVertex(match); err != nil {
		return nil, err
	}
	if err := k.graph.AddEdge(side1, match); err != nil {
		return nil, err
	}
	if err := k.graph.AddEdge(side2, match); err != nil {
		return nil, err
	}
	return match, nil
}

// Creates a knockout where the entrants are seeded in the
// given order. The first round pairs the seeds so that the top
// seeds meet as late as possible (1 vs 4 and 2 vs 3 for four
// entrants). All matches use the same fidelity.
func NewSeededKnockout(seeded []Team, fidelity Fidelity) (*Knockout, error) {
	if len(seeded) < 2 {
		return nil, ErrTooFewEntries
	}
	if !isPowerOfTwo(len(seeded)) {
		return nil, ErrNotPowerOfTwo
	}

	k := NewKnockout(seeded)

	round := make([]*KnockoutNode, 0, len(seeded)/2)
	for _, matchup := range arrangeSeeds(getNumRounds(len(seeded))) {
		match, err := k.AddMatch(k.Leaf(matchup.seed1), k.Leaf(matchup.seed2), fidelity)
		if err != nil {
			return nil, err
		}
		round = append(round, match)
	}

	for len(round) > 1 {
		next := make([]*KnockoutNode, 0, len(round)/2)
		for i := 0; i < len(round); i += 2 {
			match, err := k.AddMatch(round[i], round[i+1], fidelity)
			if err != nil {
				return nil, err
			}
			next = append(next, match)
		}
		round = next
	}

	return k, nil
}

// The result of one entrant of a knockout
type EntrantResult struct {
	Team Team `json:"team"`

	// 1-based seed or 0 when the structure does not seed the entrant
	Seed int `json:"seed,omitempty"`

	FinalProbability float64 `json:"finalProbability"`
	WinProbability   float64 `json:"winProbability"`
}

// The exact result of a knockout. The entrants are in the
// knockout's entrant order and their win probabilities sum to 1.
type KnockoutResult struct {
	Entrants             []EntrantResult `json:"entrants"`
	ExpectedWinnerRating float64         `json:"expectedWinnerRating"`
}

// Returns the result of the entrant with the given code
func (r KnockoutResult) Entrant(code string) (EntrantResult, bool) {
	i := slices.IndexFunc(r.Entrants, func(e EntrantResult) bool { return e.Team.Code == code })
	if i < 0 {
		return EntrantResult{}, false
	}
	return r.Entrants[i], true
}

// Sums the win probabilities of all entrants
func (r KnockoutResult) TotalProbability() float64 {
	total := 0.0
	for _, e := range r.Entrants {
		total += e.WinProbability
	}
	return total
}

// Computes the exact probability of every entrant to win the
// knockout. The matches are evaluated in dependency order and each
// match turns the winner distributions of its two sides into its
// own winner distribution according to its Fidelity.
func (k *Knockout) Solve() (KnockoutResult, error) {
	order, err := k.graph.TopologicalOrder()
	if err != nil {
		return KnockoutResult{}, err
	}
	dependencies, err := k.graph.DependencyLister()
	if err != nil {
		return KnockoutResult{}, err
	}
	final, err := k.graph.Sink()
	if err != nil || !final.IsMatch() {
		return KnockoutResult{}, ErrMalformedKnockout
	}

	// Winner distribution over the entrants per node id
	winners := make(map[int][]float64, len(order))
	var finalists []float64

	for _, node := range order {
		distribution := make([]float64, len(k.Entrants))
		if !node.IsMatch() {
			distribution[node.Entrant] = 1
			winners[node.id] = distribution
			continue
		}

		sides := dependencies(node)
		if len(sides) != 2 {
			return KnockoutResult{}, ErrMalformedKnockout
		}
		side1 := winners[sides[0].id]
		side2 := winners[sides[1].id]

		switch node.Fidelity {
		case Blended:
			k.playBlended(side1, side2, distribution)
		default:
			k.playBranching(side1, side2, distribution)
		}
		winners[node.id] = distribution

		if node == final {
			finalists = make([]float64, len(k.Entrants))
			for i := range finalists {
				finalists[i] = side1[i] + side2[i]
			}
		}
	}

	champion := winners[final.id]
	result := KnockoutResult{Entrants: make([]EntrantResult, 0, len(k.Entrants))}
	for i, team := range k.Entrants {
		result.Entrants = append(result.Entrants, EntrantResult{
			Team:             team,
			FinalProbability: finalists[i],
			WinProbability:   champion[i],
		})
		result.ExpectedWinnerRating += champion[i] * team.Rating
	}

	return result, nil
}

// Plays every entrant of side1 against every entrant of side2
func (k *Knockout) playBranching(side1, side2, winner []float64) {
	for i, p1 := range side1 {
		if p1 == 0 {
			continue
		}
		for j, p2 := range side2 {
			if p2 == 0 {
				continue
			}
			reach := p1 * p2
			w := WinProbability(k.Entrants[i].Rating, k.Entrants[j].Rating)
			winner[i] += reach * w
			winner[j] += reach * (1 - w)
		}
	}
}

// Plays the expected rating of side1 against the expected rating
// of side2 and splits each side's chance among its entrants in
// proportion to their chance of emerging from the side
func (k *Knockout) playBlended(side1, side2, winner []float64) {
	w := WinProbability(k.expectedRating(side1), k.expectedRating(side2))
	for i := range winner {
		winner[i] = side1[i]*w + side2[i]*(1-w)
	}
}

func (k *Knockout) expectedRating(distribution []float64) float64 {
	rating := 0.0
	for i, p := range distribution {
		rating += p * k.Entrants[i].Rating
	}
	return rating
}
