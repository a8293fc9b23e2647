package strategy

import (
	"math/rand/v2"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/task"
)

// RandomPolicy picks uniformly among the legal placements.
// When none is legal it falls back to Local at zero cost.
type RandomPolicy struct {
	costs   decision.CostModel
	window  decision.Window
	rng     *rand.Rand
	history []decision.Choice
}

// NewRandomPolicy creates a new random policy driven by rng.
// The same seed yields the same choice sequence.
func NewRandomPolicy(costs decision.CostModel, window decision.Window, rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{
		costs:  costs,
		window: window,
		rng:    rng,
	}
}

// Name returns the policy name.
func (p *RandomPolicy) Name() string {
	return string(PolicyTypeRandom)
}

// Reset clears the recorded choices. The random source is not rewound.
func (p *RandomPolicy) Reset() {
	p.history = p.history[:0]
}

// Decide picks a placement for t.
func (p *RandomPolicy) Decide(t task.Task) (decision.Result, error) {
	feasible := p.window.Feasible(p.recent())

	var result decision.Result
	if len(feasible) == 0 {
		result = decision.Result{Choice: decision.Local, Degenerate: true}
	} else {
		chosen := feasible[p.rng.IntN(len(feasible))]
		result = decision.Result{Choice: chosen, Cost: p.costs.Of(t, chosen)}
	}

	p.history = append(p.history, result.Choice)
	return result, nil
}

func (p *RandomPolicy) recent() []decision.Choice {
	n := decision.WindowSize - 1
	if len(p.history) <= n {
		return p.history
	}
	return p.history[len(p.history)-n:]
}
