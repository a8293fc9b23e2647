package strategy

import (
	"fmt"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/task"
)

// DefaultBeta scales the history bias in the heuristic comparison.
const DefaultBeta = 1.0

// biasTable maps a fully decided history (oldest first) to the bias added to
// the local cost before comparing it with the offload cost. A positive factor
// discourages local when it would force a run of offloads under the local cap;
// a negative one favours local when offload is about to hit its own cap.
var biasTable = map[decision.History]int{
	{decision.Local, decision.Local, decision.Offload, decision.Offload}:   -1,
	{decision.Local, decision.Offload, decision.Local, decision.Offload}:   1,
	{decision.Local, decision.Offload, decision.Offload, decision.Local}:   2,
	{decision.Offload, decision.Local, decision.Offload, decision.Offload}: -1,
	{decision.Offload, decision.Offload, decision.Local, decision.Offload}: 1,
	{decision.Offload, decision.Offload, decision.Offload, decision.Local}: 0,
}

// BiasFactor returns the bias for history h. Histories with an Undecided slot
// have no bias. A fully decided history missing from the table is an error.
func BiasFactor(h decision.History) (int, error) {
	if h.HasUndecided() {
		return 0, nil
	}

	factor, ok := biasTable[h]
	if !ok {
		return 0, fmt.Errorf("%w: %s", decision.ErrUndefinedPattern, h)
	}
	return factor, nil
}

// HeuristicPolicy picks the cheaper placement among the legal ones, biasing
// the comparison by the exact pattern of the last four choices.
type HeuristicPolicy struct {
	costs   decision.CostModel
	window  decision.Window
	beta    float64
	history decision.History
}

// NewHeuristicPolicy creates a new heuristic policy.
func NewHeuristicPolicy(costs decision.CostModel, window decision.Window, beta float64) *HeuristicPolicy {
	return &HeuristicPolicy{
		costs:  costs,
		window: window,
		beta:   beta,
	}
}

// Name returns the policy name.
func (p *HeuristicPolicy) Name() string {
	return string(PolicyTypeHeuristic)
}

// Reset restores four Undecided slots.
func (p *HeuristicPolicy) Reset() {
	p.history = decision.History{}
}

// History returns the current four-slot history.
func (p *HeuristicPolicy) History() decision.History {
	return p.history
}

// Decide picks a placement for t.
//
// With no legal placement the step records Undecided at zero cost. With one,
// it is taken. With both, local wins when costLocal + beta*factor < costOffload.
// The recorded cost is always the unbiased cost of the chosen placement.
func (p *HeuristicPolicy) Decide(t task.Task) (decision.Result, error) {
	costLocal := p.costs.Local(t)
	costOffload := p.costs.Offload(t)

	feasible := p.window.Feasible(p.history.Recent())

	var result decision.Result
	switch len(feasible) {
	case 0:
		result = decision.Result{Choice: decision.Undecided, Degenerate: true}

	case 1:
		result = decision.Result{Choice: feasible[0], Cost: p.costs.Of(t, feasible[0])}

	default:
		factor, err := BiasFactor(p.history)
		if err != nil {
			return decision.Result{}, err
		}

		if costLocal+p.beta*float64(factor) < costOffload {
			result = decision.Result{Choice: decision.Local, Cost: costLocal}
		} else {
			result = decision.Result{Choice: decision.Offload, Cost: costOffload}
		}
		result.Factor = factor
	}

	p.history.Push(result.Choice)
	return result, nil
}
