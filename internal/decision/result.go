package decision

// Result is the outcome of a single step.
type Result struct {
	Choice Choice  `json:"choice"`
	Cost   float64 `json:"cost"`

	// Degenerate is set when no placement was legal at this step.
	Degenerate bool `json:"degenerate,omitempty"`

	// Factor is the history bias used by the heuristic comparison.
	Factor int `json:"factor,omitempty"`
}

// Episode is the output of one full pass of a policy over a task sequence.
type Episode struct {
	Policy          string   `json:"policy"`
	Choices         []Choice `json:"choices"`
	TotalCost       float64  `json:"total_cost"`
	DegenerateSteps int      `json:"degenerate_steps"`
}

// Count returns how many steps chose c.
func (e *Episode) Count(c Choice) int {
	n := 0
	for _, got := range e.Choices {
		if got == c {
			n++
		}
	}
	return n
}
