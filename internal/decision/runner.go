package decision

import (
	"fmt"
	"log/slog"

	"github.com/haskel/offloadsim/internal/task"
)

// Policy defines the interface for step-by-step placement policies.
// This is duplicated here to avoid import cycles.
// The actual implementations are in decision/strategy package.
type Policy interface {
	Name() string
	Decide(t task.Task) (Result, error)
	Reset()
}

// Runner folds a policy over a task sequence.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a new runner. A nil logger discards output.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger}
}

// Run resets p and feeds it every task in order. It stops at the first
// policy error; degenerate steps are counted and logged but do not stop the run.
func (r *Runner) Run(p Policy, tasks []task.Task) (*Episode, error) {
	p.Reset()

	ep := &Episode{
		Policy:  p.Name(),
		Choices: make([]Choice, 0, len(tasks)),
	}

	for i, t := range tasks {
		res, err := p.Decide(t)
		if err != nil {
			return nil, fmt.Errorf("%s policy, step %d: %w", p.Name(), i, err)
		}

		if res.Degenerate {
			ep.DegenerateSteps++
			r.logger.Warn("no legal choice",
				"policy", p.Name(),
				"step", i,
				"recorded", res.Choice.String(),
			)
		}

		ep.Choices = append(ep.Choices, res.Choice)
		ep.TotalCost += res.Cost
	}

	r.logger.Info("episode complete",
		"policy", ep.Policy,
		"steps", len(ep.Choices),
		"total_cost", ep.TotalCost,
		"degenerate_steps", ep.DegenerateSteps,
	)

	return ep, nil
}
