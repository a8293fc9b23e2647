// Package evaluate replays a choice sequence against its task sequence and
// produces cumulative delay, energy and cost series.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/task"
)

// ErrLengthMismatch is returned when tasks and choices differ in length.
var ErrLengthMismatch = errors.New("tasks and choices differ in length")

// Series holds running sums, one entry per step.
type Series struct {
	Delay  []float64 `json:"cum_delay"`
	Energy []float64 `json:"cum_energy"`
	Cost   []float64 `json:"cum_cost"`
}

// Len returns the number of steps.
func (s *Series) Len() int {
	return len(s.Cost)
}

// Final returns the last entry of each series, or zeros for an empty series.
func (s *Series) Final() (delay, energy, cost float64) {
	n := s.Len()
	if n == 0 {
		return 0, 0, 0
	}
	return s.Delay[n-1], s.Energy[n-1], s.Cost[n-1]
}

// Evaluate recomputes every step from tasks and choices alone. Undecided
// steps add no delay or energy. Step cost is alpha*delay + (1-alpha)*energy.
func Evaluate(tasks []task.Task, choices []decision.Choice, alpha float64) (*Series, error) {
	if len(tasks) != len(choices) {
		return nil, fmt.Errorf("%w: %d tasks, %d choices", ErrLengthMismatch, len(tasks), len(choices))
	}

	costs := decision.NewCostModel(alpha)
	s := &Series{
		Delay:  make([]float64, len(tasks)),
		Energy: make([]float64, len(tasks)),
		Cost:   make([]float64, len(tasks)),
	}

	var cumDelay, cumEnergy, cumCost float64
	for i, t := range tasks {
		delay, energy := decision.Outcome(t, choices[i])

		cumDelay += delay
		cumEnergy += energy
		cumCost += costs.Blend(delay, energy)

		s.Delay[i] = cumDelay
		s.Energy[i] = cumEnergy
		s.Cost[i] = cumCost
	}

	return s, nil
}
