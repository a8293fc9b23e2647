package task

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultSteps is the length of the reference scenario.
const DefaultSteps = 120

// Scenario is an ordered task sequence plus the catalog index each task was drawn from.
type Scenario struct {
	Tasks     []Task
	Templates []int
}

// Len returns the number of steps.
func (s *Scenario) Len() int {
	return len(s.Tasks)
}

// Generator draws scenarios from a catalog with replacement.
type Generator struct {
	catalog []Task
	rng     *rand.Rand
}

// NewGenerator creates a generator over catalog driven by rng.
func NewGenerator(catalog []Task, rng *rand.Rand) (*Generator, error) {
	if len(catalog) == 0 {
		return nil, errors.New("catalog cannot be empty")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}

	for i, t := range catalog {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
	}

	c := make([]Task, len(catalog))
	copy(c, catalog)

	return &Generator{catalog: c, rng: rng}, nil
}

// Generate draws steps tasks uniformly with replacement.
func (g *Generator) Generate(steps int) (*Scenario, error) {
	if steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	s := &Scenario{
		Tasks:     make([]Task, steps),
		Templates: make([]int, steps),
	}
	for i := range steps {
		idx := g.rng.IntN(len(g.catalog))
		s.Tasks[i] = g.catalog[idx]
		s.Templates[i] = idx
	}

	return s, nil
}
