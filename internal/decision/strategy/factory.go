package strategy

import (
	"fmt"
	"math/rand/v2"

	"github.com/haskel/offloadsim/internal/decision"
)

// randomStream separates the policy's draws from the scenario generator's
// when both are seeded from the same value.
const randomStream = 1

// Config holds policy configuration.
type Config struct {
	Alpha  float64
	Beta   float64
	Window decision.Window
	Seed   uint64
}

// Factory creates placement policies.
type Factory struct {
	config Config
}

// NewFactory creates a new policy factory.
func NewFactory(cfg Config) *Factory {
	return &Factory{config: cfg}
}

// CreateByType creates a policy of the specified type.
// Every random policy it returns starts from the configured seed.
func (f *Factory) CreateByType(policyType PolicyType) (Policy, error) {
	costs := decision.NewCostModel(f.config.Alpha)

	switch policyType {
	case PolicyTypeHeuristic:
		return NewHeuristicPolicy(costs, f.config.Window, f.config.Beta), nil

	case PolicyTypeRandom:
		rng := rand.New(rand.NewPCG(f.config.Seed, randomStream))
		return NewRandomPolicy(costs, f.config.Window, rng), nil

	default:
		return nil, fmt.Errorf("unknown policy type: %s", policyType)
	}
}
