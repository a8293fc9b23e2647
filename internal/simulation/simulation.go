// Package simulation runs both placement policies over one generated
// scenario and evaluates their choice sequences.
package simulation

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/decision/strategy"
	"github.com/haskel/offloadsim/internal/evaluate"
	"github.com/haskel/offloadsim/internal/task"
)

// scenarioStream is the PCG stream used by the scenario generator.
const scenarioStream = 0

// Config holds simulation parameters.
type Config struct {
	Alpha  float64
	Beta   float64
	Window decision.Window
	Steps  int
	Seed   uint64
}

// PolicyRun is one policy's episode plus its evaluated series.
type PolicyRun struct {
	Episode *decision.Episode
	Series  *evaluate.Series
}

// Comparison is the outcome of running both policies on the same scenario.
type Comparison struct {
	Alpha     float64
	Seed      uint64
	Scenario  *task.Scenario
	Heuristic *PolicyRun
	Random    *PolicyRun
}

// Runs returns the policy runs in display order.
func (c *Comparison) Runs() []*PolicyRun {
	return []*PolicyRun{c.Heuristic, c.Random}
}

// Simulator wires scenario generation, policies and evaluation.
type Simulator struct {
	cfg     Config
	catalog []task.Task
	logger  *slog.Logger
}

// New creates a simulator over the reference catalog.
func New(cfg Config, logger *slog.Logger) *Simulator {
	return NewWithCatalog(cfg, task.Catalog(), logger)
}

// NewWithCatalog creates a simulator drawing tasks from catalog.
func NewWithCatalog(cfg Config, catalog []task.Task, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Simulator{
		cfg:     cfg,
		catalog: catalog,
		logger:  logger,
	}
}

// Run generates a scenario and evaluates both policies on it.
func (s *Simulator) Run() (*Comparison, error) {
	rng := rand.New(rand.NewPCG(s.cfg.Seed, scenarioStream))
	gen, err := task.NewGenerator(s.catalog, rng)
	if err != nil {
		return nil, fmt.Errorf("scenario generator: %w", err)
	}

	scenario, err := gen.Generate(s.cfg.Steps)
	if err != nil {
		return nil, fmt.Errorf("generate scenario: %w", err)
	}

	s.logger.Debug("scenario generated",
		"steps", scenario.Len(),
		"seed", s.cfg.Seed,
	)

	return s.Compare(scenario)
}

// Compare runs both policies on an existing scenario.
func (s *Simulator) Compare(scenario *task.Scenario) (*Comparison, error) {
	factory := strategy.NewFactory(strategy.Config{
		Alpha:  s.cfg.Alpha,
		Beta:   s.cfg.Beta,
		Window: s.cfg.Window,
		Seed:   s.cfg.Seed,
	})
	runner := decision.NewRunner(s.logger)

	cmp := &Comparison{
		Alpha:    s.cfg.Alpha,
		Seed:     s.cfg.Seed,
		Scenario: scenario,
	}

	var err error
	if cmp.Heuristic, err = s.runPolicy(factory, runner, strategy.PolicyTypeHeuristic, scenario); err != nil {
		return nil, err
	}
	if cmp.Random, err = s.runPolicy(factory, runner, strategy.PolicyTypeRandom, scenario); err != nil {
		return nil, err
	}

	return cmp, nil
}

func (s *Simulator) runPolicy(
	factory *strategy.Factory,
	runner *decision.Runner,
	policyType strategy.PolicyType,
	scenario *task.Scenario,
) (*PolicyRun, error) {
	policy, err := factory.CreateByType(policyType)
	if err != nil {
		return nil, err
	}

	episode, err := runner.Run(policy, scenario.Tasks)
	if err != nil {
		return nil, err
	}

	series, err := evaluate.Evaluate(scenario.Tasks, episode.Choices, s.cfg.Alpha)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", policyType, err)
	}

	return &PolicyRun{Episode: episode, Series: series}, nil
}
