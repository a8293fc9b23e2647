package cli

import (
	"github.com/spf13/cobra"

	"github.com/haskel/offloadsim/internal/config"
	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/decision/strategy"
	"github.com/haskel/offloadsim/internal/task"
)

// Simulation overrides shared by simulate and plot. Values only apply when
// the flag was set on the command line.
var (
	simSeed       uint64
	simSteps      int
	simAlpha      float64
	simBeta       float64
	simMaxLocal   int
	simMaxOffload int
)

func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&simSeed, "seed", 42, "scenario and random policy seed")
	cmd.Flags().IntVar(&simSteps, "steps", task.DefaultSteps, "number of decision steps")
	cmd.Flags().Float64Var(&simAlpha, "alpha", decision.DefaultAlpha, "delay weight in the blended cost")
	cmd.Flags().Float64Var(&simBeta, "beta", strategy.DefaultBeta, "heuristic bias scale")
	cmd.Flags().IntVar(&simMaxLocal, "max-local", decision.DefaultMaxLocal, "max local choices in any four consecutive steps")
	cmd.Flags().IntVar(&simMaxOffload, "max-offload", decision.DefaultMaxOffload, "max offload choices in any four consecutive steps")
}

// applySimulationFlags copies explicitly set flags over cfg and revalidates.
func applySimulationFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("seed") {
		cfg.Scenario.Seed = simSeed
	}
	if flags.Changed("steps") {
		cfg.Scenario.Steps = simSteps
	}
	if flags.Changed("alpha") {
		cfg.Cost.Alpha = simAlpha
	}
	if flags.Changed("beta") {
		cfg.Heuristic.Beta = simBeta
	}
	if flags.Changed("max-local") {
		cfg.Window.MaxLocal = simMaxLocal
	}
	if flags.Changed("max-offload") {
		cfg.Window.MaxOffload = simMaxOffload
	}

	return cfg.Validate()
}
