package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/haskel/offloadsim/internal/config"
	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/logger"
	"github.com/haskel/offloadsim/internal/report"
	"github.com/haskel/offloadsim/internal/simulation"
)

// Chart size used by --charts.
const (
	chartWidth  = 60
	chartHeight = 12
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run both policies on one scenario and compare them",
	Long: `Generate a seeded scenario, run the heuristic and random policies over it
and print their final costs, a summary and the per-step choice table.`,
	Example: `  offloadsim simulate
  offloadsim simulate --seed 7 --steps 60 --alpha 0.8
  offloadsim simulate --charts --no-table
  offloadsim simulate --json > run.json
  offloadsim simulate --max-local 1 --max-offload 2`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var (
	simExport  string
	simCharts  bool
	simNoTable bool
	simWidth   int
)

func init() {
	addSimulationFlags(simulateCmd)
	simulateCmd.Flags().StringVar(&simExport, "export", "", "write the series as JSON to this path")
	simulateCmd.Flags().BoolVar(&simCharts, "charts", false, "draw cumulative delay, energy and cost charts")
	simulateCmd.Flags().BoolVar(&simNoTable, "no-table", false, "skip the per-step choice table")
	simulateCmd.Flags().IntVar(&simWidth, "width", 0, "steps per table block (default from config)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("export") {
		cfg.Output.ExportPath = simExport
	}
	if cmd.Flags().Changed("width") {
		cfg.Output.TableWidth = simWidth
	}
	if err := applySimulationFlags(cmd, cfg); err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	cmp, err := simulate(cfg, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		if err := report.NewExport(cmp, time.Now()).Encode(out); err != nil {
			return err
		}
	} else if err := writeReport(out, cmp, cfg); err != nil {
		return err
	}

	if path := cfg.Output.ExportPath; path != "" {
		if err := report.NewExport(cmp, time.Now()).WriteFile(path); err != nil {
			return err
		}
		log.Info("series exported", "path", path)
	}

	return nil
}

// simulate runs the comparison described by cfg.
func simulate(cfg *config.Config, log *slog.Logger) (*simulation.Comparison, error) {
	simCfg := cfg.Simulation()
	log.Debug("starting simulation",
		"alpha", simCfg.Alpha,
		"beta", simCfg.Beta,
		"max_local", simCfg.Window.MaxLocal,
		"max_offload", simCfg.Window.MaxOffload,
		"steps", simCfg.Steps,
		"seed", simCfg.Seed,
	)

	cmp, err := simulation.New(simCfg, log).Run()
	if err != nil {
		if errors.Is(err, decision.ErrUndefinedPattern) {
			log.Error("simulation aborted", "error", err)
		}
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	return cmp, nil
}

func writeReport(w io.Writer, cmp *simulation.Comparison, cfg *config.Config) error {
	if err := report.WriteFinalCosts(w, cmp); err != nil {
		return err
	}
	if err := report.WriteSummary(w, cmp); err != nil {
		return err
	}

	if !simNoTable {
		if err := report.WriteTable(w, cmp, cfg.Output.TableWidth); err != nil {
			return err
		}
	}

	if simCharts {
		styles := report.NewStyles(w)
		for _, m := range report.Metrics {
			chart := report.Chart(m.Title(cmp), report.Lines(cmp, m, styles), chartWidth, chartHeight)
			if _, err := fmt.Fprintln(w, chart); err != nil {
				return err
			}
		}
	}

	return nil
}
