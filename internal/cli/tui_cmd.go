package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/offloadsim/internal/cli/tui"
	"github.com/haskel/offloadsim/internal/logger"
	"github.com/haskel/offloadsim/internal/report"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Browse cumulative charts in an interactive TUI",
	Long: `Run the comparison and open an interactive terminal viewer with the
cumulative delay, energy and cost curves of both policies.

Examples:
  offloadsim plot                  # Default scenario, cost chart first
  offloadsim plot --metric delay   # Start on the delay chart
  offloadsim plot --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

var plotMetric string

func init() {
	addSimulationFlags(plotCmd)
	plotCmd.Flags().StringVar(&plotMetric, "metric", report.MetricCost.String(), "initial chart (delay, energy, cost)")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	metric, err := parseMetric(plotMetric)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applySimulationFlags(cmd, cfg); err != nil {
		return err
	}

	cmp, err := simulate(cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format))
	if err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Comparison: cmp,
		Metric:     metric,
	})
}

func parseMetric(name string) (report.Metric, error) {
	for _, m := range report.Metrics {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q (want delay, energy or cost)", name)
}
