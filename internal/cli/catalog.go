package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/report"
	"github.com/haskel/offloadsim/internal/task"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the task templates and their costs",
	Long: `List the reference task templates with their local and offload costs
under the configured delay weight.`,
	Example: `  offloadsim catalog
  offloadsim catalog --alpha 0.9
  offloadsim catalog --json`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

var catalogAlpha float64

func init() {
	catalogCmd.Flags().Float64Var(&catalogAlpha, "alpha", decision.DefaultAlpha, "delay weight in the blended cost")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Cost.Alpha = catalogAlpha
		if err := cfg.Cost.Validate(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	catalog := task.Catalog()

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	}

	return report.WriteCatalog(out, catalog, decision.NewCostModel(cfg.Cost.Alpha))
}
