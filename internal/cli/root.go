package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/offloadsim/internal/config"
)

var (
	// Global flags
	cfgFile string
	jsonOut bool
	verbose bool

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "offloadsim",
	Short: "Edge offloading decision simulator",
	Long: `Offloadsim compares two task placement policies on a seeded scenario.
Each step a task is either run locally or offloaded to an edge server, subject
to rate limits over any four consecutive choices. A history-biased heuristic
is compared against a uniformly random baseline on cumulative delay, energy
and blended cost.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// IsJSON returns whether JSON output is enabled
func IsJSON() bool {
	return jsonOut
}

// IsVerbose returns whether verbose output is enabled
func IsVerbose() bool {
	return verbose
}

// loadConfig reads the config file when one is given, defaults otherwise.
// Verbose output forces the debug log level.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}
