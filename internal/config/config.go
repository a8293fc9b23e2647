package config

import (
	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/simulation"
)

type Config struct {
	Cost      CostConfig      `yaml:"cost"`
	Heuristic HeuristicConfig `yaml:"heuristic"`
	Window    WindowConfig    `yaml:"window"`
	Scenario  ScenarioConfig  `yaml:"scenario"`
	Logging   LoggingConfig   `yaml:"logging"`
	Output    OutputConfig    `yaml:"output"`
}

// CostConfig holds the delay/energy weighting.
type CostConfig struct {
	// Alpha weights delay against energy: cost = alpha*delay + (1-alpha)*energy.
	Alpha float64 `yaml:"alpha"`
}

// HeuristicConfig holds heuristic policy parameters.
type HeuristicConfig struct {
	// Beta scales the history bias factor.
	Beta float64 `yaml:"beta"`
}

// WindowConfig holds the rate limits over any four consecutive choices.
type WindowConfig struct {
	MaxLocal   int `yaml:"max_local"`
	MaxOffload int `yaml:"max_offload"`
}

type ScenarioConfig struct {
	Steps int    `yaml:"steps"`
	Seed  uint64 `yaml:"seed"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type OutputConfig struct {
	// ExportPath, if set, receives a JSON document with both policies' series.
	ExportPath string `yaml:"export_path"`
	// TableWidth is the number of steps per table block.
	TableWidth int `yaml:"table_width"`
}

// DecisionWindow converts the window section into rate limits.
func (c *Config) DecisionWindow() decision.Window {
	return decision.Window{
		MaxLocal:   c.Window.MaxLocal,
		MaxOffload: c.Window.MaxOffload,
	}
}

// Simulation returns the simulation parameters.
func (c *Config) Simulation() simulation.Config {
	return simulation.Config{
		Alpha:  c.Cost.Alpha,
		Beta:   c.Heuristic.Beta,
		Window: c.DecisionWindow(),
		Steps:  c.Scenario.Steps,
		Seed:   c.Scenario.Seed,
	}
}
