package config

import (
	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/decision/strategy"
	"github.com/haskel/offloadsim/internal/task"
)

func Default() *Config {
	return &Config{
		Cost: CostConfig{
			Alpha: decision.DefaultAlpha,
		},
		Heuristic: HeuristicConfig{
			Beta: strategy.DefaultBeta,
		},
		Window: WindowConfig{
			MaxLocal:   decision.DefaultMaxLocal,
			MaxOffload: decision.DefaultMaxOffload,
		},
		Scenario: ScenarioConfig{
			Steps: task.DefaultSteps,
			Seed:  42,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			ExportPath: "",
			TableWidth: 20,
		},
	}
}
