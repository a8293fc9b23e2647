package tui

import (
	"github.com/haskel/offloadsim/internal/report"
	"github.com/haskel/offloadsim/internal/simulation"
)

// Config holds TUI configuration
type Config struct {
	Comparison *simulation.Comparison
	Metric     report.Metric
}

// Model represents the TUI state
type Model struct {
	config Config
	styles report.Styles

	// UI state
	width  int
	height int
	metric int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	metric := 0
	for i, m := range report.Metrics {
		if m == cfg.Metric {
			metric = i
		}
	}

	return Model{
		config: cfg,
		styles: report.StylesFor(renderer),
		metric: metric,
	}
}

// Metric returns the metric currently on screen.
func (m Model) Metric() report.Metric {
	return report.Metrics[m.metric]
}
