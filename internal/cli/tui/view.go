package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/offloadsim/internal/report"
)

// Space reserved around the chart for title, tabs, axis, legend and footer.
const (
	chromeHeight = 9
	chromeWidth  = 12
)

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	cmp := m.config.Comparison
	metric := m.Metric()

	chartWidth := max(m.width-chromeWidth, 10)
	chartHeight := max(m.height-chromeHeight, 4)

	chart := report.Chart(
		sectionHeaderStyle.Render(metric.Title(cmp)),
		report.Lines(cmp, metric, m.styles),
		chartWidth,
		chartHeight,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabs(),
		chart,
		m.renderFooter(),
	)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("OFFLOADSIM")

	help := helpStyle.Render("q:quit ←→/tab:metric 1-3:jump")

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(help) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), help)
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(report.Metrics))
	for i, metric := range report.Metrics {
		label := fmt.Sprintf(" %d %s ", i+1, metric)
		if i == m.metric {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderFooter() string {
	cmp := m.config.Comparison

	parts := make([]string, 0, len(cmp.Runs())+1)
	for _, run := range cmp.Runs() {
		parts = append(parts, fmt.Sprintf("%s: %.2f (%d degenerate)",
			run.Episode.Policy, run.Episode.TotalCost, run.Episode.DegenerateSteps))
	}
	parts = append(parts, fmt.Sprintf("seed %d", cmp.Seed))

	return helpStyle.Render("  " + strings.Join(parts, " │ "))
}
