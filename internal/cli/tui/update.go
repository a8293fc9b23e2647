package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/offloadsim/internal/report"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(report.Metrics)

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "right", "l":
		m.metric = (m.metric + 1) % n
		return m, nil

	case "shift+tab", "left", "h":
		m.metric = (m.metric + n - 1) % n
		return m, nil

	case "1", "2", "3":
		m.metric = int(msg.String()[0] - '1')
		return m, nil
	}

	return m, nil
}
