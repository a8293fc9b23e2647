package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/report"
	"github.com/haskel/offloadsim/internal/simulation"
)

func testModel(t *testing.T) Model {
	t.Helper()

	cmp, err := simulation.New(simulation.Config{
		Alpha:  decision.DefaultAlpha,
		Beta:   1,
		Window: decision.DefaultWindow(),
		Steps:  30,
		Seed:   42,
	}, nil).Run()
	if err != nil {
		t.Fatalf("simulation failed: %v", err)
	}

	return NewModel(Config{Comparison: cmp, Metric: report.MetricCost})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_InitialMetric(t *testing.T) {
	m := testModel(t)
	if m.Metric() != report.MetricCost {
		t.Errorf("expected cost metric, got %s", m.Metric())
	}
}

func TestUpdate_CyclesMetrics(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(key("tab"))
	m = next.(Model)
	if m.Metric() != report.MetricDelay {
		t.Errorf("expected tab to wrap to delay, got %s", m.Metric())
	}

	next, _ = m.Update(key("left"))
	m = next.(Model)
	if m.Metric() != report.MetricCost {
		t.Errorf("expected left to wrap back to cost, got %s", m.Metric())
	}

	next, _ = m.Update(key("2"))
	m = next.(Model)
	if m.Metric() != report.MetricEnergy {
		t.Errorf("expected 2 to select energy, got %s", m.Metric())
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestView(t *testing.T) {
	m := testModel(t)
	if m.View() != "Loading..." {
		t.Error("expected loading view before first resize")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"OFFLOADSIM", "Cumulative Cost", "heuristic", "random", "seed 42"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestRun_NilComparison(t *testing.T) {
	if err := Run(Config{}); err == nil {
		t.Error("expected error for nil comparison")
	}
}
