package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/simulation"
)

// choiceCell abbreviates a choice for the step table.
func choiceCell(c decision.Choice) string {
	switch c {
	case decision.Local:
		return "L"
	case decision.Offload:
		return "O"
	}
	return "?"
}

// WriteTable writes the three-row table (template, heuristic, random) in
// blocks of width steps.
func WriteTable(w io.Writer, cmp *simulation.Comparison, width int) error {
	if width < 1 {
		return fmt.Errorf("table width must be at least 1, got %d", width)
	}

	styles := NewStyles(w)
	steps := cmp.Scenario.Len()

	for start := 0; start < steps; start += width {
		end := min(start+width, steps)

		headers := []string{"step"}
		tasks := []string{"task"}
		heuristic := []string{cmp.Heuristic.Episode.Policy}
		random := []string{cmp.Random.Episode.Policy}
		var choices [2][]decision.Choice

		for i := start; i < end; i++ {
			headers = append(headers, strconv.Itoa(i+1))
			tasks = append(tasks, fmt.Sprintf("T%d", cmp.Scenario.Templates[i]))
			heuristic = append(heuristic, choiceCell(cmp.Heuristic.Episode.Choices[i]))
			random = append(random, choiceCell(cmp.Random.Episode.Choices[i]))
			choices[0] = append(choices[0], cmp.Heuristic.Episode.Choices[i])
			choices[1] = append(choices[1], cmp.Random.Episode.Choices[i])
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(styles.Border).
			Headers(headers...).
			Rows(tasks, heuristic, random).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return styles.Header
				case col == 0:
					return styles.Label
				case row == 0:
					return styles.Cell
				default:
					return styles.ForChoice(choices[row-1][col-1])
				}
			})

		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}

	return nil
}
