package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/simulation"
	"github.com/haskel/offloadsim/internal/task"
)

// WriteFinalCosts writes one "<policy> final cost" line per policy.
func WriteFinalCosts(w io.Writer, cmp *simulation.Comparison) error {
	for _, run := range cmp.Runs() {
		if _, err := fmt.Fprintf(w, "%s final cost: %.2f\n", run.Episode.Policy, run.Episode.TotalCost); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes a per-policy table of totals and choice counts.
func WriteSummary(w io.Writer, cmp *simulation.Comparison) error {
	styles := NewStyles(w)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers("policy", "total cost", "delay", "energy", "replayed cost", "local", "offload", "degenerate").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		})

	for _, run := range cmp.Runs() {
		delay, energy, cost := run.Series.Final()
		t.Row(
			run.Episode.Policy,
			formatFloat(run.Episode.TotalCost),
			formatFloat(delay),
			formatFloat(energy),
			formatFloat(cost),
			strconv.Itoa(run.Episode.Count(decision.Local)),
			strconv.Itoa(run.Episode.Count(decision.Offload)),
			strconv.Itoa(run.Episode.DegenerateSteps),
		)
	}

	_, err := fmt.Fprintf(w, "alpha=%s seed=%d steps=%d\n%s\n",
		formatFloat(cmp.Alpha), cmp.Seed, cmp.Scenario.Len(), t.Render())
	return err
}

// WriteCatalog lists catalog templates with their local and offload costs.
func WriteCatalog(w io.Writer, catalog []task.Task, costs decision.CostModel) error {
	styles := NewStyles(w)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers("id", "t_local", "e_local", "t_comm", "t_edge", "e_comm", "cost local", "cost offload", "cheaper").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		})

	for i, tk := range catalog {
		local, offload := costs.Local(tk), costs.Offload(tk)
		cheaper := decision.Local
		if offload <= local {
			cheaper = decision.Offload
		}
		t.Row(
			fmt.Sprintf("T%d", i),
			formatFloat(tk.LocalTime),
			formatFloat(tk.LocalEnergy),
			formatFloat(tk.CommTime),
			formatFloat(tk.EdgeTime),
			formatFloat(tk.CommEnergy),
			formatFloat(local),
			formatFloat(offload),
			cheaper.String(),
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
