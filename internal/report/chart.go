package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/offloadsim/internal/simulation"
)

// Metric selects one of the three cumulative series.
type Metric int

const (
	MetricDelay Metric = iota
	MetricEnergy
	MetricCost
)

// Metrics lists all metrics in display order.
var Metrics = []Metric{MetricDelay, MetricEnergy, MetricCost}

func (m Metric) String() string {
	switch m {
	case MetricDelay:
		return "delay"
	case MetricEnergy:
		return "energy"
	case MetricCost:
		return "cost"
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// Title returns the chart title for m.
func (m Metric) Title(cmp *simulation.Comparison) string {
	steps := cmp.Scenario.Len()
	switch m {
	case MetricDelay:
		return fmt.Sprintf("Cumulative Delay (%d steps)", steps)
	case MetricEnergy:
		return fmt.Sprintf("Cumulative Energy (%d steps)", steps)
	}
	return fmt.Sprintf("Cumulative Cost (alpha=%g)", cmp.Alpha)
}

// Line is one plotted series.
type Line struct {
	Label  string
	Values []float64
	Glyph  rune
	Style  lipgloss.Style
}

// Lines returns one line per policy for metric m.
func Lines(cmp *simulation.Comparison, m Metric, styles Styles) []Line {
	glyphs := []rune{'●', '◆'}
	lines := make([]Line, 0, 2)

	for i, run := range cmp.Runs() {
		var values []float64
		switch m {
		case MetricDelay:
			values = run.Series.Delay
		case MetricEnergy:
			values = run.Series.Energy
		default:
			values = run.Series.Cost
		}
		lines = append(lines, Line{
			Label:  run.Episode.Policy,
			Values: values,
			Glyph:  glyphs[i%len(glyphs)],
			Style:  styles.ForPolicy(run.Episode.Policy),
		})
	}

	return lines
}

const overlapGlyph = '*'

// Chart renders lines on a width x height character grid with a y axis
// starting at zero. Columns sample the series evenly from first to last step.
func Chart(title string, lines []Line, width, height int) string {
	width = max(width, 2)
	height = max(height, 2)

	top := 0.0
	steps := 0
	for _, l := range lines {
		steps = max(steps, len(l.Values))
		for _, v := range l.Values {
			if !math.IsNaN(v) && v > top {
				top = v
			}
		}
	}
	if top == 0 {
		top = 1
	}

	// owner[r][c] is the index of the line drawn in that cell, -1 for empty
	// and -2 when several lines meet.
	owner := make([][]int, height)
	for r := range owner {
		owner[r] = make([]int, width)
		for c := range owner[r] {
			owner[r][c] = -1
		}
	}

	for li, l := range lines {
		n := len(l.Values)
		if n == 0 {
			continue
		}
		for c := range width {
			i := 0
			if n > 1 {
				i = c * (n - 1) / (width - 1)
			}
			row := int(math.Round(l.Values[i] / top * float64(height-1)))
			row = min(max(row, 0), height-1)
			r := height - 1 - row

			switch owner[r][c] {
			case -1:
				owner[r][c] = li
			case li:
			default:
				owner[r][c] = -2
			}
		}
	}

	topLabel := formatAxis(top)
	labelWidth := max(len(topLabel), 1)

	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')

	for r := range height {
		label := ""
		switch r {
		case 0:
			label = topLabel
		case height - 1:
			label = "0"
		}
		fmt.Fprintf(&b, "%*s │", labelWidth, label)

		for c := range width {
			switch o := owner[r][c]; o {
			case -1:
				b.WriteByte(' ')
			case -2:
				b.WriteRune(overlapGlyph)
			default:
				b.WriteString(lines[o].Style.Render(string(lines[o].Glyph)))
			}
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%*s └%s\n", labelWidth, "", strings.Repeat("─", width))

	last := fmt.Sprintf("step %d", steps)
	pad := max(width-len("step 1")-len(last), 1)
	fmt.Fprintf(&b, "%*s  step 1%s%s\n", labelWidth, "", strings.Repeat(" ", pad), last)

	legend := make([]string, 0, len(lines))
	for _, l := range lines {
		final := 0.0
		if n := len(l.Values); n > 0 {
			final = l.Values[n-1]
		}
		legend = append(legend, fmt.Sprintf("%s %s (%s)", l.Style.Render(string(l.Glyph)), l.Label, formatFloat(final)))
	}
	fmt.Fprintf(&b, "%*s  %s", labelWidth, "", strings.Join(legend, "   "))

	return b.String()
}

func formatAxis(v float64) string {
	if v >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
