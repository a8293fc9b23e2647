package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/offloadsim/internal/decision"
)

// Styles bundles the lipgloss styles used by the text reports. They are bound
// to a renderer so output to a pipe or buffer carries no escape codes.
type Styles struct {
	Header    lipgloss.Style
	Label     lipgloss.Style
	Cell      lipgloss.Style
	Local     lipgloss.Style
	Offload   lipgloss.Style
	Undecided lipgloss.Style
	Heuristic lipgloss.Style
	Random    lipgloss.Style
	Border    lipgloss.Style
}

// NewStyles creates styles rendered for w.
func NewStyles(w io.Writer) Styles {
	return StylesFor(lipgloss.NewRenderer(w))
}

// StylesFor creates styles bound to r.
func StylesFor(r *lipgloss.Renderer) Styles {
	return Styles{
		Header:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Label:     r.NewStyle().Foreground(lipgloss.Color("245")),
		Cell:      r.NewStyle().Foreground(lipgloss.Color("252")),
		Local:     r.NewStyle().Foreground(lipgloss.Color("214")),
		Offload:   r.NewStyle().Foreground(lipgloss.Color("82")),
		Undecided: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Heuristic: r.NewStyle().Foreground(lipgloss.Color("86")),
		Random:    r.NewStyle().Foreground(lipgloss.Color("213")),
		Border:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// ForChoice returns the style of a table cell holding c.
func (s Styles) ForChoice(c decision.Choice) lipgloss.Style {
	switch c {
	case decision.Local:
		return s.Local
	case decision.Offload:
		return s.Offload
	}
	return s.Undecided
}

// ForPolicy returns the style of a policy's chart line.
func (s Styles) ForPolicy(name string) lipgloss.Style {
	if name == "random" {
		return s.Random
	}
	return s.Heuristic
}
