package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var renderer = lipgloss.NewRenderer(os.Stdout)

// Colors
var (
	colorPrimary   = lipgloss.Color("86")  // Cyan
	colorSecondary = lipgloss.Color("240") // Gray
	colorMuted     = lipgloss.Color("245") // Light gray
)

// Styles
var (
	// Title bar
	titleStyle = renderer.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Help text
	helpStyle = renderer.NewStyle().
			Foreground(colorMuted)

	// Section headers
	sectionHeaderStyle = renderer.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	// Metric tabs
	tabStyle = renderer.NewStyle().
			Foreground(colorMuted).
			Background(colorSecondary)

	activeTabStyle = renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(colorPrimary)
)
