package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/akasprzok/hues/internal/charts"
	"github.com/akasprzok/hues/internal/palette"
)

// statusColors are the six default wheel colors: red, mustard, green, teal,
// blue, pink.
var statusColors = palette.MustGenerate(6)

// Shared styles used across TUI components.
var (
	SpinnerStyle = lipgloss.NewStyle().Foreground(charts.Color(statusColors[4]))
	ErrorStyle   = lipgloss.NewStyle().Foreground(charts.Color(statusColors[0])).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(charts.Color(statusColors[1]))
)

// NewLoadingSpinner returns the spinner shown while a query runs.
func NewLoadingSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(SpinnerStyle),
	)
}
