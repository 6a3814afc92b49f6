package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akasprzok/hues/internal/charts"
)

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	s.WriteString(m.renderInput())
	s.WriteString("\n")

	s.WriteString(m.renderSwatch())
	s.WriteString("\n")

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Padding(0, 2)
		s.WriteString(errorStyle.Render(ErrorStyle.Render("Error: ") + m.err.Error()))
		s.WriteString("\n")
	}

	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m Model) renderStatusBar() string {
	direction := "clockwise"
	if m.opts.Direction < 0 {
		direction = "counter-clockwise"
	}
	text := fmt.Sprintf("  n: %d   hues: %g..%g   chroma: %g   luminance: %g   %s",
		m.n, m.opts.HueStart, m.opts.HueEnd, m.opts.Chroma, m.opts.Luminance, direction)
	if m.levelSet != "" {
		text += "   levels: " + m.levelSet
	}

	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.width).
		Padding(0, 1)

	return statusStyle.Render(text)
}

func (m Model) renderInput() string {
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if m.nInput.Focused() {
		inputStyle = inputStyle.BorderForeground(lipgloss.Color("205"))
	} else {
		inputStyle = inputStyle.BorderForeground(lipgloss.Color("63"))
	}

	label := lipgloss.NewStyle().Bold(true).Render("Colors: ")
	return inputStyle.Render(label + m.nInput.View())
}

func (m Model) renderSwatch() string {
	swatchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)
	return swatchStyle.Render(charts.Swatch(m.colors, nil, m.labels))
}

func (m Model) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.width).
		Padding(0, 1)

	helpText := "  ←/→: rotate | r: reverse | +/-: colors | /: set colors | q: quit"
	if m.nInput.Focused() {
		helpText = "  Enter: apply | Esc: cancel"
	}
	return helpStyle.Render(helpText)
}
