package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/charts"
	"github.com/akasprzok/hues/internal/prometheus"
	"github.com/akasprzok/hues/internal/tui"
)

type queryRangeState int

const (
	stateRangeLoading queryRangeState = iota
	stateRangeSuccess
	stateRangeError
)

type queryRangeResultMsg struct {
	matrix   model.Matrix
	warnings v1.Warnings
	elapsed  time.Duration
	err      error
}

type QueryRangeModel struct {
	promClient prometheus.Client
	query      string
	timeRange  time.Duration
	step       time.Duration
	timeout    time.Duration
	label      string
	resolve    func(names []string) (*category.Scale, error)

	state         queryRangeState
	spinner       spinner.Model
	matrix        model.Matrix
	warnings      v1.Warnings
	err           error
	elapsed       time.Duration
	width         int
	chartContent  string
	legendEntries []charts.LegendEntry
	quitting      bool
}

// NewQueryRangeModel runs query over the last timeRange and charts it.
// resolve picks the scale for the categories of the result.
func NewQueryRangeModel(client prometheus.Client, query string, timeRange, step, timeout time.Duration, label string, resolve func([]string) (*category.Scale, error)) QueryRangeModel {
	return QueryRangeModel{
		promClient: client,
		query:      query,
		timeRange:  timeRange,
		step:       step,
		timeout:    timeout,
		label:      label,
		resolve:    resolve,
		state:      stateRangeLoading,
		spinner:    tui.NewLoadingSpinner(),
	}
}

func (m QueryRangeModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.executeQueryRange(),
	)
}

func (m QueryRangeModel) executeQueryRange() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		end := time.Now()
		matrix, warnings, err := m.promClient.QueryRange(ctx, m.query, v1.Range{
			Start: end.Add(-m.timeRange),
			End:   end,
			Step:  m.step,
		})
		return queryRangeResultMsg{
			matrix:   matrix,
			warnings: warnings,
			elapsed:  time.Since(end),
			err:      err,
		}
	}
}

func (m QueryRangeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case queryRangeResultMsg:
		return m.handleRangeQueryResult(msg)
	case spinner.TickMsg:
		if m.state == stateRangeLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m QueryRangeModel) handleRangeQueryResult(msg queryRangeResultMsg) (tea.Model, tea.Cmd) {
	m.matrix = msg.matrix
	m.warnings = msg.warnings
	m.elapsed = msg.elapsed
	m.err = msg.err

	if m.err == nil {
		m.err = m.render()
	}
	if m.err != nil {
		m.state = stateRangeError
		return m, tea.Quit
	}
	m.state = stateRangeSuccess
	return m, nil
}

func (m *QueryRangeModel) render() error {
	scale, err := m.resolve(matrixCategories(m.matrix, m.label))
	if err != nil {
		return err
	}
	width := m.width
	if width <= 0 {
		width = charts.TerminalWidth()
	}
	m.chartContent, m.legendEntries, err = charts.TimeseriesSplit(m.matrix, scale, m.label, width-ChartWidthPadding)
	return err
}

func (m QueryRangeModel) View() string {
	var s strings.Builder

	switch m.state {
	case stateRangeLoading:
		s.WriteString(fmt.Sprintf("\n%s Executing range query: %s (range: %s)\n\n", m.spinner.View(), m.query, m.timeRange))

	case stateRangeError:
		s.WriteString("\n")
		s.WriteString(tui.ErrorStyle.Render("Error: ") + m.err.Error() + "\n")

	case stateRangeSuccess:
		if len(m.warnings) > 0 {
			s.WriteString("\n")
			s.WriteString(tui.WarningStyle.Render("Warnings:\n"))
			for _, w := range m.warnings {
				s.WriteString(tui.WarningStyle.Render(fmt.Sprintf("  • %s\n", w)))
			}
		}

		chartStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

		legendStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			MarginTop(1)

		title := "Legend:"
		if m.label != "" {
			title = fmt.Sprintf("Legend (by %s):", m.label)
		}
		layout := lipgloss.JoinVertical(
			lipgloss.Left,
			chartStyle.Render(m.chartContent),
			legendStyle.Render(title+"\n"+charts.Legend(m.legendEntries)),
		)

		s.WriteString("\n")
		s.WriteString(layout)
		s.WriteString(fmt.Sprintf("\n%d series in %s", len(m.matrix), formatDuration(m.elapsed)))
		if !m.quitting {
			s.WriteString("\n\n")
			s.WriteString("Press q or ctrl+c to quit\n")
		} else {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
