package tables

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"github.com/prometheus/common/model"

	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/charts"
	"github.com/akasprzok/hues/internal/palette"
)

const swatch = "██████"

type Model struct {
	table           table.Model
	filterTextInput textinput.Model
}

// PaletteModel lists every color of p with its index in the full palette,
// hue, hex code and label. Rows are filterable by hex and label.
func PaletteModel(p palette.Palette, indices []int, labels []string) Model {
	longestLabel := 0
	rows := make([]table.Row, 0, len(p))
	for i, c := range p {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		idx := i
		if i < len(indices) {
			idx = indices[i]
		}
		longestLabel = max(longestLabel, len(label))
		rows = append(rows, table.NewRow(table.RowData{
			"swatch": table.NewStyledCell(swatch, lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))),
			"index":  idx,
			"hue":    fmt.Sprintf("%.1f", c.Hue),
			"hex":    c.Hex(),
			"label":  label,
		}))
	}

	columns := []table.Column{
		table.NewColumn("swatch", "", len(swatch)+1),
		table.NewColumn("index", "#", 5),
		table.NewColumn("hue", "Hue", 7),
		table.NewColumn("hex", "Hex", 9).WithFiltered(true),
		table.NewColumn("label", "Label", max(longestLabel+1, 7)).WithFiltered(true),
	}

	return newModel(columns, rows)
}

// VectorModel lists an instant query result with each sample's category
// in the color scale assigns it. A nil scale is built from the sorted
// categories of vector.
func VectorModel(vector model.Vector, scale *category.Scale, label string) (Model, error) {
	names := make([]string, len(vector))
	for i, sample := range vector {
		names[i] = charts.CategoryOf(sample.Metric, label)
	}
	if len(vector) > 0 {
		var err error
		if scale, err = charts.ScaleFor(scale, names); err != nil {
			return Model{}, err
		}
	}

	longestMetric := 0
	longestValue := 0
	rows := make([]table.Row, 0, len(vector))
	for i, sample := range vector {
		c, err := scale.Color(names[i])
		if err != nil {
			return Model{}, err
		}
		metric := sample.Metric.String()
		value := sample.Value.String()
		longestMetric = max(longestMetric, len(metric))
		longestValue = max(longestValue, len(value))
		rows = append(rows, table.NewRow(table.RowData{
			"swatch":    table.NewStyledCell(swatch, lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))),
			"metric":    metric,
			"value":     value,
			"timestamp": time.Unix(0, sample.Timestamp.UnixNano()).Format(time.RFC3339),
		}))
	}

	columns := []table.Column{
		table.NewColumn("swatch", "", len(swatch)+1),
		table.NewColumn("metric", "Metric", max(longestMetric+1, 6)).WithFiltered(true),
		table.NewColumn("value", "Value", max(longestValue+1, 6)).WithFiltered(true),
		table.NewColumn("timestamp", "Timestamp", 26).WithFiltered(true),
	}

	return newModel(columns, rows), nil
}

func newModel(columns []table.Column, rows []table.Row) Model {
	return Model{
		table: table.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(10).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}
}

// Rows returns the number of rows after filtering.
func (m Model) Rows() int {
	return len(m.table.GetVisibleRows())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
