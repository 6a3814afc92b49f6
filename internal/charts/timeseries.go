package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/common/model"

	"github.com/akasprzok/hues/internal/category"
)

var lineStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("4")) // blue

var axisStyle = lipgloss.NewStyle().
	Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().
	Foreground(LabelColor)

// LegendEntry describes one plotted series.
type LegendEntry struct {
	Metric     string
	Category   string
	ColorIndex int
	Hex        string
}

// TimeseriesSplit returns the chart and its legend separately. Series are
// colored by the category read from label; several series of one
// category share a color.
func TimeseriesSplit(matrix model.Matrix, scale *category.Scale, label string, width int) (string, []LegendEntry, error) {
	minYValue := model.SampleValue(math.MaxFloat64)
	maxYValue := model.SampleValue(-math.MaxFloat64)
	names := make([]string, len(matrix))
	for i, stream := range matrix {
		names[i] = CategoryOf(stream.Metric, label)
		for _, sample := range stream.Values {
			if sample.Value < minYValue {
				minYValue = sample.Value
			}
			if sample.Value > maxYValue {
				maxYValue = sample.Value
			}
		}
	}

	height := max(width/ChartHeightRatio, MinChartHeight)

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = timeserieslinechart.HourTimeLabelFormatter()
	if minYValue <= maxYValue {
		lc.SetYRange(float64(minYValue), float64(maxYValue))     // set expected Y values (values can be less or greater than what is displayed)
		lc.SetViewYRange(float64(minYValue), float64(maxYValue)) // setting display Y values will fail unless set expected Y values first
	}
	lc.SetStyle(lineStyle)
	lc.SetLineStyle(runes.ThinLineStyle) // ThinLineStyle replaces default linechart arcline rune style

	legend := make([]LegendEntry, 0, len(matrix))
	if len(matrix) > 0 {
		s, err := ScaleFor(scale, names)
		if err != nil {
			return "", nil, err
		}
		colors := s.Palette()
		for i, stream := range matrix {
			idx, err := s.Index(names[i])
			if err != nil {
				return "", nil, err
			}
			metric := stream.Metric.String()
			legend = append(legend, LegendEntry{
				Metric:     metric,
				Category:   names[i],
				ColorIndex: idx,
				Hex:        colors[idx].Hex(),
			})
			lc.SetDataSetStyle(metric, lipgloss.NewStyle().Foreground(Color(colors[idx])))
			for _, sample := range stream.Values {
				lc.PushDataSet(metric, timeserieslinechart.TimePoint{
					Time:  sample.Timestamp.Time(),
					Value: float64(sample.Value),
				})
			}
		}
	}

	lc.DrawBrailleAll()

	return lc.View(), legend, nil
}

// Legend renders entries one per line, each behind a block in its color.
func Legend(entries []LegendEntry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Hex))
		b.WriteString(style.Render(fmt.Sprintf("%c %s", runes.FullBlock, e.Metric)))
	}
	return b.String()
}
