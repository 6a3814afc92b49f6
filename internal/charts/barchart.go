package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/common/model"

	"github.com/akasprzok/hues/internal/category"
)

// Bar is one horizontal bar, colored by its category.
type Bar struct {
	Category string
	Label    string
	Value    float64
}

// BarsFromVector turns an instant query result into bars. The value of
// label picks each sample's category; with an empty label the whole
// metric is the category.
func BarsFromVector(vector model.Vector, label string) []Bar {
	bars := make([]Bar, 0, len(vector))
	for _, sample := range vector {
		metric := sample.Metric.String()
		bars = append(bars, Bar{
			Category: CategoryOf(sample.Metric, label),
			Label:    fmt.Sprintf("%s (%d)", metric, int(sample.Value)),
			Value:    float64(sample.Value),
		})
	}
	return bars
}

// CategoryOf returns the value of label in metric, or the whole metric
// when label is empty.
func CategoryOf(metric model.Metric, label string) string {
	if label == "" {
		return metric.String()
	}
	return string(metric[model.LabelName(label)])
}

// Barchart draws bars with colors from scale. Categories the scale does
// not know are colored from an extended copy of it; a nil scale is built
// from the bars' categories.
func Barchart(bars []Bar, scale *category.Scale, width int) (string, error) {
	barData := make([]barchart.BarData, 0, len(bars))
	if len(bars) > 0 {
		names := make([]string, len(bars))
		for i, b := range bars {
			names[i] = b.Category
		}
		s, err := ScaleFor(scale, names)
		if err != nil {
			return "", err
		}
		for _, b := range bars {
			c, err := SeriesColor(s, b.Category)
			if err != nil {
				return "", err
			}
			barData = append(barData, barchart.BarData{
				Label: b.Label,
				Values: []barchart.BarValue{
					{Name: b.Category, Value: b.Value, Style: lipgloss.NewStyle().Foreground(c)},
				},
			})
		}
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View(), nil
}
