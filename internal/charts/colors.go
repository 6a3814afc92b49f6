package charts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/palette"
)

// AxisColor is the color used for chart axes.
var AxisColor = lipgloss.Color("#CCBB44")

// LabelColor is the color used for chart labels.
var LabelColor = lipgloss.Color("#66CCEE")

// Color converts a palette color for terminal rendering.
func Color(c palette.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// SeriesColor returns the color the scale assigns to the named category.
func SeriesColor(scale *category.Scale, name string) (lipgloss.Color, error) {
	c, err := scale.Color(name)
	if err != nil {
		return "", err
	}
	return Color(c), nil
}

// SeriesStyle returns a lipgloss style with the named category's color as
// foreground.
func SeriesStyle(scale *category.Scale, name string) (lipgloss.Style, error) {
	c, err := SeriesColor(scale, name)
	if err != nil {
		return lipgloss.Style{}, err
	}
	return lipgloss.NewStyle().Foreground(c), nil
}

// ScaleFor returns a scale covering names. A nil base is replaced by one
// over the sorted names; a base missing some names is extended.
func ScaleFor(base *category.Scale, names []string) (*category.Scale, error) {
	if base == nil {
		levels, err := category.FromValues(names, category.OrderSorted, "")
		if err != nil {
			return nil, err
		}
		return category.NewScale(levels)
	}
	return base.Extend(names...)
}
