package commands

import (
	"context"
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/charts"
	"github.com/akasprzok/hues/internal/prometheus"
)

// ColorFlags choose how query results are colored.
type ColorFlags struct {
	ColorBy     string `name:"color-by" help:"Label whose value picks each series' color. Defaults to the first by() label of the outermost aggregation."`
	LevelSet    string `name:"levels" help:"Scheme level set giving every category a fixed color."`
	LabelLevels bool   `name:"label-levels" help:"Fix colors over every value the color label takes in Prometheus."`
}

// colorLabel returns the label categories are read from.
func (f ColorFlags) colorLabel(ctx *Context, query string) string {
	if f.ColorBy != "" {
		return f.ColorBy
	}
	label, err := prometheus.ColorLabel(query)
	if err != nil {
		ctx.logger("query").WithError(err).Debug("no color label from query")
		return ""
	}
	return label
}

// fixedScale returns the scale every result is colored on, or nil when
// colors follow the categories of each result.
func (f ColorFlags) fixedScale(ctx context.Context, c *Context, client prometheus.Client, label string) (*category.Scale, error) {
	switch {
	case f.LevelSet != "":
		return c.Scale(f.LevelSet)
	case f.LabelLevels && label != "":
		end := time.Now()
		levels, warnings, err := prometheus.Levels(ctx, client, label, nil, end.Add(-LevelLookback), end, c.Scheme.Collation.Language)
		logWarnings(c, warnings)
		if err != nil {
			return nil, err
		}
		c.logger("query").WithField("label", label).WithField("levels", levels.Len()).Debug("fetched label levels")
		return c.scaleOf(levels)
	}
	return nil, nil
}

// resultScale returns fixed, or a scale over the sorted categories names
// when fixed is nil.
func resultScale(c *Context, fixed *category.Scale, names []string) (*category.Scale, error) {
	if fixed != nil || len(names) == 0 {
		return fixed, nil
	}
	levels, err := category.FromValues(names, category.OrderSorted, c.Scheme.Collation.Language)
	if err != nil {
		return nil, err
	}
	return c.scaleOf(levels)
}

func vectorCategories(vector model.Vector, label string) []string {
	names := make([]string, len(vector))
	for i, sample := range vector {
		names[i] = charts.CategoryOf(sample.Metric, label)
	}
	return names
}

func matrixCategories(matrix model.Matrix, label string) []string {
	names := make([]string, len(matrix))
	for i, stream := range matrix {
		names[i] = charts.CategoryOf(stream.Metric, label)
	}
	return names
}

// seriesColors returns the hex color of each name, extending scale when
// needed.
func seriesColors(scale *category.Scale, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	s, err := charts.ScaleFor(scale, names)
	if err != nil {
		return nil, err
	}
	hexes := make([]string, len(names))
	for i, name := range names {
		c, err := s.Color(name)
		if err != nil {
			return nil, err
		}
		hexes[i] = c.Hex()
	}
	return hexes, nil
}

func logWarnings(c *Context, warnings v1.Warnings) {
	for _, w := range warnings {
		c.logger("prometheus").Warn(w)
	}
}
