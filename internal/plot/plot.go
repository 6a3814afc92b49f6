// Package plot builds go-gg plots whose group colors come from the hue
// palette.
package plot

import (
	"fmt"
	"image/color"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/column"
	"github.com/akasprzok/hues/internal/palette"
)

// Geom selects the layer drawn for each group.
type Geom string

const (
	Points Geom = "points"
	Lines  Geom = "lines"
)

// ParseGeom maps a flag value to a Geom.
func ParseGeom(s string) (Geom, error) {
	switch Geom(s) {
	case "", Points:
		return Points, nil
	case Lines:
		return Lines, nil
	}
	return "", fmt.Errorf("unknown geom %q", s)
}

// colorColumn holds the precomputed color of each row in stable mode.
const colorColumn = "hues:color"

// Spec describes one plot.
type Spec struct {
	X, Y  string
	Group string
	Geom  Geom

	Title  string
	XLabel string
	YLabel string
}

// Build resolves the spec's columns in t and lays out the plot. With a
// non-nil scale every group keeps its color from the scale's level set
// whatever subset of groups t holds; groups unknown to the scale are an
// error. With a nil scale the groups present in t are sorted and spread
// over the hue wheel configured by opts.
func Build(t *table.Table, spec Spec, scale *category.Scale, opts ...palette.Option) (*gg.Plot, error) {
	if _, err := column.Floats(t, spec.X); err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	if _, err := column.Floats(t, spec.Y); err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}

	colorBy := ""
	if spec.Group != "" {
		groups, err := column.Strings(t, spec.Group)
		if err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		if scale != nil {
			colors := make([]color.RGBA, groups.Len())
			for i := range colors {
				c, err := scale.Color(groups.At(i))
				if err != nil {
					return nil, fmt.Errorf("row %d: %w", i, err)
				}
				colors[i] = c.RGBA()
			}
			t = table.NewBuilder(t).Add(colorColumn, colors).Done()
			colorBy = colorColumn
		} else {
			colorBy = spec.Group
		}
	}

	p := gg.NewPlot(t)
	if colorBy == spec.Group && colorBy != "" {
		r, err := HueRanger(opts...)
		if err != nil {
			return nil, err
		}
		ordinal := gg.NewOrdinalScale()
		ordinal.Ranger(r)
		p.SetScale("stroke", ordinal)
	}

	switch spec.Geom {
	case Lines:
		p.Add(gg.LayerLines{X: spec.X, Y: spec.Y, Color: colorBy})
	case Points, "":
		p.Add(gg.LayerPoints{X: spec.X, Y: spec.Y, Color: colorBy})
	default:
		return nil, fmt.Errorf("unknown geom %q", spec.Geom)
	}

	if spec.Title != "" {
		p.Add(gg.Title(spec.Title))
	}
	xLabel, yLabel := spec.XLabel, spec.YLabel
	if xLabel == "" {
		xLabel = spec.X
	}
	if yLabel == "" {
		yLabel = spec.Y
	}
	p.Add(gg.AxisLabel("x", xLabel), gg.AxisLabel("y", yLabel))
	return p, nil
}

// Write renders p as SVG.
func Write(w io.Writer, p *gg.Plot, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("plot size %dx%d must be positive", width, height)
	}
	if err := p.WriteSVG(w, width, height); err != nil {
		return fmt.Errorf("rendering svg: %w", err)
	}
	return nil
}
