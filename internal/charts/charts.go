package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/common/model"
	"golang.org/x/term"

	"github.com/akasprzok/hues/internal/category"
)

// Charter prints query results colored by category.
type Charter interface {
	PrintVector(model.Vector) error
	PrintMatrix(model.Matrix) error
}

type ntCharts struct {
	out   io.Writer
	scale *category.Scale
	label string
	width int
}

// NewNtCharts returns a Charter drawing with ntcharts. scale may be nil,
// in which case each result is colored over its own sorted categories.
func NewNtCharts(out io.Writer, scale *category.Scale, label string, width int) Charter {
	return &ntCharts{out: out, scale: scale, label: label, width: width}
}

func (c *ntCharts) PrintVector(vector model.Vector) error {
	chart, err := Barchart(BarsFromVector(vector, c.label), c.scale, c.width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, chart)
	return err
}

func (c *ntCharts) PrintMatrix(matrix model.Matrix) error {
	chart, legend, err := TimeseriesSplit(matrix, c.scale, c.label, c.width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.out, "%s\n%s\n", chart, Legend(legend))
	return err
}

// TerminalWidth returns the width of the terminal on stdout, or
// DefaultWidth when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
