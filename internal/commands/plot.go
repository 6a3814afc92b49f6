package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/column"
	"github.com/akasprzok/hues/internal/dataset"
	"github.com/akasprzok/hues/internal/palette"
	"github.com/akasprzok/hues/internal/plot"
)

type PlotCmd struct {
	File     string `arg:"" name:"file" help:"CSV file with a header row." type:"existingfile"`
	X        string `name:"x" help:"Numeric column for the x axis." required:""`
	Y        string `name:"y" help:"Numeric column for the y axis." required:""`
	Group    string `name:"group" short:"g" help:"Categorical column that picks each row's color."`
	LevelSet string `name:"levels" help:"Scheme level set giving every group a fixed color."`
	Order    string `name:"order" help:"Fix group colors by the groups in the data, first-seen or sorted, when no level set is given."`
	Geom     string `name:"geom" help:"Layer to draw." default:"points" enum:"points,lines"`
	Title    string `name:"title" help:"Plot title."`
	Width    int    `name:"width" help:"Width in pixels." default:"640"`
	Height   int    `name:"height" help:"Height in pixels." default:"480"`
	Output   string `name:"output" short:"o" help:"SVG file to write, - for stdout." default:"-"`
}

func (p *PlotCmd) Run(ctx *Context) error {
	log := ctx.logger("plot")

	f, err := os.Open(p.File)
	if err != nil {
		return err
	}
	defer f.Close()
	t, err := dataset.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("%s: %w", p.File, err)
	}

	scale, err := p.scale(ctx, t)
	if err != nil {
		return err
	}
	opts, err := ctx.Options()
	if err != nil {
		return err
	}
	geom, err := plot.ParseGeom(p.Geom)
	if err != nil {
		return err
	}

	gp, err := plot.Build(t, plot.Spec{
		X:     p.X,
		Y:     p.Y,
		Group: p.Group,
		Geom:  geom,
		Title: p.Title,
	}, scale, palette.WithOptions(opts))
	if err != nil {
		return err
	}

	var w io.Writer = ctx.Out
	if p.Output != "-" {
		out, err := os.Create(p.Output)
		if err != nil {
			return err
		}
		defer out.Close()
		w = out
	}
	if err := plot.Write(w, gp, p.Width, p.Height); err != nil {
		return err
	}
	log.WithField("rows", t.Len()).WithField("output", p.Output).Info("wrote plot")
	return nil
}

// scale returns nil when group colors should follow the groups present.
func (p *PlotCmd) scale(ctx *Context, t *table.Table) (*category.Scale, error) {
	if p.Group == "" {
		return nil, nil
	}
	if p.LevelSet != "" {
		return ctx.Scale(p.LevelSet)
	}
	if p.Order == "" {
		return nil, nil
	}
	order, err := category.ParseOrder(p.Order)
	if err != nil {
		return nil, err
	}
	groups, err := column.Strings(t, p.Group)
	if err != nil {
		return nil, err
	}
	levels, err := category.FromValues(groups.Values(), order, ctx.Scheme.Collation.Language)
	if err != nil {
		return nil, err
	}
	return ctx.scaleOf(levels)
}

type LongerCmd struct {
	File  string   `arg:"" name:"file" help:"CSV file with a header row." type:"existingfile"`
	Cols  []string `arg:"" name:"cols" help:"Columns to fold into key/value pairs."`
	Key   string   `name:"key" help:"Name of the column holding folded column names." default:"name"`
	Value string   `name:"value" help:"Name of the column holding folded values." default:"value"`
}

func (l *LongerCmd) Run(ctx *Context) error {
	f, err := os.Open(l.File)
	if err != nil {
		return err
	}
	defer f.Close()
	t, err := dataset.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("%s: %w", l.File, err)
	}
	long, err := dataset.Longer(t, l.Key, l.Value, l.Cols...)
	if err != nil {
		return err
	}
	return dataset.WriteCSV(ctx.Out, long)
}
