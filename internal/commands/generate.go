package commands

import (
	"github.com/akasprzok/hues/internal/palette"
)

type GenerateCmd struct {
	N      int      `arg:"" name:"n" help:"Number of colors."`
	Labels []string `name:"label" short:"l" help:"Label of each color, in order."`
	Output string   `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml,swatch,table"`
}

func (g *GenerateCmd) Run(ctx *Context) error {
	opts, err := ctx.Options()
	if err != nil {
		return err
	}
	p, err := palette.Generate(g.N, palette.WithOptions(opts))
	if err != nil {
		return err
	}
	ctx.logger("generate").WithField("n", g.N).Debug("generated palette")
	return writePalette(ctx, p, nil, g.Labels, g.Output)
}

type SelectCmd struct {
	FullN   int      `arg:"" name:"n" help:"Size of the full palette."`
	Indices []int    `arg:"" name:"index" help:"Positions to select, zero-based."`
	Labels  []string `name:"label" short:"l" help:"Label of each selected color, in order."`
	Output  string   `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml,swatch,table"`
}

func (s *SelectCmd) Run(ctx *Context) error {
	opts, err := ctx.Options()
	if err != nil {
		return err
	}
	p, err := palette.Select(s.FullN, s.Indices, palette.WithOptions(opts))
	if err != nil {
		return err
	}
	return writePalette(ctx, p, s.Indices, s.Labels, s.Output)
}
