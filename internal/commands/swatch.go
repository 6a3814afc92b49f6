package commands

type SwatchCmd struct {
	LevelSet string   `arg:"" name:"levels" help:"Level set defined in the scheme."`
	Only     []string `name:"only" help:"Show only these categories, keeping their colors in the full set."`
	Output   string   `name:"output" short:"o" help:"Output format." default:"swatch" enum:"text,json,yaml,swatch,table"`
}

func (s *SwatchCmd) Run(ctx *Context) error {
	scale, err := ctx.Scale(s.LevelSet)
	if err != nil {
		return err
	}

	names := scale.Levels().Names()
	colors := scale.Palette()
	if len(s.Only) > 0 {
		levels, restricted, err := scale.Restrict(s.Only...)
		if err != nil {
			return err
		}
		names, colors = levels.Names(), restricted
	}

	indices := make([]int, len(names))
	for i, name := range names {
		indices[i], _ = scale.Index(name)
	}
	return writePalette(ctx, colors, indices, names, s.Output)
}
