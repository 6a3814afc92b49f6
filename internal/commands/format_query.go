package commands

import (
	"github.com/akasprzok/hues/internal/prometheus"
)

type FormatQueryCmd struct {
	Query string `arg:"" name:"query" help:"Query to format." required:"true"`
}

func (f *FormatQueryCmd) Run(ctx *Context) error {
	return ctx.printf("%s\n", prometheus.FormatQuery(f.Query))
}
