package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/akasprzok/hues/internal/commands"
)

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	ctx := kong.Parse(&commands.Cli,
		kong.Name("hues"),
		kong.Description("Stable categorical hue palettes for plots and terminal charts."),
		kong.UsageOnError(),
	)

	log, err := commands.NewLogger(commands.Cli.LogLevel, commands.Cli.LogFormat)
	ctx.FatalIfErrorf(err)

	runCtx, err := commands.NewContext(&commands.Cli.Globals, log)
	ctx.FatalIfErrorf(err)

	// Call the Run() method of the selected parsed command.
	err = ctx.Run(runCtx)
	ctx.FatalIfErrorf(err)
}
