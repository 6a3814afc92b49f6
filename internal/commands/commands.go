package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/palette"
	"github.com/akasprzok/hues/internal/scheme"
)

// Context is bound to every command's Run method.
type Context struct {
	Timeout    time.Duration
	Log        *logrus.Entry
	Out        io.Writer
	Scheme     *scheme.Scheme
	SchemePath string
	Overrides  []palette.Option
}

// Globals are the flags shared by every command.
type Globals struct {
	Scheme    string        `help:"Path to a TOML scheme file." env:"HUES_SCHEME" type:"path"`
	Timeout   time.Duration `help:"Timeout for Prometheus queries." default:"60s"`
	LogLevel  string        `help:"Log level." default:"warn" enum:"trace,debug,info,warn,error"`
	LogFormat string        `help:"Log format." default:"text" enum:"text,json"`

	HueStart  *float64 `help:"First hue of the wheel, in degrees." name:"hue-start"`
	HueEnd    *float64 `help:"End of the hue range, in degrees; the range is half-open." name:"hue-end"`
	Chroma    *float64 `help:"Chroma of every color."`
	Luminance *float64 `help:"Luminance of every color, 0 to 100."`
	Direction *int     `help:"1 for increasing hues, -1 for decreasing."`
}

type CLI struct {
	Globals

	Generate    GenerateCmd    `cmd:"" help:"Generate evenly spaced hues."`
	Select      SelectCmd      `cmd:"" help:"Select colors of a larger palette."`
	Swatch      SwatchCmd      `cmd:"" help:"Show the colors of a scheme level set."`
	Plot        PlotCmd        `cmd:"" help:"Plot a CSV file as SVG."`
	Longer      LongerCmd      `cmd:"" help:"Reshape a wide CSV file to long form."`
	Query       QueryCmd       `cmd:"" help:"Instant Query."`
	QueryRange  QueryRangeCmd  `cmd:"" help:"Range Query."`
	Explore     ExploreCmd     `cmd:"" help:"Explore palettes interactively."`
	FormatQuery FormatQueryCmd `cmd:"" help:"Format query."`
}

var Cli CLI

// NewLogger builds the process logger. Logs go to stderr so command
// output stays pipeable.
func NewLogger(level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}

// NewContext loads the scheme named by g, if any, and collects the palette
// flag overrides.
func NewContext(g *Globals, log *logrus.Logger) (*Context, error) {
	ctx := &Context{
		Timeout:    g.Timeout,
		Log:        logrus.NewEntry(log),
		Out:        os.Stdout,
		Scheme:     scheme.Default(),
		SchemePath: g.Scheme,
	}
	if g.Scheme != "" {
		s, err := scheme.Load(g.Scheme)
		if err != nil {
			return nil, err
		}
		ctx.Scheme = s
		ctx.Log.WithField("path", g.Scheme).Debug("loaded scheme")
	}

	if g.HueStart != nil {
		ctx.Overrides = append(ctx.Overrides, palette.WithHueStart(*g.HueStart))
	}
	if g.HueEnd != nil {
		ctx.Overrides = append(ctx.Overrides, palette.WithHueEnd(*g.HueEnd))
	}
	if g.Chroma != nil {
		ctx.Overrides = append(ctx.Overrides, palette.WithChroma(*g.Chroma))
	}
	if g.Luminance != nil {
		ctx.Overrides = append(ctx.Overrides, palette.WithLuminance(*g.Luminance))
	}
	if g.Direction != nil {
		ctx.Overrides = append(ctx.Overrides, palette.WithDirection(*g.Direction))
	}

	if _, err := ctx.Options(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Options returns the scheme's palette options with flag overrides applied.
func (c *Context) Options() (palette.Options, error) {
	o := c.Scheme.Options()
	for _, opt := range c.Overrides {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return palette.Options{}, err
	}
	return o, nil
}

// Scale builds the scale of the named level set.
func (c *Context) Scale(levelSet string) (*category.Scale, error) {
	levels, err := c.Scheme.LevelSet(levelSet)
	if err != nil {
		return nil, err
	}
	return c.scaleOf(levels)
}

func (c *Context) scaleOf(levels category.Levels) (*category.Scale, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return category.NewScale(levels, palette.WithOptions(opts))
}

func (c *Context) logger(component string) *logrus.Entry {
	return c.Log.WithField("component", component)
}

func (c *Context) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.Out, format, args...)
	return err
}
