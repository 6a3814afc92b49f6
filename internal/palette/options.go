package palette

import "math"

// Defaults of ggplot2's discrete hue scale (scales::hue_pal).
const (
	DefaultHueStart  = 15.0
	DefaultHueEnd    = 375.0
	DefaultChroma    = 100.0
	DefaultLuminance = 65.0
)

// Options controls where on the hue wheel a palette is drawn from.
// Chroma and Luminance use the 0-100 scale of R's hcl().
type Options struct {
	HueStart  float64 `json:"hue_start" yaml:"hue_start"`
	HueEnd    float64 `json:"hue_end" yaml:"hue_end"`
	Chroma    float64 `json:"chroma" yaml:"chroma"`
	Luminance float64 `json:"luminance" yaml:"luminance"`
	// Direction is 1 for ascending hues and -1 for the reversed palette.
	Direction int `json:"direction" yaml:"direction"`
}

// DefaultOptions returns the hue_pal defaults.
func DefaultOptions() Options {
	return Options{
		HueStart:  DefaultHueStart,
		HueEnd:    DefaultHueEnd,
		Chroma:    DefaultChroma,
		Luminance: DefaultLuminance,
		Direction: 1,
	}
}

// Option modifies Options.
type Option func(*Options)

// WithOptions replaces every field at once.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		*dst = o
	}
}

func WithHueRange(start, end float64) Option {
	return func(o *Options) {
		o.HueStart, o.HueEnd = start, end
	}
}

// WithHueStart and WithHueEnd set one bound, leaving the other to the
// options they are applied to.
func WithHueStart(start float64) Option {
	return func(o *Options) {
		o.HueStart = start
	}
}

func WithHueEnd(end float64) Option {
	return func(o *Options) {
		o.HueEnd = end
	}
}

func WithChroma(c float64) Option {
	return func(o *Options) {
		o.Chroma = c
	}
}

func WithLuminance(l float64) Option {
	return func(o *Options) {
		o.Luminance = l
	}
}

func WithDirection(d int) Option {
	return func(o *Options) {
		o.Direction = d
	}
}

// Validate reports the first malformed field as an *ArgumentError.
func (o Options) Validate() error {
	switch {
	case !finite(o.HueStart):
		return invalid("hue start", "must be finite, got %g", o.HueStart)
	case !finite(o.HueEnd):
		return invalid("hue end", "must be finite, got %g", o.HueEnd)
	case o.HueStart >= o.HueEnd:
		return invalid("hue range", "start %g must be less than end %g", o.HueStart, o.HueEnd)
	case o.HueEnd-o.HueStart > 360:
		return invalid("hue range", "span %g exceeds one full turn", o.HueEnd-o.HueStart)
	case !finite(o.Chroma) || o.Chroma < 0:
		return invalid("chroma", "must be a non-negative number, got %g", o.Chroma)
	case !finite(o.Luminance) || o.Luminance < 0 || o.Luminance > 100:
		return invalid("luminance", "must be within [0, 100], got %g", o.Luminance)
	case o.Direction != 1 && o.Direction != -1:
		return invalid("direction", "must be 1 or -1, got %d", o.Direction)
	}
	return nil
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
