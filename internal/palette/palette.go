// Package palette generates evenly spaced categorical hues, the same
// palette ggplot2 uses for its default discrete color scale.
//
// Colors are assigned by a category's position in a stable ordering, so a
// subset of categories drawn with Select keeps the colors it would have had
// in the full palette.
package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a point in polar CIE-Luv (R's hcl) space. Hue is in [0, 360).
type Color struct {
	Hue       float64 `json:"hue" yaml:"hue"`
	Chroma    float64 `json:"chroma" yaml:"chroma"`
	Luminance float64 `json:"luminance" yaml:"luminance"`
}

func (c Color) srgb() colorful.Color {
	// Out-of-gamut colors are clamped per channel, like hcl(fixup = TRUE).
	return colorful.LuvLCh(c.Luminance/100, c.Chroma/100, c.Hue).Clamped()
}

// Hex returns the color as a lower-case #rrggbb triplet.
func (c Color) Hex() string {
	return c.srgb().Hex()
}

// RGBA returns the opaque sRGB value of c.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.srgb().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (c Color) String() string {
	return c.Hex()
}

// Palette is an ordered sequence of colors, one per category.
type Palette []Color

// Hex returns the hex triplet of every color in order.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Colors converts p for APIs that take image/color values.
func (p Palette) Colors() []color.Color {
	out := make([]color.Color, len(p))
	for i, c := range p {
		out[i] = c.RGBA()
	}
	return out
}

// Hues returns the hue angle of every color in order.
func (p Palette) Hues() []float64 {
	out := make([]float64, len(p))
	for i, c := range p {
		out[i] = c.Hue
	}
	return out
}

// Generate returns n evenly spaced colors. The hue range [start, end] is
// divided into n+1 points and the last one dropped, since with the default
// 15..375 range it lands on the first.
func Generate(n int, opts ...Option) (Palette, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, invalid("count", "must be at least 1, got %d", n)
	}

	p := make(Palette, n)
	for i := range p {
		p[i] = at(n, i, o)
	}
	return p, nil
}

// MustGenerate is like Generate but panics on error.
func MustGenerate(n int, opts ...Option) Palette {
	p, err := Generate(n, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Select returns the colors at indices of the fullN-color palette, in the
// order given. Indices may repeat.
func Select(fullN int, indices []int, opts ...Option) (Palette, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if fullN < 1 {
		return nil, invalid("count", "must be at least 1, got %d", fullN)
	}
	if len(indices) == 0 {
		return nil, invalid("indices", "must not be empty")
	}
	for _, i := range indices {
		if i < 0 || i >= fullN {
			return nil, &IndexError{Index: i, Len: fullN}
		}
	}

	p := make(Palette, len(indices))
	for j, i := range indices {
		p[j] = at(fullN, i, o)
	}
	return p, nil
}

// at computes the i-th color of an n-color palette without building the
// rest of it. Generate and Select share it so their outputs are identical.
func at(n, i int, o Options) Color {
	k := i
	if o.Direction < 0 {
		k = n - 1 - i
	}
	step := (o.HueEnd - o.HueStart) / float64(n)
	return Color{
		Hue:       normalizeHue(o.HueStart + float64(k)*step),
		Chroma:    o.Chroma,
		Luminance: o.Luminance,
	}
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
