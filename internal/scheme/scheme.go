// Package scheme loads palette defaults and named level sets from a TOML
// file, so several plots can share one category order.
package scheme

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/palette"
)

// ErrUnknownLevelSet is returned for a level set the scheme does not define.
var ErrUnknownLevelSet = errors.New("unknown level set")

// Scheme is the decoded scheme file.
type Scheme struct {
	Palette   PaletteSection      `toml:"palette"`
	Levels    map[string][]string `toml:"levels"`
	Collation CollationSection    `toml:"collation"`
}

// PaletteSection holds optional overrides of the palette defaults.
type PaletteSection struct {
	HueStart  *float64 `toml:"hue_start"`
	HueEnd    *float64 `toml:"hue_end"`
	Chroma    *float64 `toml:"chroma"`
	Luminance *float64 `toml:"luminance"`
	Direction *int     `toml:"direction"`
}

// CollationSection configures OrderSorted level derivation.
type CollationSection struct {
	Language string `toml:"language"`
}

// Default returns an empty scheme, equivalent to the palette defaults.
func Default() *Scheme {
	return &Scheme{Levels: map[string][]string{}}
}

// Load reads and parses the scheme at path.
func Load(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheme: %w", err)
	}
	s, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scheme document. Unknown keys and invalid palette
// values are errors.
func Parse(data string) (*Scheme, error) {
	s := Default()
	md, err := toml.Decode(data, s)
	if err != nil {
		return nil, fmt.Errorf("parsing scheme: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parsing scheme: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Options().Validate(); err != nil {
		return nil, fmt.Errorf("parsing scheme: %w", err)
	}
	for name, names := range s.Levels {
		if len(names) == 0 {
			return nil, fmt.Errorf("parsing scheme: level set %q is empty", name)
		}
	}
	return s, nil
}

// Options returns the palette defaults with the scheme's overrides applied.
func (s *Scheme) Options() palette.Options {
	o := palette.DefaultOptions()
	p := s.Palette
	if p.HueStart != nil {
		o.HueStart = *p.HueStart
	}
	if p.HueEnd != nil {
		o.HueEnd = *p.HueEnd
	}
	if p.Chroma != nil {
		o.Chroma = *p.Chroma
	}
	if p.Luminance != nil {
		o.Luminance = *p.Luminance
	}
	if p.Direction != nil {
		o.Direction = *p.Direction
	}
	return o
}

// LevelSet returns the named level set.
func (s *Scheme) LevelSet(name string) (category.Levels, error) {
	names, ok := s.Levels[name]
	if !ok {
		return category.Levels{}, fmt.Errorf("%w: %q", ErrUnknownLevelSet, name)
	}
	return category.NewLevels(names...), nil
}

// LevelSetNames returns the defined level set names, sorted.
func (s *Scheme) LevelSetNames() []string {
	names := make([]string, 0, len(s.Levels))
	for name := range s.Levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
