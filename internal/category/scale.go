package category

import (
	"fmt"

	"github.com/akasprzok/hues/internal/palette"
)

// UnknownCategoryError reports a name that is not one of a Scale's levels.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Name)
}

func (e *UnknownCategoryError) Unwrap() error {
	return palette.ErrIndexOutOfRange
}

// Scale maps categories to colors of a palette sized to all of its levels.
// Restricting the displayed categories never changes their colors.
type Scale struct {
	levels Levels
	opts   palette.Options
	colors palette.Palette
}

// NewScale generates the palette for levels. It fails when levels is empty
// or opts are invalid.
func NewScale(levels Levels, opts ...palette.Option) (*Scale, error) {
	o := palette.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	colors, err := palette.Generate(levels.Len(), palette.WithOptions(o))
	if err != nil {
		return nil, fmt.Errorf("building scale: %w", err)
	}
	return &Scale{levels: levels, opts: o, colors: colors}, nil
}

// Levels returns the levels the scale was built on.
func (s *Scale) Levels() Levels {
	return s.levels
}

// Options returns the palette options the scale was built with.
func (s *Scale) Options() palette.Options {
	return s.opts
}

// Palette returns the color of every level, in level order.
func (s *Scale) Palette() palette.Palette {
	return append(palette.Palette(nil), s.colors...)
}

// Index returns the position of name, or an *UnknownCategoryError.
func (s *Scale) Index(name string) (int, error) {
	i, ok := s.levels.Index(name)
	if !ok {
		return 0, &UnknownCategoryError{Name: name}
	}
	return i, nil
}

// Color returns the color assigned to name.
func (s *Scale) Color(name string) (palette.Color, error) {
	i, err := s.Index(name)
	if err != nil {
		return palette.Color{}, err
	}
	return s.colors[i], nil
}

// Colors returns the colors of names in the order given.
func (s *Scale) Colors(names ...string) (palette.Palette, error) {
	idx := make([]int, len(names))
	for j, n := range names {
		i, err := s.Index(n)
		if err != nil {
			return nil, err
		}
		idx[j] = i
	}
	return palette.Select(s.levels.Len(), idx, palette.WithOptions(s.opts))
}

// Restrict returns the displayed subset of the scale: names with the
// colors they have in the full scale.
func (s *Scale) Restrict(names ...string) (Levels, palette.Palette, error) {
	sub := NewLevels(names...)
	colors, err := s.Colors(sub.names...)
	if err != nil {
		return Levels{}, nil, err
	}
	return sub, colors, nil
}

// Extend returns s when every name is one of its levels. Otherwise it
// returns a new scale over s's levels followed by the unknown names; the
// larger level count reassigns every color.
func (s *Scale) Extend(names ...string) (*Scale, error) {
	extended := s.levels.Union(names...)
	if extended.Len() == s.levels.Len() {
		return s, nil
	}
	return NewScale(extended, palette.WithOptions(s.opts))
}
