package plot

import (
	"image/color"
	"math"
	"reflect"

	"github.com/aclements/go-gg/gg"

	"github.com/akasprzok/hues/internal/palette"
)

var colorType = reflect.TypeOf((*color.Color)(nil)).Elem()

// hueRanger maps level i of j to the i-th of j evenly spaced hues.
type hueRanger struct {
	opts palette.Options
}

var _ gg.DiscreteRanger = (*hueRanger)(nil)

// HueRanger returns a go-gg ranger for ordinal scales. Unlike a
// category.Scale, a group's color depends on how many groups the plot
// holds.
func HueRanger(opts ...palette.Option) (gg.DiscreteRanger, error) {
	o := palette.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &hueRanger{opts: o}, nil
}

func (r *hueRanger) RangeType() reflect.Type {
	return colorType
}

func (r *hueRanger) Levels() (min, max int) {
	return 1, math.MaxInt32
}

func (r *hueRanger) MapLevel(i, j int) interface{} {
	if j < 1 {
		j = 1
	}
	if i < 0 {
		i = 0
	} else if i >= j {
		i = j - 1
	}
	p, err := palette.Select(j, []int{i}, palette.WithOptions(r.opts))
	if err != nil {
		// Options were validated and i is clamped into range.
		panic(err)
	}
	return p[0].RGBA()
}
