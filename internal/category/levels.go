// Package category orders the levels of a grouping variable and maps
// them to palette colors by position.
package category

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order selects how FromValues derives a level order from raw values.
type Order int

const (
	// OrderFirstSeen keeps levels in the order they first appear.
	OrderFirstSeen Order = iota
	// OrderSorted collates levels for a language.
	OrderSorted
)

func (o Order) String() string {
	switch o {
	case OrderFirstSeen:
		return "first-seen"
	case OrderSorted:
		return "sorted"
	default:
		return "Unknown"
	}
}

// ParseOrder accepts the names returned by Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "first-seen":
		return OrderFirstSeen, nil
	case "sorted":
		return OrderSorted, nil
	default:
		return 0, fmt.Errorf("unknown level order %q", s)
	}
}

// Levels is an immutable ordered set of category names.
type Levels struct {
	names []string
	index map[string]int
}

// NewLevels returns levels in the given order; repeated names keep their
// first position.
func NewLevels(names ...string) Levels {
	l := Levels{index: make(map[string]int, len(names))}
	for _, n := range names {
		if _, ok := l.index[n]; ok {
			continue
		}
		l.index[n] = len(l.names)
		l.names = append(l.names, n)
	}
	return l
}

// FromValues derives levels from a column of raw values. lang is only
// consulted for OrderSorted; an empty tag means language.Und.
func FromValues(values []string, order Order, lang string) (Levels, error) {
	l := NewLevels(values...)
	switch order {
	case OrderFirstSeen:
		return l, nil
	case OrderSorted:
		tag := language.Und
		if lang != "" {
			t, err := language.Parse(lang)
			if err != nil {
				return Levels{}, fmt.Errorf("parsing collation language: %w", err)
			}
			tag = t
		}
		names := append([]string(nil), l.names...)
		collate.New(tag).SortStrings(names)
		return NewLevels(names...), nil
	default:
		return Levels{}, fmt.Errorf("unknown level order %d", order)
	}
}

// Len returns the number of levels.
func (l Levels) Len() int {
	return len(l.names)
}

// Names returns a copy of the level names in order.
func (l Levels) Names() []string {
	return append([]string(nil), l.names...)
}

// Index returns the position of name.
func (l Levels) Index(name string) (int, bool) {
	i, ok := l.index[name]
	return i, ok
}

// Union appends names not already present, leaving existing positions
// untouched. The result has more levels, so a Scale built on it spaces its
// hues more finely than one built on l.
func (l Levels) Union(names ...string) Levels {
	all := make([]string, 0, len(l.names)+len(names))
	all = append(all, l.names...)
	all = append(all, names...)
	return NewLevels(all...)
}
