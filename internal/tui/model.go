// Package tui is an interactive explorer for hue palettes.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akasprzok/hues/internal/palette"
	"github.com/akasprzok/hues/internal/scheme"
)

// HueStep is how far left/right rotate the hue range, in degrees.
const HueStep = 15.0

// SchemeReloadedMsg delivers a reloaded scheme file, or the error
// reloading it.
type SchemeReloadedMsg struct {
	Scheme *scheme.Scheme
	Err    error
}

// Model is the explorer's Bubble Tea model.
type Model struct {
	scheme    *scheme.Scheme
	overrides []palette.Option
	levelSet  string

	// Current palette parameters
	n      int
	opts   palette.Options
	labels []string
	colors palette.Palette
	err    error

	nInput textinput.Model

	width int
}

// NewModel starts the explorer on n colors with options from s, then
// overrides. A non-empty levelSet labels the colors with that set's
// names and, when n is 0, sizes the palette to it.
func NewModel(s *scheme.Scheme, levelSet string, n int, overrides ...palette.Option) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "number of colors"
	ti.CharLimit = 4
	ti.Width = 10

	m := Model{
		scheme:    s,
		overrides: overrides,
		levelSet:  levelSet,
		n:         n,
		nInput:    ti,
	}
	if err := m.applyScheme(); err != nil {
		return Model{}, err
	}
	if m.n == 0 {
		m.n = max(len(m.labels), 1)
	}
	m.nInput.SetValue(strconv.Itoa(m.n))
	if err := m.regenerate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// applyScheme recomputes options and labels from the current scheme.
func (m *Model) applyScheme() error {
	opts := m.scheme.Options()
	for _, o := range m.overrides {
		o(&opts)
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	var labels []string
	if m.levelSet != "" {
		levels, err := m.scheme.LevelSet(m.levelSet)
		if err != nil {
			return err
		}
		labels = levels.Names()
	}
	m.opts = opts
	m.labels = labels
	return nil
}

// regenerate rebuilds the palette. On error the previous palette stays
// and the error is shown.
func (m *Model) regenerate() error {
	colors, err := palette.Generate(m.n, palette.WithOptions(m.opts))
	if err != nil {
		m.err = err
		return err
	}
	m.colors = colors
	m.err = nil
	return nil
}

// Palette returns the palette on screen.
func (m Model) Palette() palette.Palette {
	return append(palette.Palette(nil), m.colors...)
}

// Options returns the options of the palette on screen.
func (m Model) Options() palette.Options {
	return m.opts
}

// Err returns the error on screen, if any.
func (m Model) Err() error {
	return m.err
}
