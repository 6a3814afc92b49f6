package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akasprzok/hues/internal/scheme"
	"github.com/akasprzok/hues/internal/tui"
)

type ExploreCmd struct {
	N        int    `arg:"" name:"n" help:"Number of colors; defaults to the level set size, or 3." optional:""`
	LevelSet string `name:"levels" help:"Scheme level set used to label colors."`
	Watch    bool   `name:"watch" help:"Reload the scheme file when it changes." default:"true" negatable:""`
}

func (e *ExploreCmd) Run(ctx *Context) error {
	n := e.N
	if n == 0 && e.LevelSet == "" {
		n = 3
	}
	m, err := tui.NewModel(ctx.Scheme, e.LevelSet, n, ctx.Overrides...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	if e.Watch && ctx.SchemePath != "" {
		w, err := scheme.NewWatcher(ctx.SchemePath, func(s *scheme.Scheme, err error) {
			p.Send(tui.SchemeReloadedMsg{Scheme: s, Err: err})
		}, ctx.Log)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()
	}

	_, err = p.Run()
	return err
}
