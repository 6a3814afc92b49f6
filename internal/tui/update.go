package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case SchemeReloadedMsg:
		return m.handleSchemeReloaded(msg)
	}

	if m.nInput.Focused() {
		var cmd tea.Cmd
		m.nInput, cmd = m.nInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.nInput.Focused() {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/", "n":
		m.nInput.SetValue("")
		m.nInput.Focus()
		return m, textinput.Blink
	case "left":
		m.rotate(-HueStep)
	case "right":
		m.rotate(HueStep)
	case "r":
		m.opts.Direction = -m.opts.Direction
		_ = m.regenerate()
	case "+", "=":
		m.resize(m.n + 1)
	case "-":
		m.resize(m.n - 1)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.nInput.Blur()
		raw := strings.TrimSpace(m.nInput.Value())
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.err = fmt.Errorf("invalid number of colors %q", raw)
			m.nInput.SetValue(strconv.Itoa(m.n))
			return m, nil
		}
		m.resize(n)
		return m, nil
	case "esc":
		m.nInput.Blur()
		m.nInput.SetValue(strconv.Itoa(m.n))
		return m, nil
	}

	var cmd tea.Cmd
	m.nInput, cmd = m.nInput.Update(msg)
	return m, cmd
}

// rotate shifts the hue range, keeping its span.
func (m *Model) rotate(by float64) {
	m.opts.HueStart += by
	m.opts.HueEnd += by
	// Keep the bounds small; hues are taken modulo 360 anyway.
	if m.opts.HueStart >= 360 || m.opts.HueStart <= -360 {
		shift := 360 * float64(int(m.opts.HueStart/360))
		m.opts.HueStart -= shift
		m.opts.HueEnd -= shift
	}
	_ = m.regenerate()
}

// resize keeps the previous palette when n is rejected.
func (m *Model) resize(n int) {
	prev := m.n
	m.n = n
	if err := m.regenerate(); err != nil {
		m.n = prev
	}
	m.nInput.SetValue(strconv.Itoa(m.n))
}

func (m Model) handleSchemeReloaded(msg SchemeReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = fmt.Errorf("reloading scheme: %w", msg.Err)
		return m, nil
	}
	prev := m.scheme
	m.scheme = msg.Scheme
	if err := m.applyScheme(); err != nil {
		m.scheme = prev
		m.err = fmt.Errorf("reloading scheme: %w", err)
		return m, nil
	}
	_ = m.regenerate()
	return m, nil
}
