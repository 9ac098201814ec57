package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubble Tea messages and drives the pagination controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case pageLoadedMsg:
		m.page = msg.items
		m.controller.SetLoading(false)
		m.log.Debug("page loaded")
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Previous):
		m.controller.Previous()

	case key.Matches(msg, m.keys.Next):
		m.controller.Next()

	case key.Matches(msg, m.keys.First):
		m.controller.JumpTo(1)

	case key.Matches(msg, m.keys.Last):
		m.controller.JumpTo(m.controller.LastPage())

	case key.Matches(msg, m.keys.Digits):
		if page, err := strconv.Atoi(msg.String()); err == nil {
			m.controller.JumpTo(page)
		}
	}

	// An accepted event left its (offset, limit) emission behind; gate the
	// controller and start the simulated fetch.
	if offset, limit, ok := m.emissions.take(); ok {
		m.controller.SetLoading(true)
		return m, m.fetchPage(offset, limit)
	}

	return m, nil
}
