// Package tui implements the interactive pagination demo. It drives a
// pagination.Controller with keyboard events and simulates the host side of
// the contract: every accepted navigation event starts a fake fetch, and
// the controller stays gated until the fetch lands.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quiltui/quilt/internal/config"
	"github.com/quiltui/quilt/internal/logger"
	"github.com/quiltui/quilt/internal/pagination"
	"github.com/quiltui/quilt/internal/ui/components"
)

const fetchDelay = 250 * time.Millisecond

// pageLoadedMsg delivers a fetched page slice and ungates navigation.
type pageLoadedMsg struct {
	offset int
	limit  int
	items  []string
}

// emissionBox captures the controller's (offset, limit) callback so Update
// can turn it into a fetch command. The controller invokes the callback
// synchronously inside the accepted event, before Update returns.
type emissionBox struct {
	offset  int
	limit   int
	pending bool
}

func (b *emissionBox) take() (int, int, bool) {
	if !b.pending {
		return 0, 0, false
	}
	b.pending = false
	return b.offset, b.limit, true
}

// Model is the Bubble Tea state for the pagination demo.
type Model struct {
	controller *pagination.Controller
	emissions  *emissionBox

	items []string
	page  []string

	theme components.Theme
	keys  keyMap
	help  help.Model
	spin  spinner.Model
	log   *logger.Logger

	width    int
	quitting bool
}

// NewModel builds the demo model from the resolved configuration.
func NewModel(cfg *config.Config, log *logger.Logger) (Model, error) {
	box := &emissionBox{}

	controller, err := pagination.NewController(pagination.Options{
		Total:        cfg.Demo.Total,
		Limit:        cfg.Demo.Limit,
		SiblingCount: cfg.Demo.SiblingCount,
		OnPageChange: func(offset, limit int) {
			box.offset = offset
			box.limit = limit
			box.pending = true
			log.PageChange(offset, limit)
		},
	})
	if err != nil {
		return Model{}, err
	}

	items := make([]string, cfg.Demo.Total)
	for i := range items {
		items[i] = fmt.Sprintf("Record %03d", i+1)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		controller: controller,
		emissions:  box,
		items:      items,
		theme:      cfg.ResolveTheme(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		spin:       s,
		log:        log.WithComponent("tui"),
		width:      components.DefaultWidth,
	}
	m.page = m.slice(0, cfg.Demo.Limit)
	return m, nil
}

// Init starts the spinner tick loop.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// slice returns the items visible at the given offset.
func (m Model) slice(offset, limit int) []string {
	if offset >= len(m.items) {
		return nil
	}
	end := min(offset+limit, len(m.items))
	return m.items[offset:end]
}

// fetchPage simulates an asynchronous data fetch for the given offset.
func (m Model) fetchPage(offset, limit int) tea.Cmd {
	return tea.Tick(fetchDelay, func(time.Time) tea.Msg {
		return pageLoadedMsg{offset: offset, limit: limit, items: m.slice(offset, limit)}
	})
}

// Controller exposes the pagination controller for inspection.
func (m Model) Controller() *pagination.Controller {
	return m.controller
}

// Page returns the currently displayed items.
func (m Model) Page() []string {
	return m.page
}
