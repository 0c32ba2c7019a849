// Package tui is the interactive terminal rendition of the catalog.
package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/view"
)

// Screen identifies the visible view.
type Screen int

// Screens.
const (
	ScreenCatalog Screen = iota
	ScreenDetail
)

// entry is one selectable row of the catalog screen.
type entry struct {
	section string
	card    view.Card
}

// Model is the bubbletea model for the browser.
type Model struct {
	resolver *view.Resolver
	page     view.CatalogPage
	entries  []entry

	screen Screen
	cursor int

	// detail is only meaningful on ScreenDetail.
	detail view.DetailPage
	state  view.State

	copyFn func(string) error
	status string
	width  int
}

// NewModel builds a browser over r.
func NewModel(r *view.Resolver) Model {
	page := r.CatalogPage()
	m := Model{
		resolver: r,
		page:     page,
		copyFn:   clipboard.WriteAll,
	}
	for _, c := range page.Featured {
		m.entries = append(m.entries, entry{section: "Featured Integrations", card: c})
	}
	for _, c := range page.All {
		m.entries = append(m.entries, entry{section: "All Integrations", card: c})
	}
	return m
}

// Screen returns the visible screen.
func (m Model) Screen() Screen { return m.screen }

// State returns the detail selection. It is the zero State on the catalog.
func (m Model) State() view.State { return m.state }

// Status returns the last status line message.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == ScreenDetail {
			return m.updateDetail(msg)
		}
		return m.updateCatalog(msg)
	}
	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.entries) == 0 {
			return m, nil
		}
		m.open(m.entries[m.cursor].card.ID)
	}
	return m, nil
}

// open enters the detail screen for id with a fresh selection.
func (m *Model) open(id string) {
	st := view.NewState()
	page, ok := m.resolver.Detail([]string{id}, st)
	if !ok {
		m.status = view.NotFoundTitle
		return
	}
	m.screen = ScreenDetail
	m.state = st
	m.detail = page
	m.status = ""
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.screen = ScreenCatalog
		m.state = view.State{}
		m.detail = view.DetailPage{}
		m.status = ""
		return m, nil
	case "tab", "right", "l":
		m.state.NextTab()
	case "1", "2", "3":
		tabs := view.Tabs()
		_ = m.state.SelectTab(tabs[int(msg.String()[0]-'1')])
	case "c":
		m.state.NextClient()
	case "y":
		if err := m.copyFn(m.detail.Config); err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", err)
		} else {
			m.status = m.state.Client + " configuration copied to clipboard"
		}
		return m, nil
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// refresh re-resolves the detail page after a selection change.
func (m *Model) refresh() {
	page, ok := m.resolver.Detail([]string{m.detail.Integration.ID}, m.state)
	if ok {
		m.detail = page
	}
}

// Run starts the browser and blocks until the user quits or ctx ends.
func Run(ctx context.Context, r *view.Resolver) error {
	p := tea.NewProgram(NewModel(r), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "running browser")
	}
	return nil
}
