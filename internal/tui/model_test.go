package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/view"
)

func newModel() Model {
	return NewModel(view.NewResolver(catalog.Default(), catalog.Slugger{}))
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestCatalogEntries(t *testing.T) {
	m := newModel()
	// Three featured rows followed by all six.
	require.Len(t, m.entries, 9)
	assert.Equal(t, "github", m.entries[0].card.ID)
	assert.Equal(t, "github", m.entries[3].card.ID)

	out := m.View()
	assert.Contains(t, out, "Featured Integrations")
	assert.Contains(t, out, "All Integrations")
	assert.Contains(t, out, "> GitHub")
}

func TestOpenDetail(t *testing.T) {
	m := press(t, newModel(), "j", "enter")

	require.Equal(t, ScreenDetail, m.Screen())
	assert.Equal(t, "postgres", m.detail.Integration.ID)
	assert.Equal(t, view.NewState(), m.State())
	assert.Contains(t, m.View(), "@postgresql team/postgres-mcp-server")
	assert.Contains(t, m.View(), "Claude Desktop Configuration")
}

func TestDetailSelection(t *testing.T) {
	m := press(t, newModel(), "enter")

	m = press(t, m, "c", "c")
	assert.Equal(t, view.State{Tab: view.TabOverview, Client: "Cursor"}, m.State())
	assert.Contains(t, m.detail.Config, `"mcp"`)

	m = press(t, m, "3")
	assert.Equal(t, view.State{Tab: view.TabAPI, Client: "Cursor"}, m.State())
	assert.Contains(t, m.View(), `"version": "1.0.0"`)

	m = press(t, m, "tab")
	assert.Equal(t, view.TabOverview, m.State().Tab)

	m = press(t, m, "2")
	assert.Contains(t, m.View(), "search_repositories(parameters)")

	m = press(t, m, "c")
	assert.Equal(t, "Claude Desktop", m.State().Client, "clients wrap around")
}

func TestBackDiscardsState(t *testing.T) {
	m := press(t, newModel(), "enter", "c", "3", "esc")
	assert.Equal(t, ScreenCatalog, m.Screen())
	assert.Equal(t, view.State{}, m.State())

	m = press(t, m, "enter")
	assert.Equal(t, view.NewState(), m.State(), "reopening starts fresh")
}

func TestCopyConfig(t *testing.T) {
	m := press(t, newModel(), "enter", "c")

	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}
	m = press(t, m, "y")
	assert.Equal(t, m.detail.Config, copied)
	assert.Contains(t, copied, "@github/github-mcp-server")
	assert.Equal(t, "VS Code configuration copied to clipboard", m.Status())

	m.copyFn = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, "y")
	assert.Equal(t, "Copy failed: no clipboard", m.Status())
}

func TestQuit(t *testing.T) {
	_, cmd := newModel().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m := press(t, newModel(), "enter")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCursorBounds(t *testing.T) {
	m := press(t, newModel(), "k")
	assert.Equal(t, 0, m.cursor)

	for range 20 {
		m = press(t, m, "down")
	}
	assert.Equal(t, len(m.entries)-1, m.cursor)
}
