package view

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcpreg/internal/errors"
)

func TestNewState(t *testing.T) {
	st := NewState()
	assert.Equal(t, TabOverview, st.Tab)
	assert.Equal(t, "Claude Desktop", st.Client)
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{"overview", TabOverview, false},
		{"Tools", TabTools, false},
		{" api ", TabAPI, false},
		{"install", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTab(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrUnknownTab))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTabTitle(t *testing.T) {
	assert.Equal(t, "Overview", TabOverview.Title())
	assert.Equal(t, "Api", TabAPI.Title())
	assert.Equal(t, "", Tab("").Title())
}

func TestState_SelectionsAreIndependent(t *testing.T) {
	st := NewState()

	require.NoError(t, st.SelectClient("Cursor"))
	require.NoError(t, st.SelectTab(TabAPI))
	assert.Equal(t, State{Tab: TabAPI, Client: "Cursor"}, st)

	require.NoError(t, st.SelectTab(TabOverview))
	assert.Equal(t, "Cursor", st.Client, "tab change keeps the client")

	require.NoError(t, st.SelectClient("VS Code"))
	assert.Equal(t, TabOverview, st.Tab, "client change keeps the tab")
}

func TestState_RejectsUnknownValues(t *testing.T) {
	st := NewState()

	err := st.SelectClient("Emacs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownClient))

	err = st.SelectTab(Tab("install"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownTab))

	assert.Equal(t, NewState(), st, "state unchanged")
}

func TestState_Cycle(t *testing.T) {
	st := NewState()

	st.NextClient()
	assert.Equal(t, "VS Code", st.Client)
	st.NextClient()
	st.NextClient()
	assert.Equal(t, "Claude Desktop", st.Client)

	st.NextTab()
	assert.Equal(t, TabTools, st.Tab)
	st.NextTab()
	st.NextTab()
	assert.Equal(t, TabOverview, st.Tab)
}

func TestStateFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  State
	}{
		{"fresh entry", "", NewState()},
		{"both set", "tab=tools&client=VS+Code", State{Tab: TabTools, Client: "VS Code"}},
		{"invalid tab", "tab=bogus&client=Cursor", State{Tab: TabOverview, Client: "Cursor"}},
		{"invalid client", "tab=api&client=Emacs", State{Tab: TabAPI, Client: "Claude Desktop"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, StateFromQuery(q))
		})
	}
}

func TestState_QueryRoundTrip(t *testing.T) {
	assert.Empty(t, NewState().Query())

	st := State{Tab: TabTools, Client: "Cursor"}
	assert.Equal(t, "client=Cursor&tab=tools", st.Query().Encode())
	assert.Equal(t, st, StateFromQuery(st.Query()))
}
