package view

import (
	"net/url"
	"strings"

	"github.com/thoreinstein/mcpreg/internal/client"
	"github.com/thoreinstein/mcpreg/internal/errors"
)

// Tab is a detail page section.
type Tab string

// Detail page tabs, in display order.
const (
	TabOverview Tab = "overview"
	TabTools    Tab = "tools"
	TabAPI      Tab = "api"
)

// Query parameter names carrying State in URLs.
const (
	ParamTab    = "tab"
	ParamClient = "client"
)

var tabs = []Tab{TabOverview, TabTools, TabAPI}

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	return append([]Tab(nil), tabs...)
}

// ParseTab maps a tab name (case-insensitive) to a Tab.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range tabs {
		if v == t {
			return v, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownTab, "%q", s)
}

// Title returns the capitalized label, e.g. "Overview".
func (t Tab) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// State is the selection of one detail view: active tab and client profile.
type State struct {
	Tab    Tab
	Client string
}

// NewState returns the initial selection: the overview tab and the first
// client profile.
func NewState() State {
	return State{Tab: TabOverview, Client: client.Default().Name}
}

// SelectTab switches tabs. The client selection is untouched.
func (s *State) SelectTab(t Tab) error {
	for _, v := range tabs {
		if v == t {
			s.Tab = t
			return nil
		}
	}
	return errors.Wrapf(errors.ErrUnknownTab, "%q", string(t))
}

// SelectClient switches client profile by exact name. The tab is untouched.
func (s *State) SelectClient(name string) error {
	if _, ok := client.Lookup(name); !ok {
		return errors.Wrapf(errors.ErrUnknownClient, "%q", name)
	}
	s.Client = name
	return nil
}

// NextClient cycles to the following client profile, wrapping around.
func (s *State) NextClient() {
	names := client.Names()
	for i, n := range names {
		if n == s.Client {
			s.Client = names[(i+1)%len(names)]
			return
		}
	}
	s.Client = names[0]
}

// NextTab cycles to the following tab, wrapping around.
func (s *State) NextTab() {
	for i, t := range tabs {
		if t == s.Tab {
			s.Tab = tabs[(i+1)%len(tabs)]
			return
		}
	}
	s.Tab = tabs[0]
}

// StateFromQuery decodes a State from URL query values. Missing or invalid
// values fall back to the initial selection field by field.
func StateFromQuery(q url.Values) State {
	st := NewState()
	if v := q.Get(ParamTab); v != "" {
		if t, err := ParseTab(v); err == nil {
			st.Tab = t
		}
	}
	if v := q.Get(ParamClient); v != "" {
		_ = st.SelectClient(v)
	}
	return st
}

// Query encodes s as URL query values. Initial values are omitted so a
// fresh entry keeps a clean URL.
func (s State) Query() url.Values {
	q := url.Values{}
	initial := NewState()
	if s.Tab != initial.Tab {
		q.Set(ParamTab, string(s.Tab))
	}
	if s.Client != initial.Client {
		q.Set(ParamClient, s.Client)
	}
	return q
}
