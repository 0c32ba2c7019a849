package view

import (
	"strings"

	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/client"
)

// APIVersion is the version reported by every API descriptor.
const APIVersion = "1.0.0"

// Not-found fallback copy.
const (
	NotFoundTitle   = "Integration Not Found"
	NotFoundMessage = "The requested MCP integration could not be found."
	NotFoundLink    = "Back to Home"

	// PageNotFoundTitle and PageNotFoundMessage cover paths outside the
	// detail routes.
	PageNotFoundTitle   = "Page Not Found"
	PageNotFoundMessage = "The page you are looking for does not exist."
)

// Stats are the formatted figures beside the detail heading.
type Stats struct {
	MonthlyToolCalls string
	SuccessRate      string
	License          string
	Published        string
	Category         string
}

// TabLink is a tab button and the State it selects.
type TabLink struct {
	Tab    Tab
	Label  string
	Active bool
	State  State
}

// ClientLink is a client selector button and the State it selects.
type ClientLink struct {
	Name   string
	Active bool
	State  State
}

// ToolCard summarizes a tool on the overview tab.
type ToolCard struct {
	Name    string
	Summary string
}

// ToolDoc documents a tool on the tools tab.
type ToolDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Comment     string `json:"comment"`
	Call        string `json:"call"`
}

// DetailPage is the detail view of one integration under a State.
type DetailPage struct {
	Integration catalog.Integration
	PackageName string
	Homepage    string
	GitHubURL   string
	Stats       Stats
	State       State
	Tabs        []TabLink
	Clients     []ClientLink

	// ConfigTitle and Config describe the selected client's configuration.
	ConfigTitle string
	Config      string

	Tools    []ToolCard
	ToolDocs []ToolDoc
	API      string
}

// ResolveDetail resolves segments against c under st using the default
// slug policy.
func ResolveDetail(c *catalog.Catalog, segments []string, st State) (DetailPage, bool) {
	return NewResolver(c, catalog.Slugger{}).Detail(segments, st)
}

// Detail resolves a detail route. The identifier is the last segment; the
// rest are ignored. It reports false when the identifier is not in the
// catalog, and the returned page is then empty.
func (r *Resolver) Detail(segments []string, st State) (DetailPage, bool) {
	rec, ok := r.Catalog.Lookup(catalog.IDFromSegments(segments))
	if !ok {
		return DetailPage{}, false
	}

	profile, ok := client.Lookup(st.Client)
	if !ok {
		profile = client.Default()
		st.Client = profile.Name
	}
	if err := st.SelectTab(st.Tab); err != nil {
		st.Tab = TabOverview
	}

	page := DetailPage{
		Integration: rec,
		PackageName: r.Slugger.PackageName(rec),
		Homepage:    rec.Homepage,
		GitHubURL:   rec.RepositoryURL(),
		Stats: Stats{
			MonthlyToolCalls: FormatCount(rec.MonthlyToolCalls),
			SuccessRate:      FormatRate(rec.SuccessRate),
			License:          rec.License,
			Published:        FormatDate(rec.Published),
			Category:         rec.Category,
		},
		State:       st,
		ConfigTitle: profile.Name + " Configuration",
		Config:      profile.RenderWith(r.Slugger, rec),
		API:         APIDescriptor(rec),
	}

	for _, t := range tabs {
		next := st
		next.Tab = t
		page.Tabs = append(page.Tabs, TabLink{Tab: t, Label: t.Title(), Active: t == st.Tab, State: next})
	}
	for _, name := range client.Names() {
		next := st
		next.Client = name
		page.Clients = append(page.Clients, ClientLink{Name: name, Active: name == st.Client, State: next})
	}
	for _, tool := range rec.Tools {
		page.Tools = append(page.Tools, ToolCard{
			Name:    tool,
			Summary: "Tool for " + humanizeTool(tool) + " operations in " + rec.Name,
		})
		page.ToolDocs = append(page.ToolDocs, ToolDoc{
			Name:        tool,
			Description: "Detailed description for the " + humanizeTool(tool) + " tool in " + rec.Name + ".",
			Comment:     "// Example usage for " + tool,
			Call:        tool + "(parameters)",
		})
	}
	return page, true
}

// APIDescriptor returns the illustrative interface descriptor shown on the
// API tab. Tool names are quoted verbatim and comma separated.
func APIDescriptor(rec catalog.Integration) string {
	quoted := make([]string, len(rec.Tools))
	for i, tool := range rec.Tools {
		quoted[i] = `"` + tool + `"`
	}

	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString(`  "name": "` + strings.ToLower(rec.Name) + catalog.PackageSuffix + "\",\n")
	b.WriteString(`  "version": "` + APIVersion + "\",\n")
	b.WriteString(`  "tools": [` + strings.Join(quoted, ", ") + "]\n")
	b.WriteString("}")
	return b.String()
}
