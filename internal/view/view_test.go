package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcpreg/internal/catalog"
)

func ids(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestCatalogPage(t *testing.T) {
	page := NewResolver(catalog.Default(), catalog.Slugger{}).CatalogPage()

	assert.Equal(t, CatalogTitle, page.Title)
	assert.Equal(t, SearchPlaceholder, page.SearchPlaceholder)
	assert.Equal(t, []string{"github", "postgres", "google-drive"}, ids(page.Featured))
	assert.Equal(t, []string{"github", "postgres", "slack", "google-drive", "aws-s3", "discord"}, ids(page.All))

	require.Len(t, page.Categories, 6)
	assert.Equal(t, Category{Name: "All", Active: true}, page.Categories[0])
	for _, c := range page.Categories[1:] {
		assert.False(t, c.Active, c.Name)
	}

	gh := page.All[0]
	assert.Equal(t, "/server/@github/github-mcp-server/github", gh.Href)
	assert.Equal(t, 1234, gh.Stars)
	assert.Equal(t, "/server/@postgresql team/postgres-mcp-server/postgres", page.All[1].Href)
}

func TestCatalogPage_CardLinksResolve(t *testing.T) {
	r := NewResolver(catalog.Default(), catalog.Slugger{})
	for _, card := range r.CatalogPage().All {
		page, ok := r.Detail(catalog.Segments(card.Href), NewState())
		require.True(t, ok, card.Href)
		assert.Equal(t, card.ID, page.Integration.ID)
	}
}

func TestDetail_GitHub(t *testing.T) {
	page, ok := ResolveDetail(catalog.Default(), []string{"@github", "github-mcp-server", "github"}, NewState())
	require.True(t, ok)

	assert.Equal(t, "@github/github-mcp-server", page.PackageName)
	assert.Equal(t, "https://github.com", page.Homepage)
	assert.Equal(t, "https://github.com/github/github-mcp-server", page.GitHubURL)
	assert.Equal(t, Stats{
		MonthlyToolCalls: "45,672",
		SuccessRate:      "99.8%",
		License:          "MIT",
		Published:        "1/15/2024",
		Category:         "Development Tools",
	}, page.Stats)

	assert.Equal(t, "Claude Desktop Configuration", page.ConfigTitle)
	assert.Contains(t, page.Config, `"github": {`)
	assert.Contains(t, page.Config, `"@github/github-mcp-server"`)

	require.Len(t, page.Tools, 4)
	assert.Equal(t, ToolCard{
		Name:    "search_repositories",
		Summary: "Tool for search repositories operations in GitHub",
	}, page.Tools[0])
	assert.Equal(t, ToolDoc{
		Name:        "create_issue",
		Description: "Detailed description for the create issue tool in GitHub.",
		Comment:     "// Example usage for create_issue",
		Call:        "create_issue(parameters)",
	}, page.ToolDocs[1])

	assert.Equal(t, `{
  "name": "github-mcp-server",
  "version": "1.0.0",
  "tools": ["search_repositories", "create_issue", "get_pull_requests", "create_branch"]
}`, page.API)
}

func TestDetail_IgnoresLeadingSegments(t *testing.T) {
	page, ok := ResolveDetail(catalog.Default(), []string{"anything", "at", "all", "slack"}, NewState())
	require.True(t, ok)
	assert.Equal(t, "slack", page.Integration.ID)
	assert.Equal(t, "https://slack.com", page.Homepage)
}

func TestDetail_NotFound(t *testing.T) {
	tests := [][]string{
		nil,
		{"@github", "github-mcp-server", "gitlab"},
		{"github", "extra"},
	}
	for _, segs := range tests {
		page, ok := ResolveDetail(catalog.Default(), segs, NewState())
		assert.False(t, ok, "%v", segs)
		assert.Equal(t, DetailPage{}, page)
	}
}

func TestDetail_State(t *testing.T) {
	st := State{Tab: TabAPI, Client: "Cursor"}
	page, ok := ResolveDetail(catalog.Default(), []string{"postgres"}, st)
	require.True(t, ok)

	assert.Equal(t, st, page.State)
	assert.Equal(t, "Cursor Configuration", page.ConfigTitle)
	assert.Contains(t, page.Config, `"command": "npx", `+"\n")
	assert.Contains(t, page.Config, `"@postgresql team/postgres-mcp-server"`)

	require.Len(t, page.Tabs, 3)
	for _, tl := range page.Tabs {
		assert.Equal(t, tl.Tab == TabAPI, tl.Active, tl.Tab)
		assert.Equal(t, "Cursor", tl.State.Client, "tab links keep the client")
		assert.Equal(t, tl.Tab, tl.State.Tab)
	}
	require.Len(t, page.Clients, 3)
	for _, cl := range page.Clients {
		assert.Equal(t, cl.Name == "Cursor", cl.Active, cl.Name)
		assert.Equal(t, TabAPI, cl.State.Tab, "client links keep the tab")
	}
}

func TestDetail_InvalidStateFallsBack(t *testing.T) {
	page, ok := ResolveDetail(catalog.Default(), []string{"discord"}, State{Tab: "x", Client: "y"})
	require.True(t, ok)
	assert.Equal(t, NewState(), page.State)
}

func TestDetail_SanitizedAuthor(t *testing.T) {
	r := NewResolver(catalog.Default(), catalog.Slugger{SanitizeAuthor: true})
	page, ok := r.Detail([]string{"postgres"}, NewState())
	require.True(t, ok)
	assert.Equal(t, "@postgresql-team/postgres-mcp-server", page.PackageName)
	assert.Contains(t, page.Config, "@postgresql-team/postgres-mcp-server")
}

func TestAPIDescriptor_NoTools(t *testing.T) {
	got := APIDescriptor(catalog.Integration{Name: "Empty"})
	assert.Equal(t, "{\n  \"name\": \"empty-mcp-server\",\n  \"version\": \"1.0.0\",\n  \"tools\": []\n}", got)
}
