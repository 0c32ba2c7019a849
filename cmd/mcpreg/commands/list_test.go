package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/view"
)

func catalogPage() view.CatalogPage {
	return view.NewResolver(catalog.Default(), catalog.Slugger{}).CatalogPage()
}

func TestRunList_Text(t *testing.T) {
	_, _ = newTestCommand(t)
	setFlag(t, &listFeatured, false)
	setFlag(t, &listJSON, false)

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, catalogPage()))

	out := buf.String()
	assert.Contains(t, out, "Featured Integrations")
	assert.Contains(t, out, "All Integrations")
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "AUTHOR")
	assert.Contains(t, out, "PostgreSQL Team")
	assert.Contains(t, out, "discord")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("github")), bytes.Index(buf.Bytes(), []byte("All Integrations")))
}

func TestRunList_FeaturedOnly(t *testing.T) {
	_, _ = newTestCommand(t)
	setFlag(t, &listFeatured, true)
	setFlag(t, &listJSON, false)

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, catalogPage()))

	out := buf.String()
	assert.Contains(t, out, "google-drive")
	assert.NotContains(t, out, "All Integrations")
	assert.NotContains(t, out, "discord")
	assert.NotContains(t, out, "aws-s3")
}

func TestRunList_JSON(t *testing.T) {
	tests := []struct {
		name     string
		featured bool
		wantIDs  []string
	}{
		{"all", false, []string{"github", "postgres", "slack", "google-drive", "aws-s3", "discord"}},
		{"featured", true, []string{"github", "postgres", "google-drive"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlag(t, &listFeatured, tt.featured)
			setFlag(t, &listJSON, true)

			var buf bytes.Buffer
			require.NoError(t, runList(&buf, catalogPage()))

			var items []listItem
			require.NoError(t, json.Unmarshal(buf.Bytes(), &items))

			ids := make([]string, 0, len(items))
			for _, it := range items {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRunList_JSONPaths(t *testing.T) {
	setFlag(t, &listFeatured, false)
	setFlag(t, &listJSON, true)

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, catalogPage()))

	var items []listItem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 6)
	assert.Equal(t, "/server/@github/github-mcp-server/github", items[0].Path)
	assert.Equal(t, "/server/@postgresql team/postgres-mcp-server/postgres", items[1].Path)
	assert.Equal(t, 1234, items[0].Stars)
}
