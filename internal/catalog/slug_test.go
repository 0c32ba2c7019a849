package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageName(t *testing.T) {
	c := Default()

	tests := []struct {
		id       string
		sanitize bool
		want     string
	}{
		{"github", false, "@github/github-mcp-server"},
		{"postgres", false, "@postgresql team/postgres-mcp-server"},
		{"postgres", true, "@postgresql-team/postgres-mcp-server"},
		{"google-drive", false, "@google/google drive-mcp-server"},
		{"aws-s3", false, "@aws/aws s3-mcp-server"},
	}

	for _, tt := range tests {
		rec, ok := c.Lookup(tt.id)
		if !assert.True(t, ok, tt.id) {
			continue
		}
		assert.Equal(t, tt.want, Slugger{SanitizeAuthor: tt.sanitize}.PackageName(rec), "%s sanitize=%v", tt.id, tt.sanitize)
	}
}

func TestSlugger_Author(t *testing.T) {
	assert.Equal(t, "a  b", Slugger{}.Author("A  B"))
	assert.Equal(t, "a-b", Slugger{SanitizeAuthor: true}.Author(" A \t B "))
}

func TestPath(t *testing.T) {
	rec, _ := Default().Lookup("github")
	assert.Equal(t, "/server/@github/github-mcp-server/github", Path(rec))
}

func TestPath_ResolvesBack(t *testing.T) {
	c := Default()
	for _, rec := range c.All() {
		for _, s := range []Slugger{{}, {SanitizeAuthor: true}} {
			id := IDFromSegments(Segments(s.Path(rec)))
			assert.Equal(t, rec.ID, id)
		}
	}
}

func TestIDFromSegments(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"github"}, "github"},
		{[]string{"@github", "github-mcp-server", "github"}, "github"},
		{[]string{"@anything", "else", "slack"}, "slack"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IDFromSegments(tt.segments), "%v", tt.segments)
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/server/@github/github-mcp-server/github", []string{"@github", "github-mcp-server", "github"}},
		{"@github/github-mcp-server/github/", []string{"@github", "github-mcp-server", "github"}},
		{"/server//postgres", []string{"postgres"}},
		{"github", []string{"github"}},
		{"/server", nil},
		{"/server/", nil},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Segments(tt.path), "%q", tt.path)
	}
}
