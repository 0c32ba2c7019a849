package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcpreg/internal/catalog"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestIssue_Error(t *testing.T) {
	tests := []struct {
		name string
		i    Issue
		want string
	}{
		{
			name: "full",
			i:    Issue{Severity: SeverityError, Record: "github", Field: "id", Message: "duplicates record #0", Value: "github"},
			want: `error: github: field "id": duplicates record #0 (got github)`,
		},
		{
			name: "message only",
			i:    Issue{Severity: SeverityWarning, Message: "no tools listed"},
			want: "warning: no tools listed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.i.Error())
		})
	}
}

func TestCheckIntegrations_BuiltinIsClean(t *testing.T) {
	result := CheckIntegrations(catalog.Default().All())
	assert.Empty(t, result.Issues)
}

func TestCheckIntegrations(t *testing.T) {
	good := catalog.Integration{
		ID: "ok", Name: "OK", Author: "Me", Description: "d", Category: "Productivity",
		GitHub: "me/ok", Tools: []string{"t"},
	}

	dup := good
	noName := good
	noName.ID, noName.Name = "noname", ""
	bad := catalog.Integration{ID: "a/b", Author: "x", SuccessRate: 101, Published: "15/01/2024", Category: "Games", GitHub: "nope", Homepage: "ftp://x"}

	result := CheckIntegrations([]catalog.Integration{good, dup, noName, bad})

	fields := func(issues []Issue) []string {
		var out []string
		for _, i := range issues {
			out = append(out, i.Record+"."+i.Field)
		}
		return out
	}

	require.True(t, result.HasErrors())
	assert.Equal(t, []string{
		"ok.id",
		"noname.name",
		"a/b.id",
		"a/b.name",
		"a/b.success_rate",
		"a/b.published",
	}, fields(result.Errors()))

	require.True(t, result.HasWarnings())
	assert.Equal(t, []string{
		"a/b.description",
		"a/b.category",
		"a/b.tools",
		"a/b.github",
		"a/b.homepage",
	}, fields(result.Warnings()))
}

func TestCheckIntegrations_Empty(t *testing.T) {
	result := CheckIntegrations(nil)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "no integrations defined", result.Issues[0].Message)
}

func TestResult_Nil(t *testing.T) {
	var r *Result
	assert.False(t, r.HasErrors())
	assert.False(t, r.HasWarnings())
	assert.Nil(t, r.Errors())
}

func TestCheckIntegrations_ErrorsMatchCatalog(t *testing.T) {
	records := []catalog.Integration{
		{ID: "a", Name: "A", Author: "X", Published: "Jan 1"},
		{ID: "a", Author: "X", SuccessRate: 120},
	}

	problems := catalog.Check(records)
	errs := CheckIntegrations(records).Errors()
	require.Len(t, errs, len(problems))
	for i, p := range problems {
		assert.Equal(t, p.Record, errs[i].Record)
		assert.Equal(t, p.Field, errs[i].Field)
		assert.Equal(t, p.Message, errs[i].Message)
	}

	_, err := catalog.New(records)
	assert.Error(t, err)
}
