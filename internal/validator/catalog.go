package validator

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/thoreinstein/mcpreg/internal/catalog"
)

// CheckIntegrations lints catalog records. Errors are exactly what
// catalog.New rejects; warnings cover display problems.
func CheckIntegrations(records []catalog.Integration) *Result {
	result := &Result{}
	if len(records) == 0 {
		result.AddError("", "integrations", "no integrations defined", nil)
		return result
	}

	for _, p := range catalog.Check(records) {
		result.AddError(p.Record, p.Field, p.Message, p.Value)
	}

	categories := catalog.Categories()[1:]
	for i, rec := range records {
		ref := fmt.Sprintf("#%d", i)
		if rec.ID != "" {
			ref = rec.ID
		}

		if rec.Description == "" {
			result.AddWarning(ref, "description", "is empty; catalog cards will be blank", nil)
		}
		if rec.Category != "" && !slices.Contains(categories, rec.Category) {
			result.AddWarning(ref, "category", "is not in the category bar", rec.Category)
		}
		if len(rec.Tools) == 0 {
			result.AddWarning(ref, "tools", "no tools listed", nil)
		}
		if strings.Count(rec.GitHub, "/") != 1 {
			result.AddWarning(ref, "github", "should be owner/repo", rec.GitHub)
		}
		if rec.Homepage != "" {
			if u, err := url.Parse(rec.Homepage); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
				result.AddWarning(ref, "homepage", "should be an http(s) URL", rec.Homepage)
			}
		}
	}
	return result
}
