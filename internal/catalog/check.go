package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Problem is a record that New would reject.
type Problem struct {
	// Index is the record's position in the input.
	Index int
	// Record is the record ID, or "#<index>" when the ID is empty.
	Record  string
	Field   string
	Message string
	// Value is the offending value, if any.
	Value any
}

func (p Problem) Error() string {
	return fmt.Sprintf("record %s: %s %s", p.Record, p.Field, p.Message)
}

// Check returns every problem that prevents records from forming a
// Catalog, in record order. An empty result means New accepts them.
func Check(records []Integration) []Problem {
	var problems []Problem
	seen := make(map[string]int, len(records))

	for i, r := range records {
		ref := fmt.Sprintf("#%d", i)
		if r.ID != "" {
			ref = r.ID
		}
		add := func(field, message string, value any) {
			problems = append(problems, Problem{Index: i, Record: ref, Field: field, Message: message, Value: value})
		}

		switch {
		case strings.TrimSpace(r.ID) == "":
			add("id", "is required", nil)
		case strings.ContainsRune(r.ID, '/'):
			add("id", "must not contain '/'", r.ID)
		default:
			if first, dup := seen[r.ID]; dup {
				add("id", fmt.Sprintf("duplicates record #%d", first), r.ID)
			} else {
				seen[r.ID] = i
			}
		}

		if strings.TrimSpace(r.Name) == "" {
			add("name", "is required", nil)
		}
		if strings.TrimSpace(r.Author) == "" {
			add("author", "is required", nil)
		}
		if r.SuccessRate < 0 || r.SuccessRate > 100 {
			add("success_rate", "must be between 0 and 100", r.SuccessRate)
		}
		if r.Published != "" {
			if _, err := time.Parse(PublishedLayout, r.Published); err != nil {
				add("published", "must be YYYY-MM-DD", r.Published)
			}
		}
	}
	return problems
}
