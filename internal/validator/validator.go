package validator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError blocks the catalog from loading.
	SeverityError Severity = iota
	// SeverityWarning is reported but does not block loading.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Issue is a single problem found in a catalog.
type Issue struct {
	Severity Severity `json:"severity"`
	// Record is the identifier (or index) of the offending record.
	Record  string `json:"record,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Record != "" {
		sb.WriteString(i.Record)
		sb.WriteString(": ")
	}
	if i.Field != "" {
		fmt.Fprintf(&sb, "field %q: ", i.Field)
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates validation issues.
type Result struct {
	Issues []Issue `json:"issues"`
}

// HasErrors reports whether any issue is an error.
func (r *Result) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings reports whether any issue is a warning.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

// AddError records an error for field of record.
func (r *Result) AddError(record, field, message string, value any) {
	r.add(SeverityError, record, field, message, value)
}

// AddWarning records a warning for field of record.
func (r *Result) AddWarning(record, field, message string, value any) {
	r.add(SeverityWarning, record, field, message, value)
}

func (r *Result) add(s Severity, record, field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: s,
		Record:   record,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// Errors returns the error issues in order of discovery.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning issues in order of discovery.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}
