package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/mcpreg/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable, colorized text.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Report writes result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		result = &Result{}
	}
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(result), "encoding JSON report")
	}
	r.reportText(result)
	return nil
}

func (r *Reporter) reportText(result *Result) {
	errs, warns := result.Errors(), result.Warnings()
	if len(errs) == 0 && len(warns) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Catalog is valid"))
		return
	}

	var summary []string
	if len(errs) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(errs)))
	}
	if len(warns) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warns)))
	}
	status := "Catalog has problems"
	if len(errs) > 0 {
		status = "Catalog is invalid"
	}
	fmt.Fprintf(r.out, "%s: %s\n\n", status, strings.Join(summary, ", "))

	r.section("Errors:", errs, color.FgRed)
	r.section("Warnings:", warns, color.FgYellow)
}

func (r *Reporter) section(title string, issues []Issue, c color.Attribute) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(r.out, title)
	for _, i := range issues {
		r.printIssue(i, c)
	}
	fmt.Fprintln(r.out)
}

// printIssue writes "  • record field: message [value]".
func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	hi := color.New(c).SprintFunc()
	dim := color.New(color.FgHiBlack)

	var sb strings.Builder
	sb.WriteString("  • ")
	if i.Record != "" {
		sb.WriteString(i.Record)
		sb.WriteString(" ")
	}
	if i.Field != "" {
		sb.WriteString(hi(i.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		v := fmt.Sprintf("%v", i.Value)
		if len(v) > 50 {
			v = v[:47] + "..."
		}
		sb.WriteString(dim.Sprintf(" [%s]", v))
	}
	fmt.Fprintln(r.out, sb.String())
}
