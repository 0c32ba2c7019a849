package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/thoreinstein/mcpreg/internal/catalog"
)

// DateLayout is the display layout for publish dates: month/day/year
// without zero padding.
const DateLayout = "1/2/2006"

// FormatCount formats n with thousands separators, e.g. 45,672.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatRate formats a percentage with its shortest exact representation,
// e.g. 99.8%.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

// FormatDate reformats a YYYY-MM-DD date as 1/15/2024. Unparseable input
// is returned as is.
func FormatDate(published string) string {
	t, err := time.Parse(catalog.PublishedLayout, published)
	if err != nil {
		return published
	}
	return t.Format(DateLayout)
}

// humanizeTool turns a tool identifier into words: search_repositories
// becomes "search repositories".
func humanizeTool(tool string) string {
	return strings.ReplaceAll(tool, "_", " ")
}
