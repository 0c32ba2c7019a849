package catalog

import (
	"strings"
	"unicode"
)

// PackageSuffix is appended to the lower-cased integration name.
const PackageSuffix = "-mcp-server"

// DetailPrefix is the route prefix of detail pages.
const DetailPrefix = "/server/"

// Slugger derives package names and detail paths from records.
// The zero value keeps spaces in author names, e.g. "@postgresql team".
type Slugger struct {
	// SanitizeAuthor collapses whitespace runs in the author to "-".
	SanitizeAuthor bool
}

// Author returns the lower-cased author used after "@".
func (s Slugger) Author(author string) string {
	lower := strings.ToLower(author)
	if !s.SanitizeAuthor {
		return lower
	}
	return strings.Join(strings.FieldsFunc(lower, unicode.IsSpace), "-")
}

// PackageName returns "@<author>/<name>-mcp-server", used for the detail
// heading and breadcrumb.
func (s Slugger) PackageName(i Integration) string {
	return "@" + s.Author(i.Author) + "/" + strings.ToLower(i.Name) + PackageSuffix
}

// Path returns the detail route for i: /server/@<author>/<name>-mcp-server/<id>.
func (s Slugger) Path(i Integration) string {
	return DetailPrefix + s.PackageName(i) + "/" + i.ID
}

// PackageName is Slugger{}.PackageName.
func PackageName(i Integration) string {
	return Slugger{}.PackageName(i)
}

// Path is Slugger{}.Path.
func Path(i Integration) string {
	return Slugger{}.Path(i)
}

// IDFromSegments returns the lookup identifier of a detail path: its last
// segment. Preceding segments are ignored; an empty sequence yields "".
func IDFromSegments(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// Segments splits a detail route, with or without the /server/ prefix,
// into its path segments. Empty segments from doubled or trailing slashes
// are dropped.
func Segments(path string) []string {
	if path+"/" == DetailPrefix {
		return nil
	}
	path = strings.TrimPrefix(path, DetailPrefix)
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
