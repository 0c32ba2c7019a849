package client

import (
	"strings"

	"github.com/thoreinstein/mcpreg/internal/catalog"
)

// Render substitutes every NameToken and AuthorToken in template for i.
// Author handling follows the zero catalog.Slugger, so spaces survive.
func Render(template string, i catalog.Integration) string {
	return RenderWith(catalog.Slugger{}, template, i)
}

// RenderWith is Render with an explicit author slug policy.
// NameToken is replaced first, so an AuthorToken produced by the name is
// itself substituted.
func RenderWith(s catalog.Slugger, template string, i catalog.Integration) string {
	out := strings.ReplaceAll(template, NameToken, strings.ToLower(i.Name))
	return strings.ReplaceAll(out, AuthorToken, "@"+s.Author(i.Author))
}

// Render returns p's template rendered for i.
func (p Profile) Render(i catalog.Integration) string {
	return Render(p.Template, i)
}

// RenderWith returns p's template rendered for i under slug policy s.
func (p Profile) RenderWith(s catalog.Slugger, i catalog.Integration) string {
	return RenderWith(s, p.Template, i)
}
