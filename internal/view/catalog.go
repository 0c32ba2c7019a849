package view

import "github.com/thoreinstein/mcpreg/internal/catalog"

// Fixed catalog page copy.
const (
	SiteName          = "MCP Registry"
	CatalogTitle      = "Model Context Protocol Registry"
	CatalogTagline    = "Discover and share integrations that connect AI models to external tools and data sources through the Model Context Protocol."
	SearchPlaceholder = "Search integrations..."
)

// Card is one integration tile on the catalog page.
type Card struct {
	ID          string
	Name        string
	Description string
	Stars       int
	Category    string
	Author      string
	Href        string
}

// Category is a button in the category bar. Buttons do not filter.
type Category struct {
	Name   string
	Active bool
}

// CatalogPage is the landing view.
type CatalogPage struct {
	Title             string
	Tagline           string
	SearchPlaceholder string
	Featured          []Card
	Categories        []Category
	All               []Card
}

// Resolver builds pages from a catalog under an author slug policy.
type Resolver struct {
	Catalog *catalog.Catalog
	Slugger catalog.Slugger
}

// NewResolver returns a Resolver over c with the given author slug policy.
func NewResolver(c *catalog.Catalog, s catalog.Slugger) *Resolver {
	return &Resolver{Catalog: c, Slugger: s}
}

// CatalogPage builds the landing view. Featured lists only featured
// records; All lists every record; both keep table order.
func (r *Resolver) CatalogPage() CatalogPage {
	page := CatalogPage{
		Title:             CatalogTitle,
		Tagline:           CatalogTagline,
		SearchPlaceholder: SearchPlaceholder,
		Featured:          r.cards(r.Catalog.Featured()),
		All:               r.cards(r.Catalog.All()),
	}
	for _, name := range catalog.Categories() {
		page.Categories = append(page.Categories, Category{Name: name, Active: name == "All"})
	}
	return page
}

func (r *Resolver) cards(records []catalog.Integration) []Card {
	cards := make([]Card, 0, len(records))
	for _, rec := range records {
		cards = append(cards, Card{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Stars:       rec.Stars,
			Category:    rec.Category,
			Author:      rec.Author,
			Href:        r.Slugger.Path(rec),
		})
	}
	return cards
}
