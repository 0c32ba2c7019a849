// Package catalog holds the read-only integration table behind both views.
package catalog

import (
	"fmt"

	"github.com/thoreinstein/mcpreg/internal/errors"
)

// PublishedLayout is the date layout of Integration.Published.
const PublishedLayout = "2006-01-02"

// Catalog is an immutable, ordered integration table keyed by ID.
// It is safe for concurrent use.
type Catalog struct {
	records []Integration
	index   map[string]int
}

// New validates records and builds a Catalog preserving their order.
// Records are copied, so later changes to the input do not leak in.
func New(records []Integration) (*Catalog, error) {
	if problems := Check(records); len(problems) > 0 {
		errs := make([]error, len(problems))
		for i, p := range problems {
			errs[i] = p
		}
		return nil, errors.Mark(errors.Wrap(errors.Join(errs...), "invalid catalog"), errors.ErrInvalidCatalog)
	}

	c := &Catalog{
		records: make([]Integration, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		c.records[i] = r.clone()
		c.index[r.ID] = i
	}
	return c, nil
}

// Default returns the built-in sample catalog.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Len returns the number of integrations.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns every integration in table order.
func (c *Catalog) All() []Integration {
	out := make([]Integration, len(c.records))
	for i, r := range c.records {
		out[i] = r.clone()
	}
	return out
}

// Featured returns the integrations with the featured flag set, in table order.
func (c *Catalog) Featured() []Integration {
	var out []Integration
	for _, r := range c.records {
		if r.Featured {
			out = append(out, r.clone())
		}
	}
	return out
}

// Lookup finds an integration by identifier.
func (c *Catalog) Lookup(id string) (Integration, bool) {
	i, ok := c.index[id]
	if !ok {
		return Integration{}, false
	}
	return c.records[i].clone(), true
}

// IDs returns identifiers in table order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.records))
	for i, r := range c.records {
		ids[i] = r.ID
	}
	return ids
}

// Categories returns the category bar labels; the first entry is "All".
func Categories() []string {
	return append([]string(nil), categories...)
}
