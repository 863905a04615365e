package catalog

import (
	"fmt"
	"strings"

	"amritha-heritage/internal/model"

	"github.com/shopspring/decimal"
)

// AllCategories is the filter tag that passes every item through.
const AllCategories = "All"

// Catalog is an immutable, ordered list of items indexed by ID.
type Catalog struct {
	items []model.CatalogItem
	index map[string]int
}

// New builds a catalog from items, keeping their order.
// IDs must be non-empty and unique. Descriptions are rendered to sanitised
// HTML when no pre-rendered HTML is supplied.
func New(items []model.CatalogItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]model.CatalogItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	for i, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return nil, fmt.Errorf("item %d: ID is required", i)
		}
		if _, exists := c.index[id]; exists {
			return nil, fmt.Errorf("item %d: duplicate ID %q", i, id)
		}

		item.ID = id
		if item.DescriptionHTML == "" && item.Description != "" {
			item.DescriptionHTML = RenderDescription(item.Description)
		}

		c.index[id] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

// MustNew is like New but panics on invalid input. Used for built-in data.
func MustNew(items []model.CatalogItem) *Catalog {
	c, err := New(items)
	if err != nil {
		panic(err)
	}
	return c
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []model.CatalogItem {
	out := make([]model.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get returns the item with the given ID.
func (c *Catalog) Get(id string) (model.CatalogItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.CatalogItem{}, false
	}
	return c.items[i], true
}

// Has reports whether the catalog contains id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Categories returns AllCategories followed by each distinct category in
// order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	out := []string{AllCategories}
	for _, item := range c.items {
		if _, ok := seen[item.Category]; ok || item.Category == "" {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}

// Filter returns the items whose category equals tag, keeping their order.
// AllCategories and the empty tag return the whole catalog.
func (c *Catalog) Filter(tag string) []model.CatalogItem {
	return Filter(c.items, tag)
}

// Resolve returns the items whose IDs are in ids, in catalog order.
// Unknown IDs are skipped.
func (c *Catalog) Resolve(ids []string) []model.CatalogItem {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := make([]model.CatalogItem, 0, len(wanted))
	for _, item := range c.items {
		if _, ok := wanted[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Missing returns the IDs in ids that the catalog does not contain.
func (c *Catalog) Missing(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if !c.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// Total sums the price of the selected items against the current catalog.
func (c *Catalog) Total(ids []string) decimal.Decimal {
	return Sum(c.Resolve(ids))
}

// Filter projects items down to the given category, preserving order.
// A tag matching nothing yields an empty, non-nil slice.
func Filter(items []model.CatalogItem, tag string) []model.CatalogItem {
	if tag == "" || tag == AllCategories {
		out := make([]model.CatalogItem, len(items))
		copy(out, items)
		return out
	}

	out := make([]model.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.Category == tag {
			out = append(out, item)
		}
	}
	return out
}

// Sum adds up the prices of items.
func Sum(items []model.CatalogItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}
