package domain

import "sort"

// Catalog is the read-only id -> Item map the planner works against.
// It is never mutated after construction, so it can be shared freely.
type Catalog struct {
	items map[string]*Item
	ids   []string
}

// NewCatalog builds a catalog from a list of items. Later duplicates win.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{items: make(map[string]*Item, len(items))}
	for i := range items {
		item := items[i]
		if _, exists := c.items[item.ID]; !exists {
			c.ids = append(c.ids, item.ID)
		}
		c.items[item.ID] = &item
	}
	sort.Strings(c.ids)
	return c
}

// Item looks up an item by id
func (c *Catalog) Item(id string) (*Item, bool) {
	if c == nil {
		return nil, false
	}
	item, ok := c.items[id]
	return item, ok
}

// IDs returns every item id in lexical order. Callers must not modify the slice.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	return c.ids
}

// Len returns the number of items
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}
