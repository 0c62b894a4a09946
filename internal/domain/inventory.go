package domain

// Stock is read access to on-hand quantities
type Stock interface {
	Quantity(itemID string) int
}

// Inventory is a snapshot of on-hand quantities keyed by item id.
// Items that are not owned are absent, never stored as zero.
type Inventory map[string]int

// Quantity returns the owned amount of itemID; safe on a nil map
func (inv Inventory) Quantity(itemID string) int {
	if inv == nil {
		return 0
	}
	return inv[itemID]
}

// BuildDemand is one entry of the build list
type BuildDemand struct {
	ItemID      string `json:"item_id"`
	Quantity    int    `json:"quantity"`
	RecipeIndex int    `json:"recipe_index"`
}
