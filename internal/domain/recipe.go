package domain

// Ingredient is the amount of one item consumed by a single craft operation
type Ingredient struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// SkillRequirement is the profession level needed to run a recipe
type SkillRequirement struct {
	SkillName  string `json:"skill_name"`
	SkillLevel int    `json:"skill_level"`
	SkillID    int    `json:"skill_id,omitempty"`
}

// Recipe describes one way of crafting an item
type Recipe struct {
	OutputQuantity      int               `json:"output_quantity"`
	ConsumedItems       []Ingredient      `json:"consumed_items"`
	SkillRequirement    *SkillRequirement `json:"skill_requirement,omitempty"`
	BuildingRequirement *string           `json:"building_requirement,omitempty"`
	LevelRequirement    int               `json:"level_requirement,omitempty"`
}

// Output returns the units produced per craft, never less than 1
func (r *Recipe) Output() int {
	if r.OutputQuantity < 1 {
		return 1
	}
	return r.OutputQuantity
}

// CraftsFor returns how many craft operations produce at least quantity units.
// Partial batches cost a full operation.
func (r *Recipe) CraftsFor(quantity int) int {
	if quantity <= 0 {
		return 0
	}
	out := r.Output()
	return (quantity + out - 1) / out
}

// Consumes returns the per-craft amount of itemID in this recipe.
// Only the first matching ingredient counts.
func (r *Recipe) Consumes(itemID string) (int, bool) {
	for _, ing := range r.ConsumedItems {
		if ing.ItemID == itemID {
			return ing.Quantity, true
		}
	}
	return 0, false
}

// Building returns the building requirement or an empty string
func (r *Recipe) Building() string {
	if r.BuildingRequirement == nil {
		return ""
	}
	return *r.BuildingRequirement
}
