package inventory

import (
	"fmt"

	"github.com/osse101/craftplanner/internal/domain"
)

// BuildList is the ordered list of items the player wants to craft.
// Each item appears at most once; quantities never drop below one.
type BuildList struct {
	demands []domain.BuildDemand
}

// NewBuildList creates an empty build list
func NewBuildList() *BuildList {
	return &BuildList{}
}

func clampDemand(quantity int) int {
	if quantity < domain.MinDemandQuantity {
		return domain.MinDemandQuantity
	}
	return quantity
}

func (b *BuildList) find(itemID string) int {
	for i := range b.demands {
		if b.demands[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// Add appends a demand, or merges the quantity into an existing entry for the
// same item. The existing recipe choice is kept on merge.
func (b *BuildList) Add(itemID string, quantity, recipeIndex int) domain.BuildDemand {
	quantity = clampDemand(quantity)
	if idx := b.find(itemID); idx >= 0 {
		b.demands[idx].Quantity += quantity
		return b.demands[idx]
	}
	d := domain.BuildDemand{ItemID: itemID, Quantity: quantity, RecipeIndex: recipeIndex}
	b.demands = append(b.demands, d)
	return d
}

// Update replaces quantity and recipe choice of an existing entry
func (b *BuildList) Update(itemID string, quantity, recipeIndex int) (domain.BuildDemand, error) {
	idx := b.find(itemID)
	if idx < 0 {
		return domain.BuildDemand{}, fmt.Errorf("%w: %s is not in the build list", domain.ErrItemNotFound, itemID)
	}
	b.demands[idx].Quantity = clampDemand(quantity)
	b.demands[idx].RecipeIndex = recipeIndex
	return b.demands[idx], nil
}

// Remove deletes the entry for itemID, reporting whether it existed
func (b *BuildList) Remove(itemID string) bool {
	idx := b.find(itemID)
	if idx < 0 {
		return false
	}
	b.demands = append(b.demands[:idx], b.demands[idx+1:]...)
	return true
}

// Clear empties the build list
func (b *BuildList) Clear() {
	b.demands = nil
}

// Len returns the number of entries
func (b *BuildList) Len() int {
	return len(b.demands)
}

// Demands returns a copy of the entries in insertion order
func (b *BuildList) Demands() []domain.BuildDemand {
	out := make([]domain.BuildDemand, len(b.demands))
	copy(out, b.demands)
	return out
}
