package planner

import "github.com/osse101/craftplanner/internal/domain"

// EffectiveQuantity returns direct stock of itemID plus the units locked up in
// owned items whose first recipe consumes it. Only one level is considered and
// each contribution is floored.
func (p *planner) EffectiveQuantity(stock domain.Stock, itemID string) int {
	total := stock.Quantity(itemID)
	if total < 0 {
		total = 0
	}
	for _, c := range p.firstRecipeConsumers[itemID] {
		owned := stock.Quantity(c.itemID)
		if owned <= 0 {
			continue
		}
		total += (c.perCraft * owned) / c.output
	}
	return total
}

// Substitutes lists owned items that consume itemID in any of their recipes
func (p *planner) Substitutes(stock domain.Stock, itemID string) []domain.Substitute {
	var subs []domain.Substitute
	for _, id := range p.anyRecipeConsumers[itemID] {
		owned := stock.Quantity(id)
		if owned <= 0 {
			continue
		}
		item, _ := p.catalog.Item(id)
		subs = append(subs, domain.Substitute{
			ItemID:   id,
			Name:     item.Name,
			Quantity: owned,
		})
	}
	return subs
}
