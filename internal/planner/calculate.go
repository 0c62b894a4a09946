package planner

import "github.com/osse101/craftplanner/internal/domain"

// Calculate breaks a single target down into base materials and the
// intermediate items crafted along the way. The recipe index applies to the
// target only; every ingredient uses its first recipe. Unknown ids are skipped.
func (p *planner) Calculate(itemID string, quantity, recipeIndex int) *domain.Calculation {
	base := newAccumulator()
	intermediates := newAccumulator()

	var walk func(id string, qty, idx int, visited path)
	walk = func(id string, qty, idx int, visited path) {
		if visited.has(id) {
			return
		}
		item, ok := p.catalog.Item(id)
		if !ok {
			return
		}
		recipe, ok := item.Recipe(idx)
		if !ok {
			base.add(id, qty)
			return
		}
		if id != itemID {
			intermediates.add(id, qty)
		}

		craftOps := recipe.CraftsFor(qty)
		next := visited.with(id)
		for _, ing := range recipe.ConsumedItems {
			walk(ing.ItemID, craftOps*ing.Quantity, 0, next)
		}
	}
	walk(itemID, quantity, recipeIndex, path{})

	calc := &domain.Calculation{
		ItemID:        itemID,
		Quantity:      quantity,
		BaseMaterials: p.calculated(base, true),
		Intermediates: p.calculated(intermediates, false),
	}
	if item, ok := p.catalog.Item(itemID); ok {
		calc.RecipeIndex = item.ResolveRecipeIndex(recipeIndex)
	}

	calc.Total = make([]domain.CalculatedMaterial, 0, len(calc.BaseMaterials)+len(calc.Intermediates))
	calc.Total = append(calc.Total, calc.BaseMaterials...)
	calc.Total = append(calc.Total, calc.Intermediates...)
	sortByTierAndName(calc.Total, calculatedKey)
	return calc
}

func (p *planner) calculated(acc *accumulator, isBase bool) []domain.CalculatedMaterial {
	rows := make([]domain.CalculatedMaterial, 0, len(acc.order))
	for _, id := range acc.order {
		name, tier, rarity, _ := p.describe(id)
		rows = append(rows, domain.CalculatedMaterial{
			ItemID:     id,
			Name:       name,
			Tier:       tier,
			Rarity:     rarity,
			Quantity:   acc.totals[id],
			IsBaseItem: isBase,
		})
	}
	sortByTierAndName(rows, calculatedKey)
	return rows
}

func calculatedKey(m domain.CalculatedMaterial) (int, string, string) {
	return m.Tier, m.Name, m.ItemID
}
