package planner

import "github.com/osse101/craftplanner/internal/domain"

// accumulator keeps per-item totals in first-seen order
type accumulator struct {
	order  []string
	totals map[string]int
}

func newAccumulator() *accumulator {
	return &accumulator{totals: make(map[string]int)}
}

func (a *accumulator) add(itemID string, quantity int) {
	if _, ok := a.totals[itemID]; !ok {
		a.order = append(a.order, itemID)
	}
	a.totals[itemID] += quantity
}

// RequiredMaterials flattens demands into the base (uncraftable) materials they need
func (p *planner) RequiredMaterials(stock domain.Stock, demands []domain.BuildDemand) []domain.MaterialRequirement {
	return p.materials(stock, demands, false, newTracker())
}

// AllPossibleMaterials is RequiredMaterials plus every intermediate item on the way
func (p *planner) AllPossibleMaterials(stock domain.Stock, demands []domain.BuildDemand) []domain.MaterialRequirement {
	return p.materials(stock, demands, true, newTracker())
}

func (p *planner) materials(stock domain.Stock, demands []domain.BuildDemand, allLevels bool, tr *tracker) []domain.MaterialRequirement {
	acc := newAccumulator()
	for _, d := range demands {
		p.expand(acc, tr, d.ItemID, d.Quantity, d.RecipeIndex, path{}, allLevels)
	}
	return p.toRequirements(stock, acc)
}

func (p *planner) expand(acc *accumulator, tr *tracker, itemID string, quantity, recipeIndex int, visited path, allLevels bool) {
	if visited.has(itemID) {
		tr.cycleGuard()
		return
	}

	item, ok := p.catalog.Item(itemID)
	if !ok {
		tr.unknownItem(itemID)
		acc.add(itemID, quantity)
		return
	}
	recipe, ok := item.Recipe(recipeIndex)
	if !ok {
		acc.add(itemID, quantity)
		return
	}

	if allLevels {
		acc.add(itemID, quantity)
	}

	craftOps := recipe.CraftsFor(quantity)
	next := visited.with(itemID)
	for _, ing := range recipe.ConsumedItems {
		p.expand(acc, tr, ing.ItemID, craftOps*ing.Quantity, 0, next, allLevels)
	}
}

func (p *planner) toRequirements(stock domain.Stock, acc *accumulator) []domain.MaterialRequirement {
	rows := make([]domain.MaterialRequirement, 0, len(acc.order))
	for _, id := range acc.order {
		name, tier, rarity, known := p.describe(id)
		isBase := true
		if known {
			item, _ := p.catalog.Item(id)
			isBase = item.IsBase()
		}

		needed := acc.totals[id]
		have := stock.Quantity(id)
		if have < 0 {
			have = 0
		}
		effective := p.EffectiveQuantity(stock, id)
		missing := needed - effective
		if missing < 0 {
			missing = 0
		}

		rows = append(rows, domain.MaterialRequirement{
			ItemID:        id,
			Name:          name,
			Tier:          tier,
			Rarity:        rarity,
			Needed:        needed,
			IsBaseItem:    isBase,
			Have:          have,
			EffectiveHave: effective,
			Missing:       missing,
		})
	}

	sortByTierAndName(rows, func(r domain.MaterialRequirement) (int, string, string) {
		return r.Tier, r.Name, r.ItemID
	})
	return rows
}

// ShoppingList returns the base materials that are still missing, with any
// owned items that could be broken down into them
func (p *planner) ShoppingList(stock domain.Stock, demands []domain.BuildDemand) []domain.ShoppingItem {
	var list []domain.ShoppingItem
	for _, row := range p.RequiredMaterials(stock, demands) {
		if row.Missing <= 0 {
			continue
		}
		list = append(list, domain.ShoppingItem{
			MaterialRequirement: row,
			Substitutes:         p.Substitutes(stock, row.ItemID),
		})
	}
	return list
}
