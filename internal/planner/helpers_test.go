package planner

import "github.com/osse101/craftplanner/internal/domain"

func ing(id string, qty int) domain.Ingredient {
	return domain.Ingredient{ItemID: id, Quantity: qty}
}

func recipe(output int, ingredients ...domain.Ingredient) domain.Recipe {
	return domain.Recipe{OutputQuantity: output, ConsumedItems: ingredients}
}

func baseItem(id string, tier int) domain.Item {
	return domain.Item{ID: id, Name: id, Tier: tier, Rarity: domain.RarityCommon}
}

func craftedItem(id string, tier int, recipes ...domain.Recipe) domain.Item {
	return domain.Item{ID: id, Name: id, Tier: tier, Rarity: domain.RarityCommon, Recipes: recipes}
}

func newTestPlanner(items ...domain.Item) Planner {
	return New(domain.NewCatalog(items))
}

func demand(id string, qty int) domain.BuildDemand {
	return domain.BuildDemand{ItemID: id, Quantity: qty}
}

// woodworkingCatalog is a small three-level graph shared by several tests:
// log -> plank (x2 per craft) -> table, chair; nail from ore; bench uses table + chair
func woodworkingCatalog() Planner {
	return newTestPlanner(
		baseItem("log", 0),
		baseItem("ore", 0),
		craftedItem("plank", 1, recipe(2, ing("log", 1))),
		craftedItem("nail", 1, recipe(10, ing("ore", 1))),
		craftedItem("table", 2, recipe(1, ing("plank", 4), ing("nail", 8))),
		craftedItem("chair", 2, recipe(1, ing("plank", 2), ing("nail", 4))),
		craftedItem("bench", 3, recipe(1, ing("table", 1), ing("chair", 2), ing("plank", 1))),
	)
}

func requirementByID(rows []domain.MaterialRequirement, id string) (domain.MaterialRequirement, bool) {
	for _, r := range rows {
		if r.ItemID == id {
			return r, true
		}
	}
	return domain.MaterialRequirement{}, false
}

func stepIndex(steps []domain.CraftingStep, id string) int {
	for i, s := range steps {
		if s.ItemID == id {
			return i
		}
	}
	return -1
}
