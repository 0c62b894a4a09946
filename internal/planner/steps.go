package planner

import "github.com/osse101/craftplanner/internal/domain"

// requirement is the netted crafting demand for one item
type requirement struct {
	itemID       string
	quantity     int
	recipeIndex  int
	dependencies []string
	depSet       map[string]bool
}

func (r *requirement) dependOn(itemID string) {
	if r.depSet[itemID] {
		return
	}
	r.depSet[itemID] = true
	r.dependencies = append(r.dependencies, itemID)
}

type requirementSet struct {
	order []string
	byID  map[string]*requirement
}

// CraftingSteps returns the crafts still needed for demands after effective
// inventory, ordered so every ingredient is crafted before its consumer
func (p *planner) CraftingSteps(stock domain.Stock, demands []domain.BuildDemand) []domain.CraftingStep {
	return p.craftingSteps(stock, demands, newTracker())
}

func (p *planner) craftingSteps(stock domain.Stock, demands []domain.BuildDemand, tr *tracker) []domain.CraftingStep {
	reqs := &requirementSet{byID: make(map[string]*requirement)}
	for _, d := range demands {
		p.collect(stock, reqs, tr, d.ItemID, d.Quantity, d.RecipeIndex, path{})
	}

	ordered := topologicalOrder(reqs, tr)

	steps := make([]domain.CraftingStep, 0, len(ordered))
	for i, id := range ordered {
		step := p.buildStep(reqs.byID[id], tr)
		step.Position = i + 1
		step.Complete = p.StepComplete(stock, &step)
		steps = append(steps, step)
	}
	return steps
}

func (p *planner) collect(stock domain.Stock, reqs *requirementSet, tr *tracker, itemID string, quantity, recipeIndex int, visited path) {
	if visited.has(itemID) {
		tr.cycleGuard()
		return
	}
	visited = visited.with(itemID)

	item, ok := p.catalog.Item(itemID)
	if !ok {
		tr.unknownItem(itemID)
		return
	}
	if item.IsBase() {
		return
	}

	need := quantity - p.EffectiveQuantity(stock, itemID)
	if need <= 0 {
		return
	}

	req, exists := reqs.byID[itemID]
	if exists {
		req.quantity += need
	} else {
		req = &requirement{
			itemID:      itemID,
			quantity:    need,
			recipeIndex: item.ResolveRecipeIndex(recipeIndex),
			depSet:      make(map[string]bool),
		}
		reqs.byID[itemID] = req
		reqs.order = append(reqs.order, itemID)
	}

	recipe, _ := item.Recipe(recipeIndex)
	craftOps := recipe.CraftsFor(need)
	for _, ing := range recipe.ConsumedItems {
		ingItem, ok := p.catalog.Item(ing.ItemID)
		if !ok {
			tr.unknownItem(ing.ItemID)
			continue
		}
		if ingItem.IsBase() {
			continue
		}
		req.dependOn(ing.ItemID)
		p.collect(stock, reqs, tr, ing.ItemID, craftOps*ing.Quantity, 0, visited)
	}
}

// topologicalOrder emits each requirement after its dependencies.
// Back edges found while an item is still on the stack are dropped.
func topologicalOrder(reqs *requirementSet, tr *tracker) []string {
	sorted := make([]string, 0, len(reqs.order))
	processed := make(map[string]bool, len(reqs.order))
	processing := make(map[string]bool)

	var visit func(id string)
	visit = func(id string) {
		if processed[id] {
			return
		}
		if processing[id] {
			tr.cycleGuard()
			return
		}
		processing[id] = true

		for _, dep := range reqs.byID[id].dependencies {
			if _, ok := reqs.byID[dep]; ok {
				visit(dep)
			}
		}

		delete(processing, id)
		processed[id] = true
		sorted = append(sorted, id)
	}

	for _, id := range reqs.order {
		visit(id)
	}
	return sorted
}

func (p *planner) buildStep(req *requirement, tr *tracker) domain.CraftingStep {
	item, _ := p.catalog.Item(req.itemID)
	recipe, _ := item.Recipe(req.recipeIndex)
	crafts := recipe.CraftsFor(req.quantity)

	ingredients := make([]domain.StepIngredient, 0, len(recipe.ConsumedItems))
	for _, ing := range recipe.ConsumedItems {
		name, tier, rarity, known := p.describe(ing.ItemID)
		if !known {
			tr.unknownItem(ing.ItemID)
		}
		ingredients = append(ingredients, domain.StepIngredient{
			ItemID:   ing.ItemID,
			Name:     name,
			Tier:     tier,
			Rarity:   rarity,
			Quantity: crafts * ing.Quantity,
		})
	}

	deps := make([]string, len(req.dependencies))
	copy(deps, req.dependencies)

	return domain.CraftingStep{
		ItemID:              req.itemID,
		Name:                item.Name,
		Tier:                item.Tier,
		Rarity:              item.Rarity,
		Quantity:            req.quantity,
		RecipeIndex:         req.recipeIndex,
		OutputQuantity:      recipe.Output(),
		CraftsNeeded:        crafts,
		Ingredients:         ingredients,
		Dependencies:        deps,
		SkillRequirement:    recipe.SkillRequirement,
		BuildingRequirement: recipe.BuildingRequirement,
	}
}

// StepComplete reports whether step can be considered done: either the item is
// already covered by effective inventory, or every ingredient is covered or
// could be crafted from its first recipe with what is on hand. The ingredient
// lookahead is one level deep and uses per-craft sub-ingredient amounts.
func (p *planner) StepComplete(stock domain.Stock, step *domain.CraftingStep) bool {
	if p.EffectiveQuantity(stock, step.ItemID) >= step.Quantity {
		return true
	}

	for _, ing := range step.Ingredients {
		if p.EffectiveQuantity(stock, ing.ItemID) >= ing.Quantity {
			continue
		}
		if !p.craftableFromStock(stock, ing.ItemID) {
			return false
		}
	}
	return true
}

func (p *planner) craftableFromStock(stock domain.Stock, itemID string) bool {
	item, ok := p.catalog.Item(itemID)
	if !ok || item.IsBase() {
		return false
	}
	for _, sub := range item.Recipes[0].ConsumedItems {
		if p.EffectiveQuantity(stock, sub.ItemID) < sub.Quantity {
			return false
		}
	}
	return true
}
