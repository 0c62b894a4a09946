package planner

import (
	"sort"

	"github.com/osse101/craftplanner/internal/domain"
)

// RecipeTree expands itemID into a nested tree. The root uses recipeIndex,
// falling back to its first recipe; every other item uses its first recipe.
// Unknown ids and items already on the current path become leaves.
func (p *planner) RecipeTree(itemID string, quantity, recipeIndex int) *domain.RecipeNode {
	return p.treeNode(itemID, quantity, recipeIndex, path{})
}

func (p *planner) treeNode(itemID string, quantity, recipeIndex int, visited path) *domain.RecipeNode {
	node := &domain.RecipeNode{ItemID: itemID, Quantity: quantity}

	item, ok := p.catalog.Item(itemID)
	if !ok {
		return node
	}
	node.Item = item
	if visited.has(itemID) || item.IsBase() {
		return node
	}

	node.RecipeIndex = item.ResolveRecipeIndex(recipeIndex)
	recipe := &item.Recipes[node.RecipeIndex]
	next := visited.with(itemID)
	node.Children = make([]*domain.RecipeNode, 0, len(recipe.ConsumedItems))
	for _, ing := range recipe.ConsumedItems {
		childQty := ceilDiv(quantity*ing.Quantity, recipe.Output())
		node.Children = append(node.Children, p.treeNode(ing.ItemID, childQty, 0, next))
	}
	return node
}

// SkillSummary walks the same tree as RecipeTree and reports the highest level
// required for each skill, ordered by skill name
func (p *planner) SkillSummary(itemID string, recipeIndex int) []domain.SkillLevel {
	levels := make(map[string]int)
	p.collectSkills(itemID, recipeIndex, path{}, levels)

	summary := make([]domain.SkillLevel, 0, len(levels))
	for name, level := range levels {
		summary = append(summary, domain.SkillLevel{SkillName: name, SkillLevel: level})
	}
	order := newNameOrder()
	sort.Slice(summary, func(i, j int) bool {
		return order.less(0, 0, summary[i].SkillName, summary[j].SkillName, "", "")
	})
	return summary
}

func (p *planner) collectSkills(itemID string, recipeIndex int, visited path, levels map[string]int) {
	if visited.has(itemID) {
		return
	}
	item, ok := p.catalog.Item(itemID)
	if !ok {
		return
	}
	recipe, ok := item.Recipe(recipeIndex)
	if !ok {
		return
	}

	if skill := recipe.SkillRequirement; skill != nil && skill.SkillName != "" {
		levels[skill.SkillName] = max(levels[skill.SkillName], skill.SkillLevel)
	}
	next := visited.with(itemID)
	for _, ing := range recipe.ConsumedItems {
		p.collectSkills(ing.ItemID, 0, next, levels)
	}
}
