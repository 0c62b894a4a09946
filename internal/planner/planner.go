package planner

import (
	"github.com/osse101/craftplanner/internal/domain"
)

// Planner answers crafting queries over a fixed catalog.
// Every query recomputes from scratch and never mutates its inputs.
type Planner interface {
	Catalog() *domain.Catalog

	EffectiveQuantity(stock domain.Stock, itemID string) int
	Substitutes(stock domain.Stock, itemID string) []domain.Substitute

	RequiredMaterials(stock domain.Stock, demands []domain.BuildDemand) []domain.MaterialRequirement
	AllPossibleMaterials(stock domain.Stock, demands []domain.BuildDemand) []domain.MaterialRequirement
	ShoppingList(stock domain.Stock, demands []domain.BuildDemand) []domain.ShoppingItem

	CraftingSteps(stock domain.Stock, demands []domain.BuildDemand) []domain.CraftingStep
	StepComplete(stock domain.Stock, step *domain.CraftingStep) bool

	Analyze(stock domain.Stock, demands []domain.BuildDemand) *Report

	Calculate(itemID string, quantity, recipeIndex int) *domain.Calculation
	RecipeTree(itemID string, quantity, recipeIndex int) *domain.RecipeNode
	SkillSummary(itemID string, recipeIndex int) []domain.SkillLevel
}

// consumer is an item whose recipe lists a given component
type consumer struct {
	itemID   string
	perCraft int
	output   int
}

type planner struct {
	catalog *domain.Catalog

	// component id -> items whose first recipe consumes it
	firstRecipeConsumers map[string][]consumer
	// component id -> items consuming it in any recipe
	anyRecipeConsumers map[string][]string
}

// New creates a planner for catalog. The catalog must not change afterwards.
func New(catalog *domain.Catalog) Planner {
	p := &planner{
		catalog:              catalog,
		firstRecipeConsumers: make(map[string][]consumer),
		anyRecipeConsumers:   make(map[string][]string),
	}
	p.indexConsumers()
	return p
}

func (p *planner) Catalog() *domain.Catalog {
	return p.catalog
}

func (p *planner) indexConsumers() {
	for _, id := range p.catalog.IDs() {
		item, _ := p.catalog.Item(id)
		if item.IsBase() {
			continue
		}

		first := &item.Recipes[0]
		seenFirst := make(map[string]bool)
		for _, ing := range first.ConsumedItems {
			if ing.ItemID == id || seenFirst[ing.ItemID] {
				continue
			}
			seenFirst[ing.ItemID] = true
			p.firstRecipeConsumers[ing.ItemID] = append(p.firstRecipeConsumers[ing.ItemID], consumer{
				itemID:   id,
				perCraft: ing.Quantity,
				output:   first.Output(),
			})
		}

		seenAny := make(map[string]bool)
		for i := range item.Recipes {
			for _, ing := range item.Recipes[i].ConsumedItems {
				if ing.ItemID == id || seenAny[ing.ItemID] {
					continue
				}
				seenAny[ing.ItemID] = true
				p.anyRecipeConsumers[ing.ItemID] = append(p.anyRecipeConsumers[ing.ItemID], id)
			}
		}
	}
}

// describe returns display attributes for an id, falling back for unknown ids
func (p *planner) describe(itemID string) (name string, tier int, rarity domain.Rarity, known bool) {
	item, ok := p.catalog.Item(itemID)
	if !ok {
		return UnknownItemName(itemID), 0, domain.RarityCommon, false
	}
	return item.Name, item.Tier, item.Rarity, true
}

// UnknownItemName is the display name used for ids missing from the catalog
func UnknownItemName(itemID string) string {
	return "Item " + itemID
}

func ceilDiv(a, b int) int {
	if b < 1 {
		b = 1
	}
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
