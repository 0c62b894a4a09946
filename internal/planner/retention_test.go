package planner

import (
	"testing"

	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/testing/leaktest"
)

// Queries recompute from scratch, so repeating them must not grow the heap
func TestPlanner_RepeatedQueriesRetainNothing(t *testing.T) {
	p := woodworkingCatalog()
	stock := domain.Inventory{"plank": 3, "nail": 5}
	demands := []domain.BuildDemand{demand("bench", 4), demand("table", 2)}

	// warm up lazily initialised runtime structures
	p.Analyze(stock, demands)

	leaktest.CheckNoMemoryLeak(t, 1.0, func() {
		for i := 0; i < 2000; i++ {
			p.Analyze(stock, demands)
			p.ShoppingList(stock, demands)
			p.RecipeTree("bench", 3, 0)
			p.SkillSummary("bench", 0)
		}
	})
}
