package catalog

import (
	"errors"
	"fmt"
)

// DanglingRef is an ingredient that points at an id missing from the catalog
type DanglingRef struct {
	ItemID      string `json:"item_id"`
	RecipeIndex int    `json:"recipe_index"`
	MissingID   string `json:"missing_id"`
}

// CycleEdge is a back edge found while walking the recipe graph
type CycleEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Report lists data-quality problems that do not stop the catalog from loading
type Report struct {
	Dangling []DanglingRef `json:"dangling"`
	Cycles   []CycleEdge   `json:"cycles"`
}

// Err returns the report as an error, or nil when it is clean
func (r *Report) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	if len(r.Dangling) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d %s", ErrDanglingReference, len(r.Dangling), ErrMsgDanglingReferences))
	}
	if len(r.Cycles) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d back edges, first at '%s' -> '%s'",
			ErrCycleDetected, len(r.Cycles), r.Cycles[0].From, r.Cycles[0].To))
	}
	return errors.Join(errs...)
}

func findDanglingReferences(config Config) []DanglingRef {
	var refs []DanglingRef
	for _, id := range sortedIDs(config) {
		for r, recipe := range config[id].Recipes {
			for _, ing := range recipe.ConsumedItems {
				key := IngredientKey(ing.ID)
				if _, ok := config[key]; !ok {
					refs = append(refs, DanglingRef{ItemID: id, RecipeIndex: r, MissingID: key})
				}
			}
		}
	}
	return refs
}

// detectCycles walks every recipe edge depth first and records back edges
func detectCycles(config Config) []CycleEdge {
	// State: 0 = unvisited, 1 = visiting, 2 = visited
	state := make(map[string]int, len(config))
	var cycles []CycleEdge

	var dfs func(id string)
	dfs = func(id string) {
		state[id] = 1

		for _, recipe := range config[id].Recipes {
			for _, ing := range recipe.ConsumedItems {
				next := IngredientKey(ing.ID)
				if _, ok := config[next]; !ok {
					continue
				}
				switch state[next] {
				case 0:
					dfs(next)
				case 1:
					cycles = append(cycles, CycleEdge{From: id, To: next})
				}
			}
		}

		state[id] = 2
	}

	for _, id := range sortedIDs(config) {
		if state[id] == 0 {
			dfs(id)
		}
	}
	return cycles
}
