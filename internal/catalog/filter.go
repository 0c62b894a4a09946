package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/craftplanner/internal/domain"
)

// Criteria narrows a catalog listing. Zero values mean "no filter".
type Criteria struct {
	Query      string
	Tier       *int
	Rarity     *domain.Rarity
	RecipeType string
	Skill      string
	Limit      int
}

// Filter returns the items matching criteria ordered by name, then id
func Filter(catalog *domain.Catalog, criteria Criteria) []*domain.Item {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(criteria.Query))
	skill := fold.String(strings.TrimSpace(criteria.Skill))

	var out []*domain.Item
	for _, id := range catalog.IDs() {
		item, _ := catalog.Item(id)
		if matches(item, criteria, query, skill, fold) {
			out = append(out, item)
		}
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		if c := coll.CompareString(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})

	if criteria.Limit > 0 && len(out) > criteria.Limit {
		out = out[:criteria.Limit]
	}
	return out
}

func matches(item *domain.Item, criteria Criteria, query, skill string, fold cases.Caser) bool {
	if query != "" && !strings.Contains(fold.String(item.Name), query) {
		return false
	}
	if criteria.Tier != nil && item.Tier != *criteria.Tier {
		return false
	}
	if criteria.Rarity != nil && item.Rarity != *criteria.Rarity {
		return false
	}

	switch criteria.RecipeType {
	case domain.RecipeTypeCraftable:
		if item.IsBase() {
			return false
		}
	case domain.RecipeTypeBase:
		if !item.IsBase() {
			return false
		}
	}

	if skill != "" {
		found := false
		for i := range item.Recipes {
			req := item.Recipes[i].SkillRequirement
			if req != nil && fold.String(req.SkillName) == skill {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
