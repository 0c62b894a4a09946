package building

import (
	"sort"

	"github.com/osse101/craftplanner/internal/domain"
)

// Step corrects a single step's building requirement
func Step(c Corrector, step domain.CraftingStep) Correction {
	original := ""
	if step.BuildingRequirement != nil {
		original = *step.BuildingRequirement
	}
	skill := ""
	if step.SkillRequirement != nil {
		skill = step.SkillRequirement.SkillName
	}
	return c.Correct(step.Name, original, skill, step.Tier)
}

// Summarize groups crafting steps by their corrected building. Groups are
// ordered by category, tier and name; steps without a building come last.
func Summarize(steps []domain.CraftingStep, c Corrector) []domain.BuildingGroup {
	index := make(map[string]int)
	groups := make([]domain.BuildingGroup, 0)

	for _, step := range steps {
		name := Step(c, step).Building

		i, ok := index[name]
		if !ok {
			info := c.Describe(name)
			i = len(groups)
			index[name] = i
			groups = append(groups, domain.BuildingGroup{
				Building: name,
				Display:  info.Display,
				BaseType: info.BaseType,
				Tier:     info.Tier,
				Category: info.Category,
			})
		}
		groups[i].StepCount++
		groups[i].Items = append(groups[i].Items, step.Name)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		ga, gb := groups[a], groups[b]
		if (ga.Building == "") != (gb.Building == "") {
			return gb.Building == ""
		}
		if ga.Category != gb.Category {
			return ga.Category < gb.Category
		}
		if ga.Tier != gb.Tier {
			return ga.Tier < gb.Tier
		}
		return ga.Building < gb.Building
	})
	return groups
}
