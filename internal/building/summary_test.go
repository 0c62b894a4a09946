package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftplanner/internal/domain"
)

func step(name string, tier int, building, skill string) domain.CraftingStep {
	s := domain.CraftingStep{ItemID: name, Name: name, Tier: tier}
	if building != "" {
		s.BuildingRequirement = &building
	}
	if skill != "" {
		s.SkillRequirement = &domain.SkillRequirement{SkillName: skill, SkillLevel: 1}
	}
	return s
}

func TestSummarize(t *testing.T) {
	steps := []domain.CraftingStep{
		step("Molten Copper", 2, "Fishing Station", "Smithing"),
		step("Copper Ingot", 2, "Smithing Station", "Smithing"),
		step("Plank", 1, "Carpentry Station", "Carpentry"),
		step("Mystery Box", 1, "", ""),
		step("Fish Bait", 1, "Fishing Station", "Fishing"),
	}

	groups := Summarize(steps, NewCorrector(nil))

	require.Len(t, groups, 4)
	assert.Equal(t, "Carpentry Station", groups[0].Building)
	assert.Equal(t, "Smithing Station", groups[1].Building)
	assert.Equal(t, 2, groups[1].StepCount)
	assert.Equal(t, []string{"Molten Copper", "Copper Ingot"}, groups[1].Items)
	assert.Equal(t, "Fishing Station", groups[2].Building)
	assert.Equal(t, CategoryProduction, groups[2].Category)
	assert.Equal(t, "", groups[3].Building)
	assert.Equal(t, NoBuildingRequired, groups[3].Display)
}

func TestSummarize_Empty(t *testing.T) {
	groups := Summarize(nil, NewCorrector(nil))

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestStep(t *testing.T) {
	c := NewCorrector(nil)

	got := Step(c, step("Leather Strap", 3, "", "Leatherworking"))

	assert.Equal(t, "Tier 3 Leatherworking Station", got.Building)
	assert.True(t, got.WasCorrected)
}
