package building

import (
	"fmt"
	"strconv"
	"strings"
)

// Correction is the outcome of resolving an item's building
type Correction struct {
	Building     string `json:"building"`
	Original     string `json:"original"`
	WasCorrected bool   `json:"was_corrected"`
}

// Info describes a building name for display and grouping
type Info struct {
	Name     string `json:"name"`
	BaseType string `json:"base_type"`
	Tier     int    `json:"tier"`
	TierName string `json:"tier_name"`
	Category string `json:"category"`
	Display  string `json:"display"`
}

// Corrector fixes known bad building requirements and describes buildings
type Corrector interface {
	Correct(itemName, building, skillName string, itemTier int) Correction
	Describe(building string) Info
}

type corrector struct {
	table *Table
}

// NewCorrector creates a corrector backed by the given table
func NewCorrector(table *Table) Corrector {
	if table == nil {
		table = DefaultTable()
	}
	return &corrector{table: table}
}

// Correct applies, in order: exact name corrections, skill and name pattern
// inference for missing buildings, then misassignment fixes
func (c *corrector) Correct(itemName, building, skillName string, itemTier int) Correction {
	corrected := c.resolve(itemName, building, skillName, itemTier)
	return Correction{
		Building:     corrected,
		Original:     building,
		WasCorrected: corrected != building,
	}
}

func (c *corrector) resolve(itemName, building, skillName string, itemTier int) string {
	if fixed, ok := c.table.Corrections[itemName]; ok {
		return fixed
	}

	if building == "" {
		if station, ok := c.table.Skills[skillName]; ok && skillName != "" {
			return tiered(station, itemTier)
		}
		for _, p := range c.table.Patterns {
			if strings.Contains(itemName, p.Contains) {
				return tiered(p.Building, itemTier)
			}
		}
	}

	for _, m := range c.table.Misassignments {
		if building != m.Building {
			continue
		}
		for _, word := range m.NameContains {
			if strings.Contains(itemName, word) {
				return m.Replacement
			}
		}
	}

	return building
}

// tiered prefixes an inferred station with the item tier. Tier 0 items use
// tier 1 stations; base items get the bare station name.
func tiered(station string, itemTier int) string {
	if itemTier == 0 {
		itemTier = DefaultBuildingTier
	}
	if itemTier < 0 {
		return station
	}
	return fmt.Sprintf(TieredNameFormat, itemTier, station)
}

func (c *corrector) Describe(building string) Info {
	base := c.baseType(building)
	tier := c.tier(building)
	info := Info{
		Name:     building,
		BaseType: base,
		Tier:     tier,
		TierName: c.tierName(tier),
		Category: c.category(base),
	}

	switch {
	case building == "":
		info.Display = NoBuildingRequired
	case base == "":
		info.Display = building
	case tier == DefaultBuildingTier:
		info.Display = base
	default:
		info.Display = info.TierName + " " + base
	}
	return info
}

func (c *corrector) baseType(building string) string {
	if building == "" {
		return ""
	}
	for _, t := range c.table.Types {
		if strings.Contains(building, strings.TrimSuffix(t.Name, StationSuffix)) {
			return t.Name
		}
	}
	return ""
}

func (c *corrector) tier(building string) int {
	if building == "" {
		return 0
	}
	for _, k := range c.table.Tiers {
		if strings.Contains(building, k.Keyword) {
			return k.Tier
		}
	}
	// names produced by inference look like "Tier 3 Smithing Station"
	if rest, ok := strings.CutPrefix(building, TierPrefix); ok {
		fields := strings.Fields(rest)
		if len(fields) > 0 {
			if n, err := strconv.Atoi(fields[0]); err == nil && n > 0 {
				return n
			}
		}
	}
	return DefaultBuildingTier
}

func (c *corrector) tierName(tier int) string {
	if name, ok := c.table.TierNames[tier]; ok {
		return name
	}
	return TierPrefix + strconv.Itoa(tier)
}

func (c *corrector) category(baseType string) string {
	for _, t := range c.table.Types {
		if t.Name == baseType && t.Category != "" {
			return t.Category
		}
	}
	return CategoryUtility
}
