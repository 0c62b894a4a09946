package building

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTable is returned when a correction table is unusable
var ErrInvalidTable = errors.New("invalid building table")

// Pattern maps an item name substring to a station
type Pattern struct {
	Contains string `yaml:"contains"`
	Building string `yaml:"building"`
}

// Misassignment replaces a building the data got obviously wrong
type Misassignment struct {
	Building     string   `yaml:"building"`
	NameContains []string `yaml:"name_contains"`
	Replacement  string   `yaml:"replacement"`
}

// Type is a base station and its category
type Type struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// TierKeyword marks a tier inside a building name
type TierKeyword struct {
	Keyword string `yaml:"keyword"`
	Tier    int    `yaml:"tier"`
}

// Table is the swappable data behind building corrections and naming
type Table struct {
	Corrections    map[string]string `yaml:"corrections"`
	Skills         map[string]string `yaml:"skills"`
	Patterns       []Pattern         `yaml:"patterns"`
	Misassignments []Misassignment   `yaml:"misassignments"`
	Types          []Type            `yaml:"types"`
	Tiers          []TierKeyword     `yaml:"tiers"`
	TierNames      map[int]string    `yaml:"tier_names"`
}

// LoadTable reads a YAML correction table
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTableFailed, err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTableFailed, err)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate checks that every entry names a building
func (t *Table) Validate() error {
	for name, b := range t.Corrections {
		if b == "" {
			return fmt.Errorf("%w: correction for '%s' has no building", ErrInvalidTable, name)
		}
	}
	for skill, b := range t.Skills {
		if b == "" {
			return fmt.Errorf("%w: skill '%s' has no building", ErrInvalidTable, skill)
		}
	}
	for i, p := range t.Patterns {
		if p.Contains == "" || p.Building == "" {
			return fmt.Errorf("%w: pattern %d needs both contains and building", ErrInvalidTable, i)
		}
	}
	for i, m := range t.Misassignments {
		if m.Building == "" || m.Replacement == "" || len(m.NameContains) == 0 {
			return fmt.Errorf("%w: misassignment %d is incomplete", ErrInvalidTable, i)
		}
	}
	for i, ty := range t.Types {
		if ty.Name == "" {
			return fmt.Errorf("%w: type %d has no name", ErrInvalidTable, i)
		}
	}
	for i, k := range t.Tiers {
		if k.Keyword == "" || k.Tier < 0 {
			return fmt.Errorf("%w: tier keyword %d is invalid", ErrInvalidTable, i)
		}
	}
	return nil
}

// DefaultTable returns the built-in table used when no file is configured
func DefaultTable() *Table {
	smithing := "Smithing Station"
	cooking := "Cooking Station"
	fishing := "Fishing Station"
	leather := "Leatherworking Station"

	return &Table{
		Corrections: map[string]string{
			"Molten Ferralith":    smithing,
			"Molten Crude Copper": smithing,
			"Molten Copper":       smithing,
			"Molten Tin":          smithing,
			"Molten Bronze":       smithing,
			"Molten Iron":         smithing,
			"Molten Steel":        smithing,
			"Molten Silver":       smithing,
			"Molten Gold":         smithing,
		},
		Skills: map[string]string{
			"Leatherworking": leather,
			"Smithing":       smithing,
			"Cooking":        cooking,
			"Farming":        "Farming Station",
			"Fishing":        fishing,
			"Weaving":        "Weaving Station",
			"Alchemy":        "Alchemy Station",
			"Masonry":        "Masonry Station",
			"Woodworking":    "Woodworking Station",
			"Scholar":        "Scholar Station",
			"Forestry":       smithing,
		},
		Patterns: []Pattern{
			{"Ingot", smithing}, {"Molten", smithing}, {"Nails", smithing}, {"Anvil", smithing},
			{"Bread", cooking}, {"Pie", cooking}, {"Soup", cooking}, {"Stew", cooking},
			{"Bait", fishing}, {"Fish", fishing}, {"Chum", fishing},
			{"Pelt", leather}, {"Leather", leather}, {"Tanned", leather}, {"Cleaned", leather},
		},
		Misassignments: []Misassignment{
			{Building: fishing, NameContains: []string{"Molten", "Ingot"}, Replacement: smithing},
		},
		Types: []Type{
			{cooking, CategoryCrafting},
			{smithing, CategoryCrafting},
			{"Carpentry Station", CategoryCrafting},
			{leather, CategoryCrafting},
			{"Tailoring Station", CategoryCrafting},
			{"Masonry Station", CategoryCrafting},
			{"Woodworking Station", CategoryCrafting},
			{"Weaving Station", CategoryCrafting},
			{"Scholar Station", CategorySpecialized},
			{"Alchemy Station", CategorySpecialized},
			{"Farming Station", CategoryProduction},
			{fishing, CategoryProduction},
			{"Hunting Station", CategoryUtility},
			{"Mining Station", CategoryUtility},
		},
		Tiers: []TierKeyword{
			{"Tier 10", 10}, {"Magnificent", 9}, {"Masterwork", 8}, {"Legendary", 7},
			{"Peerless", 6}, {"Exquisite", 5}, {"Fine", 4}, {"Sturdy", 3}, {"Simple", 2},
		},
		TierNames: map[int]string{
			0: "Basic", 1: "Basic", 2: "Simple", 3: "Sturdy", 4: "Fine", 5: "Exquisite",
			6: "Peerless", 7: "Legendary", 8: "Masterwork", 9: "Magnificent", 10: "Tier 10",
		},
	}
}
