package domain

// MaterialRequirement is one row of an aggregated material report
type MaterialRequirement struct {
	ItemID        string `json:"item_id"`
	Name          string `json:"name"`
	Tier          int    `json:"tier"`
	Rarity        Rarity `json:"rarity"`
	Needed        int    `json:"needed"`
	IsBaseItem    bool   `json:"is_base_item"`
	Have          int    `json:"have"`
	EffectiveHave int    `json:"effective_have"`
	Missing       int    `json:"missing"`
}

// StepIngredient is an ingredient line of a crafting step, scaled by crafts needed
type StepIngredient struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Tier     int    `json:"tier"`
	Rarity   Rarity `json:"rarity"`
	Quantity int    `json:"quantity"`
}

// CraftingStep is one ordered entry of a crafting plan
type CraftingStep struct {
	Position            int               `json:"position"`
	ItemID              string            `json:"item_id"`
	Name                string            `json:"name"`
	Tier                int               `json:"tier"`
	Rarity              Rarity            `json:"rarity"`
	Quantity            int               `json:"quantity"`
	RecipeIndex         int               `json:"recipe_index"`
	OutputQuantity      int               `json:"output_quantity"`
	CraftsNeeded        int               `json:"crafts_needed"`
	Ingredients         []StepIngredient  `json:"ingredients"`
	Dependencies        []string          `json:"dependencies"`
	SkillRequirement    *SkillRequirement `json:"skill_requirement,omitempty"`
	BuildingRequirement *string           `json:"building_requirement,omitempty"`
	Complete            bool              `json:"complete"`
}

// Substitute is an owned higher-tier item that was built from a component
type Substitute struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ShoppingItem is a base material still missing after effective inventory
type ShoppingItem struct {
	MaterialRequirement
	Substitutes []Substitute `json:"substitutes,omitempty"`
}

// CalculatedMaterial is one entry of a single-target calculation
type CalculatedMaterial struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	Tier       int    `json:"tier"`
	Rarity     Rarity `json:"rarity"`
	Quantity   int    `json:"quantity"`
	IsBaseItem bool   `json:"is_base_item"`
}

// Calculation is the material breakdown for a single target item
type Calculation struct {
	ItemID        string               `json:"item_id"`
	Quantity      int                  `json:"quantity"`
	RecipeIndex   int                  `json:"recipe_index"`
	BaseMaterials []CalculatedMaterial `json:"base_materials"`
	Intermediates []CalculatedMaterial `json:"intermediates"`
	Total         []CalculatedMaterial `json:"total"`
}

// RecipeNode is a node of a nested recipe tree. Item is nil for unknown ids.
type RecipeNode struct {
	ItemID      string        `json:"item_id"`
	Item        *Item         `json:"item,omitempty"`
	Quantity    int           `json:"quantity"`
	RecipeIndex int           `json:"recipe_index"`
	Children    []*RecipeNode `json:"children,omitempty"`
}

// SkillLevel is the highest level of a skill needed anywhere in a recipe tree
type SkillLevel struct {
	SkillName  string `json:"skill_name"`
	SkillLevel int    `json:"skill_level"`
}

// RecipeTree is an expanded recipe tree with the skills it requires
type RecipeTree struct {
	Root   *RecipeNode  `json:"root"`
	Skills []SkillLevel `json:"skills"`
}

// BuildingGroup lists the crafting steps that need the same building
type BuildingGroup struct {
	Building  string   `json:"building"`
	Display   string   `json:"display"`
	BaseType  string   `json:"base_type"`
	Tier      int      `json:"tier"`
	Category  string   `json:"category"`
	StepCount int      `json:"step_count"`
	Items     []string `json:"items"`
}
