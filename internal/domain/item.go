package domain

// BaseTier is the tier sentinel for items that sit below every crafted tier.
// Catalog entries with a negative or missing tier are normalised to it.
const BaseTier = -1

// Rarity is the visual rarity of an item, 1 (common) through 5 (legendary)
type Rarity int

const (
	RarityCommon    Rarity = 1
	RarityUncommon  Rarity = 2
	RarityRare      Rarity = 3
	RarityEpic      Rarity = 4
	RarityLegendary Rarity = 5
)

var rarityNames = map[Rarity]string{
	RarityCommon:    "Common",
	RarityUncommon:  "Uncommon",
	RarityRare:      "Rare",
	RarityEpic:      "Epic",
	RarityLegendary: "Legendary",
}

// String returns the display name of the rarity, "Common" for out-of-range values
func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return rarityNames[RarityCommon]
}

// Valid reports whether r is inside the 1..5 range
func (r Rarity) Valid() bool {
	return r >= RarityCommon && r <= RarityLegendary
}

// Item is a read-only catalog entry. An item without recipes is a base item.
type Item struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Tier    int      `json:"tier"`
	Rarity  Rarity   `json:"rarity"`
	Icon    string   `json:"icon,omitempty"`
	Recipes []Recipe `json:"recipes"`
}

// IsBase reports whether the item cannot be crafted
func (i *Item) IsBase() bool {
	return len(i.Recipes) == 0
}

// Recipe returns the recipe at index, falling back to the first recipe when
// the index is out of range. The second return value is false only when the
// item has no recipes at all.
func (i *Item) Recipe(index int) (*Recipe, bool) {
	if len(i.Recipes) == 0 {
		return nil, false
	}
	if index < 0 || index >= len(i.Recipes) {
		index = 0
	}
	return &i.Recipes[index], true
}

// ResolveRecipeIndex returns the index Recipe(index) would actually use
func (i *Item) ResolveRecipeIndex(index int) int {
	if index < 0 || index >= len(i.Recipes) {
		return 0
	}
	return index
}
