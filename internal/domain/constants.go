package domain

// Recipe type filter values for catalog listings
const (
	RecipeTypeAll       = "all"
	RecipeTypeCraftable = "craftable"
	RecipeTypeBase      = "base"
)

// IsValidRecipeType checks if a recipe type filter is valid (empty string is valid = no filter)
func IsValidRecipeType(filter string) bool {
	switch filter {
	case "", RecipeTypeAll, RecipeTypeCraftable, RecipeTypeBase:
		return true
	}
	return false
}

// MinDemandQuantity is the smallest quantity a build demand can hold
const MinDemandQuantity = 1

// CargoIDOffset is added to cargo ids by the game export so they never
// collide with item ids in the same catalog.
const CargoIDOffset = 0xffffffff
