package handler

import (
	"net/http"

	"github.com/osse101/craftplanner/internal/catalog"
	"github.com/osse101/craftplanner/internal/crafting"
	"github.com/osse101/craftplanner/internal/domain"
)

// ItemHandlers serves read-only catalog queries
type ItemHandlers struct {
	svc crafting.Service
}

// NewItemHandlers creates catalog handlers
func NewItemHandlers(svc crafting.Service) *ItemHandlers {
	return &ItemHandlers{svc: svc}
}

// HandleListItems lists catalog items
// @Summary List items
// @Description Filter the catalog by name, tier, rarity, recipe type or skill
// @Tags items
// @Produce json
// @Param q query string false "Case-insensitive name substring"
// @Param tier query int false "Exact tier"
// @Param rarity query int false "Rarity 1-5"
// @Param type query string false "all, craftable or base"
// @Param skill query string false "Skill of any recipe"
// @Param limit query int false "Maximum results"
// @Success 200 {object} DataResponse[domain.Item]
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items [get]
func (h *ItemHandlers) HandleListItems(w http.ResponseWriter, r *http.Request) {
	tier, ok := GetOptionalIntQueryParam(r, w, "tier")
	if !ok {
		return
	}
	rarityValue, ok := GetOptionalIntQueryParam(r, w, "rarity")
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, "limit", 0)
	if !ok {
		return
	}

	criteria := catalog.Criteria{
		Query:      GetOptionalQueryParam(r, "q", ""),
		Tier:       tier,
		RecipeType: GetOptionalQueryParam(r, "type", ""),
		Skill:      GetOptionalQueryParam(r, "skill", ""),
		Limit:      limit,
	}
	if rarityValue != nil {
		rarity := domain.Rarity(*rarityValue)
		criteria.Rarity = &rarity
	}

	items, err := h.svc.ListItems(r.Context(), criteria)
	if err != nil {
		respondServiceError(w, r, "list items", err)
		return
	}
	respondJSON(w, http.StatusOK, newDataResponse(items))
}

// HandleGetItem returns a single item with its recipes
// @Summary Get item
// @Tags items
// @Produce json
// @Param itemID path string true "Item id"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemID} [get]
func (h *ItemHandlers) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r, w, "itemID")
	if !ok {
		return
	}
	item, err := h.svc.GetItem(r.Context(), itemID)
	if err != nil {
		respondServiceError(w, r, "get item", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleRecipeTree returns the nested recipe tree for an item
// @Summary Recipe tree
// @Description Expands the chosen recipe of the item, then the first recipe of every ingredient, down to base materials. Includes the highest level needed per skill.
// @Tags items
// @Produce json
// @Param itemID path string true "Item id"
// @Param quantity query int false "Quantity to craft (default 1)"
// @Param recipe query int false "Recipe index for the item itself (default 0)"
// @Success 200 {object} domain.RecipeTree
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemID}/tree [get]
func (h *ItemHandlers) HandleRecipeTree(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r, w, "itemID")
	if !ok {
		return
	}
	quantity, ok := GetIntQueryParam(r, w, "quantity", domain.MinDemandQuantity)
	if !ok {
		return
	}
	recipeIndex, ok := GetIntQueryParam(r, w, "recipe", 0)
	if !ok {
		return
	}
	tree, err := h.svc.RecipeTree(r.Context(), itemID, quantity, recipeIndex)
	if err != nil {
		respondServiceError(w, r, "recipe tree", err)
		return
	}
	respondJSON(w, http.StatusOK, tree)
}

// HandleCalculate computes the materials for one item without a session
// @Summary Calculate materials
// @Description Base and intermediate materials for a quantity of one item
// @Tags items
// @Produce json
// @Param itemID path string true "Item id"
// @Param quantity query int false "Quantity to craft (default 1)"
// @Param recipe query int false "Recipe index for the item itself (default 0)"
// @Success 200 {object} domain.Calculation
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemID}/calculate [get]
func (h *ItemHandlers) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r, w, "itemID")
	if !ok {
		return
	}
	quantity, ok := GetIntQueryParam(r, w, "quantity", domain.MinDemandQuantity)
	if !ok {
		return
	}
	recipeIndex, ok := GetIntQueryParam(r, w, "recipe", 0)
	if !ok {
		return
	}
	calc, err := h.svc.Calculate(r.Context(), itemID, quantity, recipeIndex)
	if err != nil {
		respondServiceError(w, r, "calculate", err)
		return
	}
	respondJSON(w, http.StatusOK, calc)
}

// HandleResolve maps a typed item name to an item with suggestions
// @Summary Resolve item name
// @Tags items
// @Produce json
// @Param name query string true "Item name or id"
// @Param limit query int false "Maximum suggestions (default 5)"
// @Success 200 {object} crafting.ResolveResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/resolve [get]
func (h *ItemHandlers) HandleResolve(w http.ResponseWriter, r *http.Request) {
	name, ok := GetQueryParam(r, w, "name")
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, "limit", 0)
	if !ok {
		return
	}
	result, err := h.svc.ResolveItem(r.Context(), name, limit)
	if err != nil {
		respondServiceError(w, r, "resolve item", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
