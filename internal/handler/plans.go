package handler

import (
	"net/http"
)

// HandleEffectiveQuantity reports owned plus locked-up units of an item
// @Summary Effective quantity
// @Tags plans
// @Produce json
// @Param sessionID path string true "Session id"
// @Param itemID path string true "Item id"
// @Success 200 {object} crafting.EffectiveInfo
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/effective/{itemID} [get]
func (h *SessionHandlers) HandleEffectiveQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r, w, "itemID")
	if !ok {
		return
	}
	info, err := h.svc.EffectiveQuantity(r.Context(), sessionID(r), itemID)
	if err != nil {
		respondServiceError(w, r, "effective quantity", err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// HandleRequiredMaterials lists the base materials for the build list
// @Summary Required base materials
// @Tags plans
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} DataResponse[domain.MaterialRequirement]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/materials [get]
func (h *SessionHandlers) HandleRequiredMaterials(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.RequiredMaterials(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "required materials", err)
		return
	}
	respondJSON(w, http.StatusOK, newDataResponse(rows))
}

// HandleAllMaterials lists every material at every level for the build list
// @Summary All materials
// @Tags plans
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} DataResponse[domain.MaterialRequirement]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/materials/all [get]
func (h *SessionHandlers) HandleAllMaterials(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.AllPossibleMaterials(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "all materials", err)
		return
	}
	respondJSON(w, http.StatusOK, newDataResponse(rows))
}

// HandleShoppingList lists missing base materials with substitutes
// @Summary Shopping list
// @Tags plans
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} DataResponse[domain.ShoppingItem]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/shopping [get]
func (h *SessionHandlers) HandleShoppingList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ShoppingList(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "shopping list", err)
		return
	}
	respondJSON(w, http.StatusOK, newDataResponse(rows))
}

// HandleCraftingSteps lists ordered crafting steps
// @Summary Crafting steps
// @Description Dependencies come before dependents; each step carries a completion flag and corrected building
// @Tags plans
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} DataResponse[crafting.Step]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/steps [get]
func (h *SessionHandlers) HandleCraftingSteps(w http.ResponseWriter, r *http.Request) {
	steps, err := h.svc.CraftingSteps(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "crafting steps", err)
		return
	}
	respondJSON(w, http.StatusOK, newDataResponse(steps))
}

// HandleBuildings groups crafting steps by building
// @Summary Buildings summary
// @Tags plans
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} DataResponse[domain.BuildingGroup]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/buildings [get]
func (h *SessionHandlers) HandleBuildings(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Buildings(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "buildings", err)
		return
	}
	respondJSON(w, http.StatusOK, newDataResponse(groups))
}

// HandleReport returns materials, steps and graph diagnostics in one snapshot
// @Summary Full plan report
// @Tags plans
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} planner.Report
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/report [get]
func (h *SessionHandlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Analyze(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "report", err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
