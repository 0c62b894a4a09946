package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/craftplanner/internal/crafting"
)

// SessionIDParam is the chi URL parameter holding the session id
const SessionIDParam = "sessionID"

// SetInventoryRequest sets the owned quantity of an item; zero or less removes it
type SetInventoryRequest struct {
	ItemID   string `json:"item_id" validate:"required,itemid"`
	Quantity int    `json:"quantity"`
}

// BuildListRequest adds an item to the build list
type BuildListRequest struct {
	ItemID      string `json:"item_id" validate:"required,itemid"`
	Quantity    int    `json:"quantity"`
	RecipeIndex int    `json:"recipe_index"`
}

// UpdateBuildListRequest replaces quantity and recipe of a build list entry
type UpdateBuildListRequest struct {
	Quantity    int `json:"quantity"`
	RecipeIndex int `json:"recipe_index"`
}

// SessionHandlers serves session-scoped inventory, build list and plan queries
type SessionHandlers struct {
	svc crafting.Service
}

// NewSessionHandlers creates session handlers
func NewSessionHandlers(svc crafting.Service) *SessionHandlers {
	return &SessionHandlers{svc: svc}
}

func sessionID(r *http.Request) string {
	return chi.URLParam(r, SessionIDParam)
}

// HandleCreateSession starts a planner session
// @Summary Create session
// @Description Creates an empty inventory and build list
// @Tags sessions
// @Produce json
// @Success 201 {object} crafting.SessionInfo
// @Router /api/v1/sessions [post]
func (h *SessionHandlers) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusCreated, h.svc.CreateSession(r.Context()))
}

// HandleDeleteSession ends a planner session
// @Summary Delete session
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID} [delete]
func (h *SessionHandlers) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSession(r.Context(), sessionID(r)); err != nil {
		respondServiceError(w, r, "delete session", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionDeleted})
}

// HandleGetInventory lists owned items
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} DataResponse[inventory.Entry]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/inventory [get]
func (h *SessionHandlers) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GetInventory(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "get inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, newDataResponse(entries))
}

// HandleSetInventory sets the owned quantity of an item
// @Summary Set inventory quantity
// @Tags inventory
// @Accept json
// @Produce json
// @Param sessionID path string true "Session id"
// @Param request body SetInventoryRequest true "Item and quantity"
// @Success 200 {object} inventory.Entry
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/inventory [put]
func (h *SessionHandlers) HandleSetInventory(w http.ResponseWriter, r *http.Request) {
	var req SetInventoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "set inventory"); err != nil {
		return
	}
	entry, err := h.svc.SetInventory(r.Context(), sessionID(r), req.ItemID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "set inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// HandleRemoveInventoryItem drops an item from the inventory
// @Summary Remove inventory item
// @Tags inventory
// @Produce json
// @Param sessionID path string true "Session id"
// @Param itemID path string true "Item id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/inventory/{itemID} [delete]
func (h *SessionHandlers) HandleRemoveInventoryItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r, w, "itemID")
	if !ok {
		return
	}
	if err := h.svc.RemoveInventoryItem(r.Context(), sessionID(r), itemID); err != nil {
		respondServiceError(w, r, "remove inventory item", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInventoryRemoved})
}

// HandleClearInventory empties the inventory
// @Summary Clear inventory
// @Tags inventory
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/inventory [delete]
func (h *SessionHandlers) HandleClearInventory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearInventory(r.Context(), sessionID(r)); err != nil {
		respondServiceError(w, r, "clear inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInventoryCleared})
}

// HandleGetBuildList lists build demands in insertion order
// @Summary Get build list
// @Tags build
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} DataResponse[domain.BuildDemand]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/build [get]
func (h *SessionHandlers) HandleGetBuildList(w http.ResponseWriter, r *http.Request) {
	demands, err := h.svc.GetBuildList(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "get build list", err)
		return
	}
	respondJSON(w, http.StatusOK, newDataResponse(demands))
}

// HandleAddToBuildList adds or merges a build demand
// @Summary Add to build list
// @Description Quantities below one are raised to one; adding an existing item sums quantities
// @Tags build
// @Accept json
// @Produce json
// @Param sessionID path string true "Session id"
// @Param request body BuildListRequest true "Item, quantity and recipe"
// @Success 201 {object} domain.BuildDemand
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/build [post]
func (h *SessionHandlers) HandleAddToBuildList(w http.ResponseWriter, r *http.Request) {
	var req BuildListRequest
	if err := DecodeAndValidateRequest(r, w, &req, "add to build list"); err != nil {
		return
	}
	demand, err := h.svc.AddToBuildList(r.Context(), sessionID(r), req.ItemID, req.Quantity, req.RecipeIndex)
	if err != nil {
		respondServiceError(w, r, "add to build list", err)
		return
	}
	respondJSON(w, http.StatusCreated, demand)
}

// HandleUpdateBuildListItem changes quantity or recipe of a build demand
// @Summary Update build list entry
// @Tags build
// @Accept json
// @Produce json
// @Param sessionID path string true "Session id"
// @Param itemID path string true "Item id"
// @Param request body UpdateBuildListRequest true "Quantity and recipe"
// @Success 200 {object} domain.BuildDemand
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/build/{itemID} [put]
func (h *SessionHandlers) HandleUpdateBuildListItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r, w, "itemID")
	if !ok {
		return
	}
	var req UpdateBuildListRequest
	if err := DecodeAndValidateRequest(r, w, &req, "update build list"); err != nil {
		return
	}
	demand, err := h.svc.UpdateBuildListItem(r.Context(), sessionID(r), itemID, req.Quantity, req.RecipeIndex)
	if err != nil {
		respondServiceError(w, r, "update build list", err)
		return
	}
	respondJSON(w, http.StatusOK, demand)
}

// HandleRemoveFromBuildList drops a build demand
// @Summary Remove from build list
// @Tags build
// @Produce json
// @Param sessionID path string true "Session id"
// @Param itemID path string true "Item id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/build/{itemID} [delete]
func (h *SessionHandlers) HandleRemoveFromBuildList(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r, w, "itemID")
	if !ok {
		return
	}
	if err := h.svc.RemoveFromBuildList(r.Context(), sessionID(r), itemID); err != nil {
		respondServiceError(w, r, "remove from build list", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBuildListRemoved})
}

// HandleClearBuildList empties the build list
// @Summary Clear build list
// @Tags build
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/build [delete]
func (h *SessionHandlers) HandleClearBuildList(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearBuildList(r.Context(), sessionID(r)); err != nil {
		respondServiceError(w, r, "clear build list", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBuildListCleared})
}
