package handler

import (
	"net/http"

	"github.com/osse101/MagicGarden_Go/internal/domain"
)

// SelectRequest picks an inventory item for planting
type SelectRequest struct {
	InstanceID string `json:"instance_id" validate:"required,max=64"`
}

// SelectResponse echoes the selected item
type SelectResponse struct {
	Selection domain.InventoryItem `json:"selection"`
}

// SessionHandler serves the garden snapshot and selection
type SessionHandler struct {
	session GardenSession
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(s GardenSession) *SessionHandler {
	return &SessionHandler{session: s}
}

// HandleGetSession returns the current snapshot
// @Summary Current garden
// @Description Beds with derived progress, inventory, selection, economy and the visible notification
// @Tags session
// @Produce json
// @Success 200 {object} session.Snapshot
// @Router /api/v1/session [get]
func (h *SessionHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.session.Snapshot())
}

// HandleReload fetches player, garden and inventory again
// @Summary Reload the session
// @Description Refused with 409 while an action is waiting for the server
// @Tags session
// @Produce json
// @Success 200 {object} session.Snapshot
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/session/reload [post]
func (h *SessionHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	loggerFor(r).Info(LogMsgReloadRequested)

	if err := h.session.Load(r.Context()); err != nil {
		respondServiceError(w, r, "Session reload", err)
		return
	}
	respondJSON(w, http.StatusOK, h.session.Snapshot())
}

// HandleSelect records the selection used by the next plant action
// @Summary Select an inventory item
// @Tags session
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Item to select"
// @Success 200 {object} SelectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /api/v1/selection [post]
func (h *SessionHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select"); err != nil {
		return
	}

	item, err := h.session.SelectItem(r.Context(), req.InstanceID)
	if err != nil {
		respondServiceError(w, r, "Select", err)
		return
	}
	respondJSON(w, http.StatusOK, SelectResponse{Selection: item})
}

// HandleCancelSelection clears the selection
// @Summary Clear the selection
// @Tags session
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/selection [delete]
func (h *SessionHandler) HandleCancelSelection(w http.ResponseWriter, r *http.Request) {
	h.session.CancelSelection(r.Context())
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSelectionCleared})
}
