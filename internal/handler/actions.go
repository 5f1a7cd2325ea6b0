package handler

import (
	"context"
	"net/http"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/session"
)

// BuyRequest buys one plant from the catalog
type BuyRequest struct {
	PlantID int `json:"plant_id" validate:"required,min=1"`
}

// BedRequest addresses a bed
type BedRequest struct {
	BedID int `json:"bed_id" validate:"required,min=1"`
}

// ActionsHandler exposes the four garden actions
type ActionsHandler struct {
	session GardenSession
}

// NewActionsHandler creates a new actions handler
func NewActionsHandler(s GardenSession) *ActionsHandler {
	return &ActionsHandler{session: s}
}

// HandleBuy buys a plant into the inventory
// @Summary Buy a plant
// @Tags actions
// @Accept json
// @Produce json
// @Param request body BuyRequest true "Plant to buy"
// @Success 200 {object} session.Outcome
// @Failure 400 {object} ErrorResponse "Rejected by the server"
// @Failure 409 {object} ErrorResponse "Another action is in flight"
// @Failure 422 {object} ErrorResponse "Not enough coins or unknown plant"
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/actions/buy [post]
func (h *ActionsHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	var req BuyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
		return
	}
	h.run(w, r, domain.ActionBuyPlant, func(ctx context.Context) (*session.Outcome, error) {
		return h.session.BuyPlant(ctx, req.PlantID)
	}, "plant_id", req.PlantID)
}

// HandlePlant plants the selected item in a bed
// @Summary Plant the selected item
// @Tags actions
// @Accept json
// @Produce json
// @Param request body BedRequest true "Target bed"
// @Success 200 {object} session.Outcome
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No selection, locked or occupied bed"
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/actions/plant [post]
func (h *ActionsHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	var req BedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}
	h.run(w, r, domain.ActionPlantSeed, func(ctx context.Context) (*session.Outcome, error) {
		return h.session.PlantSelected(ctx, req.BedID)
	}, "bed_id", req.BedID)
}

// HandleHarvest harvests a fully grown bed
// @Summary Harvest a bed
// @Tags actions
// @Accept json
// @Produce json
// @Param request body BedRequest true "Target bed"
// @Success 200 {object} session.Outcome
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Bed is not ready"
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/actions/harvest [post]
func (h *ActionsHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	var req BedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}
	h.run(w, r, domain.ActionHarvest, func(ctx context.Context) (*session.Outcome, error) {
		return h.session.Harvest(ctx, req.BedID)
	}, "bed_id", req.BedID)
}

// HandleUnlock unlocks a bed
// @Summary Unlock a bed
// @Tags actions
// @Accept json
// @Produce json
// @Param request body BedRequest true "Target bed"
// @Success 200 {object} session.Outcome
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Not enough coins or bed already unlocked"
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/actions/unlock [post]
func (h *ActionsHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	var req BedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unlock"); err != nil {
		return
	}
	h.run(w, r, domain.ActionUnlockBed, func(ctx context.Context) (*session.Outcome, error) {
		return h.session.UnlockBed(ctx, req.BedID)
	}, "bed_id", req.BedID)
}

func (h *ActionsHandler) run(w http.ResponseWriter, r *http.Request, action domain.ActionType, do func(context.Context) (*session.Outcome, error), target string, id int) {
	log := loggerFor(r).With("action", action, target, id)
	log.Info(LogMsgActionRequest)

	// A dropped connection must not cancel an action the server may commit
	out, err := do(context.WithoutCancel(r.Context()))
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		log.Info(LogMsgActionRefused, "error", err, "status", status)
		respondError(w, status, msg)
		return
	}

	log.Info(LogMsgActionCompleted, "request_id", out.RequestID, "coins", out.Economy.Coins)
	respondJSON(w, http.StatusOK, out)
}
