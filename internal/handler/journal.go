package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/MagicGarden_Go/internal/journal"
)

// JournalResponse lists journal entries newest first
type JournalResponse struct {
	Entries []journal.Entry `json:"entries"`
	Count   int             `json:"count"`
}

// JournalFilterQuery holds the validated journal query parameters
type JournalFilterQuery struct {
	ActionType string `validate:"actiontype"`
	Limit      int    `validate:"min=0"`
}

// JournalHandler serves the action journal. A nil service means the journal
// is disabled.
type JournalHandler struct {
	svc journal.Service
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(svc journal.Service) *JournalHandler {
	return &JournalHandler{svc: svc}
}

// HandleList returns journal entries
// @Summary List journaled actions
// @Tags journal
// @Produce json
// @Param action_type query string false "Action type"
// @Param success query bool false "Only confirmed or only failed actions"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param limit query int false "Maximum entries (default 100, max 1000)"
// @Success 200 {object} JournalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Journal disabled"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/journal [get]
func (h *JournalHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		respondError(w, http.StatusNotFound, ErrMsgJournalDisabled)
		return
	}

	filter, ok := parseJournalFilter(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.List(r.Context(), filter)
	if err != nil {
		loggerFor(r).Error("Journal list failed", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgJournalQueryFailed)
		return
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	respondJSON(w, http.StatusOK, JournalResponse{Entries: entries, Count: len(entries)})
}

// HandleExport streams matching entries as zstd-compressed JSON lines
// @Summary Export journaled actions
// @Tags journal
// @Produce application/zstd
// @Param action_type query string false "Action type"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param limit query int false "Maximum entries (default 100, max 1000)"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "Journal disabled"
// @Router /api/v1/journal/export [get]
func (h *JournalHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		respondError(w, http.StatusNotFound, ErrMsgJournalDisabled)
		return
	}

	filter, ok := parseJournalFilter(w, r)
	if !ok {
		return
	}

	log := loggerFor(r)
	log.Info(LogMsgExportStarted)

	name := fmt.Sprintf("journal-%s.jsonl.zst", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/zstd")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	// Headers are committed on first write, so a late failure can only be logged
	n, err := h.svc.Export(r.Context(), w, filter)
	if err != nil {
		log.Error(ErrMsgExportFailed, "error", err, "written", n)
		return
	}
	log.Info("Journal export finished", "entries", n)
}

func parseJournalFilter(w http.ResponseWriter, r *http.Request) (journal.Filter, bool) {
	var filter journal.Filter

	q := JournalFilterQuery{ActionType: r.URL.Query().Get("action_type")}
	limit, _, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return filter, false
	}
	q.Limit = limit
	if err := validateOrRespond(w, q); err != nil {
		return filter, false
	}

	success, err := queryBool(r, "success")
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidBool, "success"))
		return filter, false
	}
	since, err := queryTime(r, "since")
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidTime, "since"))
		return filter, false
	}
	until, err := queryTime(r, "until")
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidTime, "until"))
		return filter, false
	}

	filter = journal.Filter{
		PlayerID:   r.URL.Query().Get("player_id"),
		ActionType: q.ActionType,
		Success:    success,
		Since:      since,
		Until:      until,
		Limit:      q.Limit,
	}
	return filter, true
}
