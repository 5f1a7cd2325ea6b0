package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/session"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps session errors to an HTTP status and the
// text shown to the player
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	msg, hasMsg := session.UserMessage(err)
	pick := func(fallback string) string {
		if hasMsg {
			return msg
		}
		return fallback
	}

	switch {
	case errors.Is(err, domain.ErrActionInFlight):
		return http.StatusConflict, ErrMsgSessionBusy
	case errors.Is(err, domain.ErrSessionClosed):
		return http.StatusServiceUnavailable, ErrMsgSessionClosed
	case errors.Is(err, domain.ErrSessionNotLoaded):
		return http.StatusServiceUnavailable, ErrMsgSessionNotLoaded
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, pick(ErrMsgItemNotFoundError)
	case domain.IsLocalValidation(err):
		return http.StatusUnprocessableEntity, pick(err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusUnprocessableEntity, pick(ErrMsgInvalidRequestSummary)
	case errors.Is(err, domain.ErrActionRejected):
		return http.StatusBadRequest, pick(domain.MsgActionFailed)
	case errors.Is(err, domain.ErrTransport), errors.Is(err, domain.ErrInvalidResponse):
		return http.StatusBadGateway, pick(ErrMsgAuthorityFailed)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := loggerFor(r)
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err, "status", status)
	} else {
		log.Info(op+" refused", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
