package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/MagicGarden_Go/internal/database"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessSource reports whether the session has loaded its garden
type ReadinessSource interface {
	Loaded() bool
}

const readyzPingTimeout = 2 * time.Second

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once the garden is loaded and, when a journal
// database is configured, reachable
// @Summary Readiness check
// @Description Returns OK once the session is loaded and the journal database answers
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(sess ReadinessSource, db database.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !sess.Loaded() {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: "session not loaded",
			})
			return
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyzPingTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				loggerFor(r).Error("Readiness check failed", "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  StatusUnavailable,
					Message: "database connection failed",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
