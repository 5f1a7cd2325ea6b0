package handler

import (
	"net/http"

	"github.com/osse101/MagicGarden_Go/internal/domain"
)

// NotificationResponse carries the visible notification, or null
type NotificationResponse struct {
	Notification *domain.Notification `json:"notification"`
}

// HandleNotification returns the single visible notification
// @Summary Current notification
// @Tags session
// @Produce json
// @Success 200 {object} NotificationResponse
// @Router /api/v1/notification [get]
func HandleNotification(n NotificationReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp NotificationResponse
		if current, ok := n.Current(); ok {
			resp.Notification = &current
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
