package domain

import "time"

// NotificationKind classifies transient feedback
type NotificationKind string

const (
	NotificationBuySuccess     NotificationKind = "buy_success"
	NotificationPlantSuccess   NotificationKind = "plant_success"
	NotificationHarvestSuccess NotificationKind = "harvest_success"
	NotificationUnlockSuccess  NotificationKind = "unlock_success"
	NotificationError          NotificationKind = "error"
)

// Notification is a single transient message
type Notification struct {
	Kind     NotificationKind `json:"kind"`
	Message  string           `json:"message"`
	PostedAt time.Time        `json:"posted_at"`
}

// ExpiresAt returns when the notification clears itself
func (n Notification) ExpiresAt(window time.Duration) time.Time {
	return n.PostedAt.Add(window)
}
