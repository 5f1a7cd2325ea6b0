package journal

import (
	"context"
	"time"
)

// Entry is one journaled action outcome
type Entry struct {
	ID          int64     `json:"id"`
	RequestID   string    `json:"request_id"`
	PlayerID    string    `json:"player_id"`
	ActionType  string    `json:"action_type"`
	BedID       *int      `json:"bed_id,omitempty"`
	PlantID     *int      `json:"plant_id,omitempty"`
	Success     bool      `json:"success"`
	Message     string    `json:"message,omitempty"`
	Error       string    `json:"error,omitempty"`
	CoinsChange int       `json:"coins_change"`
	CoinsAfter  int       `json:"coins_after"`
	DurationMs  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// Filter narrows a List query. Zero values match everything.
type Filter struct {
	PlayerID   string
	ActionType string
	Success    *bool
	Since      *time.Time
	Until      *time.Time
	Limit      int
}

// EffectiveLimit clamps Limit into 1..MaxListLimit
func (f Filter) EffectiveLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	default:
		return f.Limit
	}
}

// Repository defines the interface for journal storage
type Repository interface {
	// Record stores an entry. A zero CreatedAt is set to now.
	Record(ctx context.Context, entry Entry) error

	// List returns entries newest first
	List(ctx context.Context, filter Filter) ([]Entry, error)

	// Cleanup removes entries older than retentionDays
	Cleanup(ctx context.Context, retentionDays int) (int64, error)

	// Close releases the backend
	Close() error
}
