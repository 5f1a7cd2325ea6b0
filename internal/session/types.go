package session

import (
	"errors"
	"time"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/economy"
)

// Action is a player intent addressed to the dispatcher. PlantID is used by
// buy_plant, BedID by the other three kinds. plant_seed takes its plant from
// the current selection.
type Action struct {
	Type    domain.ActionType
	PlantID int
	BedID   int
}

// Outcome is the applied result of a confirmed action
type Outcome struct {
	RequestID    string                 `json:"request_id"`
	Action       domain.ActionType      `json:"action"`
	Delta        economy.Delta          `json:"delta"`
	Economy      domain.Economy         `json:"economy"`
	Item         *domain.InventoryItem  `json:"item,omitempty"`
	Bed          *domain.Bed            `json:"bed,omitempty"`
	NewLevel     *int                   `json:"new_level,omitempty"`
	Notification *domain.Notification   `json:"notification,omitempty"`
	Response     *domain.ActionResponse `json:"-"`
}

// BedView is a bed as the display layer sees it
type BedView struct {
	ID               int           `json:"id"`
	Plant            *domain.Plant `json:"plant"`
	Progress         float64       `json:"progress"`
	Locked           bool          `json:"is_locked"`
	StartTime        *time.Time    `json:"start_time"`
	GrowTime         int           `json:"grow_time"`
	Ready            bool          `json:"ready"`
	SecondsRemaining int           `json:"seconds_remaining"`
}

// Snapshot is a deep, read-only copy of the session
type Snapshot struct {
	PlayerID           string                 `json:"player_id"`
	Username           string                 `json:"username,omitempty"`
	Loaded             bool                   `json:"loaded"`
	Closed             bool                   `json:"closed"`
	Beds               []BedView              `json:"beds"`
	Inventory          []domain.InventoryItem `json:"inventory"`
	Selection          *domain.InventoryItem  `json:"selection,omitempty"`
	Economy            domain.Economy         `json:"economy"`
	ExperienceFraction float64                `json:"experience_fraction"`
	ActionInFlight     bool                   `json:"action_in_flight"`
	PendingAction      domain.ActionType      `json:"pending_action,omitempty"`
	Notification       *domain.Notification   `json:"notification,omitempty"`
	TakenAt            time.Time              `json:"taken_at"`
}

// Bed returns the view of bed id
func (s Snapshot) Bed(id int) (BedView, bool) {
	for _, b := range s.Beds {
		if b.ID == id {
			return b, true
		}
	}
	return BedView{}, false
}

// pending is the single outstanding request
type pending struct {
	id      string
	action  Action
	started time.Time
	// item is the inventory entry a plant_seed was built from
	item *domain.InventoryItem
}

// RefusalError is returned when an action fails, locally or remotely. Message
// is the text the player was shown.
type RefusalError struct {
	Message string
	Err     error
}

func (e *RefusalError) Error() string { return e.Err.Error() }

func (e *RefusalError) Unwrap() error { return e.Err }

// UserMessage returns the player-facing text carried by err, if any
func UserMessage(err error) (string, bool) {
	var r *RefusalError
	if errors.As(err, &r) && r.Message != "" {
		return r.Message, true
	}
	return "", false
}
