package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Garden event types
const (
	ActionConfirmed     Type = "action.confirmed"
	ActionFailed        Type = "action.failed"
	NotificationPosted  Type = "notification.posted"
	NotificationExpired Type = "notification.expired"
	SessionLoaded       Type = "session.loaded"
	SessionClosed       Type = "session.closed"
	SelectionChanged    Type = "selection.changed"
	BedReady            Type = "growth.bed_ready"
)

// AllTypes lists every event type published by the session
var AllTypes = []Type{
	ActionConfirmed,
	ActionFailed,
	NotificationPosted,
	NotificationExpired,
	SessionLoaded,
	SessionClosed,
	SelectionChanged,
	BedReady,
}

// Typed event payloads for type safety

// ActionPayloadV1 describes a dispatched action and its outcome
type ActionPayloadV1 struct {
	RequestID   string            `json:"request_id"`
	PlayerID    string            `json:"player_id"`
	ActionType  domain.ActionType `json:"action_type"`
	BedID       *int              `json:"bed_id,omitempty"`
	PlantID     *int              `json:"plant_id,omitempty"`
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	Error       string            `json:"error,omitempty"`
	CoinsChange int               `json:"coins_change"`
	CoinsAfter  int               `json:"coins_after"`
	DurationMs  int64             `json:"duration_ms"`
	Timestamp   int64             `json:"timestamp"`
}

// NotificationPayloadV1 carries a posted or expired notification
type NotificationPayloadV1 struct {
	Kind     domain.NotificationKind `json:"kind"`
	Message  string                  `json:"message"`
	PostedAt time.Time               `json:"posted_at"`
}

// SessionPayloadV1 summarizes a session lifecycle change
type SessionPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Beds      int    `json:"beds"`
	Items     int    `json:"items"`
	Coins     int    `json:"coins"`
	Timestamp int64  `json:"timestamp"`
}

// SelectionPayloadV1 reports the pending selection
type SelectionPayloadV1 struct {
	InstanceID string `json:"instance_id,omitempty"`
	PlantID    int    `json:"plant_id,omitempty"`
}

// BedReadyPayloadV1 is emitted when a bed reaches full progress
type BedReadyPayloadV1 struct {
	BedID     int    `json:"bed_id"`
	PlantName string `json:"plant_name"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewActionEvent creates an action.confirmed or action.failed event
func NewActionEvent(payload ActionPayloadV1) Event {
	t := ActionConfirmed
	if !payload.Success {
		t = ActionFailed
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
		Metadata: Metadata{
			MetadataKeyRequestID: payload.RequestID,
		},
	}
}

// NewNotificationEvent creates a notification.posted or notification.expired event
func NewNotificationEvent(t Type, n domain.Notification) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: NotificationPayloadV1{
			Kind:     n.Kind,
			Message:  n.Message,
			PostedAt: n.PostedAt,
		},
	}
}

// NewSessionEvent creates a session lifecycle event
func NewSessionEvent(t Type, payload SessionPayloadV1) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewSelectionEvent creates a selection.changed event
func NewSelectionEvent(item *domain.InventoryItem) Event {
	payload := SelectionPayloadV1{}
	if item != nil {
		payload.InstanceID = item.InstanceID
		payload.PlantID = item.Plant.ID
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    SelectionChanged,
		Payload: payload,
	}
}

// NewBedReadyEvent creates a growth.bed_ready event
func NewBedReadyEvent(bed domain.Bed) Event {
	name := ""
	if bed.Plant != nil {
		name = bed.Plant.Name
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    BedReady,
		Payload: BedReadyPayloadV1{
			BedID:     bed.ID,
			PlantName: name,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every garden event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}
