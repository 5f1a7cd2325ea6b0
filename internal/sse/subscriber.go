package sse

import (
	"context"

	"github.com/osse101/MagicGarden_Go/internal/event"
	"github.com/osse101/MagicGarden_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every garden event type to the hub
func (s *Subscriber) Subscribe(ctx context.Context) {
	event.SubscribeAll(s.bus, s.forward)

	types := make([]string, len(event.AllTypes))
	for i, t := range event.AllTypes {
		types[i] = string(t)
	}
	logger.FromContext(ctx).Info(LogMsgSubscribed, "types", types)
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	requestID, _ := evt.GetMetadataValue(event.MetadataKeyRequestID).(string)
	s.hub.Broadcast(string(evt.Type), requestID, evt.Payload)

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}

// KnownType reports whether t is a type clients may filter on
func KnownType(t string) bool {
	for _, known := range event.AllTypes {
		if string(known) == t {
			return true
		}
	}
	return false
}
