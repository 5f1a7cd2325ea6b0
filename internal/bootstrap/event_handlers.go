package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MagicGarden_Go/internal/journal"
	"github.com/osse101/MagicGarden_Go/internal/notify"
	"github.com/osse101/MagicGarden_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
// Journal and Events may be nil.
type EventHandlerDependencies struct {
	Events        *EventSystem
	Journal       journal.Service
	Notifications *notify.Channel
	SSEHub        *sse.Hub
}

// RegisterEventHandlers wires the subscribers:
//   - the journal records action outcomes from its bus
//   - notification changes are republished as events
//   - the SSE hub forwards every event to stream clients
func RegisterEventHandlers(ctx context.Context, deps EventHandlerDependencies) {
	bus := deps.Events.Bus

	if deps.Journal != nil {
		deps.Journal.Subscribe(deps.Events.JournalBus)
		slog.Info(LogMsgJournalSubscribed)
	}

	if deps.Notifications != nil {
		deps.Notifications.Subscribe(notify.BusListener(ctx, bus))
	}

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, bus).Subscribe(ctx)
		slog.Info(LogMsgEventStreamSubscribed)
	}
}
