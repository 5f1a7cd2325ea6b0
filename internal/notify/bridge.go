package notify

import (
	"context"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/event"
	"github.com/osse101/MagicGarden_Go/internal/logger"
)

// BusListener republishes slot transitions as notification.posted and
// notification.expired events. ctx supplies the logger for publish failures.
func BusListener(ctx context.Context, bus event.Bus) Listener {
	return func(change Change, n domain.Notification) {
		t := event.NotificationPosted
		if change == ChangeExpired {
			t = event.NotificationExpired
		}
		if err := bus.Publish(ctx, event.NewNotificationEvent(t, n)); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish notification event", "type", t, "error", err)
		}
	}
}
