package notify

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/event"
)

func TestBusListener_PublishesTransitions(t *testing.T) {
	ch, clock := newFakeChannel()
	bus := event.NewMemoryBus()

	var (
		mu  sync.Mutex
		got []event.Event
	)
	record := func(_ context.Context, e event.Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
		return nil
	}
	bus.Subscribe(event.NotificationPosted, record)
	bus.Subscribe(event.NotificationExpired, record)

	ch.Subscribe(BusListener(context.Background(), bus))

	ch.Post(domain.NotificationHarvestSuccess, "You harvested Magic Rose!")
	require.Len(t, clock.timers, 1)
	clock.timers[0].fire()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, event.NotificationPosted, got[0].Type)
	assert.Equal(t, event.NotificationExpired, got[1].Type)

	payload, err := event.DecodePayload[event.NotificationPayloadV1](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationHarvestSuccess, payload.Kind)
	assert.Equal(t, "You harvested Magic Rose!", payload.Message)
}
