package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/event"
	"github.com/osse101/MagicGarden_Go/internal/testing/leaktest"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastHonoursFilters(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	onlyReady := hub.Register([]string{string(event.BedReady)})
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(string(event.ActionConfirmed), "req-1", map[string]int{"coins": 5})
	hub.Broadcast(string(event.BedReady), "", map[string]int{"bed_id": 1})

	first := receive(t, all)
	assert.Equal(t, string(event.ActionConfirmed), first.Type)
	assert.Equal(t, "req-1", first.RequestID)
	assert.Equal(t, string(event.BedReady), receive(t, all).Type)

	assert.Equal(t, string(event.BedReady), receive(t, onlyReady).Type)
	select {
	case e := <-onlyReady.EventChannel:
		t.Fatalf("unexpected event %s", e.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(c.ID)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopIsIdempotentAndLeakFree(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub()
	hub.Start()
	c := hub.Register(nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	checker.Check(0)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "growth.bed_ready", Timestamp: 1, Payload: map[string]int{"bed_id": 2}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: growth.bed_ready\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
	assert.Contains(t, s, `"bed_id":2`)
}

func TestKnownType(t *testing.T) {
	assert.True(t, KnownType("action.confirmed"))
	assert.False(t, KnownType("progression.voting_started"))
}

// readEvent reads one SSE frame and decodes its data line
func readEvent(t *testing.T, r *bufio.Reader) Event {
	t.Helper()
	var data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			break
		}
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
		}
	}
	var e Event
	require.NoError(t, json.Unmarshal([]byte(data), &e))
	return e
}

func TestHandler_StreamsBusEvents(t *testing.T) {
	hub := NewHub(WithKeepalive(time.Hour))
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe(context.Background())

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=growth.bed_ready", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	assert.Equal(t, EventTypeConnected, readEvent(t, reader).Type)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	// Filtered out
	require.NoError(t, bus.Publish(context.Background(), event.NewSelectionEvent(nil)))

	plant := domain.Plant{ID: 1, Name: "Magic Rose"}
	require.NoError(t, bus.Publish(context.Background(), event.NewBedReadyEvent(domain.Bed{ID: 3, Plant: &plant})))

	got := readEvent(t, reader)
	assert.Equal(t, string(event.BedReady), got.Type)
	payload, err := event.DecodePayload[event.BedReadyPayloadV1](got.Payload)
	require.NoError(t, err)
	assert.Equal(t, 3, payload.BedID)
	assert.Equal(t, "Magic Rose", payload.PlantName)
}

func TestHandler_RejectsUnknownFilter(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	rec := httptest.NewRecorder()
	Handler(hub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?types=job.level_up", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgUnknownEventType)
	assert.Zero(t, hub.ClientCount())
}
