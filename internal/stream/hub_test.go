package stream

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/session"
)

type staticSource struct {
	snap session.Snapshot
}

func (s staticSource) Snapshot() session.Snapshot { return s.snap }

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var f Frame
	require.NoError(t, json.Unmarshal(msg, &f))
	return f
}

func TestHub_SendsSnapshotOnConnectAndPublish(t *testing.T) {
	hub := NewHub(staticSource{snap: session.Snapshot{PlayerID: "player-1", Loaded: true}})
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)

	first := readFrame(t, conn)
	assert.Equal(t, MessageTypeSnapshot, first.Type)
	assert.Equal(t, "player-1", first.Snapshot.PlayerID)
	assert.True(t, first.Snapshot.Loaded)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Observer()(session.Snapshot{PlayerID: "player-1", Economy: domain.Economy{Coins: 42}})

	next := readFrame(t, conn)
	assert.Greater(t, next.Seq, first.Seq)
	assert.Equal(t, 42, next.Snapshot.Economy.Coins)
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Close()
	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	assert.Zero(t, hub.ClientCount())
}

func TestHub_RefusesAfterClose(t *testing.T) {
	hub := NewHub(nil)
	hub.Close()

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestOffer_KeepsNewest(t *testing.T) {
	ch := make(chan []byte, 1)
	offer(ch, []byte("old"))
	offer(ch, []byte("new"))

	assert.Equal(t, "new", string(<-ch))
	select {
	case <-ch:
		t.Fatal("only one frame should be pending")
	default:
	}
}

func pendingFrame(t *testing.T, c *client) Frame {
	t.Helper()
	var f Frame
	select {
	case msg := <-c.send:
		require.NoError(t, json.Unmarshal(msg, &f))
	default:
		t.Fatal("no frame pending")
	}
	return f
}

func TestHub_ConcurrentPublishKeepsHighestSeq(t *testing.T) {
	hub := NewHub(nil)
	c, ok := hub.add()
	require.True(t, ok)
	defer hub.remove(c)

	const publishers = 50
	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func(coins int) {
			defer wg.Done()
			hub.Publish(session.Snapshot{Economy: domain.Economy{Coins: coins}})
		}(i)
	}
	wg.Wait()

	f := pendingFrame(t, c)
	assert.Equal(t, uint64(publishers), f.Seq)
}

func TestHub_GreetDoesNotReplaceNewerFrame(t *testing.T) {
	hub := NewHub(nil)
	c, ok := hub.add()
	require.True(t, ok)
	defer hub.remove(c)

	stale := session.Snapshot{Economy: domain.Economy{Coins: 1}}
	hub.Publish(session.Snapshot{Economy: domain.Economy{Coins: 2}})
	hub.greet(c, stale)

	f := pendingFrame(t, c)
	assert.Equal(t, 2, f.Snapshot.Economy.Coins)
	assert.Equal(t, uint64(1), f.Seq)
}
