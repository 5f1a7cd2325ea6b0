// Package stream pushes full session snapshots to WebSocket clients.
package stream

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
	"github.com/osse101/MagicGarden_Go/internal/session"
)

// Source supplies the snapshot a client sees on connect
type Source interface {
	Snapshot() session.Snapshot
}

// Frame is the JSON message written to clients
type Frame struct {
	Type     string           `json:"type"`
	Seq      uint64           `json:"seq"`
	Snapshot session.Snapshot `json:"snapshot"`
}

type client struct {
	id   uint64
	send chan []byte
}

// Hub fans snapshots out to connected clients. Each client holds at most one
// pending frame; a newer snapshot replaces an unsent older one.
type Hub struct {
	source   Source
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[uint64]*client
	closed  bool
	done    chan struct{}

	nextID atomic.Uint64
	seq    atomic.Uint64
	wg     sync.WaitGroup
}

// NewHub creates a hub serving snapshots from source
func NewHub(source Source) *Hub {
	return &Hub{
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  BufferSize,
			WriteBufferSize: BufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[uint64]*client),
		done:    make(chan struct{}),
	}
}

// Observer returns a session observer that publishes every snapshot
func (h *Hub) Observer() session.Observer {
	return h.Publish
}

// Publish sends snap to every client. Seq is assigned under h.mu so a client
// never ends up holding an older frame than one already offered.
func (h *Hub) Publish(snap session.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg, err := h.encode(snap)
	if err != nil {
		slog.Default().Error(LogMsgEncodeFailed, "error", err)
		return
	}
	for _, c := range h.clients {
		offer(c.send, msg)
	}
}

// offer places msg in a one-slot channel, replacing whatever is waiting
func offer(ch chan []byte, msg []byte) {
	for {
		select {
		case ch <- msg:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// greet offers the connect-time snapshot unless a published frame is already
// waiting; that frame is newer.
func (h *Hub) greet(c *client, snap session.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg, err := h.encode(snap)
	if err != nil {
		slog.Default().Error(LogMsgEncodeFailed, "error", err)
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}

// encode must be called with h.mu held
func (h *Hub) encode(snap session.Snapshot) ([]byte, error) {
	return json.Marshal(Frame{Type: MessageTypeSnapshot, Seq: h.seq.Add(1), Snapshot: snap})
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add() (*client, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	c := &client{id: h.nextID.Add(1), send: make(chan []byte, 1)}
	h.clients[c.id] = c
	h.wg.Add(1)
	metrics.StreamClients.WithLabelValues(TransportLabel).Set(float64(len(h.clients)))
	return c, true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		h.wg.Done()
	}
	metrics.StreamClients.WithLabelValues(TransportLabel).Set(float64(len(h.clients)))
}

// Close disconnects every client and waits for their handlers to return
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.done)
	h.mu.Unlock()

	h.wg.Wait()
}

// Handler upgrades the request and streams snapshots until either side closes
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		c, ok := h.add()
		if !ok {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		defer h.remove(c)

		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		log.Info(LogMsgClientConnected, "client_id", c.id)
		defer log.Info(LogMsgClientDisconnected, "client_id", c.id)

		if h.source != nil {
			h.greet(c, h.source.Snapshot())
		}

		// Reader: clients send nothing meaningful; this notices closes and pongs.
		readDone := make(chan struct{})
		go func() {
			defer close(readDone)
			conn.SetReadLimit(ReadLimit)
			_ = conn.SetReadDeadline(time.Now().Add(PongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(PongWait))
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(PingInterval)
		defer ping.Stop()

		for {
			select {
			case msg := <-c.send:
				_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteWait)); err != nil {
					return
				}
			case <-readDone:
				return
			case <-h.done:
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(WriteWait))
				return
			}
		}
	}
}
