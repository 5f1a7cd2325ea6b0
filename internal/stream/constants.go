package stream

import "time"

// Connection settings
const (
	WriteWait    = 5 * time.Second
	PongWait     = 60 * time.Second
	PingInterval = (PongWait * 9) / 10
	ReadLimit    = 4 * 1024
	BufferSize   = 64 * 1024
)

// MessageTypeSnapshot tags every frame the hub sends
const MessageTypeSnapshot = "snapshot"

// TransportLabel is the metrics label for WebSocket clients
const TransportLabel = "ws"

// Log messages
const (
	LogMsgClientConnected    = "WebSocket client connected"
	LogMsgClientDisconnected = "WebSocket client disconnected"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
	LogMsgEncodeFailed       = "Failed to encode snapshot frame"
)
