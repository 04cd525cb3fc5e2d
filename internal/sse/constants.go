package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Event types for SSE
const (
	// EventTypeSubsUpdated is sent after an ingestion run stores new snapshots
	EventTypeSubsUpdated = "subs.updated"

	// EventTypeScoringCompleted is sent after a scoring pass scores predictions
	EventTypeScoringCompleted = "scoring.completed"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// ParamTypes is the query parameter holding a comma-separated type filter
const ParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
)
