package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50
)

// Stream settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// QueryParamTypes filters the stream to a comma-separated list of event types
	QueryParamTypes = "types"
)

// Stream-only event types. Item events keep their bus type name.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "Item stream client connected"
	LogMsgClientDisconnected = "Item stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting item event"
	LogMsgEventDropped       = "Item stream buffer full, event dropped"
	LogMsgWriteError         = "Failed to write item stream event"
	LogMsgSubscribed         = "Item stream subscribed to event types"
	ErrMsgStreamUnsupported  = "Streaming not supported"
)
