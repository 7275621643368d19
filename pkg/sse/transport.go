package sse

import "context"

// StreamPath is appended to the base URL to reach the notification stream.
const StreamPath = "/api/v1/notifications"

// Request describes a stream to open.
type Request struct {
	BaseURL string
	Token   string
	// LastEventID is sent as the Last-Event-ID header when set.
	LastEventID string
}

// Transport opens push streams.
type Transport interface {
	Open(ctx context.Context, req Request) (Stream, error)
}

// Stream is one open push connection.
type Stream interface {
	// Events yields events in delivery order. The channel is closed when the
	// stream ends.
	Events() <-chan Event
	// Err reports why the stream ended. It is nil after Close.
	Err() error
	// Close tears the connection down. Safe to call more than once.
	Close() error
}
