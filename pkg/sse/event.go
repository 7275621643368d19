package sse

import "time"

// DefaultEventName is used for events without an "event" field.
const DefaultEventName = "message"

// Event is one dispatched server event.
type Event struct {
	// ID is the last event id seen on the stream, which may come from an
	// earlier event.
	ID   string
	Name string
	Data string
	// Retry is the reconnection time requested by the server, if any.
	Retry time.Duration
}
