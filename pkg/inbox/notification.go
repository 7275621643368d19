package inbox

import "time"

// Notification is a received notification as shown to the user.
type Notification struct {
	ID         string         `json:"id"`
	Title      *string        `json:"title"`
	Message    string         `json:"message"`
	ReceivedAt time.Time      `json:"receivedAt"`
	IsUnread   bool           `json:"isUnread"`
	Raw        any            `json:"raw,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

// Snapshot is the store state published to subscribers.
type Snapshot struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}
