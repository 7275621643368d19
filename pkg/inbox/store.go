package inbox

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/notifystream/pkg/broadcast"
	"github.com/dmitrymomot/notifystream/pkg/logger"
	"github.com/dmitrymomot/notifystream/pkg/payload"
)

// Store is the bounded notification list. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	items    []Notification
	capacity int
	now      func() time.Time
	feed     *broadcast.MemoryBroadcaster[Snapshot]
	logger   *slog.Logger
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		items:    []Notification{},
		capacity: DefaultCapacity,
		now:      time.Now,
		feed:     broadcast.NewMemoryBroadcaster[Snapshot](),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert records a normalized payload as a new unread notification at the
// front of the list and returns it. The id is idOverride when set, else the
// id embedded in the payload, else a generated one.
func (s *Store) Insert(n payload.Normalized, idOverride string) Notification {
	receivedAt := s.now()

	id := idOverride
	if id == "" {
		id = n.EmbeddedID()
	}
	if id == "" {
		id = newID(receivedAt)
	}

	rec := Notification{
		ID:         id,
		Title:      n.Title,
		Message:    n.Message,
		ReceivedAt: receivedAt,
		IsUnread:   true,
		Raw:        n.Raw,
		Data:       n.Data,
	}

	s.mu.Lock()
	next := make([]Notification, 0, min(len(s.items)+1, s.capacity))
	next = append(next, rec)
	for _, item := range s.items {
		if len(next) == s.capacity {
			break
		}
		if item.ID == id {
			s.logger.Debug("replacing notification with duplicate id",
				logger.Component("inbox"),
				logger.NotificationID(id),
			)
			continue
		}
		next = append(next, item)
	}
	s.commitLocked(next)
	s.mu.Unlock()

	return rec
}

// MarkRead clears the unread flag of the entry with the given id. Unknown ids are ignored.
func (s *Store) MarkRead(id string) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
	if idx < 0 || !s.items[idx].IsUnread {
		s.mu.Unlock()
		return
	}
	next := slices.Clone(s.items)
	next[idx].IsUnread = false
	s.commitLocked(next)
	s.mu.Unlock()
}

// MarkAllRead clears the unread flag of every entry.
func (s *Store) MarkAllRead() {
	s.mu.Lock()
	if countUnread(s.items) == 0 {
		s.mu.Unlock()
		return
	}
	next := make([]Notification, len(s.items))
	for i, item := range s.items {
		item.IsUnread = false
		next[i] = item
	}
	s.commitLocked(next)
	s.mu.Unlock()
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	s.commitLocked([]Notification{})
	s.mu.Unlock()
}

// List returns the entries, newest first.
func (s *Store) List() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// UnreadCount returns the number of unread entries.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return countUnread(s.items)
}

// Snapshot returns the current list and unread count as one consistent value.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Capacity returns the maximum number of entries kept.
func (s *Store) Capacity() int {
	return s.capacity
}

// Subscribe returns a feed of snapshots published after every mutation.
// The subscription ends when ctx is done.
func (s *Store) Subscribe(ctx context.Context) broadcast.Subscriber[Snapshot] {
	return s.feed.Subscribe(ctx)
}

// Close ends all subscriptions.
func (s *Store) Close() error {
	return s.feed.Close()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Notifications: slices.Clone(s.items),
		UnreadCount:   countUnread(s.items),
	}
}

// commitLocked swaps in the new list and publishes it. Publishing under the
// lock keeps snapshots in mutation order; Broadcast never blocks.
func (s *Store) commitLocked(next []Notification) {
	s.items = next
	// The feed only fails once closed, after which nobody is listening.
	_ = s.feed.Broadcast(context.Background(), broadcast.Message[Snapshot]{Data: s.snapshotLocked()})
}

func countUnread(items []Notification) int {
	n := 0
	for _, item := range items {
		if item.IsUnread {
			n++
		}
	}
	return n
}
