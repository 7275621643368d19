package notifier

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifystream/pkg/logger"
	"github.com/dmitrymomot/notifystream/pkg/payload"
	"github.com/dmitrymomot/notifystream/pkg/sse"
)

const (
	// EventNotification carries a notification payload.
	EventNotification = "notification"
	// EventInit is the server handshake. Its payload is informational.
	EventInit = "init"
)

// EventHandler processes one server event. Handlers run on the stream's read
// goroutine, in delivery order. ctx is cancelled by Stop; handlers with side
// effects should check it.
type EventHandler func(ctx context.Context, ev sse.Event)

func (m *Manager) defaultHandlers() map[string]EventHandler {
	return map[string]EventHandler{
		EventNotification: m.handleNotification,
		EventInit:         m.handleInit,
	}
}

// handleNotification inserts under the manager lock. Stop cancels ctx under
// the same lock, so nothing is inserted once Stop has returned.
func (m *Manager) handleNotification(ctx context.Context, ev sse.Event) {
	normalized := payload.Normalize(ev.Data)

	m.mu.Lock()
	if ctx.Err() != nil {
		m.mu.Unlock()
		return
	}
	n := m.store.Insert(normalized, "")
	m.mu.Unlock()

	m.logger.DebugContext(ctx, "notification received",
		logger.Component("notifier"),
		logger.NotificationID(n.ID),
	)

	if m.onNotification != nil {
		m.onNotification(n)
	}
}

func (m *Manager) handleInit(ctx context.Context, ev sse.Event) {
	m.logger.InfoContext(ctx, "notification stream handshake",
		logger.Component("notifier"),
		slog.String("payload", ev.Data),
	)
}

func (m *Manager) dispatch(ctx context.Context, ev sse.Event) {
	h, ok := m.handlers[ev.Name]
	if !ok {
		m.logger.DebugContext(ctx, "unhandled stream event",
			logger.Component("notifier"),
			logger.EventType(ev.Name),
		)
		return
	}
	h(ctx, ev)
}
