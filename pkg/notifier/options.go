package notifier

import (
	"log/slog"

	"github.com/dmitrymomot/notifystream/pkg/clock"
	"github.com/dmitrymomot/notifystream/pkg/credential"
	"github.com/dmitrymomot/notifystream/pkg/inbox"
	"github.com/dmitrymomot/notifystream/pkg/sse"
)

// Option configures a Manager.
type Option func(*Manager)

// WithResolver sets the credential resolver.
func WithResolver(r *credential.Resolver) Option {
	return func(m *Manager) {
		if r != nil {
			m.resolver = r
		}
	}
}

// WithTransport sets the push transport. Panics on nil.
func WithTransport(t sse.Transport) Option {
	if t == nil {
		panic("notifier: nil transport")
	}
	return func(m *Manager) {
		m.transport = t
	}
}

// WithClock sets the clock used for reconnect timers.
func WithClock(c clock.Clock) Option {
	return func(m *Manager) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithBackoff overrides the reconnect delay policy. Without it the manager
// uses FixedBackoff with Config.ReconnectDelay.
func WithBackoff(b Backoff) Option {
	return func(m *Manager) {
		m.backoff = b
	}
}

// WithOriginProvider sets the base URL fallback.
func WithOriginProvider(p OriginProvider) Option {
	return func(m *Manager) {
		m.origin = p
	}
}

// WithHandler registers or replaces the handler for a named event.
func WithHandler(name string, h EventHandler) Option {
	return func(m *Manager) {
		if h == nil {
			delete(m.handlers, name)
			return
		}
		m.handlers[name] = h
	}
}

// WithOnNotification sets a callback invoked with every inserted notification.
func WithOnNotification(fn func(inbox.Notification)) Option {
	return func(m *Manager) {
		m.onNotification = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}
