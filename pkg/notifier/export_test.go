package notifier

import (
	"context"

	"github.com/dmitrymomot/notifystream/pkg/sse"
)

// Dispatch runs the handler for ev with the current connection context, as
// the read loop does.
func (m *Manager) Dispatch(ev sse.Event) {
	m.mu.Lock()
	ctx := m.ctx
	m.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}
	m.dispatch(ctx, ev)
}
