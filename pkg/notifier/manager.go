package notifier

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/notifystream/pkg/clock"
	"github.com/dmitrymomot/notifystream/pkg/credential"
	"github.com/dmitrymomot/notifystream/pkg/inbox"
	"github.com/dmitrymomot/notifystream/pkg/logger"
	"github.com/dmitrymomot/notifystream/pkg/sse"
	"github.com/dmitrymomot/notifystream/pkg/statemachine"
)

// Manager runs one notification subscription. Safe for concurrent use.
type Manager struct {
	resolver       *credential.Resolver
	transport      sse.Transport
	store          *inbox.Store
	clock          clock.Clock
	backoff        Backoff
	origin         OriginProvider
	handlers       map[string]EventHandler
	onNotification func(inbox.Notification)
	logger         *slog.Logger

	mu         sync.Mutex
	lifecycle  *statemachine.Machine[State, event]
	gen        uint64
	canConnect bool
	ctx        context.Context
	cancel     context.CancelFunc
	stream     sse.Stream
	timer      clock.Timer
	attempt    int
	delay      Backoff
	baseURL    string
	token      string
	lastID     string
}

// New creates an idle manager writing into store. A nil store is replaced by
// a fresh inbox.Store.
func New(store *inbox.Store, opts ...Option) *Manager {
	if store == nil {
		store = inbox.NewStore()
	}

	m := &Manager{
		resolver:  credential.NewResolver(),
		transport: sse.NewHTTPTransport(),
		store:     store,
		clock:     clock.New(),
		logger:    slog.Default(),
		lifecycle: newLifecycle(),
	}
	m.handlers = m.defaultHandlers()

	for _, opt := range opts {
		opt(m)
	}

	m.lifecycle.OnTransition(func(from, to State, ev event) {
		m.logger.Debug("connection state changed",
			logger.Component("notifier"),
			slog.String("from", from.String()),
			logger.State(to.String()),
		)
	})
	return m
}

// Store returns the notification store the manager writes into.
func (m *Manager) Store() *inbox.Store {
	return m.store
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.lifecycle.Current()
}

// CanConnect reports whether the last Start found a credential.
func (m *Manager) CanConnect() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.canConnect
}

// LastEventID returns the most recent stream event id.
func (m *Manager) LastEventID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastID
}

// Start resolves a credential and opens the stream in the background. ctx
// bounds the credential lookup and supplies values to the connection; the
// connection itself lives until Stop. Start is a no-op unless the manager is
// idle.
func (m *Manager) Start(ctx context.Context, cfg Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.lifecycle.Is(StateIdle) {
		m.logger.DebugContext(ctx, "notification stream already started",
			logger.Component("notifier"),
			logger.State(m.lifecycle.Current().String()),
		)
		return
	}

	res, ok := m.resolver.Describe(ctx, cfg.explicitToken())
	m.canConnect = ok
	if !ok {
		m.logger.DebugContext(ctx, "no credential found, notifications disabled",
			logger.Component("notifier"),
		)
		return
	}

	m.delay = m.backoff
	if m.delay == nil {
		m.delay = FixedBackoff{Interval: cfg.ReconnectDelay}
	}
	m.baseURL = resolveBaseURL(cfg, m.origin)
	m.token = res.Token
	m.attempt = 0

	m.gen++
	gen := m.gen
	m.ctx, m.cancel = context.WithCancel(context.WithoutCancel(ctx))

	if _, err := m.lifecycle.Fire(evConnect); err != nil {
		return
	}

	m.logger.InfoContext(ctx, "starting notification stream",
		logger.Component("notifier"),
		logger.Endpoint(m.baseURL),
		logger.Source(res.String()),
	)

	go m.connect(m.ctx, gen, m.requestLocked())
}

// Stop cancels any pending reconnect, closes the open stream and moves the
// manager to StateStopped. Stop on an idle or stopped manager is a no-op.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lifecycle.Is(StateIdle) || m.lifecycle.Is(StateStopped) {
		return
	}

	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.cancel != nil {
		m.cancel()
	}
	if m.stream != nil {
		_ = m.stream.Close()
		m.stream = nil
	}
	_, _ = m.lifecycle.Fire(evStop)

	m.logger.Info("notification stream stopped", logger.Component("notifier"))
}

func (m *Manager) requestLocked() sse.Request {
	return sse.Request{BaseURL: m.baseURL, Token: m.token, LastEventID: m.lastID}
}

func (m *Manager) connect(ctx context.Context, gen uint64, req sse.Request) {
	stream, err := m.transport.Open(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		if stream != nil {
			_ = stream.Close()
		}
		return
	}
	if err != nil {
		m.failLocked(err)
		return
	}

	m.stream = stream
	m.attempt = 0
	_, _ = m.lifecycle.Fire(evOpened)

	m.logger.InfoContext(ctx, "notification stream connected",
		logger.Component("notifier"),
		logger.Endpoint(req.BaseURL),
	)

	go m.read(ctx, gen, stream)
}

func (m *Manager) read(ctx context.Context, gen uint64, stream sse.Stream) {
	for ev := range stream.Events() {
		if !m.record(gen, ev) {
			return
		}
		m.dispatch(ctx, ev)
	}

	err := stream.Err()

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen || m.stream != stream {
		return
	}
	m.stream = nil
	_ = stream.Close()
	if err == nil {
		err = sse.ErrStreamClosed
	}
	m.failLocked(err)
}

// record stores the event id and reports whether gen is still current.
func (m *Manager) record(gen uint64, ev sse.Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		return false
	}
	if ev.ID != "" {
		m.lastID = ev.ID
	}
	return true
}

func (m *Manager) failLocked(err error) {
	if _, ferr := m.lifecycle.Fire(evFail); ferr != nil {
		return
	}

	m.attempt++
	delay := m.delay.NextInterval(m.attempt)

	m.logger.Warn("notification stream failed, reconnect scheduled",
		logger.Component("notifier"),
		logger.Error(err),
		logger.Attempt(m.attempt),
		logger.Delay(delay),
	)

	gen := m.gen
	m.timer = m.clock.AfterFunc(delay, func() { m.retry(gen) })
	_, _ = m.lifecycle.Fire(evSchedule)
}

func (m *Manager) retry(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || !m.lifecycle.Is(StateReconnectPending) {
		m.mu.Unlock()
		return
	}
	m.timer = nil
	_, _ = m.lifecycle.Fire(evRetry)
	ctx, req := m.ctx, m.requestLocked()
	m.mu.Unlock()

	m.connect(ctx, gen, req)
}
