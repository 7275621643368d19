package notifystream

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/notifystream/pkg/broadcast"
	"github.com/dmitrymomot/notifystream/pkg/inbox"
	"github.com/dmitrymomot/notifystream/pkg/logger"
	"github.com/dmitrymomot/notifystream/pkg/notifier"
)

// Client owns one notification store and the connection manager feeding it.
// All methods are safe for concurrent use and never fail.
type Client struct {
	store  *inbox.Store
	opts   options
	logger *slog.Logger

	mu      sync.Mutex
	cfg     notifier.Config
	manager *notifier.Manager
}

// New creates an idle client. Call Start to connect.
func New(cfg notifier.Config, opts ...Option) *Client {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	storeOpts := []inbox.Option{inbox.WithLogger(o.logger)}
	if cfg.Capacity > 0 {
		storeOpts = append(storeOpts, inbox.WithCapacity(cfg.Capacity))
	}

	c := &Client{
		store:  inbox.NewStore(append(storeOpts, o.store...)...),
		opts:   o,
		logger: o.logger,
		cfg:    cfg,
	}
	c.manager = c.newManager()
	return c
}

func (c *Client) newManager() *notifier.Manager {
	opts := append([]notifier.Option{notifier.WithLogger(c.logger)}, c.opts.manager...)
	return notifier.New(c.store, opts...)
}

// Start connects using the client's config. After Stop it starts a fresh
// connection manager over the same history.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.manager.State() == notifier.StateStopped {
		c.manager = c.newManager()
	}
	c.manager.Start(ctx, c.cfg)
}

// Stop tears the connection down. History is kept.
func (c *Client) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.manager.Stop()
}

// Restart replaces the connection after a credential or endpoint change.
// History is kept.
func (c *Client) Restart(ctx context.Context, cfg notifier.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.manager.Stop()
	c.cfg = cfg
	c.manager = c.newManager()
	c.manager.Start(ctx, cfg)

	c.logger.InfoContext(ctx, "notification client restarted",
		logger.Component("client"),
		logger.State(c.manager.State().String()),
	)
}

// Logout stops the connection and clears the history.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.manager.Stop()
	c.manager = c.newManager()
	c.store.Clear()
}

// Close stops the connection and ends all store subscriptions.
func (c *Client) Close() error {
	c.Stop()
	return c.store.Close()
}

// Notifications returns the history, newest first.
func (c *Client) Notifications() []inbox.Notification {
	return c.store.List()
}

// UnreadCount returns the number of unread notifications.
func (c *Client) UnreadCount() int {
	return c.store.UnreadCount()
}

// MarkAsRead marks one notification read. Unknown ids are ignored.
func (c *Client) MarkAsRead(id string) {
	c.store.MarkRead(id)
}

// MarkAllAsRead marks every notification read.
func (c *Client) MarkAllAsRead() {
	c.store.MarkAllRead()
}

// ClearNotifications empties the history.
func (c *Client) ClearNotifications() {
	c.store.Clear()
}

// CanConnect reports whether a credential was found on the last Start.
func (c *Client) CanConnect() bool {
	return c.current().CanConnect()
}

// State returns the connection state.
func (c *Client) State() notifier.State {
	return c.current().State()
}

// Snapshot returns the history and unread count taken together.
func (c *Client) Snapshot() inbox.Snapshot {
	return c.store.Snapshot()
}

// Subscribe delivers a snapshot after every change until ctx is done.
func (c *Client) Subscribe(ctx context.Context) broadcast.Subscriber[inbox.Snapshot] {
	return c.store.Subscribe(ctx)
}

func (c *Client) current() *notifier.Manager {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manager
}
