package notifystream

import (
	"log/slog"

	"github.com/dmitrymomot/notifystream/pkg/inbox"
	"github.com/dmitrymomot/notifystream/pkg/notifier"
)

type options struct {
	manager []notifier.Option
	store   []inbox.Option
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithManagerOptions are applied to every connection manager the client
// creates.
func WithManagerOptions(opts ...notifier.Option) Option {
	return func(o *options) {
		o.manager = append(o.manager, opts...)
	}
}

// WithStoreOptions configure the notification store. They override the
// capacity taken from Config.
func WithStoreOptions(opts ...inbox.Option) Option {
	return func(o *options) {
		o.store = append(o.store, opts...)
	}
}

// WithLogger sets the logger for the client and its components.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
