package credential

import "log/slog"

// DefaultKeys are the flat keys probed in each tier, in order.
var DefaultKeys = []string{"accessToken", "token", "adminToken", "sellerToken", "buyerToken"}

// DefaultAuthRecordKey holds a JSON object with an embedded token.
const DefaultAuthRecordKey = "auth"

// DefaultAuthTokenFields are read from the auth record, in order.
var DefaultAuthTokenFields = []string{"token", "accessToken", "access_token"}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSessionStorage sets the volatile tier. Defaults to an empty MemoryStorage.
func WithSessionStorage(s Storage) Option {
	return func(r *Resolver) {
		r.session = s
	}
}

// WithPersistentStorage sets the durable tier. Defaults to none.
func WithPersistentStorage(s Storage) Option {
	return func(r *Resolver) {
		r.persistent = s
	}
}

// WithKeys replaces the flat key list.
func WithKeys(keys ...string) Option {
	return func(r *Resolver) {
		if len(keys) > 0 {
			r.keys = keys
		}
	}
}

// WithAuthRecord sets the auth record key and the token fields read from it.
func WithAuthRecord(key string, fields ...string) Option {
	return func(r *Resolver) {
		if key != "" {
			r.authKey = key
		}
		if len(fields) > 0 {
			r.authFields = fields
		}
	}
}

// WithLogger sets the logger used for storage failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}
