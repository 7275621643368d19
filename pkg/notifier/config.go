package notifier

import (
	"time"

	"github.com/dmitrymomot/notifystream/pkg/credential"
)

const (
	// DefaultBaseURL is used when neither the config nor the origin provider
	// supply a base URL.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultReconnectDelay is the fixed wait before each reconnect attempt.
	DefaultReconnectDelay = 5 * time.Second
)

// Config is passed to Manager.Start. Load it with config.LoadWithPrefix and
// the "NOTIFY_" prefix.
type Config struct {
	BaseURL string `env:"BASE_URL"`

	// Token is an explicit credential. It takes precedence over stored ones.
	Token string `env:"TOKEN"`

	// TokenSource takes precedence over Token when set.
	TokenSource credential.TokenSource `env:"-"`

	ReconnectDelay time.Duration `env:"RECONNECT_DELAY" envDefault:"5s"`

	// Capacity is the notification store size used by callers that build
	// the store from config.
	Capacity int `env:"CAPACITY" envDefault:"50"`
}

func (c Config) explicitToken() credential.TokenSource {
	if c.TokenSource != nil {
		return c.TokenSource
	}
	if c.Token != "" {
		return credential.StaticToken(c.Token)
	}
	return nil
}

// OriginProvider supplies the origin of the hosting application, used as the
// base URL fallback.
type OriginProvider interface {
	Origin() (string, bool)
}

// OriginFunc adapts a function to OriginProvider.
type OriginFunc func() (string, bool)

func (f OriginFunc) Origin() (string, bool) {
	return f()
}

// StaticOrigin is a fixed origin.
type StaticOrigin string

func (s StaticOrigin) Origin() (string, bool) {
	return string(s), s != ""
}

func resolveBaseURL(cfg Config, origin OriginProvider) string {
	if !credential.IsPlaceholder(cfg.BaseURL) {
		return cfg.BaseURL
	}
	if origin != nil {
		if o, ok := origin.Origin(); ok && !credential.IsPlaceholder(o) {
			return o
		}
	}
	return DefaultBaseURL
}
