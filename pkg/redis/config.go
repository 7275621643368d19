package redis

import "time"

// Config describes the Redis connection. Field tags are relative; load with
// a prefix (the daemon uses "NOTIFY_", giving NOTIFY_REDIS_URL).
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                              // e.g. "redis://:password@localhost:6379/0"; empty disables Redis
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"market:"`  // prepended to credential keys
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`   // wait between attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"` // overall budget for Connect
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
