package credential

import (
	"context"
	"strings"
)

// Storage is a read-only key-value lookup.
type Storage interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
}

// Tier names a storage tier.
type Tier string

const (
	// TierSession is volatile storage scoped to the current session.
	TierSession Tier = "session"
	// TierPersistent is storage that survives across sessions.
	TierPersistent Tier = "persistent"
)

// IsPlaceholder reports whether v stands for "no value".
func IsPlaceholder(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "null", "undefined":
		return true
	}
	return false
}
