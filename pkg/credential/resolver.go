package credential

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/notifystream/pkg/logger"
)

// Resolution describes where a token came from.
type Resolution struct {
	Token string
	// Tier is empty for explicit tokens.
	Tier Tier
	// Key is the storage key, or "<record>.<field>" for auth records.
	Key string
}

// Explicit reports whether the token was supplied by the caller.
func (r Resolution) Explicit() bool {
	return r.Tier == ""
}

func (r Resolution) String() string {
	if r.Explicit() {
		return "explicit"
	}
	return string(r.Tier) + "/" + r.Key
}

// Resolver locates the stream credential. Safe for concurrent use.
type Resolver struct {
	session    Storage
	persistent Storage
	keys       []string
	authKey    string
	authFields []string
	logger     *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		session:    NewMemoryStorage(nil),
		keys:       DefaultKeys,
		authKey:    DefaultAuthRecordKey,
		authFields: DefaultAuthTokenFields,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the first usable token. An explicit source wins when it
// yields a non-placeholder value. ok is false when nothing was found.
func (r *Resolver) Resolve(ctx context.Context, explicit TokenSource) (string, bool) {
	res, ok := r.Describe(ctx, explicit)
	return res.Token, ok
}

// Describe is Resolve with provenance.
func (r *Resolver) Describe(ctx context.Context, explicit TokenSource) (Resolution, bool) {
	if explicit != nil {
		token, err := explicit.Token(ctx)
		if err != nil {
			r.logger.WarnContext(ctx, "explicit token source failed",
				logger.Component("credential"),
				logger.Error(err),
			)
		} else if !IsPlaceholder(token) {
			return Resolution{Token: strings.TrimSpace(token)}, true
		}
	}

	tiers := r.tiers()

	for _, t := range tiers {
		for _, key := range r.keys {
			if v, ok := r.lookup(ctx, t, key); ok && !IsPlaceholder(v) {
				return Resolution{Token: strings.TrimSpace(v), Tier: t.name, Key: key}, true
			}
		}
	}

	for _, t := range tiers {
		raw, ok := r.lookup(ctx, t, r.authKey)
		if !ok || IsPlaceholder(raw) {
			continue
		}
		if field, token, ok := r.fromRecord(raw); ok {
			return Resolution{Token: token, Tier: t.name, Key: r.authKey + "." + field}, true
		}
	}

	return Resolution{}, false
}

type tier struct {
	name    Tier
	storage Storage
}

func (r *Resolver) tiers() []tier {
	tiers := make([]tier, 0, 2)
	if r.session != nil {
		tiers = append(tiers, tier{name: TierSession, storage: r.session})
	}
	if r.persistent != nil {
		tiers = append(tiers, tier{name: TierPersistent, storage: r.persistent})
	}
	return tiers
}

// lookup treats storage failures as absence.
func (r *Resolver) lookup(ctx context.Context, t tier, key string) (string, bool) {
	v, err := t.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.WarnContext(ctx, "credential storage lookup failed",
				logger.Component("credential"),
				slog.String("tier", string(t.name)),
				slog.String("key", key),
				logger.Error(err),
			)
		}
		return "", false
	}
	return v, true
}

func (r *Resolver) fromRecord(raw string) (string, string, bool) {
	var record map[string]any
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return "", "", false
	}
	for _, field := range r.authFields {
		s, ok := record[field].(string)
		if ok && !IsPlaceholder(s) {
			return field, strings.TrimSpace(s), true
		}
	}
	return "", "", false
}
