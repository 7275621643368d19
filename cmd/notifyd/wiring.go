package main

import (
	"context"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/notifystream"
	"github.com/dmitrymomot/notifystream/pkg/credential"
	"github.com/dmitrymomot/notifystream/pkg/logger"
	"github.com/dmitrymomot/notifystream/pkg/notifier"
	"github.com/dmitrymomot/notifystream/pkg/redis"
)

// deps are the long-lived collaborators shared by the commands.
type deps struct {
	resolver *credential.Resolver
	redis    *goredis.Client
}

func (d *deps) Close() {
	if d.redis != nil {
		_ = d.redis.Close()
	}
}

// newDeps wires the credential tiers: the process environment is the session
// tier; Redis, when configured, or else the credentials file is the
// persistent tier.
func newDeps(ctx context.Context, f *Flags) (*deps, error) {
	d := &deps{}

	var persistent credential.Storage
	if f.Redis.Enabled() {
		client, err := redis.Connect(ctx, f.Redis)
		if err != nil {
			return nil, err
		}
		d.redis = client
		persistent = credential.NewRedisStorage(client, f.Redis.KeyPrefix)
	} else {
		persistent = credential.NewFileStorage(f.Credentials)
	}

	d.resolver = credential.NewResolver(
		credential.WithSessionStorage(credential.NewEnvStorage(envPrefix)),
		credential.WithPersistentStorage(persistent),
		credential.WithLogger(f.Logger),
	)
	return d, nil
}

func (d *deps) newClient(f *Flags, opts ...notifier.Option) *notifystream.Client {
	return notifystream.New(f.Notify,
		notifystream.WithLogger(f.Logger),
		notifystream.WithManagerOptions(append([]notifier.Option{notifier.WithResolver(d.resolver)}, opts...)...),
	)
}

func (d *deps) readinessChecks() []func(context.Context) error {
	if d.redis == nil {
		return nil
	}
	return []func(context.Context) error{redis.Healthcheck(d.redis)}
}

func logStartup(ctx context.Context, log *slog.Logger, c *notifystream.Client) {
	if !c.CanConnect() {
		log.WarnContext(ctx, "no credential found; notifications are disabled",
			logger.Component("notifyd"),
		)
	}
}
