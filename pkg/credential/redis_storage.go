package credential

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisGetter is the part of a go-redis client RedisStorage uses.
// *redis.Client and redis.UniversalClient satisfy it.
type RedisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStorage reads keys from Redis, optionally under a key prefix.
type RedisStorage struct {
	client RedisGetter
	prefix string
}

// NewRedisStorage creates a Redis-backed storage.
func NewRedisStorage(client RedisGetter, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}
