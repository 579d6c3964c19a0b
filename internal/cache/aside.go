package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: on a hit, dest is populated from
// Redis; on a miss, fetch runs and its result (already written into dest by
// the caller's closure) is stored under key with the given TTL. With no Redis
// client the fetch always runs, so callers never need a cache-enabled branch.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
			return nil
		}
		// Corrupt entry: drop it and fall through to the fetch.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		// Redis degraded; serve from the source of truth.
		return fetch()
	}

	if err := fetch(); err != nil {
		return err
	}

	if encoded, marshalErr := json.Marshal(dest); marshalErr == nil {
		client.Set(ctx, key, encoded, ttl)
	}
	return nil
}
