// Package cache wraps the optional redis instance used to memoize
// catalog lookups. The app runs fine without it.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Connect builds a redis client and pings it. A nil client is returned
// when redis is unreachable or unconfigured; callers treat nil as
// "no cache".
func Connect(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, continuing without cache")
		return nil
	}
	return client
}

// GetJSON loads key into dest. Returns false on a miss, an unmarshal
// problem, or any redis error; the caller falls back to the source.
func GetJSON(ctx context.Context, client *redis.Client, key string, dest any) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// SetJSON stores v under key with a TTL, best effort.
func SetJSON(ctx context.Context, client *redis.Client, key string, v any, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache set failed")
	}
}
