package config

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis builds a redis client from REDIS_URL or REDIS_ADDR. Returns
// nil when neither is set: redis is optional and callers fall back to the
// in-memory snapshot repository.
func ConnectRedis() (*redis.Client, error) {
	if raw := strings.TrimSpace(envOrDefault("REDIS_URL", "")); raw != "" {
		opts, err := redis.ParseURL(raw)
		if err != nil {
			return nil, err
		}
		return pingRedis(redis.NewClient(opts))
	}

	addr := strings.TrimSpace(envOrDefault("REDIS_ADDR", ""))
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: envOrDefault("REDIS_PASSWORD", ""),
	})
	return pingRedis(client)
}

func pingRedis(client *redis.Client) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
