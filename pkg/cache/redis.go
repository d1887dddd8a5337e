package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to redis when addr is set. It returns nil when
// addr is empty or the server is unreachable; callers must treat a nil
// client as "caching disabled" and proceed without it.
func NewRedisClient(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		slog.Info("REDIS_ADDR not set, rate snapshot caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(ctx).Result(); err != nil {
		slog.Error("Failed to connect to redis, caching disabled", slog.String("error", err.Error()))
		return nil
	}

	slog.Info("Connected to redis", slog.String("addr", addr))
	return client
}
