// Package redis builds the shared Redis client.
package redis

import (
	"context"
	"log/slog"

	"bookmarks_backend/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis using the injected configuration and checks
// the connection with a ping. Callers treat Redis as optional and run
// without caching when this fails.
func NewClient(cfg config.Config) (*redis.Client, error) {
	addr := cfg.RedisAddr()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
