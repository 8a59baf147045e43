package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// New returns a RedisLocker when cfg.Addr is set and a MemoryLocker
// otherwise. The returned close function releases the Redis connection.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (Locker, func() error, error) {
	if cfg.Addr == "" {
		logger.Info("Redis not configured, using in-process pass lock")
		return NewMemoryLocker(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	return NewRedisLocker(client, cfg.KeyPrefix, ttl, logger), client.Close, nil
}
