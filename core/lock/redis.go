package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker shared by every process using the same Redis.
type RedisLocker struct {
	client    redis.UniversalClient
	prefix    string
	ttl       time.Duration
	retryWait time.Duration
	logger    *zap.Logger
}

// NewRedisLocker creates a Redis-backed locker. ttl bounds how long a
// crashed holder can block others.
func NewRedisLocker(client redis.UniversalClient, prefix string, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisLocker{
		client:    client,
		prefix:    prefix,
		ttl:       ttl,
		retryWait: 100 * time.Millisecond,
		logger:    logger,
	}
}

// Acquire polls until key is free or ctx is done.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	name := l.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.retryWait)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, name, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, errors.Join(ErrNotAcquired, ctxErr)
			}
			return nil, fmt.Errorf("failed to acquire lock %s: %w", name, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotAcquired, ctx.Err())
		case <-ticker.C:
		}
	}

	return func() {
		// The caller's context may already be cancelled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{name}, token).Err(); err != nil {
			l.logger.Warn("Failed to release lock", zap.String("key", name), zap.Error(err))
		}
	}, nil
}
