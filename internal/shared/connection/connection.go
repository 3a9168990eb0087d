package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisRetryDelay = 2 * time.Second

// ConnectRedisWithRetry pings until Redis answers, making at least one attempt.
func ConnectRedisWithRetry(ctx context.Context, opts *redis.Options, maxRetries int, logger *zap.Logger) (*redis.Client, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}
	if logger == nil {
		logger = zap.L()
	}
	rdb := redis.NewClient(opts)

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		if lastErr = rdb.Ping(ctx).Err(); lastErr == nil {
			logger.Info("connected to redis", zap.String("addr", opts.Addr))
			return rdb, nil
		}

		logger.Warn("redis ping failed",
			zap.Int("attempt", i),
			zap.Int("max_retries", maxRetries),
			zap.Error(lastErr),
		)
		if i == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(redisRetryDelay):
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("redis connection failed after %d attempts: %w", maxRetries, lastErr)
}
