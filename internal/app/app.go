package app

import (
	"context"
	"net/http"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/config"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/apperror"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/connection"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects optional infrastructure and registers every route on router.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		var err error
		rdb, err = connection.ConnectRedisWithRetry(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.MaxRetries, logger)
		if err != nil {
			return err
		}
	} else {
		logger.Info("REDIS_ADDR not set, idempotent submits disabled")
	}

	router.GET("/healthz", healthHandler(rdb, logger))
	router.NoRoute(func(c *gin.Context) {
		response.FromError(c, apperror.ErrNotFound)
	})

	registerModules(router, rdb, cfg, logger)
	return nil
}

// healthHandler reports 503 when the configured Redis stops answering.
func healthHandler(rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok", "redis": "disabled"}
		if rdb != nil {
			if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
				logger.Warn("health check: redis ping failed", zap.Error(err))
				response.FromError(c, apperror.ErrServiceUnavailable)
				return
			}
			status["redis"] = "ok"
		}
		response.Success(c, http.StatusOK, status, nil)
	}
}
