package app

import (
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/config"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(
	router *gin.Engine,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) {
	// --- Repositories ---
	userRepo := user.NewRepository()

	// --- Services ---
	userService := user.NewService(userRepo, cfg.Auth.BcryptCost, logger)

	// --- Handlers ---
	userHandler := user.NewHandler(userService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		user.RegisterRoutes(api, userHandler, rdb, user.RouteConfig{
			SubmitRPS:   rate.Limit(cfg.RateLimit.SubmitRPS),
			SubmitBurst: cfg.RateLimit.SubmitBurst,
		}, logger)
	}
}
