package user

import (
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RouteConfig struct {
	SubmitRPS   rate.Limit
	SubmitBurst int
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	cfg RouteConfig,
	logger *zap.Logger,
) {
	if cfg.SubmitBurst < 1 {
		cfg.SubmitBurst = 1
	}

	users := r.Group("/users")
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("", handler.GetAll)
		users.GET("/form", handler.GetForm)
		users.POST("/form/validate",
			middleware.RateLimitByIP(5, 20),
			handler.ValidateForm,
		)
		users.GET("/:id", handler.GetById)

		users.POST("",
			middleware.RateLimitByIP(cfg.SubmitRPS, cfg.SubmitBurst),
			middleware.Idempotency(rdb),
			handler.Create,
		)
	}
}
