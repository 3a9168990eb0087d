package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/app"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/bootstrap"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/config"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := bootstrap.NewLogger(cfg.Logger.Level, cfg.App.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.Default()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// build dependency + routes
	if err := app.BuildApp(ctx, r, cfg, logger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	err = bootstrap.RunHTTPServer(
		ctx,
		r,
		bootstrap.ServerConfig{
			Port:            cfg.HTTP.Port,
			ReadTimeout:     cfg.HTTP.ReadTimeout,
			WriteTimeout:    cfg.HTTP.WriteTimeout,
			IdleTimeout:     cfg.HTTP.IdleTimeout,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		},
		bootstrap.NewStdoutAuditLogger(logger),
		logger,
	)
	if err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
