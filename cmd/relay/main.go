package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"grassroots-tasks/config"
	"grassroots-tasks/internal/relay"
	"grassroots-tasks/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Grassroots Tasks relay...")
	logger.Infof(ctx, "Upstream: %s", cfg.Relay.UpstreamURL)
	logger.Infof(ctx, "Allowed origins: %v", cfg.Relay.AllowedOrigins)

	// 3. Relay handler
	gin.SetMode(cfg.Relay.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	h := relay.New(logger, relay.Config{
		UpstreamURL:     cfg.Relay.UpstreamURL,
		AllowedOrigins:  cfg.Relay.AllowedOrigins,
		RateLimitPerMin: cfg.Relay.RateLimitPerMin,
	})
	relay.RegisterRoutes(engine, h)

	// 4. Run
	if err := engine.Run(fmt.Sprintf(":%d", cfg.Relay.Port)); err != nil {
		logger.Error(ctx, "Failed to run relay: ", err)
		return
	}

	logger.Info(ctx, "Relay stopped gracefully")
}
