// cmd/worker/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"bookshare-backend/internal/config"
	"bookshare-backend/pkg/container"
	"bookshare-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] Failed to load configuration")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	// Initialize container
	c, err := container.NewContainer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("[Container] Failed to initialize")
	}
	defer c.Cleanup()

	// Initialize handlers
	handlers := initializeHandlers(c)

	// Setup Asynq server
	srv := setupAsynqServer(cfg, handlers)

	// Health/metrics endpoint
	health := startHealthServer(cfg.Worker.HealthPort, c.Cache.Ping)

	// Wait for shutdown signal
	waitForShutdown(srv, health)
}

func waitForShutdown(srv *asynqServer, health *healthServer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[Shutdown] Gracefully stopping...")
	health.Shutdown()
	srv.Shutdown()
	log.Info().Msg("[Shutdown] Stopped")
}
