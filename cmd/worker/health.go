package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type healthServer struct {
	srv *http.Server
}

// newHealthRouter: /health (liveness), /ready (Redis reachable), /metrics
func newHealthRouter(ping func(ctx context.Context) error) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "bookshare-worker"})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "NOT_READY", "error": "redis unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "READY"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// startHealthServer starts the probe endpoint in the background
func startHealthServer(port string, ping func(ctx context.Context) error) *healthServer {
	hs := &healthServer{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           newHealthRouter(ping),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	go func() {
		log.Info().Str("port", port).Msg("[Health] Starting health check server")
		if err := hs.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("[Health] Failed to start")
		}
	}()

	return hs
}

func (h *healthServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("[Health] Forced shutdown")
	}
}
