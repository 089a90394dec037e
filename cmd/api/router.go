package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookshare-backend/internal/shared/middleware"
	"bookshare-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Metrics(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c.Config.App.Version, c.DB.HealthCheck, c.Cache.Ping))

		setupRecommendationRoutes(api, c)
		setupBookRoutes(api, c)
		setupReviewRoutes(api, c)
	}

	return router
}

// ========================================
// RECOMMENDATION ROUTES
// ========================================
func setupRecommendationRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/recommendations", c.RecommendationHandler.GetRecommendations)
}

// ========================================
// BOOK ROUTES (catalog passthrough)
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/books/:id", c.BookHandler.GetBookDetail)
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(api *gin.RouterGroup, c *container.Container) {
	reviews := api.Group("/reviews")
	{
		reviews.POST("", c.ReviewHandler.CreateReview)
		reviews.GET("", c.ReviewHandler.ListReviews)
		reviews.DELETE("/:id", c.ReviewHandler.DeleteReview)
	}
}

// ========================================
// HEALTH CHECK
// ========================================

type checkFunc func(ctx context.Context) error

// healthCheckHandler: Postgres down → 503, Redis down → degraded nhưng vẫn 200
func healthCheckHandler(version string, db, redis checkFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"

		dbStatus := "ok"
		if err := db(ctx); err != nil {
			dbStatus = "down"
			overall = "unavailable"
			status = http.StatusServiceUnavailable
		}

		redisStatus := "ok"
		if err := redis(ctx); err != nil {
			redisStatus = "down"
			if status == http.StatusOK {
				overall = "degraded"
			}
		}

		c.JSON(status, gin.H{
			"status":    overall,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
			"services": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	}
}
