package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookshare-backend/internal/config"
	infraCache "bookshare-backend/internal/infrastructure/cache"
	"bookshare-backend/internal/infrastructure/catalog"
	"bookshare-backend/internal/infrastructure/database"
	"bookshare-backend/internal/infrastructure/queue"

	bookHandler "bookshare-backend/internal/domains/book/handler"
	bookJob "bookshare-backend/internal/domains/book/job"
	recHandler "bookshare-backend/internal/domains/recommendation/handler"
	recService "bookshare-backend/internal/domains/recommendation/service"
	reviewHandler "bookshare-backend/internal/domains/review/handler"
	reviewRepo "bookshare-backend/internal/domains/review/repository"
	reviewService "bookshare-backend/internal/domains/review/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Dùng chung cho cmd/api và cmd/worker.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       *infraCache.RedisCache
	QueueClient *queue.Client
	Catalog     catalog.Source // cached, rate-limited catalog client

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	ReviewRepo reviewRepo.ReviewRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	ReviewService         reviewService.ServiceInterface
	RecommendationService recService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	ReviewHandler         *reviewHandler.ReviewHandler
	RecommendationHandler *recHandler.RecommendationHandler
	BookHandler           *bookHandler.Handler

	// ========================================
	// JOB HANDLERS (worker)
	// ========================================
	WarmBookHandler *bookJob.WarmBookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Infrastructure (DB, Redis, queue, catalog) - phụ thuộc Config
// 2. Repositories - phụ thuộc Infrastructure
// 3. Services - phụ thuộc Repositories
// 4. Handlers - phụ thuộc Services
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI container")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	db := database.NewPostgresDB(cfg.Database.DBConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 2: REDIS CACHE
	// ========================================
	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		// Redis failure không critical: catalog cache fall through về API
		log.Warn().Err(err).Msg("Redis connection failed (non-critical)")
	} else {
		log.Info().Str("addr", cfg.Redis.Host).Msg("Redis connected")
	}

	// ========================================
	// STEP 3: QUEUE + CATALOG
	// ========================================
	c.QueueClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.Catalog = catalog.NewCachedClient(catalog.NewClient(cfg.Catalog), c.Cache, cfg.Catalog.CacheTTL)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.QueueClient)

	// Review service chính là review source của pipeline
	rec := c.Config.Recommend
	c.RecommendationService = recService.NewRecommendationService(
		c.ReviewService,
		recService.NewResolver(c.Catalog, rec.Concurrency),
		recService.NewFetcher(c.Catalog, rec.Concurrency, rec.AuthorCleanup),
	)
}

func (c *Container) initHandlers() {
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.RecommendationHandler = recHandler.NewRecommendationHandler(c.RecommendationService)
	c.BookHandler = bookHandler.NewHandler(c.Catalog)
	c.WarmBookHandler = bookJob.NewWarmBookHandler(c.Catalog)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close queue client")
		}
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("Container cleanup completed")
}
