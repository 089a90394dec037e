package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Catalog   CatalogConfig
	Recommend RecommendConfig
	Worker    WorkerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int
	MinConns       int
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// =====================================================
// CATALOG CONFIGURATION
// =====================================================

// CatalogConfig configures the external bibliographic API (data.bn.org.pl)
type CatalogConfig struct {
	BaseURL    string
	Timeout    time.Duration // per-call bound, timeout == failed call
	RPS        float64
	Burst      int
	FormOfWork string // "books" facet of the catalog
	UserAgent  string
	CacheTTL   time.Duration // 0 disables the response cache
}

type RecommendConfig struct {
	Concurrency   int  // bound of each fan-out task group
	AuthorCleanup bool // apply NormalizeAuthor before author queries
}

// WorkerConfig configures cmd/worker (asynq server)
type WorkerConfig struct {
	Concurrency int
	HealthPort  string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "BookShare API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnv("DB_USER", "bookshare"),
			Password:       getEnv("DB_PASSWORD", ""),
			Database:       getEnv("DB_NAME", "bookshare"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       getEnvInt("DB_MAX_CONNS", 25),
			MinConns:       getEnvInt("DB_MIN_CONNS", 5),
			MaxRetries:     getEnvInt("DB_MAX_RETRIES", 5),
			RetryDelay:     getEnvDuration("DB_RETRY_DELAY", time.Second),
			ConnectTimeout: getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			BaseURL:    strings.TrimRight(getEnv("CATALOG_BASE_URL", "https://data.bn.org.pl/api"), "/"),
			Timeout:    getEnvDuration("CATALOG_TIMEOUT", 8*time.Second),
			RPS:        getEnvFloat("CATALOG_RPS", 10),
			Burst:      getEnvInt("CATALOG_BURST", 5),
			FormOfWork: getEnv("CATALOG_FORM_OF_WORK", "Książki"),
			UserAgent:  getEnv("CATALOG_USER_AGENT", "BookShare/1.0"),
			CacheTTL:   getEnvDuration("CATALOG_CACHE_TTL", time.Hour),
		},
		Recommend: RecommendConfig{
			Concurrency:   getEnvInt("RECOMMEND_CONCURRENCY", 8),
			AuthorCleanup: getEnvBool("RECOMMEND_AUTHOR_CLEANUP", false),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 10),
			HealthPort:  getEnv("WORKER_HEALTH_PORT", "9999"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Port, validation.Required, is.Port),
		validation.Field(&c.App.Environment, validation.In("development", "staging", "production")),
		validation.Field(&c.App.LogLevel, validation.In("trace", "debug", "info", "warn", "error")),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := validation.ValidateStruct(&c.Catalog,
		validation.Field(&c.Catalog.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Catalog.Timeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.Catalog.RPS, validation.Required, validation.Min(0.1)),
		validation.Field(&c.Catalog.Burst, validation.Required, validation.Min(1)),
		validation.Field(&c.Catalog.FormOfWork, validation.Required),
		validation.Field(&c.Catalog.CacheTTL, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if err := validation.ValidateStruct(&c.Recommend,
		validation.Field(&c.Recommend.Concurrency, validation.Required, validation.Min(1), validation.Max(64)),
	); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if err := validation.ValidateStruct(&c.Worker,
		validation.Field(&c.Worker.Concurrency, validation.Required, validation.Min(1)),
		validation.Field(&c.Worker.HealthPort, validation.Required, is.Port),
	); err != nil {
		return fmt.Errorf("worker: %w", err)
	}

	// Production environment phải có DB password
	if c.App.Environment == "production" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}

	return nil
}

// IsDevelopment reports whether the app runs with development defaults
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
