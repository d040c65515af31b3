package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/SscSPs/product_catalog/internal/adapters/cache"
	"github.com/SscSPs/product_catalog/internal/adapters/exchangeapi"
	"github.com/SscSPs/product_catalog/internal/core/ports/external"
	portsrepo "github.com/SscSPs/product_catalog/internal/core/ports/repositories"
	"github.com/SscSPs/product_catalog/internal/core/services"
	"github.com/SscSPs/product_catalog/internal/handlers"
	"github.com/SscSPs/product_catalog/internal/middleware"
	"github.com/SscSPs/product_catalog/internal/platform/config"
	"github.com/SscSPs/product_catalog/internal/repositories/database/pgsql"
	"github.com/SscSPs/product_catalog/internal/repositories/memory"
	"github.com/SscSPs/product_catalog/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	migrationsPath = "file://migrations"
	ratesKeyPrefix = "catalog:"
)

// @title Product Catalog API
// @version 1.0
// @description Product catalog with CSV bulk import and multi-currency prices.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Prices and conversions go out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeRepos := setupRepositories(cfg, logger)
	defer closeRepos()

	rateCache, closeCache := setupRateCache(cfg, logger)
	defer closeCache()

	fetcher := exchangeapi.NewFetcher(exchangeapi.Config{
		BaseURLs:            cfg.ExchangeAPIURLs,
		Suffixes:            cfg.ExchangeAPISuffixes,
		DefaultCurrency:     cfg.DefaultCurrency,
		SupportedCurrencies: cfg.SupportedCurrencies,
		Timeout:             cfg.ExchangeAPITimeout,
	}, &http.Client{})

	serviceContainer := services.NewServiceContainer(cfg, repos, fetcher, rateCache)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories connects to Postgres and migrates it, or falls back to the in-memory store
// when PGSQL_URL is not set.
func setupRepositories(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func()) {
	if cfg.DatabaseURL == "" {
		logger.Warn("No database configured, products are kept in memory only")
		return memory.NewRepositoryProvider(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, migrationsPath, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		dbPool.Close()
		os.Exit(1)
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }
}

// setupRateCache shares the conversion table through Redis when REDIS_URL is set,
// otherwise keeps it in process.
func setupRateCache(cfg *config.Config, logger *slog.Logger) (external.RateCache, func()) {
	if cfg.RedisURL == "" {
		return cache.NewMemoryCache(nil), func() {}
	}

	redisCache, err := cache.NewRedisCache(cfg.RedisURL, ratesKeyPrefix)
	if err != nil {
		logger.Error("Failed to configure Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, using in-process rate cache", slog.String("error", err.Error()))
		_ = redisCache.Close()
		return cache.NewMemoryCache(nil), func() {}
	}

	logger.Info("Rate cache backed by Redis")
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Error("Error closing Redis client", slog.String("error", err.Error()))
		}
	}
}
