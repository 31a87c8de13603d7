// Package main is the entry point for the flight price estimation service.
//
//	@title						Flight Price Estimation API
//	@version					1.0.0
//	@description				Validates proposed flight itineraries for plausibility and forwards plausible ones to a price estimator.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-price/flight-price-estimation-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-price/flight-price-estimation-service/docs"

	// Application layers
	"github.com/flight-price/flight-price-estimation-service/internal/adapter/estimator"
	flighthttp "github.com/flight-price/flight-price-estimation-service/internal/adapter/http"
	"github.com/flight-price/flight-price-estimation-service/internal/adapter/http/middleware"
	"github.com/flight-price/flight-price-estimation-service/internal/config"
	"github.com/flight-price/flight-price-estimation-service/internal/domain"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/cache"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/logger"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/retry"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/timeutil"
	"github.com/flight-price/flight-price-estimation-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("estimator_url", cfg.Estimator.URL).
		Msg("Configuration loaded")

	// Build the application graph
	handler, quotes := setupApplication(cfg, log)
	defer func() {
		if err := quotes.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing estimate cache")
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	mwCfg := middleware.DefaultConfig()
	mwCfg.RateLimit = middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.Burst,
		IdleTimeout:       cfg.RateLimit.IdleTimeout,
	}
	middleware.SetupWithConfig(e, log.Logger, mwCfg)

	// Setup routes
	flighthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupLogger builds the service logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(cfg.LoggerConfig())
	logger.SetGlobal(log)
	return log
}

// setupApplication wires rule tables, the validator, the estimator client and the
// estimate cache into the HTTP handler. Policy or timezone errors are fatal.
func setupApplication(cfg *config.Config, log *logger.Logger) (*flighthttp.ItineraryHandler, cache.QuoteCache) {
	policies, err := config.LoadPolicies(cfg.Booking.PolicyFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Booking.PolicyFile).Msg("Failed to load rule tables")
	}

	loc := timeutil.MustGetLocation(cfg.Booking.Timezone)
	window := domain.NewDateWindowPolicy(timeutil.NewRealClock(), loc, cfg.Booking.WindowMonths)
	validator := usecase.NewItineraryValidator(policies, window)

	log.Info().
		Int("route_durations", policies.Durations.Len()).
		Int("same_slot_routes", policies.SameSlot.Len()).
		Str("timezone", cfg.Booking.Timezone).
		Int("window_months", cfg.Booking.WindowMonths).
		Msg("Validator configured")

	client := estimator.NewClient(cfg.Estimator.URL, cfg.Estimator.Timeout)
	quotes := setupCache(cfg, window.Today, log)

	estimates := usecase.NewPriceEstimateUseCase(validator, client, quotes, log)
	return flighthttp.NewItineraryHandler(validator, estimates), quotes
}

// setupCache connects to Redis when caching is enabled. An unreachable Redis
// degrades to no caching instead of failing startup. Keys carry today's booking
// day so a quote is never reused after local midnight.
func setupCache(cfg *config.Config, today func() domain.Date, log *logger.Logger) cache.QuoteCache {
	if !cfg.Cache.Enabled {
		return cache.NewNoOpQuoteCache()
	}

	connect := retry.ConnectConfig.
		WithMaxAttempts(cfg.Cache.ConnectAttempts).
		WithOnRetry(func(attempt int, err error, wait time.Duration) {
			log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Redis not reachable yet, retrying")
		})

	quotes, err := cache.NewRedisQuoteCache(context.Background(), cache.RedisConfig{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
		TTL:      cfg.Cache.TTL,
		Connect:  connect,
		Today:    today,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Estimate cache unavailable, continuing without it")
		return cache.NewNoOpQuoteCache()
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", cfg.Cache.TTL).Msg("Estimate cache connected")
	return quotes
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
