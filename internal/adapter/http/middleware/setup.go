package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Config groups the configurable middleware settings.
type Config struct {
	Logging   RequestLoggerConfig
	Recovery  RecoveryConfig
	RateLimit RateLimitConfig
}

// DefaultConfig returns the default middleware configuration.
func DefaultConfig() Config {
	return Config{
		Logging:   DefaultRequestLoggerConfig(),
		Recovery:  DefaultRecoveryConfig(),
		RateLimit: DefaultRateLimitConfig(),
	}
}

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line can carry it
//  2. RequestLogger, which also logs throttled requests
//  3. Recover, turning handler panics into 500
//  4. RateLimit, rejecting clients over budget with 429
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultConfig())
}

// SetupWithConfig registers middleware with custom configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, config Config) {
	e.Use(Chain(log, config)...)
}

// Chain returns the middleware in Setup order, for use on route groups.
func Chain(log zerolog.Logger, config Config) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLoggerWithConfig(log, config.Logging),
		RecoverWithConfig(log, config.Recovery),
		RateLimit(config.RateLimit),
	}
}
