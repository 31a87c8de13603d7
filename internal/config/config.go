// Package config loads the service configuration from environment variables,
// optionally seeded from a .env file, and the rule tables from POLICY_FILE.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/logger"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Estimator EstimatorConfig
	Booking   BookingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// EstimatorConfig holds settings for the external price estimator.
type EstimatorConfig struct {
	URL string `env:"ESTIMATOR_URL" envDefault:"http://localhost:5000/predict"`

	// Timeout bounds a single estimator call. Zero means no client-side timeout.
	Timeout time.Duration `env:"ESTIMATOR_TIMEOUT" envDefault:"0s"`
}

// BookingConfig holds the booking window and rule table settings.
type BookingConfig struct {
	Timezone     string `env:"BOOKING_TIMEZONE" envDefault:"Asia/Kolkata"`
	WindowMonths int    `env:"BOOKING_WINDOW_MONTHS" envDefault:"6"`

	// PolicyFile optionally points at a YAML file overriding the seeded rule tables.
	PolicyFile string `env:"POLICY_FILE"`
}

// CacheConfig holds the estimate cache settings.
type CacheConfig struct {
	Enabled       bool          `env:"CACHE_ENABLED" envDefault:"false"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	// ConnectAttempts bounds startup pings while Redis comes up.
	ConnectAttempts int `env:"REDIS_CONNECT_ATTEMPTS" envDefault:"3"`
}

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	// RequestsPerSecond of zero disables rate limiting.
	RequestsPerSecond float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	Burst             int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	IdleTimeout       time.Duration `env:"RATE_LIMIT_IDLE_TIMEOUT" envDefault:"3m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"`
	Caller      bool   `env:"LOG_CALLER" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"flight-price-estimator"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
	appEnvs    = []string{"development", "staging", "production"}
)

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks each section in declaration order and reports the first problem.
func (c *Config) validate() error {
	for _, check := range []func() error{
		c.Server.validate,
		c.Estimator.validate,
		c.Booking.validate,
		c.Cache.validate,
		c.RateLimit.validate,
		c.Logging.validate,
		c.App.validate,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (s ServerConfig) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 {
		return errors.New("SERVER_READ_TIMEOUT must be positive")
	}
	if s.WriteTimeout <= 0 {
		return errors.New("SERVER_WRITE_TIMEOUT must be positive")
	}
	return nil
}

func (e EstimatorConfig) validate() error {
	u, err := url.Parse(e.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("ESTIMATOR_URL must be an absolute http(s) URL, got %q", e.URL)
	}
	if e.Timeout < 0 {
		return errors.New("ESTIMATOR_TIMEOUT must not be negative")
	}
	return nil
}

func (b BookingConfig) validate() error {
	if _, err := timeutil.GetLocation(b.Timezone); err != nil {
		return fmt.Errorf("BOOKING_TIMEZONE: %w", err)
	}
	if b.WindowMonths < 1 || b.WindowMonths > 24 {
		return fmt.Errorf("BOOKING_WINDOW_MONTHS must be between 1 and 24, got %d", b.WindowMonths)
	}
	return nil
}

// validate is a no-op while the cache is disabled.
func (cc CacheConfig) validate() error {
	if !cc.Enabled {
		return nil
	}
	switch {
	case cc.RedisAddr == "":
		return errors.New("REDIS_ADDR is required when CACHE_ENABLED is true")
	case cc.RedisDB < 0:
		return errors.New("REDIS_DB must not be negative")
	case cc.TTL <= 0:
		return errors.New("CACHE_TTL must be positive")
	case cc.ConnectAttempts < 1:
		return errors.New("REDIS_CONNECT_ATTEMPTS must be at least 1")
	}
	return nil
}

func (r RateLimitConfig) validate() error {
	if r.RequestsPerSecond < 0 {
		return errors.New("RATE_LIMIT_RPS must not be negative")
	}
	if r.RequestsPerSecond > 0 && r.Burst < 1 {
		return errors.New("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}
	if r.RequestsPerSecond > 0 && r.IdleTimeout <= 0 {
		return errors.New("RATE_LIMIT_IDLE_TIMEOUT must be positive when rate limiting is enabled")
	}
	return nil
}

func (l LoggingConfig) validate() error {
	if !slices.Contains(logLevels, l.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", l.Level)
	}
	if !slices.Contains(logFormats, l.Format) {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", l.Format)
	}
	return nil
}

func (a AppConfig) validate() error {
	if !slices.Contains(appEnvs, a.Env) {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", a.Env)
	}
	return nil
}

// LoggerConfig converts the logging settings for logger.New.
// Development builds always log the caller.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:        c.Logging.Level,
		Format:       c.Logging.Format,
		EnableCaller: c.Logging.Caller || c.IsDevelopment(),
		ServiceName:  c.Logging.ServiceName,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
