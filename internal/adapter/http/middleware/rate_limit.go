package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/flight-price/flight-price-estimation-service/internal/adapter/http/response"
)

// RateLimitConfig configures per-client request throttling.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate allowed per client IP. Zero disables limiting.
	RequestsPerSecond float64

	// BurstSize is the number of requests a client may make at once.
	BurstSize int

	// IdleTimeout is how long a client's bucket is kept after its last request.
	// Zero means DefaultIdleTimeout.
	IdleTimeout time.Duration
}

// DefaultIdleTimeout is the idle period after which a client's bucket is dropped.
const DefaultIdleTimeout = 3 * time.Minute

// DefaultRateLimitConfig returns the default rate limit configuration.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		IdleTimeout:       DefaultIdleTimeout,
	}
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter hands out one token bucket per client key. Buckets idle for
// longer than the idle timeout are swept on a later lookup, so the map only
// holds recently active clients.
type clientLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*clientBucket
	config    RateLimitConfig
	lastSweep time.Time
	now       func() time.Time
}

func newClientLimiter(config RateLimitConfig) *clientLimiter {
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultIdleTimeout
	}
	return &clientLimiter{
		buckets:   make(map[string]*clientBucket),
		config:    config,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *clientLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.config.IdleTimeout {
		l.sweep(now)
	}

	b, exists := l.buckets[key]
	if !exists {
		b = &clientBucket{
			limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.BurstSize),
		}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// sweep drops buckets not seen within the idle timeout. Callers hold l.mu.
func (l *clientLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.config.IdleTimeout {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// RateLimit returns middleware that throttles requests per client IP.
// Requests over the limit receive 429 Too Many Requests without reaching the handler.
func RateLimit(config RateLimitConfig) echo.MiddlewareFunc {
	if config.RequestsPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	if config.BurstSize <= 0 {
		config.BurstSize = 1
	}

	limiter := newClientLimiter(config)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.get(c.RealIP()).Allow() {
				return response.TooManyRequests(c)
			}
			return next(c)
		}
	}
}
