// Package cache stores price estimates so repeated itineraries skip the estimator.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/retry"
)

// keyPrefix namespaces estimate keys in a shared Redis.
const keyPrefix = "estimate:"

// QuoteCache is a domain.EstimateCache that can be closed.
type QuoteCache interface {
	domain.EstimateCache
	Close() error
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration

	// Connect controls how the startup ping is retried. The zero value pings once.
	Connect retry.Config

	// Today returns the current booking day. A price depends on the days left
	// before departure, so estimates are only reused within the same day.
	// Nil means the UTC date.
	Today func() domain.Date
}

// RedisQuoteCache keeps estimates in Redis with a fixed TTL.
type RedisQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
	today  func() domain.Date
}

// NewRedisQuoteCache connects to Redis and verifies the connection with a ping,
// retrying per cfg.Connect. Errors returned by the server itself are not retried.
func NewRedisQuoteCache(ctx context.Context, cfg RedisConfig) (*RedisQuoteCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := retry.Do(ctx, cfg.Connect, func(ctx context.Context) error {
		err := client.Ping(ctx).Err()
		var serverErr redis.Error
		if errors.As(err, &serverErr) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return NewRedisQuoteCacheWithClient(client, cfg.TTL, cfg.Today), nil
}

// NewRedisQuoteCacheWithClient wraps an existing client. A nil today means the UTC date.
func NewRedisQuoteCacheWithClient(client *redis.Client, ttl time.Duration, today func() domain.Date) *RedisQuoteCache {
	if today == nil {
		today = utcToday
	}
	return &RedisQuoteCache{
		client: client,
		ttl:    ttl,
		today:  today,
	}
}

func utcToday() domain.Date {
	return domain.DateOf(time.Now().UTC())
}

// Get returns the cached estimate. Any Redis or decoding failure counts as a miss.
func (c *RedisQuoteCache) Get(ctx context.Context, itinerary domain.Itinerary) (domain.Estimate, bool) {
	data, err := c.client.Get(ctx, Key(itinerary, c.today())).Bytes()
	if err != nil {
		return domain.Estimate{}, false
	}

	var est domain.Estimate
	if err := json.Unmarshal(data, &est); err != nil {
		return domain.Estimate{}, false
	}

	return est, true
}

func (c *RedisQuoteCache) Set(ctx context.Context, itinerary domain.Itinerary, estimate domain.Estimate) error {
	data, err := json.Marshal(estimate)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, Key(itinerary, c.today()), data, c.ttl).Err()
}

func (c *RedisQuoteCache) Close() error {
	return c.client.Close()
}

// NoOpQuoteCache never stores anything.
type NoOpQuoteCache struct{}

func NewNoOpQuoteCache() *NoOpQuoteCache {
	return &NoOpQuoteCache{}
}

func (c *NoOpQuoteCache) Get(ctx context.Context, itinerary domain.Itinerary) (domain.Estimate, bool) {
	return domain.Estimate{}, false
}

func (c *NoOpQuoteCache) Set(ctx context.Context, itinerary domain.Itinerary, estimate domain.Estimate) error {
	return nil
}

func (c *NoOpQuoteCache) Close() error {
	return nil
}

// Key derives the Redis key for an itinerary quoted on day.
func Key(itinerary domain.Itinerary, day domain.Date) string {
	hash := sha256.Sum256([]byte(day.String() + "|" + itinerary.Fingerprint()))
	return keyPrefix + hex.EncodeToString(hash[:])
}
