// Package mock provides test doubles for the price estimation service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
)

// Estimator is a configurable mock implementation of domain.PriceEstimator.
// It supports configurable delays, errors, and a hold gate for testing
// in-flight and timeout behavior.
type Estimator struct {
	prediction float64
	err        error
	delay      time.Duration
	hold       chan struct{}
	started    chan struct{}

	mu        sync.Mutex
	calls     []domain.Itinerary
	startOnce sync.Once
}

// NewEstimator creates a new mock estimator that predicts the given price.
// The estimator is configured using the builder pattern methods.
func NewEstimator(prediction float64) *Estimator {
	return &Estimator{
		prediction: prediction,
		started:    make(chan struct{}),
	}
}

// WithError configures the estimator to return the given error.
func (e *Estimator) WithError(err error) *Estimator {
	e.err = err
	return e
}

// WithDelay configures the estimator to wait the given duration before responding.
func (e *Estimator) WithDelay(d time.Duration) *Estimator {
	e.delay = d
	return e
}

// WithHold makes every call block until Release is called or the context ends.
func (e *Estimator) WithHold() *Estimator {
	e.hold = make(chan struct{})
	return e
}

// Release unblocks calls held by WithHold.
func (e *Estimator) Release() {
	if e.hold != nil {
		close(e.hold)
	}
}

// Started is closed once the first call has begun.
func (e *Estimator) Started() <-chan struct{} {
	return e.started
}

// Estimate implements domain.PriceEstimator.Estimate.
// It respects context cancellation, applies the configured delay or hold,
// and returns the configured prediction or error.
func (e *Estimator) Estimate(ctx context.Context, itinerary domain.Itinerary) (domain.Estimate, error) {
	e.mu.Lock()
	e.calls = append(e.calls, itinerary)
	e.mu.Unlock()
	e.startOnce.Do(func() { close(e.started) })

	if e.hold != nil {
		select {
		case <-ctx.Done():
			return domain.Estimate{}, ctx.Err()
		case <-e.hold:
		}
	}

	if e.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.Estimate{}, ctx.Err()
		case <-time.After(e.delay):
		}
	}

	if e.err != nil {
		return domain.Estimate{}, e.err
	}

	return domain.Estimate{Prediction: e.prediction}, nil
}

// CallCount returns the number of times Estimate was called.
func (e *Estimator) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

// LastItinerary returns the itinerary of the most recent call.
func (e *Estimator) LastItinerary() (domain.Itinerary, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.calls) == 0 {
		return domain.Itinerary{}, false
	}
	return e.calls[len(e.calls)-1], true
}

// Reset clears recorded calls.
func (e *Estimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = nil
}

// Ensure Estimator implements domain.PriceEstimator at compile time.
var _ domain.PriceEstimator = (*Estimator)(nil)

// MemoryCache is an in-process domain.EstimateCache that records hits.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]domain.Estimate
	hits    int
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]domain.Estimate)}
}

// Get implements domain.EstimateCache.Get.
func (c *MemoryCache) Get(_ context.Context, itinerary domain.Itinerary) (domain.Estimate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	est, ok := c.entries[itinerary.Fingerprint()]
	if ok {
		c.hits++
	}
	return est, ok
}

// Set implements domain.EstimateCache.Set.
func (c *MemoryCache) Set(_ context.Context, itinerary domain.Itinerary, estimate domain.Estimate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[itinerary.Fingerprint()] = estimate
	return nil
}

// Hits returns the number of cache hits served.
func (c *MemoryCache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

var _ domain.EstimateCache = (*MemoryCache)(nil)

// SampleItinerary returns a complete plausible itinerary departing on date.
// Delhi to Mumbai needs two hours; Morning to Afternoon spans four.
func SampleItinerary(date domain.Date) domain.Itinerary {
	return domain.Itinerary{
		Airline:         domain.AirlineVistara,
		SourceCity:      domain.CityDelhi,
		DestinationCity: domain.CityMumbai,
		DepartureTime:   domain.SlotMorning,
		ArrivalTime:     domain.SlotAfternoon,
		Stops:           domain.StopsZero,
		Class:           domain.ClassEconomy,
		DepartureDate:   date,
	}
}
