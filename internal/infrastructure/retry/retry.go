// Package retry retries connections to backing services with exponential backoff.
// It is used at startup only; estimator calls are single-shot.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// Config describes a backoff schedule.
type Config struct {
	// MaxAttempts counts the first try. Zero or less means a single try.
	MaxAttempts int

	InitialDelay time.Duration
	MaxDelay     time.Duration // zero means uncapped
	Multiplier   float64

	// JitterFactor adds up to this fraction of the delay at random, 0.1 being 10%.
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt. Nil retries everything.
	RetryIf func(error) bool

	// OnRetry runs before each wait with the attempt that just failed.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// ConnectConfig suits dialing a backing service such as Redis while the
// service is starting. Server-side rejections are not retried.
var ConnectConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
	RetryIf:      SkipPermanent,
}

// WithMaxAttempts returns a copy of c allowing n attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithOnRetry returns a copy of c reporting failed attempts to fn.
func (c Config) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Config {
	c.OnRetry = fn
	return c
}

// Backoff returns the un-jittered wait after the given failed attempt (1-based).
func (c Config) Backoff(attempt int) time.Duration {
	mult := c.Multiplier
	if mult <= 0 {
		mult = 1
	}
	d := float64(c.InitialDelay) * math.Pow(mult, float64(attempt-1))
	if c.MaxDelay > 0 && d > float64(c.MaxDelay) {
		return c.MaxDelay
	}
	return time.Duration(d)
}

func (c Config) wait(attempt int) time.Duration {
	d := c.Backoff(attempt)
	d += time.Duration(rand.Float64() * float64(d) * c.JitterFactor)
	if c.MaxDelay > 0 && d > c.MaxDelay {
		d = c.MaxDelay
	}
	return d
}

// Do calls fn until it succeeds, returns an error RetryIf rejects, or the
// attempts run out, and returns fn's last error. If ctx ends while waiting the
// context error is returned instead.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	attempts := max(cfg.MaxAttempts, 1)

	var err error
	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		err = fn(ctx)
		if err == nil {
			return nil
		}
		if attempt == attempts || (cfg.RetryIf != nil && !cfg.RetryIf(err)) {
			return err
		}

		wait := cfg.wait(attempt)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks err as not worth retrying. A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err, or anything it wraps, was marked Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// SkipPermanent is a RetryIf that retries everything not marked Permanent.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}
