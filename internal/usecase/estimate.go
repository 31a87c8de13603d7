package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/logger"
	"golang.org/x/sync/singleflight"
)

// sharedCallTimeout bounds an estimator call that outlives the request that started it.
// The estimator client's own timeout still applies when it is shorter.
const sharedCallTimeout = time.Minute

// PriceEstimateUseCase defines the interface for price estimation.
type PriceEstimateUseCase interface {
	// Estimate validates the itinerary exhaustively and, only if it is plausible,
	// asks the estimator for a price. A session may have one estimate outstanding at a time.
	Estimate(ctx context.Context, sessionID string, itinerary domain.Itinerary) (domain.Estimate, error)
}

type priceEstimateUseCase struct {
	validator ItineraryValidator
	estimator domain.PriceEstimator
	cache     domain.EstimateCache
	logger    *logger.Logger

	sessions *sessionGuard
	group    singleflight.Group
}

// NewPriceEstimateUseCase creates a PriceEstimateUseCase.
// cache may be nil, in which case every estimate goes to the estimator.
func NewPriceEstimateUseCase(
	validator ItineraryValidator,
	estimator domain.PriceEstimator,
	cache domain.EstimateCache,
	log *logger.Logger,
) PriceEstimateUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &priceEstimateUseCase{
		validator: validator,
		estimator: estimator,
		cache:     cache,
		logger:    log,
		sessions:  newSessionGuard(),
	}
}

func (uc *priceEstimateUseCase) Estimate(ctx context.Context, sessionID string, itinerary domain.Itinerary) (domain.Estimate, error) {
	log := uc.logger.WithSession(sessionID).WithItinerary(itinerary)

	if err := uc.validator.ValidateItinerary(itinerary); err != nil {
		log.Debug().Err(err).Msg("itinerary rejected")
		return domain.Estimate{}, err
	}

	if !uc.sessions.acquire(sessionID) {
		log.Debug().Msg("submission already in flight")
		return domain.Estimate{}, domain.ErrSubmissionInFlight
	}
	defer uc.sessions.release(sessionID)

	if uc.cache != nil {
		if est, ok := uc.cache.Get(ctx, itinerary); ok {
			log.Debug().Float64("prediction", est.Prediction).Bool("cached", true).Msg("price estimated")
			return est, nil
		}
	}

	// Identical itineraries submitted concurrently from different sessions share one call.
	// The call is detached from any one request so a caller leaving does not fail the others.
	ch := uc.group.DoChan(itinerary.Fingerprint(), func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedCallTimeout)
		defer cancel()
		return uc.estimator.Estimate(callCtx, itinerary)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		log.Debug().Err(ctx.Err()).Msg("request ended while waiting for estimate")
		return domain.Estimate{}, ctx.Err()
	}

	if err := res.Err; err != nil {
		if _, ok := domain.AsEstimatorError(err); !ok {
			err = domain.NewEstimatorError(0, "", err)
		}
		log.Error().Err(err).Msg("price estimation failed")
		return domain.Estimate{}, err
	}

	est := res.Val.(domain.Estimate)
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, itinerary, est); err != nil {
			log.Warn().Err(err).Msg("failed to cache estimate")
		}
	}

	log.Info().
		Float64("prediction", est.Prediction).
		Bool("shared", res.Shared).
		Msg("price estimated")

	return est, nil
}

// sessionGuard tracks sessions with an estimate outstanding.
type sessionGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newSessionGuard() *sessionGuard {
	return &sessionGuard{active: make(map[string]struct{})}
}

// acquire marks the session busy. It returns false if the session already is.
// An empty session id is never guarded.
func (g *sessionGuard) acquire(sessionID string) bool {
	if sessionID == "" {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[sessionID]; busy {
		return false
	}
	g.active[sessionID] = struct{}{}
	return true
}

func (g *sessionGuard) release(sessionID string) {
	if sessionID == "" {
		return
	}
	g.mu.Lock()
	delete(g.active, sessionID)
	g.mu.Unlock()
}
