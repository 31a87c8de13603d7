package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUseCase(t *testing.T, estimator domain.PriceEstimator, cache domain.EstimateCache) PriceEstimateUseCase {
	t.Helper()
	return NewPriceEstimateUseCase(newTestValidator(t, domain.DefaultPolicies()), estimator, cache, nil)
}

// blockingEstimator makes the mock wait for release before answering, signalling started on entry.
func blockingEstimator(m *domain.MockPriceEstimator, started chan<- struct{}, release <-chan struct{}, est domain.Estimate) *gomock.Call {
	return m.EXPECT().Estimate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, it domain.Itinerary) (domain.Estimate, error) {
			started <- struct{}{}
			<-release
			return est, nil
		},
	)
}

func TestEstimate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)
	it := validItinerary()

	estimator.EXPECT().Estimate(gomock.Any(), it).Return(domain.Estimate{Prediction: 5953.5}, nil).Times(1)

	uc := newTestUseCase(t, estimator, nil)
	est, err := uc.Estimate(context.Background(), "session-1", it)

	require.NoError(t, err)
	assert.Equal(t, 5953.5, est.Prediction)
}

func TestEstimate_InvalidItineraryNeverCallsEstimator(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)
	cache := domain.NewMockEstimateCache(ctrl)

	uc := newTestUseCase(t, estimator, cache)

	tests := []struct {
		name   string
		mutate func(it *domain.Itinerary)
		rule   error
	}{
		{"same city", func(it *domain.Itinerary) { it.DestinationCity = it.SourceCity }, domain.ErrSameCity},
		{"same slot", func(it *domain.Itinerary) {
			it.SourceCity = domain.CityChennai
			it.ArrivalTime = it.DepartureTime
		}, domain.ErrSameSlot},
		{"past date", func(it *domain.Itinerary) { it.DepartureDate = domain.Date{Year: 2025, Month: time.May, Day: 1} }, domain.ErrPastDate},
		{"missing class", func(it *domain.Itinerary) { it.Class = "" }, domain.ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := validItinerary()
			tt.mutate(&it)

			_, err := uc.Estimate(context.Background(), "session-1", it)

			assert.ErrorIs(t, err, tt.rule)
			_, ok := domain.AsValidationError(err)
			assert.True(t, ok)
		})
	}
}

func TestEstimate_EstimatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)

	upstream := domain.NewEstimatorError(http.StatusBadRequest, "Vistara does not operate on the route Delhi to Goa", errors.New("bad request"))
	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(domain.Estimate{}, upstream)

	uc := newTestUseCase(t, estimator, nil)
	_, err := uc.Estimate(context.Background(), "session-1", validItinerary())

	ee, ok := domain.AsEstimatorError(err)
	require.True(t, ok)
	assert.Same(t, upstream, ee)
}

func TestEstimate_PlainErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)

	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(domain.Estimate{}, context.DeadlineExceeded)

	uc := newTestUseCase(t, estimator, nil)
	_, err := uc.Estimate(context.Background(), "session-1", validItinerary())

	ee, ok := domain.AsEstimatorError(err)
	require.True(t, ok)
	assert.Equal(t, domain.MsgEstimateFailed, ee.Message)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEstimate_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)
	cache := domain.NewMockEstimateCache(ctrl)
	it := validItinerary()

	cache.EXPECT().Get(gomock.Any(), it).Return(domain.Estimate{Prediction: 4100}, true)

	uc := newTestUseCase(t, estimator, cache)
	est, err := uc.Estimate(context.Background(), "session-1", it)

	require.NoError(t, err)
	assert.Equal(t, 4100.0, est.Prediction)
}

func TestEstimate_CacheMissStoresEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)
	cache := domain.NewMockEstimateCache(ctrl)
	it := validItinerary()
	want := domain.Estimate{Prediction: 7200}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), it).Return(domain.Estimate{}, false),
		estimator.EXPECT().Estimate(gomock.Any(), it).Return(want, nil),
		cache.EXPECT().Set(gomock.Any(), it, want).Return(nil),
	)

	uc := newTestUseCase(t, estimator, cache)
	est, err := uc.Estimate(context.Background(), "session-1", it)

	require.NoError(t, err)
	assert.Equal(t, want, est)
}

func TestEstimate_CacheSetFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)
	cache := domain.NewMockEstimateCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.Estimate{}, false)
	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(domain.Estimate{Prediction: 3000}, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	uc := newTestUseCase(t, estimator, cache)
	est, err := uc.Estimate(context.Background(), "session-1", validItinerary())

	require.NoError(t, err)
	assert.Equal(t, 3000.0, est.Prediction)
}

func TestEstimate_RejectsResubmissionWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	blockingEstimator(estimator, started, release, domain.Estimate{Prediction: 1}).Times(1)

	uc := newTestUseCase(t, estimator, nil)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Estimate(context.Background(), "session-1", validItinerary())
		done <- err
	}()
	<-started

	_, err := uc.Estimate(context.Background(), "session-1", validItinerary())
	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)
	assert.True(t, domain.IsSubmissionInFlight(err))

	close(release)
	require.NoError(t, <-done)
}

func TestEstimate_GuardReleasedAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)

	gomock.InOrder(
		estimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(domain.Estimate{}, domain.NewEstimatorError(http.StatusInternalServerError, "", nil)),
		estimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(domain.Estimate{Prediction: 2500}, nil),
	)

	uc := newTestUseCase(t, estimator, nil)

	_, err := uc.Estimate(context.Background(), "session-1", validItinerary())
	require.Error(t, err)

	est, err := uc.Estimate(context.Background(), "session-1", validItinerary())
	require.NoError(t, err)
	assert.Equal(t, 2500.0, est.Prediction)
}

func TestEstimate_ConcurrentSessionsShareCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	blockingEstimator(estimator, started, release, domain.Estimate{Prediction: 6100}).Times(1)

	uc := newTestUseCase(t, estimator, nil)

	var wg sync.WaitGroup
	results := make([]domain.Estimate, 2)
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = uc.Estimate(context.Background(), "session-a", validItinerary())
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = uc.Estimate(context.Background(), "session-b", validItinerary())
	}()

	// Give the second session time to join the outstanding call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, 6100.0, results[i].Prediction)
	}
}

func TestEstimate_CallerLeavingDoesNotFailSharedCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	var callErr error
	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, it domain.Itinerary) (domain.Estimate, error) {
			started <- struct{}{}
			<-release
			callErr = ctx.Err()
			return domain.Estimate{Prediction: 4400}, nil
		},
	).Times(1)

	uc := newTestUseCase(t, estimator, nil)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := uc.Estimate(ctxA, "session-a", validItinerary())
		errA <- err
	}()
	<-started

	var estB domain.Estimate
	var errB error
	doneB := make(chan struct{})
	go func() {
		defer close(doneB)
		estB, errB = uc.Estimate(context.Background(), "session-b", validItinerary())
	}()

	// Let session B join the outstanding call before session A leaves.
	time.Sleep(50 * time.Millisecond)
	cancelA()

	select {
	case err := <-errA:
		assert.ErrorIs(t, err, context.Canceled)
		_, isEstimatorErr := domain.AsEstimatorError(err)
		assert.False(t, isEstimatorErr, "a caller leaving is not an estimator failure")
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(release)
	<-doneB

	require.NoError(t, errB)
	assert.Equal(t, 4400.0, estB.Prediction)
	assert.NoError(t, callErr, "the shared call keeps running after its first caller leaves")
}

func TestEstimate_CallerDeadlineWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	estimator := domain.NewMockPriceEstimator(ctrl)

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	// The follow-up either joins the first call or, if it already finished, makes its own.
	blockingEstimator(estimator, started, release, domain.Estimate{Prediction: 1}).MinTimes(1).MaxTimes(2)

	uc := newTestUseCase(t, estimator, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := uc.Estimate(ctx, "session-1", validItinerary())
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	<-started
	close(release)

	// The session is free again once its caller has left.
	est, err := uc.Estimate(context.Background(), "session-1", validItinerary())
	require.NoError(t, err)
	assert.Equal(t, 1.0, est.Prediction)
}

func TestSessionGuard(t *testing.T) {
	g := newSessionGuard()

	assert.True(t, g.acquire("a"))
	assert.False(t, g.acquire("a"))
	assert.True(t, g.acquire("b"))

	g.release("a")
	assert.True(t, g.acquire("a"))

	// Empty sessions are never guarded.
	assert.True(t, g.acquire(""))
	assert.True(t, g.acquire(""))
	g.release("")
}
