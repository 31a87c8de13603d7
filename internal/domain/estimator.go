package domain

import "context"

//go:generate mockgen -source=estimator.go -destination=mock_estimator.go -package=domain

// Estimate is the price predicted for an itinerary.
type Estimate struct {
	Prediction float64 `json:"prediction"`
}

// PriceEstimator is the external price-estimation collaborator.
// Implementations issue exactly one request per call and never retry.
type PriceEstimator interface {
	Estimate(ctx context.Context, itinerary Itinerary) (Estimate, error)
}

// EstimateCache stores estimates keyed by itinerary.
type EstimateCache interface {
	// Get returns a cached estimate and whether it was found.
	Get(ctx context.Context, itinerary Itinerary) (Estimate, bool)

	// Set stores an estimate.
	Set(ctx context.Context, itinerary Itinerary, estimate Estimate) error
}
