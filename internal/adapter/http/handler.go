// Package http provides the HTTP handler layer for the price estimation API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-price/flight-price-estimation-service/internal/adapter/http/middleware"
	"github.com/flight-price/flight-price-estimation-service/internal/adapter/http/response"
	"github.com/flight-price/flight-price-estimation-service/internal/domain"
	"github.com/flight-price/flight-price-estimation-service/internal/usecase"
)

// ItineraryHandler handles HTTP requests for itinerary and prediction endpoints.
type ItineraryHandler struct {
	validator usecase.ItineraryValidator
	estimates usecase.PriceEstimateUseCase
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(v usecase.ItineraryValidator, uc usecase.PriceEstimateUseCase) *ItineraryHandler {
	return &ItineraryHandler{
		validator: v,
		estimates: uc,
	}
}

// ChangeField handles POST /api/v1/itineraries/fields
//
// @Summary Apply a field edit
// @Description Apply one field edit to an itinerary in progress and run the incremental plausibility check
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body FieldChangeRequest true "Itinerary and edit"
// @Success 200 {object} FieldChangeResponse
// @Failure 400 {object} response.ErrorDetail "Malformed itinerary or field value"
// @Router /api/v1/itineraries/fields [post]
func (h *ItineraryHandler) ChangeField(c echo.Context) error {
	var req FieldChangeRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	it, err := req.Itinerary.ToItinerary()
	if err != nil {
		return h.handleValidationError(c, err)
	}

	field := domain.Field(req.Field)
	next, err := domain.ApplyFieldChange(it, field, req.Value)
	if err != nil {
		errs := &ValidationErrors{}
		addFieldError(errs, field, err)
		return h.handleValidationError(c, errs)
	}

	result := FieldChangeResponse{
		Itinerary: NewItineraryRequest(next),
		Valid:     true,
	}
	if err := h.validator.ValidateFieldChange(next, field); err != nil {
		ve, ok := domain.AsValidationError(err)
		if !ok {
			return h.handleError(c, err)
		}
		result.Valid = false
		result.Message = ve.Message
	}

	return c.JSON(http.StatusOK, &result)
}

// ValidateItinerary handles POST /api/v1/itineraries/validate
//
// @Summary Validate an itinerary
// @Description Run the full ordered plausibility check without requesting a price
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body ItineraryRequest true "Itinerary"
// @Success 200 {object} response.ValidationResult
// @Failure 400 {object} response.ErrorDetail "Malformed itinerary"
// @Router /api/v1/itineraries/validate [post]
func (h *ItineraryHandler) ValidateItinerary(c echo.Context) error {
	var req ItineraryRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	it, err := req.ToItinerary()
	if err != nil {
		return h.handleValidationError(c, err)
	}

	if err := h.validator.ValidateItinerary(it); err != nil {
		ve, ok := domain.AsValidationError(err)
		if !ok {
			return h.handleError(c, err)
		}
		return response.Validation(c, response.ValidationResult{Message: ve.Message})
	}

	return response.Validation(c, response.ValidationResult{Valid: true})
}

// Predict handles POST /api/v1/predict
//
// @Summary Estimate a price
// @Description Validate the itinerary and, if plausible, request a price estimate
// @Tags predictions
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Client session; one estimate may be in flight per session"
// @Param request body ItineraryRequest true "Itinerary"
// @Success 200 {object} response.PredictionResponse
// @Failure 400 {object} response.ErrorDetail "Implausible or malformed itinerary"
// @Failure 409 {object} response.ErrorDetail "Estimate already in flight for this session"
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Failure 502 {object} response.ErrorDetail "Estimator failure"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/predict [post]
func (h *ItineraryHandler) Predict(c echo.Context) error {
	var req ItineraryRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	it, err := req.ToItinerary()
	if err != nil {
		return h.handleValidationError(c, err)
	}

	est, err := h.estimates.Estimate(c.Request().Context(), middleware.GetSessionID(c), it)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Prediction(c, est.Prediction)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.RuleViolation(c, "", err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	// Itinerary failed a plausibility rule
	if ve, ok := domain.AsValidationError(err); ok {
		return response.RuleViolation(c, ve.Field, ve.Message)
	}

	// Malformed input
	if domain.IsInvalidRequest(err) {
		return h.handleValidationError(c, err)
	}

	if domain.IsSubmissionInFlight(err) {
		return response.SubmissionInFlight(c)
	}

	// The inbound request ended before the estimator answered
	if ctxErr := c.Request().Context().Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return response.GatewayTimeout(c)
		}
		return response.RequestCancelled(c)
	}

	if ee, ok := domain.AsEstimatorError(err); ok {
		return response.EstimatorFailure(c, ee.Message)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}
