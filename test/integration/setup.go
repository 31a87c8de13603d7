// Package integration provides helpers and integration tests for the price estimation service.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, the validator, the use case, and mock estimators.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-price/flight-price-estimation-service/internal/adapter/http"
	"github.com/flight-price/flight-price-estimation-service/internal/adapter/http/middleware"
	"github.com/flight-price/flight-price-estimation-service/internal/adapter/http/response"
	"github.com/flight-price/flight-price-estimation-service/internal/domain"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/logger"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/timeutil"
	"github.com/flight-price/flight-price-estimation-service/internal/usecase"
	"github.com/flight-price/flight-price-estimation-service/test/mock"
)

// Now is the fixed instant integration tests run at: 10:00 on 2026-10-19 in Kolkata.
const Now = "2026-10-19T04:30:00Z"

// TravelDate is a departure date comfortably inside the booking window at Now.
const TravelDate = "2026-11-15"

// ServerOptions customizes NewTestServer.
type ServerOptions struct {
	Policies   *domain.Policies
	Cache      domain.EstimateCache
	Middleware *middleware.Config
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo      *echo.Echo
	Handler   *httpAdapter.ItineraryHandler
	Clock     *timeutil.MockClock
	Validator usecase.ItineraryValidator
	UseCase   usecase.PriceEstimateUseCase
}

// NewTestServer creates a new test server backed by the given estimator.
func NewTestServer(est domain.PriceEstimator) *TestServer {
	return NewTestServerWithOptions(est, ServerOptions{})
}

// NewTestServerWithOptions creates a test server with custom rule tables, cache or middleware.
func NewTestServerWithOptions(est domain.PriceEstimator, opts ServerOptions) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if opts.Middleware != nil {
		middleware.SetupWithConfig(e, logger.Nop().Logger, *opts.Middleware)
	}

	now, _ := time.Parse(time.RFC3339, Now)
	clock := timeutil.NewMockClock(now)
	validator := CreateValidator(clock, opts.Policies)
	uc := usecase.NewPriceEstimateUseCase(validator, est, opts.Cache, logger.Nop())

	handler := httpAdapter.NewItineraryHandler(validator, uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:      e,
		Handler:   handler,
		Clock:     clock,
		Validator: validator,
		UseCase:   uc,
	}
}

// CreateValidator builds a validator using the Kolkata booking window of six months.
// Nil policies select the seeded defaults.
func CreateValidator(clock domain.Clock, policies *domain.Policies) usecase.ItineraryValidator {
	p := domain.DefaultPolicies()
	if policies != nil {
		p = *policies
	}
	window := domain.NewDateWindowPolicy(clock, timeutil.MustGetLocation(timeutil.IST), 6)
	return usecase.NewItineraryValidator(p, window)
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// PredictRequest submits an itinerary for a price estimate on behalf of sessionID.
// An empty sessionID sends no session header.
func (ts *TestServer) PredictRequest(body interface{}, sessionID string) Response {
	req := Request{
		Method: http.MethodPost,
		Path:   "/api/v1/predict",
		Body:   body,
	}
	if sessionID != "" {
		req.Headers = map[string]string{middleware.SessionIDHeader: sessionID}
	}
	return ts.Do(req)
}

// ValidateRequest runs the exhaustive check over an itinerary.
func (ts *TestServer) ValidateRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/validate",
		Body:   body,
	})
}

// FieldChangeRequest applies one field edit.
func (ts *TestServer) FieldChangeRequest(body httpAdapter.FieldChangeRequest) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/fields",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParsePrediction parses the response body as a PredictionResponse.
func (r *Response) ParsePrediction() (*response.PredictionResponse, error) {
	var resp response.PredictionResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseValidation parses the response body as a ValidationResult.
func (r *Response) ParseValidation() (*response.ValidationResult, error) {
	var resp response.ValidationResult
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseFieldChange parses the response body as a FieldChangeResponse.
func (r *Response) ParseFieldChange() (*httpAdapter.FieldChangeResponse, error) {
	var resp httpAdapter.FieldChangeResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an ErrorDetail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// DefaultItineraryRequest returns a plausible itinerary request body departing on TravelDate.
func DefaultItineraryRequest() httpAdapter.ItineraryRequest {
	return httpAdapter.ItineraryRequest{
		Airline:         "Vistara",
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
		DepartureTime:   "Morning",
		ArrivalTime:     "Afternoon",
		Stops:           "zero",
		Class:           "Economy",
		DepartureDate:   TravelDate,
	}
}

// DefaultItinerary returns the domain form of DefaultItineraryRequest.
func DefaultItinerary() domain.Itinerary {
	date, _ := domain.ParseDate(TravelDate)
	return mock.SampleItinerary(date)
}
