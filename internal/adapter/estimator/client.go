// Package estimator is the HTTP client for the external price-estimation service.
package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
)

// maxErrorBody bounds how much of a failed response is read.
const maxErrorBody = 64 << 10

// Client posts itineraries to the estimator and decodes its prediction.
// It issues exactly one request per call.
type Client struct {
	url        string
	httpClient *http.Client
}

// predictResponse is the estimator's reply. Prediction is a pointer so a missing field can be told apart from 0.
type predictResponse struct {
	Prediction *float64 `json:"prediction"`
	Error      string   `json:"error"`
}

// NewClient creates a Client for the given endpoint. A zero timeout leaves the call
// bounded only by the caller's context.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        strings.TrimSpace(url),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Estimate implements domain.PriceEstimator.
func (c *Client) Estimate(ctx context.Context, itinerary domain.Itinerary) (domain.Estimate, error) {
	body, err := json.Marshal(itinerary)
	if err != nil {
		return domain.Estimate{}, domain.NewEstimatorError(0, "", fmt.Errorf("encode itinerary: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return domain.Estimate{}, domain.NewEstimatorError(0, "", fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Estimate{}, domain.NewEstimatorError(0, "", fmt.Errorf("estimator request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.Estimate{}, c.statusError(resp)
	}

	var payload predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Estimate{}, domain.NewEstimatorError(resp.StatusCode, "", fmt.Errorf("decode estimator response: %w", err))
	}
	if payload.Prediction == nil {
		return domain.Estimate{}, domain.NewEstimatorError(resp.StatusCode, payload.Error, domain.ErrMissingPrediction)
	}

	return domain.Estimate{Prediction: *payload.Prediction}, nil
}

// statusError surfaces the estimator's own error message when the body carries one.
func (c *Client) statusError(resp *http.Response) error {
	cause := fmt.Errorf("estimator status: %s", resp.Status)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return domain.NewEstimatorError(resp.StatusCode, "", cause)
	}

	var payload predictResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.NewEstimatorError(resp.StatusCode, "", cause)
	}
	return domain.NewEstimatorError(resp.StatusCode, strings.TrimSpace(payload.Error), cause)
}
