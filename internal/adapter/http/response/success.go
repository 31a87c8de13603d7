package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// PredictionResponse carries the estimated price.
type PredictionResponse struct {
	Prediction float64 `json:"prediction" example:"5953.5"`
}

// ValidationResult reports the outcome of an itinerary check.
// Message is empty when Valid is true.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// Prediction writes a 200 OK response with the estimated price.
func Prediction(c echo.Context, prediction float64) error {
	return c.JSON(http.StatusOK, &PredictionResponse{
		Prediction: prediction,
	})
}

// Validation writes a 200 OK response with the outcome of an itinerary check.
func Validation(c echo.Context, result ValidationResult) error {
	return c.JSON(http.StatusOK, &result)
}
