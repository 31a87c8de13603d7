// Package http provides the HTTP handler layer for the price estimation API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all price estimation API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ItineraryHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on the API group.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ItineraryHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1", middleware...)

	// Itinerary editing and validation
	itineraries := api.Group("/itineraries")
	itineraries.POST("/fields", h.ChangeField)
	itineraries.POST("/validate", h.ValidateItinerary)

	api.POST("/predict", h.Predict)
}
