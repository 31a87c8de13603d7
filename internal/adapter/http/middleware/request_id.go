// Package middleware holds the Echo middleware stack: request and session ids,
// access logging, panic recovery and per-client rate limiting.
package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// SessionIDHeader identifies the client session editing one itinerary.
	SessionIDHeader = "X-Session-ID"

	requestIDKey = "request_id"

	// maxIDLength bounds client supplied ids so they cannot bloat log lines.
	maxIDLength = 128
)

// RequestID propagates a well-formed X-Request-ID or generates a UUID, storing it
// in the context and echoing it in the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID, ok := cleanID(c.Request().Header.Get(RequestIDHeader))
			if !ok {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID returns the id set by RequestID, or "" outside that middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetSessionID returns the client's session id, falling back to the request id
// when the X-Session-ID header is missing or malformed.
func GetSessionID(c echo.Context) string {
	if id := clientSessionID(c); id != "" {
		return id
	}
	return GetRequestID(c)
}

// clientSessionID returns the X-Session-ID header if it is well formed, "" otherwise.
func clientSessionID(c echo.Context) string {
	id, _ := cleanID(c.Request().Header.Get(SessionIDHeader))
	return id
}

// cleanID trims raw and accepts it if it is non-empty, at most maxIDLength bytes
// and printable ASCII.
func cleanID(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxIDLength {
		return "", false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return "", false
		}
	}
	return id, true
}
