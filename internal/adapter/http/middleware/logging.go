package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLoggerConfig controls the access log.
type RequestLoggerConfig struct {
	// QuietPaths are logged at debug level when they succeed. Probes hit /health constantly.
	QuietPaths []string
}

// DefaultRequestLoggerConfig keeps health probes out of the info stream.
func DefaultRequestLoggerConfig() RequestLoggerConfig {
	return RequestLoggerConfig{QuietPaths: []string{"/health"}}
}

// RequestLogger returns an access log middleware with the default config.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return RequestLoggerWithConfig(log, DefaultRequestLoggerConfig())
}

// RequestLoggerWithConfig writes one line per request after the handler finishes.
// Handler errors are passed to c.Error first so the logged status is the one the client saw.
// The line carries the request id and, when the client sent one, the itinerary session id.
func RequestLoggerWithConfig(log zerolog.Logger, config RequestLoggerConfig) echo.MiddlewareFunc {
	quiet := make(map[string]struct{}, len(config.QuietPaths))
	for _, p := range config.QuietPaths {
		quiet[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			_, isQuiet := quiet[req.URL.Path]

			event := levelFor(log, res.Status, isQuiet)
			if session := clientSessionID(c); session != "" {
				event = event.Str("session_id", session)
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}

// levelFor maps the response status to a log level. 5xx is error, 4xx is warn.
func levelFor(log zerolog.Logger, status int, quiet bool) *zerolog.Event {
	switch {
	case status >= 500:
		return log.Error()
	case status >= 400:
		return log.Warn()
	case quiet:
		return log.Debug()
	default:
		return log.Info()
	}
}
