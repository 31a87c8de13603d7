package middleware

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-price/flight-price-estimation-service/internal/adapter/http/response"
)

// RecoveryConfig controls how recovered panics are logged.
type RecoveryConfig struct {
	// DisableStackAll limits the logged stack to the panicking goroutine.
	DisableStackAll bool

	// DisablePrintStack omits the stack trace from the log entry.
	DisablePrintStack bool
}

// DefaultRecoveryConfig logs every goroutine's stack.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{}
}

// Recover turns a handler panic into a logged 500 with the default config.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig turns a handler panic into a logged internal_error response.
// The panic value is logged but never sent to the client. If the handler already
// committed a response nothing more is written.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				req := c.Request()
				event := log.Error().
					Str("request_id", GetRequestID(c)).
					Str("method", req.Method).
					Str("path", req.URL.Path).
					Str("panic", panicMessage(r))
				if session := clientSessionID(c); session != "" {
					event = event.Str("session_id", session)
				}
				if !config.DisablePrintStack {
					event = event.Str("stack", stack(config.DisableStackAll))
				}
				event.Msg("Panic recovered")

				if !c.Response().Committed {
					_ = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}

func panicMessage(r interface{}) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(r)
}

// stack returns the panicking goroutine's stack, or every goroutine's unless currentOnly.
func stack(currentOnly bool) string {
	if currentOnly {
		return string(debug.Stack())
	}
	buf := make([]byte, 64<<10)
	n := runtime.Stack(buf, true)
	return string(buf[:n])
}
