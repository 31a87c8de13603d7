// Package logger wraps zerolog with the fields the estimation service attaches to
// its log lines: service name, request id, itinerary session and itinerary summary.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Config selects level, encoding and static fields. Values come from config.LoggingConfig.
type Config struct {
	Level        string // debug, info, warn, error
	Format       string // json or console
	EnableCaller bool
	ServiceName  string
}

// Logger embeds zerolog.Logger so callers use the zerolog event API directly.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to out.
// Unknown levels fall back to info.
func NewWithOutput(cfg Config, out io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	w := out
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.ServiceName != "" {
		zctx = zctx.Str("service", cfg.ServiceName)
	}
	if cfg.EnableCaller {
		zctx = zctx.Caller()
	}

	return &Logger{Logger: zctx.Logger()}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithContext returns a child logger carrying key=value on every line.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID tags lines with the HTTP request id.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

// WithSession tags lines with the itinerary session id. An empty id adds nothing.
func (l *Logger) WithSession(sessionID string) *Logger {
	if sessionID == "" {
		return l
	}
	return l.WithContext("session_id", sessionID)
}

// WithItinerary tags lines with the fields that identify an itinerary in logs.
// Time slots, stops and class are left out; the fingerprint covers them.
func (l *Logger) WithItinerary(it domain.Itinerary) *Logger {
	return &Logger{Logger: l.With().
		Str("airline", string(it.Airline)).
		Str("route", it.Route().String()).
		Str("departure_date", it.DepartureDate.String()).
		Str("fingerprint", it.Fingerprint()).
		Logger()}
}

// SetGlobal makes l the logger behind the zerolog/log package functions,
// so packages that log before a Logger is injected end up in the same stream.
func SetGlobal(l *Logger) {
	zlog.Logger = l.Logger
}
