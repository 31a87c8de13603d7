// Package testutil holds helpers shared by unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
	"github.com/flight-price/flight-price-estimation-service/internal/infrastructure/timeutil"
)

// WriteTempFile writes content to a file named name inside a per-test directory
// and returns its path. The directory is removed when the test ends.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// MustParseTime parses an RFC3339 instant or fails the test.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("parse time %q: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a YYYY-MM-DD departure date or fails the test.
func MustParseDate(t *testing.T, dateStr string) domain.Date {
	t.Helper()
	parsed, err := domain.ParseDate(dateStr)
	if err != nil {
		t.Fatalf("parse date %q: %v", dateStr, err)
	}
	return parsed
}

// NewBookingClock returns a mock clock set to the RFC3339 instant now,
// together with the booking timezone.
func NewBookingClock(t *testing.T, now string) (*timeutil.MockClock, *time.Location) {
	t.Helper()
	return timeutil.NewMockClock(MustParseTime(t, now)), timeutil.MustGetLocation(timeutil.IST)
}
