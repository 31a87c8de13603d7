package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "policies.yaml", "same_slot_routes: []\n")

	assert.Equal(t, "policies.yaml", filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "same_slot_routes: []\n", string(data))
}

func TestMustParseTime(t *testing.T) {
	utc := MustParseTime(t, "2026-10-19T04:30:00Z")
	ist := MustParseTime(t, "2026-10-19T10:00:00+05:30")

	assert.True(t, utc.Equal(ist), "same instant in two zones")
}

func TestMustParseDate(t *testing.T) {
	for _, s := range []string{"2026-11-15", "2027-01-01", "2028-02-29"} {
		t.Run(s, func(t *testing.T) {
			d := MustParseDate(t, s)
			assert.False(t, d.IsZero())
			assert.Equal(t, s, d.String())
		})
	}
}

func TestNewBookingClock(t *testing.T) {
	clock, loc := NewBookingClock(t, "2026-10-19T04:30:00Z")

	assert.Equal(t, "Asia/Kolkata", loc.String())
	assert.Equal(t, 10, clock.Now().In(loc).Hour())

	clock.Advance(14 * time.Hour)
	assert.Equal(t, 20, clock.Now().In(loc).Day(), "advancing past midnight IST moves the calendar day")
}
