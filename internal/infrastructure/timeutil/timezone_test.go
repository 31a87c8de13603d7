package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation_IST(t *testing.T) {
	loc, err := GetLocation(IST)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())

	// 04:30 UTC is 10:00 in India.
	local := time.Date(2026, 10, 19, 4, 30, 0, 0, time.UTC).In(loc)
	assert.Equal(t, 10, local.Hour())
	assert.Equal(t, 0, local.Minute())
}

func TestGetLocation_DayBoundaryDiffersFromUTC(t *testing.T) {
	loc := MustGetLocation(IST)

	// 19:00 UTC on Oct 19 is already Oct 20 in India.
	local := time.Date(2026, 10, 19, 19, 0, 0, 0, time.UTC).In(loc)
	assert.Equal(t, 20, local.Day())
}

func TestGetLocation_Errors(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		wantMsg string
	}{
		{"unknown zone", "Invalid/Timezone", "load time zone"},
		{"empty name", "", "time zone name is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := GetLocation(tt.zone)
			require.Error(t, err)
			assert.Nil(t, loc)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGetLocation_Caching(t *testing.T) {
	loc1, err := GetLocation(IST)
	require.NoError(t, err)
	loc2, err := GetLocation(IST)
	require.NoError(t, err)

	assert.Same(t, loc1, loc2)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	zones := []string{"UTC", IST, "Asia/Dubai", "Europe/London"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, tz := range zones {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				loc, err := GetLocation(name)
				assert.NoError(t, err)
				assert.NotNil(t, loc)
			}(tz)
		}
	}
	wg.Wait()
}

func TestMustGetLocation(t *testing.T) {
	assert.NotNil(t, MustGetLocation("UTC"))
	assert.Panics(t, func() { MustGetLocation("Invalid/Timezone") })
}
