package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteDurationTable_MinimumHours(t *testing.T) {
	table := NewRouteDurationTable(DefaultRouteDurations())

	tests := []struct {
		name        string
		source      City
		destination City
		want        float64
	}{
		{"Delhi to Mumbai", CityDelhi, CityMumbai, 2},
		{"Mumbai to Delhi", CityMumbai, CityDelhi, 2},
		{"Mumbai to Bangalore", CityMumbai, CityBangalore, 1.5},
		{"Delhi to Chennai", CityDelhi, CityChennai, 2.5},
		{"Chennai to Delhi", CityChennai, CityDelhi, 2.5},
		{"Kolkata to Mumbai", CityKolkata, CityMumbai, 2.5},
		{"unseeded Hyderabad to Chennai", CityHyderabad, CityChennai, 1},
		{"unseeded Bangalore to Kolkata", CityBangalore, CityKolkata, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.MinimumHours(tt.source, tt.destination))
		})
	}
}

func TestRouteDurationTable_Directional(t *testing.T) {
	table := NewRouteDurationTable(map[Route]float64{
		NewRoute(CityDelhi, CityHyderabad): 3,
	})

	assert.Equal(t, 3.0, table.MinimumHours(CityDelhi, CityHyderabad))
	assert.Equal(t, DefaultMinimumHours, table.MinimumHours(CityHyderabad, CityDelhi))
}

func TestRouteDurationTable_CopiesEntries(t *testing.T) {
	entries := map[Route]float64{NewRoute(CityDelhi, CityMumbai): 2}
	table := NewRouteDurationTable(entries)

	entries[NewRoute(CityDelhi, CityMumbai)] = 9

	assert.Equal(t, 2.0, table.MinimumHours(CityDelhi, CityMumbai))
}

func TestRouteDurationTable_ZeroValue(t *testing.T) {
	var table RouteDurationTable
	assert.Equal(t, DefaultMinimumHours, table.MinimumHours(CityDelhi, CityMumbai))
	assert.Equal(t, 0, table.Len())
}

func TestDefaultRouteDurations_BothDirectionsSeeded(t *testing.T) {
	for route, hours := range DefaultRouteDurations() {
		reverse, ok := DefaultRouteDurations()[route.Reverse()]
		assert.True(t, ok, "missing reverse of %s", route)
		assert.Equal(t, hours, reverse, "asymmetric seed for %s", route)
	}
}

func TestSameSlotAllowlist(t *testing.T) {
	allowlist := NewSameSlotAllowlist(DefaultSameSlotRoutes()...)
	assert.Equal(t, 6, allowlist.Len())

	allowed := map[Route]bool{}
	for _, r := range DefaultSameSlotRoutes() {
		allowed[r] = true
	}

	for _, src := range Cities {
		for _, dst := range Cities {
			route := NewRoute(src, dst)
			assert.Equal(t, allowed[route], allowlist.IsSameSlotPermitted(src, dst), route.String())
		}
	}
}

func TestSameSlotAllowlist_NoImplicitSymmetry(t *testing.T) {
	allowlist := NewSameSlotAllowlist(NewRoute(CityChennai, CityHyderabad))

	assert.True(t, allowlist.IsSameSlotPermitted(CityChennai, CityHyderabad))
	assert.False(t, allowlist.IsSameSlotPermitted(CityHyderabad, CityChennai))
}

func TestAirlineNetwork_Serves(t *testing.T) {
	network := NewAirlineNetwork(map[Airline][]City{
		AirlineIndigo: {CityDelhi, CityMumbai},
	})

	tests := []struct {
		name        string
		airline     Airline
		source      City
		destination City
		want        bool
	}{
		{"both cities served", AirlineIndigo, CityDelhi, CityMumbai, true},
		{"destination not served", AirlineIndigo, CityDelhi, CityChennai, false},
		{"source not served", AirlineIndigo, CityKolkata, CityMumbai, false},
		{"unknown airline", AirlineVistara, CityDelhi, CityMumbai, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, network.Serves(tt.airline, tt.source, tt.destination))
		})
	}
}

func TestDefaultAirlineNetwork_ServesEverything(t *testing.T) {
	network := NewAirlineNetwork(DefaultAirlineNetwork())
	for _, a := range Airlines {
		for _, src := range Cities {
			for _, dst := range Cities {
				assert.True(t, network.Serves(a, src, dst))
			}
		}
	}
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "Delhi-Mumbai", NewRoute(CityDelhi, CityMumbai).String())
	assert.Equal(t, NewRoute(CityMumbai, CityDelhi), NewRoute(CityDelhi, CityMumbai).Reverse())
}
