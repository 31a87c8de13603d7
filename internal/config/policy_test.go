package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
	"github.com/flight-price/flight-price-estimation-service/test/testutil"
)

func TestLoadPolicies_EmptyPathReturnsDefaults(t *testing.T) {
	policies, err := LoadPolicies("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPolicies(), policies)
}

func TestLoadPolicies_MissingFile(t *testing.T) {
	_, err := LoadPolicies(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read policy file")
}

func TestLoadPolicies_OverridesPresentSections(t *testing.T) {
	path := testutil.WriteTempFile(t, "policies.yaml", `
route_durations:
  - {source: Delhi, destination: Mumbai, hours: 2.5}
airline_network:
  Vistara: [Delhi, Mumbai]
`)

	policies, err := LoadPolicies(path)
	require.NoError(t, err)

	// Replaced table: only the listed route keeps a minimum, others fall back.
	assert.Equal(t, 1, policies.Durations.Len())
	assert.Equal(t, 2.5, policies.Durations.MinimumHours(domain.CityDelhi, domain.CityMumbai))
	assert.Equal(t, domain.DefaultMinimumHours, policies.Durations.MinimumHours(domain.CityMumbai, domain.CityDelhi))

	// Absent section keeps its default.
	assert.Equal(t, domain.DefaultPolicies().SameSlot, policies.SameSlot)

	assert.True(t, policies.Network.Serves(domain.AirlineVistara, domain.CityDelhi, domain.CityMumbai))
	assert.False(t, policies.Network.Serves(domain.AirlineVistara, domain.CityDelhi, domain.CityChennai))
}

func TestParsePolicies_SameSlotRoutes(t *testing.T) {
	policies, err := ParsePolicies([]byte(`
same_slot_routes:
  - {source: Chennai, destination: Bangalore}
`))
	require.NoError(t, err)

	assert.Equal(t, 1, policies.SameSlot.Len())
	assert.True(t, policies.SameSlot.IsSameSlotPermitted(domain.CityChennai, domain.CityBangalore))
	assert.Equal(t, domain.DefaultPolicies().Durations, policies.Durations)
}

func TestParsePolicies_EmptyDocumentKeepsDefaults(t *testing.T) {
	policies, err := ParsePolicies([]byte("# nothing to override\n"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPolicies(), policies)
}

func TestParsePolicies_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "malformed yaml",
			content: "route_durations: [",
			errMsg:  "parse policy file",
		},
		{
			name:    "unknown source city",
			content: "route_durations:\n  - {source: Pune, destination: Delhi, hours: 2}\n",
			errMsg:  `unknown source city "Pune"`,
		},
		{
			name:    "unknown destination city",
			content: "same_slot_routes:\n  - {source: Delhi, destination: Goa}\n",
			errMsg:  `unknown destination city "Goa"`,
		},
		{
			name:    "non positive hours",
			content: "route_durations:\n  - {source: Delhi, destination: Mumbai, hours: 0}\n",
			errMsg:  "hours must be positive",
		},
		{
			name:    "same source and destination",
			content: "same_slot_routes:\n  - {source: Delhi, destination: Delhi}\n",
			errMsg:  "same source and destination",
		},
		{
			name:    "unknown airline",
			content: "airline_network:\n  Akasa: [Delhi]\n",
			errMsg:  `unknown airline "Akasa"`,
		},
		{
			name:    "unknown network city",
			content: "airline_network:\n  Indigo: [Delhi, Jaipur]\n",
			errMsg:  `unknown city "Jaipur"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePolicies([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
