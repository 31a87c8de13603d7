package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
)

// PolicyFile is the YAML layout of the rule tables. A section that is absent
// keeps its seeded default; a present section replaces it entirely.
//
//	route_durations:
//	  - {source: Delhi, destination: Mumbai, hours: 2}
//	same_slot_routes:
//	  - {source: Delhi, destination: Mumbai}
//	airline_network:
//	  Vistara: [Delhi, Mumbai, Bangalore]
type PolicyFile struct {
	RouteDurations []RouteDuration                   `yaml:"route_durations"`
	SameSlotRoutes []domain.Route                    `yaml:"same_slot_routes"`
	AirlineNetwork map[domain.Airline][]domain.City `yaml:"airline_network"`
}

// RouteDuration is one minimum-duration entry.
type RouteDuration struct {
	Source      domain.City `yaml:"source"`
	Destination domain.City `yaml:"destination"`
	Hours       float64     `yaml:"hours"`
}

// LoadPolicies returns the rule tables, applying the YAML file at path over the
// seeded defaults. An empty path returns the defaults.
func LoadPolicies(path string) (domain.Policies, error) {
	if path == "" {
		return domain.DefaultPolicies(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Policies{}, fmt.Errorf("read policy file: %w", err)
	}

	return ParsePolicies(data)
}

// ParsePolicies decodes and validates a policy document.
func ParsePolicies(data []byte) (domain.Policies, error) {
	var file PolicyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Policies{}, fmt.Errorf("parse policy file: %w", err)
	}

	if err := file.validate(); err != nil {
		return domain.Policies{}, fmt.Errorf("validate policy file: %w", err)
	}

	policies := domain.DefaultPolicies()

	if file.RouteDurations != nil {
		entries := make(map[domain.Route]float64, len(file.RouteDurations))
		for _, rd := range file.RouteDurations {
			entries[domain.NewRoute(rd.Source, rd.Destination)] = rd.Hours
		}
		policies.Durations = domain.NewRouteDurationTable(entries)
	}

	if file.SameSlotRoutes != nil {
		policies.SameSlot = domain.NewSameSlotAllowlist(file.SameSlotRoutes...)
	}

	if file.AirlineNetwork != nil {
		policies.Network = domain.NewAirlineNetwork(file.AirlineNetwork)
	}

	return policies, nil
}

func (f *PolicyFile) validate() error {
	for i, rd := range f.RouteDurations {
		if err := validateRoute(domain.NewRoute(rd.Source, rd.Destination)); err != nil {
			return fmt.Errorf("route_durations[%d]: %w", i, err)
		}
		if rd.Hours <= 0 {
			return fmt.Errorf("route_durations[%d]: hours must be positive, got %v", i, rd.Hours)
		}
	}

	for i, r := range f.SameSlotRoutes {
		if err := validateRoute(r); err != nil {
			return fmt.Errorf("same_slot_routes[%d]: %w", i, err)
		}
	}

	for airline, cities := range f.AirlineNetwork {
		if !slices.Contains(domain.Airlines, airline) {
			return fmt.Errorf("airline_network: unknown airline %q", airline)
		}
		for _, c := range cities {
			if !slices.Contains(domain.Cities, c) {
				return fmt.Errorf("airline_network[%s]: unknown city %q", airline, c)
			}
		}
	}

	return nil
}

func validateRoute(r domain.Route) error {
	if !slices.Contains(domain.Cities, r.Source) {
		return fmt.Errorf("unknown source city %q", r.Source)
	}
	if !slices.Contains(domain.Cities, r.Destination) {
		return fmt.Errorf("unknown destination city %q", r.Destination)
	}
	if r.Source == r.Destination {
		return fmt.Errorf("route %s has the same source and destination", r)
	}
	return nil
}
