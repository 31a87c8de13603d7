package domain

// DefaultMinimumHours applies to routes without an explicit minimum duration.
const DefaultMinimumHours = 1.0

// Route is a directional (source, destination) city pair.
// (A, B) and (B, A) are distinct keys.
type Route struct {
	Source      City `json:"source" yaml:"source"`
	Destination City `json:"destination" yaml:"destination"`
}

// NewRoute creates a Route from source to destination.
func NewRoute(source, destination City) Route {
	return Route{Source: source, Destination: destination}
}

// Reverse returns the route flown in the opposite direction.
func (r Route) Reverse() Route {
	return Route{Source: r.Destination, Destination: r.Source}
}

// String formats the route as "Source-Destination".
func (r Route) String() string {
	return string(r.Source) + "-" + string(r.Destination)
}

// RouteDurationTable holds per-route minimum flight durations in hours.
// It is built once and never mutated.
type RouteDurationTable struct {
	minimums map[Route]float64
}

// NewRouteDurationTable copies entries into a new table.
func NewRouteDurationTable(entries map[Route]float64) RouteDurationTable {
	minimums := make(map[Route]float64, len(entries))
	for r, h := range entries {
		minimums[r] = h
	}
	return RouteDurationTable{minimums: minimums}
}

// MinimumHours returns the minimum duration for the directional route,
// or DefaultMinimumHours when the route has no entry.
func (t RouteDurationTable) MinimumHours(source, destination City) float64 {
	if h, ok := t.minimums[NewRoute(source, destination)]; ok {
		return h
	}
	return DefaultMinimumHours
}

// Len returns the number of explicit entries.
func (t RouteDurationTable) Len() int {
	return len(t.minimums)
}

// DefaultRouteDurations returns the seeded minimum durations. Both directions are listed explicitly.
func DefaultRouteDurations() map[Route]float64 {
	return map[Route]float64{
		NewRoute(CityDelhi, CityMumbai):     2,
		NewRoute(CityMumbai, CityDelhi):     2,
		NewRoute(CityDelhi, CityBangalore):  2.5,
		NewRoute(CityBangalore, CityDelhi):  2.5,
		NewRoute(CityMumbai, CityBangalore): 1.5,
		NewRoute(CityBangalore, CityMumbai): 1.5,
		NewRoute(CityDelhi, CityKolkata):    2,
		NewRoute(CityKolkata, CityDelhi):    2,
		NewRoute(CityDelhi, CityChennai):    2.5,
		NewRoute(CityChennai, CityDelhi):    2.5,
		NewRoute(CityMumbai, CityKolkata):   2.5,
		NewRoute(CityKolkata, CityMumbai):   2.5,
	}
}

// SameSlotAllowlist is the set of routes allowed to depart and arrive in the same slot.
// Membership is exact; a route's reverse is not implied.
type SameSlotAllowlist struct {
	routes map[Route]struct{}
}

// NewSameSlotAllowlist builds an allowlist from the given routes.
func NewSameSlotAllowlist(routes ...Route) SameSlotAllowlist {
	set := make(map[Route]struct{}, len(routes))
	for _, r := range routes {
		set[r] = struct{}{}
	}
	return SameSlotAllowlist{routes: set}
}

// IsSameSlotPermitted reports whether the exact directional route is allowlisted.
func (a SameSlotAllowlist) IsSameSlotPermitted(source, destination City) bool {
	_, ok := a.routes[NewRoute(source, destination)]
	return ok
}

// Len returns the number of allowlisted directional routes.
func (a SameSlotAllowlist) Len() int {
	return len(a.routes)
}

// DefaultSameSlotRoutes returns the seeded allowlist entries.
func DefaultSameSlotRoutes() []Route {
	return []Route{
		NewRoute(CityDelhi, CityMumbai),
		NewRoute(CityMumbai, CityDelhi),
		NewRoute(CityDelhi, CityKolkata),
		NewRoute(CityKolkata, CityDelhi),
		NewRoute(CityMumbai, CityBangalore),
		NewRoute(CityBangalore, CityMumbai),
	}
}

// AirlineNetwork records which cities each airline serves.
type AirlineNetwork struct {
	cities map[Airline]map[City]struct{}
}

// NewAirlineNetwork builds a network from airline to served cities.
func NewAirlineNetwork(served map[Airline][]City) AirlineNetwork {
	cities := make(map[Airline]map[City]struct{}, len(served))
	for airline, list := range served {
		set := make(map[City]struct{}, len(list))
		for _, c := range list {
			set[c] = struct{}{}
		}
		cities[airline] = set
	}
	return AirlineNetwork{cities: cities}
}

// Serves reports whether the airline operates at both ends of the route.
func (n AirlineNetwork) Serves(airline Airline, source, destination City) bool {
	set, ok := n.cities[airline]
	if !ok {
		return false
	}
	_, src := set[source]
	_, dst := set[destination]
	return src && dst
}

// DefaultAirlineNetwork returns the seeded network: every airline serves every city.
func DefaultAirlineNetwork() map[Airline][]City {
	served := make(map[Airline][]City, len(Airlines))
	for _, a := range Airlines {
		served[a] = append([]City(nil), Cities...)
	}
	return served
}

// Policies bundles the static rule tables the validator is configured with.
type Policies struct {
	Durations RouteDurationTable
	SameSlot  SameSlotAllowlist
	Network   AirlineNetwork
}

// DefaultPolicies returns the seeded rule tables.
func DefaultPolicies() Policies {
	return Policies{
		Durations: NewRouteDurationTable(DefaultRouteDurations()),
		SameSlot:  NewSameSlotAllowlist(DefaultSameSlotRoutes()...),
		Network:   NewAirlineNetwork(DefaultAirlineNetwork()),
	}
}
