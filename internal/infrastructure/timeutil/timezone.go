package timeutil

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// IST is the booking time zone for every supported city.
const IST = "Asia/Kolkata"

var (
	locMu sync.Mutex
	locs  = map[string]*time.Location{}
)

// GetLocation loads an IANA time zone, caching it for later calls.
// An empty name is rejected rather than silently meaning UTC.
func GetLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, errors.New("time zone name is empty")
	}

	locMu.Lock()
	defer locMu.Unlock()

	if loc, ok := locs[name]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	locs[name] = loc
	return loc, nil
}

// MustGetLocation is GetLocation for names already checked by config validation.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
