package domain

import (
	"fmt"
	"time"
)

// DefaultBookingWindowMonths is how far ahead a departure may be booked.
const DefaultBookingWindowMonths = 6

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// DateWindowPolicy bounds departure dates to [today, today + N months], both inclusive.
// "Today" is re-derived from the clock on every call.
type DateWindowPolicy struct {
	clock    Clock
	location *time.Location
	months   int
}

// NewDateWindowPolicy creates a policy evaluated in loc. A nil loc means UTC and
// a non-positive months value means DefaultBookingWindowMonths.
func NewDateWindowPolicy(clock Clock, loc *time.Location, months int) *DateWindowPolicy {
	if loc == nil {
		loc = time.UTC
	}
	if months <= 0 {
		months = DefaultBookingWindowMonths
	}
	return &DateWindowPolicy{
		clock:    clock,
		location: loc,
		months:   months,
	}
}

// Today returns the current date in the policy's location.
func (p *DateWindowPolicy) Today() Date {
	return DateOf(p.clock.Now().In(p.location))
}

// Window returns the inclusive bounds of the booking window as of now.
func (p *DateWindowPolicy) Window() (earliest, latest Date) {
	now := p.clock.Now().In(p.location)
	return DateOf(now), DateOf(now.AddDate(0, p.months, 0))
}

// Validate returns a ValidationError wrapping ErrPastDate or ErrTooFarInFuture
// when date falls outside the window, nil otherwise.
func (p *DateWindowPolicy) Validate(date Date) error {
	earliest, latest := p.Window()

	if date.Before(earliest) {
		return NewValidationError(ErrPastDate, FieldDepartureDate, MsgPastDate)
	}
	if date.After(latest) {
		return NewValidationError(ErrTooFarInFuture, FieldDepartureDate,
			fmt.Sprintf("Departure date cannot be more than %d months in advance", p.months))
	}
	return nil
}
