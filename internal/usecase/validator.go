package usecase

import (
	"fmt"
	"strconv"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
)

// ItineraryValidator decides whether an itinerary is plausible.
// A nil error means valid; a *domain.ValidationError carries the single message to show.
type ItineraryValidator interface {
	// ValidateIncremental runs the checks that make sense while the itinerary is still
	// being edited. Only the time-sequence check runs, and only once both slots are set.
	ValidateIncremental(it domain.Itinerary) error

	// ValidateFieldChange validates an itinerary right after field was edited.
	ValidateFieldChange(it domain.Itinerary, field domain.Field) error

	// ValidateItinerary runs the full ordered pipeline and stops at the first failure.
	ValidateItinerary(it domain.Itinerary) error
}

// check is one rule of the pipeline.
type check func(it domain.Itinerary) error

type itineraryValidator struct {
	policies domain.Policies
	window   *domain.DateWindowPolicy

	exhaustive  []check
	incremental []check
}

// NewItineraryValidator creates an ItineraryValidator over the given rule tables and booking window.
func NewItineraryValidator(policies domain.Policies, window *domain.DateWindowPolicy) ItineraryValidator {
	v := &itineraryValidator{
		policies: policies,
		window:   window,
	}

	v.exhaustive = []check{
		v.checkSameCity,
		v.checkCompleteness,
		v.checkTimeSequence,
		v.checkDateWindow,
		v.checkAirlineNetwork,
	}
	v.incremental = []check{
		v.checkTimeSequence,
	}

	return v
}

func (v *itineraryValidator) ValidateIncremental(it domain.Itinerary) error {
	return run(v.incremental, it)
}

func (v *itineraryValidator) ValidateFieldChange(it domain.Itinerary, field domain.Field) error {
	switch {
	case field.IsTimeSlot():
		return v.ValidateIncremental(it)
	case field == domain.FieldDepartureDate:
		return v.checkDateWindow(it)
	default:
		return nil
	}
}

func (v *itineraryValidator) ValidateItinerary(it domain.Itinerary) error {
	return run(v.exhaustive, it)
}

func run(checks []check, it domain.Itinerary) error {
	for _, c := range checks {
		if err := c(it); err != nil {
			return err
		}
	}
	return nil
}

func (v *itineraryValidator) checkSameCity(it domain.Itinerary) error {
	if it.SourceCity == "" || it.DestinationCity == "" {
		return nil
	}
	if it.SourceCity == it.DestinationCity {
		return domain.NewValidationError(domain.ErrSameCity, domain.FieldDestinationCity, domain.MsgSameCity)
	}
	return nil
}

func (v *itineraryValidator) checkCompleteness(it domain.Itinerary) error {
	missing := it.MissingFields()
	if len(missing) == 0 {
		return nil
	}
	return domain.NewValidationError(domain.ErrMissingField, missing[0],
		fmt.Sprintf("Missing required field: %s", missing[0]))
}

// checkTimeSequence approximates the flight duration from the slot gap, wrapping past midnight.
func (v *itineraryValidator) checkTimeSequence(it domain.Itinerary) error {
	if !it.HasTimeSlots() {
		return nil
	}

	if it.DepartureTime == it.ArrivalTime {
		if v.policies.SameSlot.IsSameSlotPermitted(it.SourceCity, it.DestinationCity) {
			return nil
		}
		return domain.NewValidationError(domain.ErrSameSlot, domain.FieldArrivalTime, domain.MsgSameSlot)
	}

	hours := domain.SlotsToHours(domain.CyclicForwardDistance(it.DepartureTime, it.ArrivalTime))
	minimum := v.policies.Durations.MinimumHours(it.SourceCity, it.DestinationCity)
	if float64(hours) < minimum {
		return domain.NewValidationError(domain.ErrDurationTooShort, domain.FieldArrivalTime,
			fmt.Sprintf("Flight duration must be at least %s hours for this route", formatHours(minimum)))
	}
	return nil
}

func (v *itineraryValidator) checkDateWindow(it domain.Itinerary) error {
	if it.DepartureDate.IsZero() {
		return nil
	}
	return v.window.Validate(it.DepartureDate)
}

func (v *itineraryValidator) checkAirlineNetwork(it domain.Itinerary) error {
	if v.policies.Network.Serves(it.Airline, it.SourceCity, it.DestinationCity) {
		return nil
	}
	return domain.NewValidationError(domain.ErrRouteNotServed, domain.FieldAirline,
		fmt.Sprintf("%s does not operate on the route %s to %s", it.Airline, it.SourceCity, it.DestinationCity))
}

// formatHours renders hours in shortest decimal form: 2, 2.5, 1.5.
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
