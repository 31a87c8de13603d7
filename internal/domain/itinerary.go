// Package domain contains the core business entities and rules for the flight price estimation service.
// The itinerary plausibility rules live here and depend only on the standard library.
package domain

import (
	"fmt"
	"strings"
)

// Airline identifies the operating carrier of an itinerary.
type Airline string

// Supported airlines.
const (
	AirlineSpiceJet Airline = "SpiceJet"
	AirlineAirAsia  Airline = "AirAsia"
	AirlineVistara  Airline = "Vistara"
	AirlineGoFirst  Airline = "GO_FIRST"
	AirlineIndigo   Airline = "Indigo"
	AirlineAirIndia Airline = "Air_India"
)

// Airlines lists every supported airline.
var Airlines = []Airline{
	AirlineSpiceJet, AirlineAirAsia, AirlineVistara,
	AirlineGoFirst, AirlineIndigo, AirlineAirIndia,
}

// City is one of the cities the estimator was trained on.
type City string

// Supported cities.
const (
	CityDelhi     City = "Delhi"
	CityMumbai    City = "Mumbai"
	CityBangalore City = "Bangalore"
	CityKolkata   City = "Kolkata"
	CityHyderabad City = "Hyderabad"
	CityChennai   City = "Chennai"
)

// Cities lists every supported city.
var Cities = []City{
	CityDelhi, CityMumbai, CityBangalore,
	CityKolkata, CityHyderabad, CityChennai,
}

// Stops is the number of intermediate stops of an itinerary.
type Stops string

// Supported stop counts.
const (
	StopsZero      Stops = "zero"
	StopsOne       Stops = "one"
	StopsTwoOrMore Stops = "two_or_more"
)

// AllStops lists every supported stop count.
var AllStops = []Stops{StopsZero, StopsOne, StopsTwoOrMore}

// TravelClass is the fare class of an itinerary.
type TravelClass string

// Supported travel classes.
const (
	ClassEconomy  TravelClass = "Economy"
	ClassBusiness TravelClass = "Business"
)

// TravelClasses lists every supported travel class.
var TravelClasses = []TravelClass{ClassEconomy, ClassBusiness}

// Field names an itinerary field using its wire name.
type Field string

// Itinerary fields.
const (
	FieldAirline         Field = "airline"
	FieldSourceCity      Field = "source_city"
	FieldDestinationCity Field = "destination_city"
	FieldDepartureTime   Field = "departure_time"
	FieldArrivalTime     Field = "arrival_time"
	FieldStops           Field = "stops"
	FieldClass           Field = "class"
	FieldDepartureDate   Field = "departure_date"
)

// RequiredFields lists the fields a submitted itinerary must carry, in reporting order.
var RequiredFields = []Field{
	FieldAirline,
	FieldSourceCity,
	FieldDepartureTime,
	FieldStops,
	FieldArrivalTime,
	FieldDestinationCity,
	FieldClass,
	FieldDepartureDate,
}

// IsTimeSlot reports whether the field holds a time-of-day slot.
func (f Field) IsTimeSlot() bool {
	return f == FieldDepartureTime || f == FieldArrivalTime
}

// Itinerary is a proposed flight as collected from the user.
// A zero field means the user has not chosen a value yet.
type Itinerary struct {
	Airline         Airline     `json:"airline"`
	SourceCity      City        `json:"source_city"`
	DestinationCity City        `json:"destination_city"`
	DepartureTime   TimeSlot    `json:"departure_time"`
	ArrivalTime     TimeSlot    `json:"arrival_time"`
	Stops           Stops       `json:"stops"`
	Class           TravelClass `json:"class"`
	DepartureDate   Date        `json:"departure_date"`
}

// Route returns the directional route of the itinerary.
func (it Itinerary) Route() Route {
	return NewRoute(it.SourceCity, it.DestinationCity)
}

// HasTimeSlots reports whether both departure and arrival slots are populated.
func (it Itinerary) HasTimeSlots() bool {
	return it.DepartureTime != "" && it.ArrivalTime != ""
}

// Fingerprint returns a canonical key identifying the itinerary's values.
// Equal itineraries always produce the same fingerprint.
func (it Itinerary) Fingerprint() string {
	return strings.Join([]string{
		string(it.Airline),
		string(it.SourceCity),
		string(it.DestinationCity),
		string(it.DepartureTime),
		string(it.ArrivalTime),
		string(it.Stops),
		string(it.Class),
		it.DepartureDate.String(),
	}, "|")
}

// MissingFields returns the required fields that are still empty, in RequiredFields order.
func (it Itinerary) MissingFields() []Field {
	var missing []Field
	for _, f := range RequiredFields {
		if it.isEmpty(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

func (it Itinerary) isEmpty(f Field) bool {
	switch f {
	case FieldAirline:
		return it.Airline == ""
	case FieldSourceCity:
		return it.SourceCity == ""
	case FieldDestinationCity:
		return it.DestinationCity == ""
	case FieldDepartureTime:
		return it.DepartureTime == ""
	case FieldArrivalTime:
		return it.ArrivalTime == ""
	case FieldStops:
		return it.Stops == ""
	case FieldClass:
		return it.Class == ""
	case FieldDepartureDate:
		return it.DepartureDate.IsZero()
	default:
		return true
	}
}

// ApplyFieldChange returns a copy of it with field set to value.
// An empty value clears the field. Values must match an enumeration member
// exactly, surrounding whitespace included. The input itinerary is never modified.
func ApplyFieldChange(it Itinerary, field Field, value string) (Itinerary, error) {
	switch field {
	case FieldAirline:
		v, err := parseEnum(field, value, Airlines)
		if err != nil {
			return it, err
		}
		it.Airline = v
	case FieldSourceCity:
		v, err := parseEnum(field, value, Cities)
		if err != nil {
			return it, err
		}
		it.SourceCity = v
	case FieldDestinationCity:
		v, err := parseEnum(field, value, Cities)
		if err != nil {
			return it, err
		}
		it.DestinationCity = v
	case FieldDepartureTime:
		v, err := parseEnum(field, value, TimeSlots)
		if err != nil {
			return it, err
		}
		it.DepartureTime = v
	case FieldArrivalTime:
		v, err := parseEnum(field, value, TimeSlots)
		if err != nil {
			return it, err
		}
		it.ArrivalTime = v
	case FieldStops:
		v, err := parseEnum(field, value, AllStops)
		if err != nil {
			return it, err
		}
		it.Stops = v
	case FieldClass:
		v, err := parseEnum(field, value, TravelClasses)
		if err != nil {
			return it, err
		}
		it.Class = v
	case FieldDepartureDate:
		if value == "" {
			it.DepartureDate = Date{}
			return it, nil
		}
		d, err := ParseDate(value)
		if err != nil {
			return it, &FieldError{Err: ErrInvalidFieldValue, Field: field, Message: MsgInvalidDateFormat}
		}
		it.DepartureDate = d
	default:
		return it, &FieldError{Err: ErrUnknownField, Field: field, Message: fmt.Sprintf("%q is not an itinerary field", string(field))}
	}

	return it, nil
}

// parseEnum matches value exactly against the allowed set. Empty input yields the zero value.
func parseEnum[T ~string](field Field, value string, allowed []T) (T, error) {
	var zero T
	if value == "" {
		return zero, nil
	}
	for _, a := range allowed {
		if string(a) == value {
			return a, nil
		}
	}
	return zero, &FieldError{
		Err:     ErrInvalidFieldValue,
		Field:   field,
		Message: fmt.Sprintf("%s must be one of: %s; got %q", field, joinEnum(allowed), value),
	}
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
