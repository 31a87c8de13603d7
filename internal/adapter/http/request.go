// Package http provides the HTTP handler layer for the price estimation API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"strings"

	"github.com/flight-price/flight-price-estimation-service/internal/domain"
)

// ItineraryRequest is an itinerary as submitted by the client form.
// Empty fields are allowed here; completeness is a rule of the exhaustive check.
type ItineraryRequest struct {
	// Airline is one of SpiceJet, AirAsia, Vistara, GO_FIRST, Indigo, Air_India
	Airline string `json:"airline" example:"Vistara"`

	// SourceCity is one of Delhi, Mumbai, Bangalore, Kolkata, Hyderabad, Chennai
	SourceCity string `json:"source_city" example:"Delhi"`

	// DestinationCity is one of Delhi, Mumbai, Bangalore, Kolkata, Hyderabad, Chennai
	DestinationCity string `json:"destination_city" example:"Mumbai"`

	// DepartureTime is one of Early_Morning, Morning, Afternoon, Evening, Night, Late_Night
	DepartureTime string `json:"departure_time" example:"Morning"`

	// ArrivalTime is one of Early_Morning, Morning, Afternoon, Evening, Night, Late_Night
	ArrivalTime string `json:"arrival_time" example:"Evening"`

	// Stops is one of zero, one, two_or_more
	Stops string `json:"stops" example:"zero"`

	// Class is Economy or Business
	Class string `json:"class" example:"Economy"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date" example:"2026-11-15"`
}

// FieldChangeRequest is a single edit to an itinerary in progress.
type FieldChangeRequest struct {
	// Itinerary is the state before the edit
	Itinerary ItineraryRequest `json:"itinerary"`

	// Field is the wire name of the edited field (e.g., "arrival_time")
	Field string `json:"field" example:"arrival_time"`

	// Value is the new value; empty clears the field
	Value string `json:"value" example:"Evening"`
}

// FieldChangeResponse is the itinerary after an edit and the outcome of its incremental check.
type FieldChangeResponse struct {
	Itinerary ItineraryRequest `json:"itinerary"`
	Valid     bool             `json:"valid" example:"true"`
	Message   string           `json:"message,omitempty" example:""`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Unwrap classifies every collected error as an invalid request.
func (v *ValidationErrors) Unwrap() error {
	return domain.ErrInvalidRequest
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

type fieldValue struct {
	field domain.Field
	value string
}

// values pairs every field with its raw value, in reporting order.
func (r *ItineraryRequest) values() []fieldValue {
	return []fieldValue{
		{domain.FieldAirline, r.Airline},
		{domain.FieldSourceCity, r.SourceCity},
		{domain.FieldDepartureTime, r.DepartureTime},
		{domain.FieldStops, r.Stops},
		{domain.FieldArrivalTime, r.ArrivalTime},
		{domain.FieldDestinationCity, r.DestinationCity},
		{domain.FieldClass, r.Class},
		{domain.FieldDepartureDate, r.DepartureDate},
	}
}

// ToItinerary parses the request into a domain itinerary. Every malformed field is
// reported in the returned *ValidationErrors; missing fields are left empty.
func (r *ItineraryRequest) ToItinerary() (domain.Itinerary, error) {
	errs := &ValidationErrors{}

	var it domain.Itinerary
	for _, fv := range r.values() {
		next, err := domain.ApplyFieldChange(it, fv.field, fv.value)
		if err != nil {
			addFieldError(errs, fv.field, err)
			continue
		}
		it = next
	}

	if errs.HasErrors() {
		return domain.Itinerary{}, errs
	}
	return it, nil
}

// Validate checks the shape of the edit request.
func (r *FieldChangeRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Field = strings.TrimSpace(r.Field)
	if r.Field == "" {
		errs.Add("field", "field is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// NewItineraryRequest renders a domain itinerary in its wire form.
func NewItineraryRequest(it domain.Itinerary) ItineraryRequest {
	return ItineraryRequest{
		Airline:         string(it.Airline),
		SourceCity:      string(it.SourceCity),
		DestinationCity: string(it.DestinationCity),
		DepartureTime:   string(it.DepartureTime),
		ArrivalTime:     string(it.ArrivalTime),
		Stops:           string(it.Stops),
		Class:           string(it.Class),
		DepartureDate:   it.DepartureDate.String(),
	}
}

func addFieldError(errs *ValidationErrors, field domain.Field, err error) {
	if fe, ok := domain.AsFieldError(err); ok {
		errs.Add(string(fe.Field), fe.Message)
		return
	}
	errs.Add(string(field), err.Error())
}
