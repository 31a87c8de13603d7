package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for itinerary validation.
var (
	// ErrInvalidRequest indicates the itinerary could not be interpreted.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidFieldValue indicates a field value outside its enumeration or format.
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrUnknownField indicates a field name that is not part of an itinerary.
	ErrUnknownField = errors.New("unknown field")

	// ErrSameCity indicates source and destination are the same city.
	ErrSameCity = errors.New("same source and destination city")

	// ErrSameSlot indicates equal departure and arrival slots on a route that does not allow it.
	ErrSameSlot = errors.New("same departure and arrival slot")

	// ErrDurationTooShort indicates the slot gap is below the route's minimum duration.
	ErrDurationTooShort = errors.New("flight duration below route minimum")

	// ErrPastDate indicates a departure date before today.
	ErrPastDate = errors.New("departure date in the past")

	// ErrTooFarInFuture indicates a departure date beyond the booking window.
	ErrTooFarInFuture = errors.New("departure date beyond booking window")

	// ErrMissingField indicates a required field is empty.
	ErrMissingField = errors.New("missing required field")

	// ErrRouteNotServed indicates the airline does not fly the route.
	ErrRouteNotServed = errors.New("airline does not serve route")
)

// Sentinel errors for the price estimation boundary.
var (
	// ErrSubmissionInFlight indicates an estimate for the same session is still outstanding.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrMissingPrediction indicates the estimator answered without a prediction.
	ErrMissingPrediction = errors.New("estimator response has no prediction")
)

// User-facing validation messages.
const (
	MsgSameCity          = "Source and destination cities cannot be the same."
	MsgSameSlot          = "Arrival time cannot be the same as departure time for this route."
	MsgPastDate          = "Departure date cannot be in the past"
	MsgInvalidDateFormat = "Invalid departure date format"
	MsgEstimateFailed    = "An error occurred while predicting the price"
)

// ValidationError is a rule violation with the exact message shown to the user.
// It unwraps to the sentinel of the rule that failed.
type ValidationError struct {
	Err     error
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given rule.
func NewValidationError(rule error, field Field, message string) *ValidationError {
	return &ValidationError{
		Err:     rule,
		Field:   string(field),
		Message: message,
	}
}

// Error returns the user-facing message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the rule sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FieldError is a malformed value for one itinerary field. It unwraps to
// ErrInvalidFieldValue or ErrUnknownField.
type FieldError struct {
	Err     error
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// AsFieldError extracts a FieldError from err.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// EstimatorError is a failure at the price estimation boundary.
type EstimatorError struct {
	// StatusCode is the collaborator's HTTP status, 0 for transport failures.
	StatusCode int

	// Message is safe to show to the user.
	Message string

	// Err is the underlying cause.
	Err error
}

// NewEstimatorError creates an EstimatorError. An empty message falls back to MsgEstimateFailed.
func NewEstimatorError(statusCode int, message string, err error) *EstimatorError {
	if message == "" {
		message = MsgEstimateFailed
	}
	return &EstimatorError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func (e *EstimatorError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("estimator: %s", e.Message)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("estimator (%d %s): %s: %v", e.StatusCode, http.StatusText(e.StatusCode), e.Message, e.Err)
	}
	return fmt.Sprintf("estimator: %s: %v", e.Message, e.Err)
}

func (e *EstimatorError) Unwrap() error {
	return e.Err
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsEstimatorError extracts an EstimatorError from err.
func AsEstimatorError(err error) (*EstimatorError, bool) {
	var ee *EstimatorError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// IsInvalidRequest checks if the error is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidFieldValue) ||
		errors.Is(err, ErrUnknownField)
}

// IsSubmissionInFlight checks if the error is a rejected re-submission.
func IsSubmissionInFlight(err error) bool {
	return errors.Is(err, ErrSubmissionInFlight)
}
