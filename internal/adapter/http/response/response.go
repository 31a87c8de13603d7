// Package response writes the JSON bodies of the estimation API. Every failure
// uses ErrorDetail so clients can switch on Code.
package response

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	Code    string            `json:"code" example:"validation_error"`
	Message string            `json:"message" example:"Source and destination cities cannot be the same."`
	Details map[string]string `json:"details,omitempty"` // field name to message
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeEstimatorError     = "estimator_error"
	CodeSubmissionInFlight = "submission_in_flight"
	CodeRateLimited        = "rate_limited"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgSubmissionInFlight = "A price estimate for this itinerary is already in progress"
	MsgRateLimited        = "Too many requests, please slow down"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)
