package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Fail writes an ErrorDetail with the given status. Details is omitted when empty.
func Fail(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{Code: code, Message: message, Details: details})
}

// InvalidRequestBody writes 400 for a body that is not a JSON itinerary.
func InvalidRequestBody(c echo.Context) error {
	return Fail(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes 400 with one message per offending field.
func ValidationError(c echo.Context, details map[string]string) error {
	return Fail(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// RuleViolation writes 400 carrying the user-facing message of the failed itinerary rule,
// keyed by field when the rule concerns one.
func RuleViolation(c echo.Context, field, message string) error {
	var details map[string]string
	if field != "" {
		details = map[string]string{field: message}
	}
	return Fail(c, http.StatusBadRequest, CodeValidationError, message, details)
}

// EstimatorFailure writes 502 with a message safe to show the user.
func EstimatorFailure(c echo.Context, message string) error {
	return Fail(c, http.StatusBadGateway, CodeEstimatorError, message, nil)
}

// SubmissionInFlight writes 409 for a re-submission while the session's estimate is outstanding.
func SubmissionInFlight(c echo.Context) error {
	return Fail(c, http.StatusConflict, CodeSubmissionInFlight, MsgSubmissionInFlight, nil)
}

// TooManyRequests writes 429.
func TooManyRequests(c echo.Context) error {
	return Fail(c, http.StatusTooManyRequests, CodeRateLimited, MsgRateLimited, nil)
}

// GatewayTimeout writes 504 when the request deadline passed.
func GatewayTimeout(c echo.Context) error {
	return Fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes 504 when the client went away.
func RequestCancelled(c echo.Context) error {
	return Fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes 500 without revealing the cause.
func InternalServerError(c echo.Context) error {
	return Fail(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
