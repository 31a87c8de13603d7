package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	err := Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestPrediction(t *testing.T) {
	_, c, rec := setupEcho()

	err := Prediction(c, 5953.5)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"prediction": 5953.5}`, rec.Body.String())
}

func TestValidation(t *testing.T) {
	t.Run("valid omits message", func(t *testing.T) {
		_, c, rec := setupEcho()

		require.NoError(t, Validation(c, ValidationResult{Valid: true}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"valid": true}`, rec.Body.String())
	})

	t.Run("invalid carries message", func(t *testing.T) {
		_, c, rec := setupEcho()

		require.NoError(t, Validation(c, ValidationResult{Message: "Departure date cannot be in the past"}))

		assert.JSONEq(t, `{"valid": false, "message": "Departure date cannot be in the past"}`, rec.Body.String())
	})
}

func TestErrorBuilders(t *testing.T) {
	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"invalid body", InvalidRequestBody, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody},
		{"estimator failure", func(c echo.Context) error {
			return EstimatorFailure(c, "An error occurred while predicting the price")
		}, http.StatusBadGateway, CodeEstimatorError, "An error occurred while predicting the price"},
		{"in flight", SubmissionInFlight, http.StatusConflict, CodeSubmissionInFlight, MsgSubmissionInFlight},
		{"rate limited", TooManyRequests, http.StatusTooManyRequests, CodeRateLimited, MsgRateLimited},
		{"deadline", GatewayTimeout, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout},
		{"cancelled", RequestCancelled, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled},
		{"internal", InternalServerError, http.StatusInternalServerError, CodeInternalError, MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			result := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMsg, result.Message)
			assert.NotContains(t, rec.Body.String(), "details", "details omitted when empty")
		})
	}
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()

	details := map[string]string{
		"stops":   "stops must be one of: zero, one, two_or_more; got \"three\"",
		"airline": "airline is required",
	}
	require.NoError(t, ValidationError(c, details))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, details, result.Details)
}

func TestRuleViolation(t *testing.T) {
	const msg = "Source and destination cities cannot be the same."

	t.Run("keyed by field", func(t *testing.T) {
		_, c, rec := setupEcho()

		require.NoError(t, RuleViolation(c, "destination_city", msg))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		result := decodeError(t, rec)
		assert.Equal(t, CodeValidationError, result.Code)
		assert.Equal(t, msg, result.Message)
		assert.Equal(t, map[string]string{"destination_city": msg}, result.Details)
	})

	t.Run("without field", func(t *testing.T) {
		_, c, rec := setupEcho()

		require.NoError(t, RuleViolation(c, "", msg))

		assert.Nil(t, decodeError(t, rec).Details)
	})
}

func TestFail_CustomStatus(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, Fail(c, http.StatusServiceUnavailable, "unavailable", "try later", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"code":"unavailable","message":"try later"}`, rec.Body.String())
}
