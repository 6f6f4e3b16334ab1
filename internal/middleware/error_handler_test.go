package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"expenseease/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCustomHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-404")

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errorResponse errors.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	assert.Equal(t, string(errors.SystemRouteNotFound), errorResponse.Error.Code)
	assert.Equal(t, "trace-404", errorResponse.Error.TraceID)
}

func TestCustomHTTPErrorHandler_GenericError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	CustomHTTPErrorHandler(fmt.Errorf("database exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	assert.Equal(t, string(errors.SystemInternalError), errorResponse.Error.Code)
	// Internal details must not leak to the client
	assert.NotContains(t, rec.Body.String(), "database exploded")
	assert.Equal(t, "unknown", errorResponse.Error.TraceID)
}

func TestCustomHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	CustomHTTPErrorHandler(fmt.Errorf("too late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMapHTTPStatusToErrorCode(t *testing.T) {
	tests := []struct {
		status   int
		expected errors.ErrorCode
	}{
		{http.StatusBadRequest, errors.ValidationGeneral},
		{http.StatusUnauthorized, errors.OwnerMissing},
		{http.StatusNotFound, errors.SystemRouteNotFound},
		{http.StatusTooManyRequests, errors.SystemRateLimitExceeded},
		{http.StatusInternalServerError, errors.SystemInternalError},
		{http.StatusTeapot, errors.SystemUnexpectedError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, mapHTTPStatusToErrorCode(tt.status), "status %d", tt.status)
	}
}
