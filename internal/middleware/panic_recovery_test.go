package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expenseease/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) recoverFrom(panicValue interface{}, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(panicValue)
	})

	s.NotPanics(func() {
		_ = handler(c)
	})
	return rec
}

func (s *PanicRecoveryTestSuite) TestPanicBecomesErrorEnvelope() {
	rec := s.recoverFrom("boom", "trace-abc")

	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("SYSTEM_001", resp.Error.Code)
	s.Equal("trace-abc", resp.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestMissingTraceIDReportedAsUnknown() {
	rec := s.recoverFrom("boom", "")

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("unknown", resp.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestNonStringPanicValues() {
	for _, v := range []interface{}{42, struct{ msg string }{"bad"}, nil} {
		rec := s.recoverFrom(v, "trace-abc")
		s.Equal(http.StatusInternalServerError, rec.Code)
	}
}

func (s *PanicRecoveryTestSuite) TestNormalFlowUntouched() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}
