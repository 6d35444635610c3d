package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/holyfit/holyfit-api/pkg/domain"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// newContext creates an echo.Context backed by an httptest.NewRecorder
func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// observe routes the package logger into an in-memory sink for the test
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	prev := log
	SetLogger(logger.FromZap(zap.New(core)))
	t.Cleanup(func() { log = prev })
	return logs
}

func TestValidationError_NoInternalDetails(t *testing.T) {
	logs := observe(t)
	internalMsg := "Key: 'CheckoutRequest.Tier' Error:Field validation for 'Tier' failed on the 'oneof' tag"

	c, rec := newContext(http.MethodPost, "/api/v1/billing/checkout")
	require.NoError(t, ValidationError(c, errors.New(internalMsg)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", parseBody(t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "oneof")

	entries := logs.FilterMessage("validation error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/api/v1/billing/checkout", entries[0].ContextMap()["path"])
}

func TestInternalError_LogsDetail(t *testing.T) {
	logs := observe(t)
	internalMsg := "dial tcp 127.0.0.1:6379: connect: connection refused"

	c, rec := newContext(http.MethodGet, "/api/v1/views/diet")
	require.NoError(t, InternalError(c, errors.New(internalMsg)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "6379")
	require.Equal(t, 1, logs.FilterMessage("internal error").Len())
	assert.Contains(t, logs.All()[0].ContextMap()["error"], "connection refused")
}

func TestUnauthorizedError_HidesReason(t *testing.T) {
	observe(t)
	reason := "token signature is invalid: signature is invalid"

	c, rec := newContext(http.MethodGet, "/api/v1/views/diet")
	require.NoError(t, UnauthorizedError(c, reason))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "signature")
}

func TestFromDomain(t *testing.T) {
	observe(t)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation → 400", domain.NewValidationError("bad"), http.StatusBadRequest, "validation_error"},
		{"bad request → 400", domain.NewBadRequestError("bad"), http.StatusBadRequest, "validation_error"},
		{"not found → 404", domain.NewNotFoundError("view"), http.StatusNotFound, "not_found"},
		{"unauthorized → 401", domain.NewUnauthorizedError(), http.StatusUnauthorized, "unauthorized"},
		{"not configured → 503", domain.NewNotConfiguredError("billing"), http.StatusServiceUnavailable, "service_unavailable"},
		{"plain → 500", errors.New("oops"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/test")
			require.NoError(t, FromDomain(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := parseBody(t, rec)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.NotEmpty(t, resp.Message)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}
