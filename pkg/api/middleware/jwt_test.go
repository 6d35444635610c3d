package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/holyfit/holyfit-api/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-minimum-32-characters-long"

func newSessionEcho() *echo.Echo {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, SessionID(c))
	}, RequireSession(testSecret))
	return e
}

func TestRequireSession_BearerHeader(t *testing.T) {
	sess, err := auth.NewSession(testSecret, 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	rec := httptest.NewRecorder()
	newSessionEcho().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess.ID, rec.Body.String())
}

func TestRequireSession_QueryToken(t *testing.T) {
	sess, err := auth.NewSession(testSecret, 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me?token="+sess.Token, nil)
	rec := httptest.NewRecorder()
	newSessionEcho().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess.ID, rec.Body.String())
}

func TestRequireSession_Rejections(t *testing.T) {
	other, err := auth.NewSession("another-secret-key-minimum-32-characters", 1)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing", "", "missing_token"},
		{"basic scheme", "Basic dXNlcjpwYXNz", "invalid_token_format"},
		{"no token after bearer", "Bearer", "invalid_token_format"},
		{"garbage", "Bearer not-a-jwt", "invalid_token"},
		{"foreign secret", "Bearer " + other.Token, "invalid_token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			newSessionEcho().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error":"`+tt.code+`"`)
		})
	}
}

func TestSessionID_Unset(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, SessionID(c))
}
