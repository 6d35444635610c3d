package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runSecurity(config SecurityHeadersConfig) http.Header {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = SecurityHeaders(config)(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})(c)
	return rec.Header()
}

func TestSecurityHeaders_DefaultHeaders(t *testing.T) {
	h := runSecurity(SecurityHeadersConfig{})

	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'; base-uri 'none'", h.Get("Content-Security-Policy"))
	assert.Equal(t, "no-referrer", h.Get("Referrer-Policy"))
	assert.Contains(t, h.Get("Permissions-Policy"), "camera=()")
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
}

func TestSecurityHeaders_Overrides(t *testing.T) {
	h := runSecurity(SecurityHeadersConfig{
		ReferrerPolicy: "same-origin",
	})

	assert.Equal(t, "same-origin", h.Get("Referrer-Policy"))
	// Untouched fields keep their defaults
	assert.Equal(t, DefaultSecurityHeadersConfig().ContentSecurityPolicy, h.Get("Content-Security-Policy"))
	assert.Equal(t, DefaultSecurityHeadersConfig().PermissionsPolicy, h.Get("Permissions-Policy"))
}
