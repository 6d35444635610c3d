package middleware

import (
	"net/http"
	"strings"

	"github.com/holyfit/holyfit-api/pkg/auth"
	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/labstack/echo/v4"
)

// SessionKey is the echo context key holding the session id
const SessionKey = "session_id"

// RequireSession rejects requests without a valid session token
func RequireSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string

			// Get authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" {
				// Check Bearer prefix
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || parts[0] != "Bearer" {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
						Error:   "invalid_token_format",
						Message: "Authorization header must be 'Bearer {token}'",
					})
				}
				token = parts[1]
			}

			// Download links cannot set headers
			if token == "" {
				token = c.QueryParam("token")
			}

			if token == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header or token query parameter is required",
				})
			}

			claims, err := auth.ValidateJWT(token, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: "Session token is invalid or expired",
				})
			}

			c.Set(SessionKey, claims.SessionID())

			return next(c)
		}
	}
}

// SessionID returns the session id set by RequireSession
func SessionID(c echo.Context) string {
	id, _ := c.Get(SessionKey).(string)
	return id
}
