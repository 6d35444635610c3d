package handlers

import (
	"net/http"

	"github.com/holyfit/holyfit-api/pkg/api/errors"
	"github.com/holyfit/holyfit-api/pkg/auth"
	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/labstack/echo/v4"
)

// SessionHandler issues anonymous session tokens
type SessionHandler struct {
	secret          string
	expirationHours int
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(secret string, expirationHours int) *SessionHandler {
	return &SessionHandler{secret: secret, expirationHours: expirationHours}
}

// CreateSession godoc
// @Summary Start a session
// @Description Issues a token that identifies the caller's views and subscription tier
// @Tags Sessions
// @Produce json
// @Success 201 {object} models.SessionResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c echo.Context) error {
	sess, err := auth.NewSession(h.secret, h.expirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.SessionResponse{
		Token:     sess.Token,
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt.Unix(),
	})
}
