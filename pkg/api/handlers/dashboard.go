package handlers

import (
	"net/http"

	"github.com/holyfit/holyfit-api/pkg/api/errors"
	"github.com/holyfit/holyfit-api/pkg/api/middleware"
	"github.com/holyfit/holyfit-api/pkg/dashboard"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the home screen
type DashboardHandler struct {
	dashboard *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboard: service}
}

// GetDashboard godoc
// @Summary Get the dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardSnapshot
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	snapshot, err := h.dashboard.Snapshot(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}
