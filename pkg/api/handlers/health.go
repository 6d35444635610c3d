package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/holyfit/holyfit-api/pkg/billing"
	"github.com/holyfit/holyfit-api/pkg/cache"
	"github.com/holyfit/holyfit-api/pkg/content"
	"github.com/holyfit/holyfit-api/pkg/jobs"
	httpmw "github.com/holyfit/holyfit-api/pkg/middleware"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports service status
type HealthHandler struct {
	cache    *cache.Client
	provider *content.Provider
	billing  *billing.Service
	probe    *jobs.ProviderProbe
}

// NewHealthHandler creates a new health handler. probe may be nil.
func NewHealthHandler(c *cache.Client, provider *content.Provider, billingService *billing.Service, probe *jobs.ProviderProbe) *HealthHandler {
	return &HealthHandler{cache: c, provider: provider, billing: billingService, probe: probe}
}

// Root godoc
// @Summary Service info
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"service": "HOLYFIT API",
		"version": httpmw.CurrentAPIVersion.Version,
		"docs":    "/api/v1/health",
	})
}

// Health godoc
// @Summary Health check
// @Description Checks Redis and reports which content backend and billing mode are active
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	redis := "up"
	code := http.StatusOK
	if err := h.cache.Ping(ctx); err != nil {
		status = "degraded"
		redis = "down"
		code = http.StatusServiceUnavailable
	}

	body := map[string]interface{}{
		"status":          status,
		"redis":           redis,
		"content_backend": h.provider.Backend(),
		"billing":         h.billing.Configured(),
		"time":            time.Now().UTC().Format(time.RFC3339),
	}
	// The model being down is not fatal: content falls back
	if h.probe != nil {
		body["content_probe"] = h.probe.Status()
	}

	return c.JSON(code, body)
}

// Version godoc
// @Summary API version
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /version [get]
func (h *HealthHandler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, httpmw.VersionInfo(httpmw.CurrentAPIVersion))
}

// Ping godoc
// @Summary Liveness probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string "pong"
// @Router /ping [get]
func (h *HealthHandler) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}
