package handlers

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/holyfit/holyfit-api/pkg/api/errors"
	"github.com/holyfit/holyfit-api/pkg/api/middleware"
	"github.com/holyfit/holyfit-api/pkg/billing"
	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/labstack/echo/v4"
)

// maxWebhookBytes bounds the Stripe event body
const maxWebhookBytes = 65536

// CheckoutRecorder counts started checkouts
type CheckoutRecorder interface {
	RecordCheckoutStarted(tier string)
}

// BillingHandler handles subscription tiers and Stripe checkout
type BillingHandler struct {
	billing   *billing.Service
	validator *validator.Validate
	checkouts CheckoutRecorder
}

// NewBillingHandler creates a new billing handler. checkouts may be nil.
func NewBillingHandler(service *billing.Service, checkouts CheckoutRecorder) *BillingHandler {
	return &BillingHandler{
		billing:   service,
		validator: validator.New(),
		checkouts: checkouts,
	}
}

// GetTiers godoc
// @Summary List subscription tiers
// @Tags Billing
// @Produce json
// @Success 200 {object} models.TiersResponse
// @Router /subscriptions/tiers [get]
func (h *BillingHandler) GetTiers(c echo.Context) error {
	return c.JSON(http.StatusOK, models.TiersResponse{Tiers: h.billing.Tiers()})
}

// GetCurrentTier godoc
// @Summary Get the session's subscription tier
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SubscriptionTier
// @Router /subscriptions/current [get]
func (h *BillingHandler) GetCurrentTier(c echo.Context) error {
	tier, err := h.billing.CurrentTier(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, tier)
}

// CreateCheckout godoc
// @Summary Start a subscription checkout
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CheckoutRequest true "Tier to buy (pro or elite)"
// @Success 200 {object} models.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse "Billing not configured"
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.billing.CreateCheckoutSession(c.Request().Context(), middleware.SessionID(c), req.Tier)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	if h.checkouts != nil {
		h.checkouts.RecordCheckoutStarted(req.Tier)
	}
	return c.JSON(http.StatusOK, resp)
}

// StripeWebhook godoc
// @Summary Receive Stripe events
// @Tags Billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse "Bad signature"
// @Router /webhook/stripe [post]
func (h *BillingHandler) StripeWebhook(c echo.Context) error {
	signature := c.Request().Header.Get("Stripe-Signature")
	if signature == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_signature",
			Message: "Stripe-Signature header is required",
		})
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBytes))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.billing.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
