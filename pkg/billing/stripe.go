package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/holyfit/holyfit-api/pkg/domain"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Service handles subscription tiers and Stripe billing
type Service struct {
	config   *StripeConfig
	store    TierStore
	logger   logger.Logger
	onChange func(tier string)
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PricePro      string
	PriceElite    string
	SuccessURL    string
	CancelURL     string
}

// NewService creates a new billing service
func NewService(config *StripeConfig, store TierStore, log logger.Logger) *Service {
	// Set Stripe API key
	stripe.Key = config.SecretKey

	if log == nil {
		log = logger.Default()
	}

	return &Service{
		config: config,
		store:  store,
		logger: log.With("component", "billing"),
	}
}

// OnTierChange registers fn to run after a webhook stores a new tier
func (s *Service) OnTierChange(fn func(tier string)) {
	s.onChange = fn
}

func (s *Service) tierChanged(tier string) {
	if s.onChange != nil {
		s.onChange(tier)
	}
}

// Configured reports whether checkout can be offered
func (s *Service) Configured() bool {
	return s.config.SecretKey != ""
}

// Tiers returns the tier catalog
func (s *Service) Tiers() []models.SubscriptionTier {
	return Tiers()
}

// CurrentTier returns the catalog entry of the tier recorded for a session
func (s *Service) CurrentTier(ctx context.Context, sessionID string) (models.SubscriptionTier, error) {
	id, err := s.store.Tier(ctx, sessionID)
	if err != nil {
		return models.SubscriptionTier{}, domain.NewInternalError(err)
	}
	tier, ok := LookupTier(id)
	if !ok {
		s.logger.Warn("⚠️  Unknown stored tier, using default", "session_id", sessionID, "tier", id)
		tier, _ = LookupTier(DefaultTier)
	}
	return tier, nil
}

// CreateCheckoutSession creates a Stripe subscription checkout for a paid tier
func (s *Service) CreateCheckoutSession(ctx context.Context, sessionID, tier string) (*models.CheckoutResponse, error) {
	// Get price ID for tier
	priceID, err := s.getPriceIDForTier(tier)
	if err != nil {
		return nil, err
	}
	if !s.Configured() || priceID == "" {
		return nil, domain.NewNotConfiguredError("billing")
	}

	metadata := map[string]string{
		"session_id": sessionID,
		"tier":       tier,
	}

	// Create checkout session
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.config.SuccessURL),
		CancelURL:         stripe.String(s.config.CancelURL),
		ClientReferenceID: stripe.String(sessionID),
		Metadata:          metadata,
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		},
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.logger.Info("💳 Checkout session created", "session_id", sessionID, "tier", tier, "checkout_id", sess.ID)

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// HandleWebhook processes Stripe webhook events
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.config.WebhookSecret == "" {
		return domain.NewNotConfiguredError("stripe webhook")
	}

	// Verify webhook signature
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.config.WebhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return domain.NewUnauthorizedError()
	}

	s.logger.Info("📨 Stripe webhook received", "type", event.Type)

	// Handle different event types
	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		s.logger.Debug("Unhandled webhook event type", "type", event.Type)
	}

	return nil
}

// handleCheckoutCompleted handles checkout.session.completed event
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return domain.NewBadRequestError(fmt.Sprintf("failed to unmarshal session: %v", err))
	}

	sessionID := sess.Metadata["session_id"]
	if sessionID == "" {
		sessionID = sess.ClientReferenceID
	}
	if sessionID == "" {
		return domain.NewBadRequestError("session_id not found in metadata")
	}

	tier := sess.Metadata["tier"]
	if _, ok := LookupTier(tier); !ok {
		return domain.NewBadRequestError(fmt.Sprintf("invalid tier in metadata: %q", tier))
	}

	if err := s.store.SetTier(ctx, sessionID, tier); err != nil {
		return domain.NewInternalError(err)
	}

	s.logger.Info("✅ Checkout completed", "session_id", sessionID, "tier", tier)
	s.tierChanged(tier)
	return nil
}

// handleSubscriptionDeleted returns the session to the default tier
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return domain.NewBadRequestError(fmt.Sprintf("failed to unmarshal subscription: %v", err))
	}

	sessionID := sub.Metadata["session_id"]
	if sessionID == "" {
		s.logger.Warn("⚠️  Subscription without session metadata", "subscription", sub.ID)
		return nil
	}

	if err := s.store.SetTier(ctx, sessionID, DefaultTier); err != nil {
		return domain.NewInternalError(err)
	}

	s.logger.Info("🔻 Subscription cancelled", "session_id", sessionID, "subscription", sub.ID)
	s.tierChanged(DefaultTier)
	return nil
}

// getPriceIDForTier returns the Stripe price ID for a paid tier
func (s *Service) getPriceIDForTier(tier string) (string, error) {
	switch tier {
	case TierPro:
		return s.config.PricePro, nil
	case TierElite:
		return s.config.PriceElite, nil
	case TierBasic:
		return "", domain.NewValidationError("the basic tier needs no checkout")
	default:
		return "", domain.NewValidationError(fmt.Sprintf("invalid tier: %s", tier))
	}
}
