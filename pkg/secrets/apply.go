package secrets

import (
	"context"
	"errors"

	"github.com/holyfit/holyfit-api/config"
)

// Apply overwrites the credential fields of cfg with values from m.
// Keys the manager does not know keep their environment value.
func Apply(ctx context.Context, m Manager, cfg *config.Config) (int, error) {
	targets := map[string]*string{
		"JWT_SECRET":            &cfg.JWTSecret,
		"REDIS_URL":             &cfg.RedisURL,
		"GEMINI_API_KEY":        &cfg.GeminiAPIKey,
		"OPENAI_API_KEY":        &cfg.OpenAIAPIKey,
		"STRIPE_SECRET_KEY":     &cfg.StripeSecretKey,
		"STRIPE_WEBHOOK_SECRET": &cfg.StripeWebhookSecret,
		"SENTRY_DSN":            &cfg.SentryDSN,
	}

	loaded := 0
	for key, field := range targets {
		value, err := m.GetSecret(ctx, key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return loaded, err
		}
		*field = value
		loaded++
	}
	return loaded, nil
}
