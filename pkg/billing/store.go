package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/holyfit/holyfit-api/pkg/cache"
)

// TierStore records the subscription tier of each session
type TierStore interface {
	SetTier(ctx context.Context, sessionID, tier string) error
	Tier(ctx context.Context, sessionID string) (string, error)
}

// RedisTierStore keeps tiers in Redis without expiry
type RedisTierStore struct {
	cache *cache.Client
}

// NewRedisTierStore creates a TierStore backed by Redis
func NewRedisTierStore(c *cache.Client) *RedisTierStore {
	return &RedisTierStore{cache: c}
}

func tierKey(sessionID string) string {
	return "holyfit:tier:" + sessionID
}

// SetTier stores tier for a session
func (s *RedisTierStore) SetTier(ctx context.Context, sessionID, tier string) error {
	if err := s.cache.Set(ctx, tierKey(sessionID), tier, 0); err != nil {
		return fmt.Errorf("failed to store tier: %w", err)
	}
	return nil
}

// Tier returns the stored tier, DefaultTier when none was recorded
func (s *RedisTierStore) Tier(ctx context.Context, sessionID string) (string, error) {
	tier, err := s.cache.Get(ctx, tierKey(sessionID))
	if errors.Is(err, cache.ErrMiss) {
		return DefaultTier, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read tier: %w", err)
	}
	return tier, nil
}
