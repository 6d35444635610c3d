package models

// SubscriptionTier represents a plan shown on the pricing page
type SubscriptionTier struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended,omitempty"`
}

// Clone returns a deep copy of the tier
func (t SubscriptionTier) Clone() SubscriptionTier {
	t.Features = append([]string(nil), t.Features...)
	return t
}

// TiersResponse wraps the tier catalog
type TiersResponse struct {
	Tiers []SubscriptionTier `json:"tiers"`
}

// CheckoutRequest represents a request to create a checkout session
type CheckoutRequest struct {
	Tier string `json:"tier" validate:"required,oneof=basic pro elite"`
}

// CheckoutResponse represents a checkout session response
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}
