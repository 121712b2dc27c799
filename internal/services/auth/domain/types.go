// Package domain defines the auth service contracts and DTOs
package domain

import "time"

// Tier names for the subscription_tier column
const (
	TierFree       = "free"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// User is the public shape of an account. The password hash never leaves the repo layer
type User struct {
	ID               string    `json:"id" example:"8f14e45f-ceea-4e07-8c65-4f1f0f0d5f2a"`
	Email            string    `json:"email" example:"ada@example.com"`
	DisplayName      string    `json:"display_name" example:"Ada"`
	SubscriptionTier string    `json:"subscription_tier" example:"free"`
	CreatedAt        time.Time `json:"created_at"`
}
