// Package domain holds the idea entity and DTOs for http and service contracts
package domain

import "time"

// Status values are caller-driven; no transition guard is enforced
const (
	StatusDraft        = "draft"
	StatusValidating   = "validating"
	StatusValidated    = "validated"
	StatusImplementing = "implementing"
)

// Idea is a persisted business idea owned by exactly one user.
// Validation fields are copied from a ValidationResult at validation
// time and are not re-derived on reads
type Idea struct {
	ID              string    `json:"id" example:"7b0d1f3e-93a1-4a63-9c86-0c4f6f6d2f11"`
	Title           string    `json:"title" example:"Community solar kits"`
	Description     string    `json:"description" example:"Off-grid solar kits for rural co-ops"`
	TargetMarket    string    `json:"target_market,omitempty" example:"East Africa"`
	InnovationLevel string    `json:"innovation_level,omitempty" example:"transformative"`
	Status          string    `json:"status" example:"validated"`
	ValidationScore *int      `json:"validation_score,omitempty" example:"87"`
	Risks           []string  `json:"risks,omitempty"`
	Opportunities   []string  `json:"opportunities,omitempty"`
	SDGAlignment    []int     `json:"sdg_alignment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
