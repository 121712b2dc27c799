// Package domain holds DTOs and ports for the validation orchestrator
package domain

import (
	"time"

	"greenpath/internal/core/scoring"
)

// IdeaInput is the ephemeral payload a caller submits for validation
type IdeaInput struct {
	Title           string `json:"title" validate:"required,min=3,max=200" example:"Community solar kits"`
	Description     string `json:"description" validate:"required,min=10,max=4000"`
	TargetMarket    string `json:"target_market,omitempty" validate:"omitempty,max=200"`
	InnovationLevel string `json:"innovation_level,omitempty" validate:"omitempty,oneof=incremental transformative disruptive"`
}

// AuditEntry is one immutable record of a remote-path validation
type AuditEntry struct {
	UserID    string
	IdeaTitle string
	Result    scoring.Result
	At        time.Time
}
