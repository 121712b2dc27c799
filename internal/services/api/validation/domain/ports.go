package domain

import (
	"context"

	"greenpath/internal/adapters/scoringapi"
	"greenpath/internal/core/scoring"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Validate(ctx context.Context, userID string, in IdeaInput) (scoring.Result, error)
}

// RemoteScorer is the remote scoring seam; the http client satisfies it
type RemoteScorer interface {
	Score(ctx context.Context, req scoringapi.ScoreRequest) (scoring.Result, error)
}

// AuditSink records remote-path validations, append-only
type AuditSink interface {
	Append(ctx context.Context, e AuditEntry) error
}
