// Package service contains the validation orchestrator: remote-first
// scoring with a silent local fallback
package service

import (
	"context"
	"strings"
	"time"

	"greenpath/internal/adapters/scoringapi"
	"greenpath/internal/core/scoring"
	perr "greenpath/internal/platform/errors"
	"greenpath/internal/platform/logger"
	"greenpath/internal/services/api/validation/domain"
)

// Service defines the validation service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the orchestrator. The remote and audit seams are
// optional; a nil remote always takes the local path
type Svc struct {
	local  *scoring.Scorer
	remote domain.RemoteScorer
	audit  domain.AuditSink
	log    logger.Logger
	now    func() time.Time
}

// New constructs the orchestrator
func New(local *scoring.Scorer, remote domain.RemoteScorer, audit domain.AuditSink) *Svc {
	if local == nil {
		panic("validation.Service requires a local scorer")
	}
	return &Svc{
		local:  local,
		remote: remote,
		audit:  audit,
		log:    *logger.Named("validation"),
		now:    time.Now,
	}
}

// Validate scores an idea. The remote service gets exactly one attempt;
// any remote failure silently falls back to the local scorer and the
// caller cannot tell which path produced the result. Only the log lines
// distinguish the two. The audit record is written on the remote path only
func (s *Svc) Validate(ctx context.Context, userID string, in domain.IdeaInput) (scoring.Result, error) {
	if strings.TrimSpace(userID) == "" {
		return scoring.Result{}, perr.Unauthorizedf("missing caller identity")
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return scoring.Result{}, perr.InvalidArgf("title and description are required")
	}

	if s.remote != nil {
		res, err := s.remote.Score(ctx, scoringapi.ScoreRequest{
			Title:           in.Title,
			Description:     in.Description,
			TargetMarket:    in.TargetMarket,
			InnovationLevel: in.InnovationLevel,
		})
		if err == nil {
			s.writeAudit(ctx, userID, in.Title, res)
			s.log.Info().
				Str("path", "remote").
				Int("score", res.Score).
				Msg("idea validated")
			return res, nil
		}
		s.log.Warn().Err(err).Msg("remote scoring failed, falling back")
	}

	res := s.local.Score(scoring.Input{Title: in.Title, Description: in.Description})
	s.log.Info().
		Str("path", "fallback").
		Str("preset", s.local.Config().Name).
		Int("score", res.Score).
		Msg("idea validated")
	return res, nil
}

// writeAudit is best-effort: a failed append never invalidates an
// already-computed result
func (s *Svc) writeAudit(ctx context.Context, userID, title string, res scoring.Result) {
	if s.audit == nil {
		return
	}
	err := s.audit.Append(ctx, domain.AuditEntry{
		UserID:    userID,
		IdeaTitle: title,
		Result:    res,
		At:        s.now().UTC(),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("audit append failed")
	}
}
