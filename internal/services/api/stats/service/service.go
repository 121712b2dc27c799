// Package service contains the stats workflows
package service

import (
	"context"
	"math"

	"greenpath/internal/modkit/repokit"
	"greenpath/internal/services/api/stats/domain"
	"greenpath/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a stats service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("stats.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("stats.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Me aggregates the caller's ideas into dashboard stats
func (s *Svc) Me(ctx context.Context, userID string) (domain.UserStats, error) {
	t, err := s.Repo.TotalsByOwner(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	avg := 0
	if t.Total > 0 {
		avg = int(math.Round(float64(t.ScoreSum) / float64(t.Total)))
	}

	return domain.UserStats{
		TotalIdeas:          t.Total,
		AverageScore:        avg,
		HighImpactIdeas:     t.HighImpact,
		SustainabilityLevel: domain.SustainabilityLevel(avg),
	}, nil
}
