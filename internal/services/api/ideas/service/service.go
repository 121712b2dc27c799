// Package service contains the idea CRUD workflows
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"greenpath/internal/modkit/repokit"
	perr "greenpath/internal/platform/errors"
	"greenpath/internal/services/api/ideas/domain"
	"greenpath/internal/services/api/ideas/repo"
)

// Service defines the ideas service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the ideas service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	now    func() time.Time
}

// New constructs an ideas service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("ideas.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ideas.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// Create persists a new idea owned by userID
func (s *Svc) Create(ctx context.Context, userID string, in domain.CreateInput) (domain.Idea, error) {
	if userID == "" {
		return domain.Idea{}, perr.Unauthorizedf("missing caller identity")
	}
	now := s.now().UTC()
	row := repo.Row{
		ID:              uuid.NewString(),
		OwnerID:         userID,
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		TargetMarket:    strings.TrimSpace(in.TargetMarket),
		InnovationLevel: in.InnovationLevel,
		Status:          in.Status,
		ValidationScore: toScore(in.ValidationScore),
		Risks:           in.Risks,
		Opportunities:   in.Opportunities,
		SDGAlignment:    toInt32s(in.SDGAlignment),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if row.Status == "" {
		row.Status = domain.StatusDraft
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		return domain.Idea{}, perr.FromPostgresWithField(err, "failed to save idea")
	}
	return toIdea(row), nil
}

// Get returns one idea owned by userID
func (s *Svc) Get(ctx context.Context, userID, id string) (domain.Idea, error) {
	row, err := s.Repo.ByID(ctx, userID, id)
	if err != nil {
		return domain.Idea{}, err
	}
	return toIdea(row), nil
}

// List returns the user's ideas newest first
func (s *Svc) List(ctx context.Context, userID string) ([]domain.Idea, error) {
	rows, err := s.Repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Idea, 0, len(rows))
	for _, r := range rows {
		out = append(out, toIdea(r))
	}
	return out, nil
}

// Update applies the non nil patch fields and bumps updated_at
func (s *Svc) Update(ctx context.Context, userID, id string, in domain.UpdateInput) (domain.Idea, error) {
	row, err := s.Repo.ByID(ctx, userID, id)
	if err != nil {
		return domain.Idea{}, err
	}

	if in.Title != nil {
		row.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		row.Description = strings.TrimSpace(*in.Description)
	}
	if in.TargetMarket != nil {
		row.TargetMarket = strings.TrimSpace(*in.TargetMarket)
	}
	if in.InnovationLevel != nil {
		row.InnovationLevel = *in.InnovationLevel
	}
	if in.Status != nil {
		row.Status = *in.Status
	}
	if in.ValidationScore != nil {
		row.ValidationScore = toScore(in.ValidationScore)
	}
	if in.Risks != nil {
		row.Risks = in.Risks
	}
	if in.Opportunities != nil {
		row.Opportunities = in.Opportunities
	}
	if in.SDGAlignment != nil {
		row.SDGAlignment = toInt32s(in.SDGAlignment)
	}
	row.UpdatedAt = s.now().UTC()

	n, err := s.Repo.Update(ctx, row)
	if err != nil {
		return domain.Idea{}, perr.FromPostgresWithField(err, "failed to save idea")
	}
	if n == 0 {
		return domain.Idea{}, perr.ErrNotFound
	}
	return toIdea(row), nil
}

// Delete removes an idea permanently
func (s *Svc) Delete(ctx context.Context, userID, id string) error {
	n, err := s.Repo.Delete(ctx, userID, id)
	if err != nil {
		return perr.FromPostgres(err, "failed to delete idea")
	}
	if n == 0 {
		return perr.ErrNotFound
	}
	return nil
}

func toIdea(r repo.Row) domain.Idea {
	return domain.Idea{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		TargetMarket:    r.TargetMarket,
		InnovationLevel: r.InnovationLevel,
		Status:          r.Status,
		ValidationScore: fromScore(r.ValidationScore),
		Risks:           r.Risks,
		Opportunities:   r.Opportunities,
		SDGAlignment:    fromInt32s(r.SDGAlignment),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toScore(v *int) *int32 {
	if v == nil {
		return nil
	}
	s := int32(*v)
	return &s
}

func fromScore(v *int32) *int {
	if v == nil {
		return nil
	}
	s := int(*v)
	return &s
}

func toInt32s(in []int) []int32 {
	if in == nil {
		return nil
	}
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

func fromInt32s(in []int32) []int {
	if in == nil {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
