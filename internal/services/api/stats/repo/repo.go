// Package repo provides postgres access for stats
package repo

import (
	"context"

	"greenpath/internal/modkit/repokit"
	"greenpath/internal/platform/store"
)

// Totals is one user's raw aggregate row
type Totals struct {
	Total      int64
	ScoreSum   int64
	HighImpact int64
}

// Repo is the minimal persistence surface for stats
type Repo interface {
	TotalsByOwner(ctx context.Context, ownerID string) (Totals, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) TotalsByOwner(ctx context.Context, ownerID string) (Totals, error) {
	// unvalidated ideas count as score 0 in the sum
	const sql = `
select
	count(*) as total,
	coalesce(sum(coalesce(validation_score, 0)), 0) as score_sum,
	count(*) filter (where validation_score >= 70) as high_impact
from ideas
where owner_id = $1
`
	return store.One(ctx, r.q, func(row store.Row) (Totals, error) {
		var t Totals
		err := row.Scan(&t.Total, &t.ScoreSum, &t.HighImpact)
		return t, err
	}, sql, ownerID)
}
