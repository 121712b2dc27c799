// Package repo provides postgres access for ideas
package repo

import (
	"context"
	"time"

	"greenpath/internal/modkit/repokit"
	"greenpath/internal/platform/store"
)

// Row is the persisted shape of an idea
type Row struct {
	ID              string
	OwnerID         string
	Title           string
	Description     string
	TargetMarket    string
	InnovationLevel string
	Status          string
	ValidationScore *int32
	Risks           []string
	Opportunities   []string
	SDGAlignment    []int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Repo is the minimal persistence surface for ideas.
// Reads and writes are always owner-scoped
type Repo interface {
	Insert(ctx context.Context, row Row) error
	ByID(ctx context.Context, ownerID, id string) (Row, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Row, error)
	Update(ctx context.Context, row Row) (int64, error)
	Delete(ctx context.Context, ownerID, id string) (int64, error)
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

const columns = `
id::text, owner_id::text, title, description,
coalesce(target_market, ''), coalesce(innovation_level, ''), status,
validation_score, risks, opportunities, sdg_alignment,
created_at, updated_at
`

func scanRow(r store.Row) (Row, error) {
	var out Row
	err := r.Scan(
		&out.ID, &out.OwnerID, &out.Title, &out.Description,
		&out.TargetMarket, &out.InnovationLevel, &out.Status,
		&out.ValidationScore, &out.Risks, &out.Opportunities, &out.SDGAlignment,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *queries) Insert(ctx context.Context, row Row) error {
	const sql = `
insert into ideas (
	id, owner_id, title, description, target_market, innovation_level, status,
	validation_score, risks, opportunities, sdg_alignment, created_at, updated_at
)
values ($1, $2, $3, $4, nullif($5, ''), nullif($6, ''), $7, $8, $9, $10, $11, $12, $13)
`
	_, err := store.Exec(ctx, r.q, sql,
		row.ID, row.OwnerID, row.Title, row.Description, row.TargetMarket, row.InnovationLevel,
		row.Status, row.ValidationScore, row.Risks, row.Opportunities, row.SDGAlignment,
		row.CreatedAt, row.UpdatedAt,
	)
	return err
}

func (r *queries) ByID(ctx context.Context, ownerID, id string) (Row, error) {
	sql := `select ` + columns + ` from ideas where owner_id = $1 and id = $2`
	return store.One(ctx, r.q, scanRow, sql, ownerID, id)
}

func (r *queries) ListByOwner(ctx context.Context, ownerID string) ([]Row, error) {
	sql := `select ` + columns + ` from ideas where owner_id = $1 order by created_at desc`
	return store.Many(ctx, r.q, scanRow, sql, ownerID)
}

func (r *queries) Update(ctx context.Context, row Row) (int64, error) {
	const sql = `
update ideas set
	title = $3,
	description = $4,
	target_market = nullif($5, ''),
	innovation_level = nullif($6, ''),
	status = $7,
	validation_score = $8,
	risks = $9,
	opportunities = $10,
	sdg_alignment = $11,
	updated_at = $12
where owner_id = $1 and id = $2
`
	tag, err := store.Exec(ctx, r.q, sql,
		row.OwnerID, row.ID, row.Title, row.Description, row.TargetMarket, row.InnovationLevel,
		row.Status, row.ValidationScore, row.Risks, row.Opportunities, row.SDGAlignment,
		row.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *queries) Delete(ctx context.Context, ownerID, id string) (int64, error) {
	const sql = `delete from ideas where owner_id = $1 and id = $2`
	tag, err := store.Exec(ctx, r.q, sql, ownerID, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
