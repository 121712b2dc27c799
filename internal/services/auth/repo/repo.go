// Package repo provides postgres access for auth accounts
package repo

import (
	"context"
	"time"

	"greenpath/internal/modkit/repokit"
	"greenpath/internal/platform/store"
)

// Row is the persisted shape of an account
type Row struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Tier         string
	CreatedAt    time.Time
}

// Repo is the minimal persistence surface for auth
type Repo interface {
	Insert(ctx context.Context, row Row) error
	ByEmail(ctx context.Context, email string) (Row, error)
	ByID(ctx context.Context, id string) (Row, error)
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

func (r *queries) Insert(ctx context.Context, row Row) error {
	const sql = `
insert into users (id, email, password_hash, display_name, subscription_tier, created_at)
values ($1, $2, $3, $4, $5, $6)
`
	_, err := store.Exec(ctx, r.q, sql,
		row.ID, row.Email, row.PasswordHash, row.DisplayName, row.Tier, row.CreatedAt,
	)
	return err
}

func scanRow(row store.Row) (Row, error) {
	var out Row
	err := row.Scan(&out.ID, &out.Email, &out.PasswordHash, &out.DisplayName, &out.Tier, &out.CreatedAt)
	return out, err
}

func (r *queries) ByEmail(ctx context.Context, email string) (Row, error) {
	const sql = `
select id::text, email, password_hash, display_name, subscription_tier, created_at
from users
where email = $1
`
	return store.One(ctx, r.q, scanRow, sql, email)
}

func (r *queries) ByID(ctx context.Context, id string) (Row, error) {
	const sql = `
select id::text, email, password_hash, display_name, subscription_tier, created_at
from users
where id = $1
`
	return store.One(ctx, r.q, scanRow, sql, id)
}
