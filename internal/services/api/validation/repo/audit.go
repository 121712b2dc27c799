// Package repo provides the clickhouse audit sink for validations
package repo

import (
	"context"
	"encoding/json"

	perr "greenpath/internal/platform/errors"
	"greenpath/internal/platform/store"
	"greenpath/internal/services/api/validation/domain"
)

// table carries the column list so batches bind by position
const table = "validation_logs (user_id, idea_title, result, ts)"

// CH is the clickhouse-backed audit sink
type CH struct{ ch store.Clickhouse }

// NewCH wraps the store's clickhouse seam
func NewCH(ch store.Clickhouse) *CH {
	if ch == nil {
		panic("validation audit sink requires a clickhouse client")
	}
	return &CH{ch: ch}
}

// Append writes one immutable audit record. The result is stored as a
// JSON blob so the log survives result-shape changes
func (c *CH) Append(ctx context.Context, e domain.AuditEntry) error {
	blob, err := json.Marshal(e.Result)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "encode validation result")
	}
	return c.ch.Insert(ctx, table, [][]any{
		{e.UserID, e.IdeaTitle, string(blob), e.At},
	})
}
