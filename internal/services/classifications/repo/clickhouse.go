package repo

import (
	"context"

	"taller/internal/platform/store"
	"taller/internal/services/classifications/domain"
)

// Mirror copies records into clickhouse for analytics
type Mirror struct {
	ch    store.Clickhouse
	table string
}

// NewMirror returns nil when ch is nil so callers can skip it
func NewMirror(ch store.Clickhouse) *Mirror {
	if ch == nil {
		return nil
	}
	return &Mirror{ch: ch, table: "classifications"}
}

const chSchema = `
CREATE TABLE IF NOT EXISTS classifications (
	id         UUID,
	created_at DateTime64(3, 'UTC'),
	record_id  Int64,
	pass       LowCardinality(String),
	category   LowCardinality(String),
	confidence Float64,
	keywords   Array(Array(String)),
	text       String
) ENGINE = MergeTree
ORDER BY (pass, category, created_at)`

// Migrate creates the mirror table
func (m *Mirror) Migrate(ctx context.Context) error {
	return m.ch.Exec(ctx, chSchema)
}

// Insert writes records as one batch
func (m *Mirror) Insert(ctx context.Context, rs ...domain.Record) error {
	rows := make([][]any, 0, len(rs))
	for _, r := range rs {
		kws := r.Keywords
		if kws == nil {
			kws = [][]string{}
		}
		rows = append(rows, []any{r.ID, r.CreatedAt, r.RecordID, string(r.Pass), r.Category, r.Confidence, kws, r.Text})
	}
	return m.ch.Insert(ctx, m.table, rows)
}
