package repo

import (
	"context"
	"time"

	"taller/internal/core/taxonomy"
	"taller/internal/modkit/repokit"
	"taller/internal/platform/store"
	"taller/internal/services/classifications/domain"

	"github.com/google/uuid"
)

type (
	pg       struct{ q repokit.Queryer }
	pgBinder struct{}
)

// NewPG constructs the Postgres binder
func NewPG() repokit.Binder[Storage] { return pgBinder{} }

// Bind implements repokit.Binder
func (pgBinder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

const pgSchema = `
CREATE TABLE IF NOT EXISTS classifications (
	id          uuid             PRIMARY KEY,
	created_at  timestamptz      NOT NULL DEFAULT now(),
	record_id   bigint           NOT NULL,
	text        text             NOT NULL,
	pass        text             NOT NULL CHECK (pass IN ('part', 'labor')),
	category    text             NOT NULL,
	confidence  double precision NOT NULL CHECK (confidence >= 0 AND confidence <= 1),
	keywords    jsonb            NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS classifications_record_idx ON classifications (record_id, created_at);
CREATE INDEX IF NOT EXISTS classifications_category_idx ON classifications (category)`

func (s *pg) Migrate(ctx context.Context) error {
	_, err := s.q.Exec(ctx, pgSchema)
	return err
}

func (s *pg) Insert(ctx context.Context, r domain.Record) error {
	kws, err := encodeKeywords(r.Keywords)
	if err != nil {
		return err
	}
	return store.ExecOne(ctx, s.q, `
		INSERT INTO classifications (id, created_at, record_id, text, pass, category, confidence, keywords)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb)`,
		r.ID, r.CreatedAt, r.RecordID, r.Text, string(r.Pass), r.Category, r.Confidence, kws)
}

func (s *pg) UsageStats(ctx context.Context, limit int) ([]domain.UsageRow, error) {
	return store.Many(ctx, s.q, scanUsage, `
		SELECT category, count(*), avg(confidence)
		FROM classifications
		GROUP BY category
		ORDER BY count(*) DESC, category
		LIMIT $1`, limit)
}

func (s *pg) ListByRecord(ctx context.Context, recordID int64) ([]domain.Record, error) {
	return store.Many(ctx, s.q, scanPGRecord, `
		SELECT id, created_at, record_id, text, pass, category, confidence, keywords
		FROM classifications
		WHERE record_id = $1
		ORDER BY created_at, pass`, recordID)
}

func (s *pg) Count(ctx context.Context) (int64, error) {
	return store.Scalar[int64](ctx, s.q, `SELECT count(*) FROM classifications`)
}

func scanPGRecord(r repokit.Row) (domain.Record, error) {
	var (
		rec  domain.Record
		id   uuid.UUID
		at   time.Time
		pass string
		kws  []byte
	)
	if err := r.Scan(&id, &at, &rec.RecordID, &rec.Text, &pass, &rec.Category, &rec.Confidence, &kws); err != nil {
		return rec, err
	}
	rec.ID, rec.CreatedAt, rec.Pass = id, at, taxonomy.Kind(pass)
	rec.Keywords = decodeKeywords(kws)
	return rec, nil
}
