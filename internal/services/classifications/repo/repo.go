// Package repo provides the classification record stores: Postgres, the legacy sqlite file, and a clickhouse mirror
package repo

import (
	"context"
	"encoding/json"

	"taller/internal/modkit/repokit"
	perr "taller/internal/platform/errors"
	"taller/internal/platform/store"
	"taller/internal/services/classifications/domain"
)

// Storage is the primary, relational record store
type Storage interface {
	Migrate(ctx context.Context) error
	Insert(ctx context.Context, r domain.Record) error
	// UsageStats returns raw average confidences in 0..1
	UsageStats(ctx context.Context, limit int) ([]domain.UsageRow, error)
	ListByRecord(ctx context.Context, recordID int64) ([]domain.Record, error)
	Count(ctx context.Context) (int64, error)
}

// For picks the binder for a dialect
func For(d store.Dialect) (repokit.Binder[Storage], error) {
	switch d {
	case store.DialectPG:
		return NewPG(), nil
	case store.DialectSQLite:
		return NewSQLite(), nil
	}
	return nil, perr.InvalidArgf("classifications: unsupported dialect %q", d)
}

func encodeKeywords(kws [][]string) (string, error) {
	if kws == nil {
		kws = [][]string{}
	}
	b, err := json.Marshal(kws)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeJSON, "encode matched keywords")
	}
	return string(b), nil
}

func decodeKeywords(b []byte) [][]string {
	out := [][]string{}
	if len(b) == 0 {
		return out
	}
	// rows written by the legacy app hold a python repr; keep them readable as empty
	if err := json.Unmarshal(b, &out); err != nil {
		return [][]string{}
	}
	return out
}

func scanUsage(r repokit.Row) (domain.UsageRow, error) {
	var u domain.UsageRow
	err := r.Scan(&u.Category, &u.Uses, &u.AvgConfidence)
	return u, err
}
