//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	"taller/internal/core/taxonomy"
	"taller/internal/platform/store/pgtest"
	"taller/internal/services/classifications/domain"

	"github.com/google/uuid"
)

func TestPG_InsertListStats_Integration(t *testing.T) {
	ctx := context.Background()
	st := pgtest.Store(t)
	db, dialect := st.SQL()
	binder, err := For(dialect)
	if err != nil {
		t.Fatalf("binder: %v", err)
	}
	r := binder.Bind(db)
	if err := r.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	recs := []domain.Record{
		{ID: uuid.New(), CreatedAt: at, RecordID: 5, Text: "filtro", Pass: taxonomy.KindPart, Category: "Filtros", Confidence: 0.8, Keywords: [][]string{{"filtro"}}},
		{ID: uuid.New(), CreatedAt: at.Add(time.Second), RecordID: 5, Text: "service", Pass: taxonomy.KindLabor, Category: "Mantenimiento General", Confidence: 0.6},
		{ID: uuid.New(), CreatedAt: at, RecordID: 6, Text: "filtro aire", Pass: taxonomy.KindPart, Category: "Filtros", Confidence: 0.4},
	}
	for _, rec := range recs {
		if err := r.Insert(ctx, rec); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := r.ListByRecord(ctx, 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != recs[0].ID || got[0].Keywords[0][0] != "filtro" || len(got[1].Keywords) != 0 {
		t.Fatalf("list: %+v", got)
	}

	rows, err := r.UsageStats(ctx, 10)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(rows) != 2 || rows[0].Category != "Filtros" || rows[0].Uses != 2 {
		t.Fatalf("stats: %+v", rows)
	}
	if n, err := r.Count(ctx); err != nil || n != 3 {
		t.Fatalf("count: %d, %v", n, err)
	}
}
