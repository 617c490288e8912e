//go:build integration_pg

package repo

import (
	"context"
	"testing"

	"taller/internal/core/taxonomy"
	"taller/internal/core/taxonomy/seed"
	"taller/internal/platform/store/pgtest"
)

func TestPG_MigrateReplaceRead_Integration(t *testing.T) {
	ctx := context.Background()
	st := pgtest.Store(t)
	db, dialect := st.SQL()
	binder, err := For(dialect)
	if err != nil {
		t.Fatalf("binder: %v", err)
	}
	r := binder.Bind(db)
	pack := seed.MustLoad()

	if err := r.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := r.Migrate(ctx); err != nil {
		t.Fatalf("migrate is not idempotent: %v", err)
	}
	for _, kind := range taxonomy.Kinds {
		if err := r.Replace(ctx, kind, pack.Categories(kind), pack.Keywords(kind)); err != nil {
			t.Fatalf("%s replace: %v", kind, err)
		}
	}
	// second replace must not trip the primary keys
	if err := r.Replace(ctx, taxonomy.KindPart, pack.Categories(taxonomy.KindPart), pack.Keywords(taxonomy.KindPart)); err != nil {
		t.Fatalf("replace again: %v", err)
	}

	for _, kind := range taxonomy.Kinds {
		cats, err := r.ActiveCategories(ctx, kind)
		if err != nil {
			t.Fatalf("%s categories: %v", kind, err)
		}
		kws, err := r.ActiveKeywords(ctx, kind)
		if err != nil {
			t.Fatalf("%s keywords: %v", kind, err)
		}
		if len(cats) != len(pack.Categories(kind)) || len(kws) != len(pack.Keywords(kind)) {
			t.Fatalf("%s: %d cats %d kws", kind, len(cats), len(kws))
		}
		for i := 1; i < len(kws); i++ {
			if kws[i].Weight > kws[i-1].Weight {
				t.Fatalf("%s keywords not ordered by weight at %d", kind, i)
			}
		}
	}
}
