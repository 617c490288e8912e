// Package repo provides the taxonomy repositories for Postgres and the legacy sqlite file
package repo

import (
	"context"

	"taller/internal/core/taxonomy"
	"taller/internal/modkit/repokit"
	perr "taller/internal/platform/errors"
	"taller/internal/platform/store"
)

// Storage reads active rows and replaces a kind wholesale
type Storage interface {
	taxonomy.Source
	Migrate(ctx context.Context) error
	Replace(ctx context.Context, kind taxonomy.Kind, cats []taxonomy.Category, kws []taxonomy.Keyword) error
}

// For picks the binder for a dialect
func For(d store.Dialect) (repokit.Binder[Storage], error) {
	switch d {
	case store.DialectPG:
		return NewPG(), nil
	case store.DialectSQLite:
		return NewSQLite(), nil
	}
	return nil, perr.InvalidArgf("taxonomy: unsupported dialect %q", d)
}

func scanCategory(r repokit.Row) (taxonomy.Category, error) {
	var c taxonomy.Category
	err := r.Scan(&c.ID, &c.Name, &c.ParentID, &c.Color, &c.Complexity)
	return c, err
}

func scanKeyword(r repokit.Row) (taxonomy.Keyword, error) {
	var k taxonomy.Keyword
	err := r.Scan(&k.ID, &k.CategoryID, &k.Text, &k.Weight, &k.Synonym, &k.PrincipalID)
	return k, err
}
