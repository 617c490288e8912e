package repo

import (
	"context"

	"taller/internal/core/taxonomy"
	"taller/internal/modkit/repokit"
	"taller/internal/platform/store"
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
CREATE TABLE IF NOT EXISTS taxonomy_categories (
	kind       text    NOT NULL CHECK (kind IN ('part', 'labor')),
	id         bigint  NOT NULL,
	name       text    NOT NULL,
	parent_id  bigint,
	color      text    NOT NULL DEFAULT '#6c757d',
	complexity integer NOT NULL DEFAULT 0,
	active     boolean NOT NULL DEFAULT true,
	PRIMARY KEY (kind, id),
	UNIQUE (kind, name)
);
CREATE TABLE IF NOT EXISTS taxonomy_keywords (
	kind         text             NOT NULL,
	id           bigint           NOT NULL,
	category_id  bigint           NOT NULL,
	keyword      text             NOT NULL,
	weight       double precision NOT NULL CHECK (weight > 0),
	synonym      boolean          NOT NULL DEFAULT false,
	principal_id bigint,
	active       boolean          NOT NULL DEFAULT true,
	PRIMARY KEY (kind, id),
	FOREIGN KEY (kind, category_id) REFERENCES taxonomy_categories (kind, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS taxonomy_keywords_active_idx ON taxonomy_keywords (kind) WHERE active`

func (s *pg) Migrate(ctx context.Context) error {
	_, err := s.q.Exec(ctx, pgSchema)
	return err
}

func (s *pg) ActiveCategories(ctx context.Context, kind taxonomy.Kind) ([]taxonomy.Category, error) {
	return store.Many(ctx, s.q, scanCategory, `
		SELECT id, name, parent_id, color, complexity
		FROM taxonomy_categories
		WHERE kind = $1 AND active
		ORDER BY id`, string(kind))
}

func (s *pg) ActiveKeywords(ctx context.Context, kind taxonomy.Kind) ([]taxonomy.Keyword, error) {
	return store.Many(ctx, s.q, scanKeyword, `
		SELECT k.id, k.category_id, k.keyword, k.weight, k.synonym, k.principal_id
		FROM taxonomy_keywords k
		JOIN taxonomy_categories c ON c.kind = k.kind AND c.id = k.category_id
		WHERE k.kind = $1 AND k.active AND c.active
		ORDER BY k.weight DESC, c.parent_id NULLS LAST, k.id`, string(kind))
}

// Replace deletes the kind and inserts cats then kws; run it inside a transaction
func (s *pg) Replace(ctx context.Context, kind taxonomy.Kind, cats []taxonomy.Category, kws []taxonomy.Keyword) error {
	if _, err := s.q.Exec(ctx, `DELETE FROM taxonomy_categories WHERE kind = $1`, string(kind)); err != nil {
		return err
	}
	for _, c := range cats {
		if err := store.ExecOne(ctx, s.q, `
			INSERT INTO taxonomy_categories (kind, id, name, parent_id, color, complexity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			string(kind), c.ID, c.Name, c.ParentID, c.Color, c.Complexity); err != nil {
			return err
		}
	}
	for _, k := range kws {
		if err := store.ExecOne(ctx, s.q, `
			INSERT INTO taxonomy_keywords (kind, id, category_id, keyword, weight, synonym, principal_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			string(kind), k.ID, k.CategoryID, k.Text, k.Weight, k.Synonym, k.PrincipalID); err != nil {
			return err
		}
	}
	return nil
}
