package repo

import (
	"context"

	"taller/internal/core/taxonomy"
	"taller/internal/modkit/repokit"
	perr "taller/internal/platform/errors"
	"taller/internal/platform/store"
)

// the legacy workshop database keeps one table pair per kind with Spanish names
type liteTables struct {
	categories string
	keywords   string
	complexity string // column expression; parts have no complexity column
}

var liteByKind = map[taxonomy.Kind]liteTables{
	taxonomy.KindPart:  {categories: "categorias_repuestos", keywords: "palabras_clave_repuestos", complexity: "0"},
	taxonomy.KindLabor: {categories: "categorias_trabajos", keywords: "palabras_clave_trabajos", complexity: "c.complejidad"},
}

type (
	lite       struct{ q repokit.Queryer }
	liteBinder struct{}
)

// NewSQLite constructs the legacy sqlite binder
func NewSQLite() repokit.Binder[Storage] { return liteBinder{} }

// Bind implements repokit.Binder
func (liteBinder) Bind(q repokit.Queryer) Storage { return &lite{q: q} }

var liteSchema = []string{
	`CREATE TABLE IF NOT EXISTS categorias_repuestos (
		id INTEGER PRIMARY KEY,
		nombre TEXT NOT NULL UNIQUE,
		categoria_padre INTEGER REFERENCES categorias_repuestos (id),
		color_codigo TEXT NOT NULL DEFAULT '#6c757d',
		activo INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS categorias_trabajos (
		id INTEGER PRIMARY KEY,
		nombre TEXT NOT NULL UNIQUE,
		categoria_padre INTEGER REFERENCES categorias_trabajos (id),
		color_codigo TEXT NOT NULL DEFAULT '#6c757d',
		complejidad INTEGER NOT NULL DEFAULT 1,
		activo INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS palabras_clave_repuestos (
		id INTEGER PRIMARY KEY,
		palabra TEXT NOT NULL,
		peso REAL NOT NULL DEFAULT 1.0 CHECK (peso > 0),
		es_sinonimo INTEGER NOT NULL DEFAULT 0,
		palabra_principal INTEGER,
		categoria_id INTEGER NOT NULL REFERENCES categorias_repuestos (id) ON DELETE CASCADE,
		activo INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS palabras_clave_trabajos (
		id INTEGER PRIMARY KEY,
		palabra TEXT NOT NULL,
		peso REAL NOT NULL DEFAULT 1.0 CHECK (peso > 0),
		es_sinonimo INTEGER NOT NULL DEFAULT 0,
		palabra_principal INTEGER,
		categoria_id INTEGER NOT NULL REFERENCES categorias_trabajos (id) ON DELETE CASCADE,
		activo INTEGER NOT NULL DEFAULT 1
	)`,
}

func tablesFor(kind taxonomy.Kind) (liteTables, error) {
	t, ok := liteByKind[kind]
	if !ok {
		return liteTables{}, perr.InvalidArgf("unknown taxonomy kind %q", kind)
	}
	return t, nil
}

func (s *lite) Migrate(ctx context.Context) error {
	for _, ddl := range liteSchema {
		if _, err := s.q.Exec(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}

func (s *lite) ActiveCategories(ctx context.Context, kind taxonomy.Kind) ([]taxonomy.Category, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}
	return store.Many(ctx, s.q, scanCategory, `
		SELECT c.id, c.nombre, c.categoria_padre, c.color_codigo, `+t.complexity+`
		FROM `+t.categories+` c
		WHERE c.activo = 1
		ORDER BY c.id`)
}

func (s *lite) ActiveKeywords(ctx context.Context, kind taxonomy.Kind) ([]taxonomy.Keyword, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}
	return store.Many(ctx, s.q, scanKeyword, `
		SELECT p.id, p.categoria_id, p.palabra, p.peso, p.es_sinonimo = 1, p.palabra_principal
		FROM `+t.keywords+` p
		JOIN `+t.categories+` c ON p.categoria_id = c.id
		WHERE p.activo = 1 AND c.activo = 1
		ORDER BY p.peso DESC, c.categoria_padre IS NULL, p.id`)
}

func (s *lite) Replace(ctx context.Context, kind taxonomy.Kind, cats []taxonomy.Category, kws []taxonomy.Keyword) error {
	t, err := tablesFor(kind)
	if err != nil {
		return err
	}
	if _, err := s.q.Exec(ctx, `DELETE FROM `+t.keywords); err != nil {
		return err
	}
	if _, err := s.q.Exec(ctx, `DELETE FROM `+t.categories); err != nil {
		return err
	}
	for _, c := range cats {
		if kind == taxonomy.KindLabor {
			err = store.ExecOne(ctx, s.q, `
				INSERT INTO categorias_trabajos (id, nombre, categoria_padre, color_codigo, complejidad)
				VALUES (?, ?, ?, ?, ?)`, c.ID, c.Name, c.ParentID, c.Color, c.Complexity)
		} else {
			err = store.ExecOne(ctx, s.q, `
				INSERT INTO categorias_repuestos (id, nombre, categoria_padre, color_codigo)
				VALUES (?, ?, ?, ?)`, c.ID, c.Name, c.ParentID, c.Color)
		}
		if err != nil {
			return err
		}
	}
	for _, k := range kws {
		if err := store.ExecOne(ctx, s.q, `
			INSERT INTO `+t.keywords+` (id, palabra, peso, es_sinonimo, palabra_principal, categoria_id)
			VALUES (?, ?, ?, ?, ?, ?)`, k.ID, k.Text, k.Weight, k.Synonym, k.PrincipalID, k.CategoryID); err != nil {
			return err
		}
	}
	return nil
}
