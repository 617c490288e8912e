package domain

import (
	"context"

	"taller/internal/core/taxonomy"
)

// SeedSource is a complete taxonomy to install, e.g. seed.Pack
type SeedSource interface {
	Categories(kind taxonomy.Kind) []taxonomy.Category
	Keywords(kind taxonomy.Kind) []taxonomy.Keyword
}

// SeedPort installs a taxonomy, replacing whatever the store held for each kind
type SeedPort interface {
	Seed(ctx context.Context, src SeedSource) ([]SeedStats, error)
}

// AdminPort is the management surface: the edit hook and cache introspection
type AdminPort interface {
	Invalidate()
	Stats() []taxonomy.Stat
	View(ctx context.Context, kind taxonomy.Kind) (View, error)
}

// SnapshotPort serves cached snapshots to classifiers
type SnapshotPort interface {
	Load(ctx context.Context, kind taxonomy.Kind) (*taxonomy.Snapshot, error)
}
