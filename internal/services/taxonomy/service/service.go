// Package service implements the taxonomy service: the store-backed source, seeding, and the admin view
package service

import (
	"context"
	"sort"

	"taller/internal/core/taxonomy"
	"taller/internal/modkit/repokit"
	"taller/internal/platform/logger"
	dom "taller/internal/services/taxonomy/domain"
	"taller/internal/services/taxonomy/repo"
)

// Service owns the loader and the repo it reads through
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	loader *taxonomy.Loader
	log    logger.Logger
}

// New wires a loader over the repo; log may be the zero logger
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], log logger.Logger) *Service {
	s := &Service{db: db, binder: binder, log: log}
	s.loader = taxonomy.NewLoader(source{s}, taxonomy.WithLogger(log))
	return s
}

// source adapts the bound repo to taxonomy.Source for the loader
type source struct{ s *Service }

func (x source) ActiveCategories(ctx context.Context, kind taxonomy.Kind) ([]taxonomy.Category, error) {
	return x.s.binder.Bind(x.s.db).ActiveCategories(ctx, kind)
}

func (x source) ActiveKeywords(ctx context.Context, kind taxonomy.Kind) ([]taxonomy.Keyword, error) {
	return x.s.binder.Bind(x.s.db).ActiveKeywords(ctx, kind)
}

// Migrate creates the taxonomy tables when missing
func (s *Service) Migrate(ctx context.Context) error {
	return s.binder.Bind(s.db).Migrate(ctx)
}

// Loader exposes the cache for classifiers and the refresher
func (s *Service) Loader() *taxonomy.Loader { return s.loader }

// Load implements domain.SnapshotPort
func (s *Service) Load(ctx context.Context, kind taxonomy.Kind) (*taxonomy.Snapshot, error) {
	return s.loader.Load(ctx, kind)
}

// Invalidate implements domain.AdminPort
func (s *Service) Invalidate() { s.loader.Invalidate() }

// Stats implements domain.AdminPort
func (s *Service) Stats() []taxonomy.Stat { return s.loader.Stats() }

// Seed implements domain.SeedPort; both kinds are replaced in one transaction, then the cache is dropped
func (s *Service) Seed(ctx context.Context, src dom.SeedSource) ([]dom.SeedStats, error) {
	out := make([]dom.SeedStats, 0, len(taxonomy.Kinds))
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		st := s.binder.Bind(q)
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		for _, kind := range taxonomy.Kinds {
			cats, kws := src.Categories(kind), src.Keywords(kind)
			if err := st.Replace(ctx, kind, cats, kws); err != nil {
				return err
			}
			out = append(out, dom.SeedStats{Kind: kind, Categories: len(cats), Keywords: len(kws)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.loader.Invalidate()
	for _, st := range out {
		s.log.Info().Str("kind", string(st.Kind)).Int("categories", st.Categories).Int("keywords", st.Keywords).Msg("taxonomy seeded")
	}
	return out, nil
}

// View implements domain.AdminPort; it loads the kind when cold
func (s *Service) View(ctx context.Context, kind taxonomy.Kind) (dom.View, error) {
	snap, err := s.loader.Load(ctx, kind)
	if err != nil {
		return dom.View{}, err
	}
	return ViewOf(snap), nil
}

// ViewOf groups a snapshot's keywords by category, ordered by category id
func ViewOf(snap *taxonomy.Snapshot) dom.View {
	byID := map[int64]*dom.CategoryView{}
	for _, key := range snap.Keys() {
		for _, e := range snap.Entries(key) {
			cv, ok := byID[e.CategoryID]
			if !ok {
				cv = &dom.CategoryView{
					ID:         e.CategoryID,
					Name:       e.CategoryName,
					ParentID:   e.ParentID,
					Color:      e.Color,
					Complexity: e.Complexity,
				}
				byID[e.CategoryID] = cv
			}
			cv.Keywords = append(cv.Keywords, e.Keyword)
		}
	}
	cats := make([]dom.CategoryView, 0, len(byID))
	for _, cv := range byID {
		cats = append(cats, *cv)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })
	return dom.View{
		Kind:       snap.Kind,
		Generation: snap.Generation,
		LoadedAt:   snap.LoadedAt,
		Keywords:   snap.Len(),
		Categories: cats,
	}
}
