// Package module wires the taxonomy service into the api using modkit
package module

import (
	"context"

	"taller/internal/core/taxonomy"
	"taller/internal/core/taxonomy/seed"
	"taller/internal/modkit"
	"taller/internal/modkit/httpkit"
	"taller/internal/services/taxonomy/domain"
	taxhttp "taller/internal/services/taxonomy/http"
	"taller/internal/services/taxonomy/repo"
	"taller/internal/services/taxonomy/service"
)

// Ports exposed by the taxonomy module
type Ports struct {
	Admin     domain.AdminPort
	Seed      domain.SeedPort
	Snapshots domain.SnapshotPort
	Loader    *taxonomy.Loader
}

// Module implements the taxonomy module
type Module struct {
	*modkit.Built
	deps      modkit.Deps
	opts      Options
	svc       *service.Service
	refresher *service.Refresher
}

// New constructs the taxonomy module; it panics on an unsupported dialect or a bad refresh spec
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	o := FromConfig(deps.Cfg)

	binder, err := repo.For(deps.Dialect)
	if err != nil {
		panic(err)
	}
	log := deps.Log.With().Str("module", "taxonomy").Logger()
	svc := service.New(deps.SQL, binder, log)

	ref, err := service.NewRefresher(o.Refresh, svc, log)
	if err != nil {
		panic(err)
	}

	ports := Ports{Admin: svc, Seed: svc, Snapshots: svc, Loader: svc.Loader()}
	base := []modkit.Option{
		modkit.WithName("taxonomy"),
		modkit.WithPrefix("/taxonomy"),
		modkit.WithPorts(ports),
		modkit.WithRegister(func(r httpkit.Router) { taxhttp.Register(r, svc) }),
	}
	return &Module{
		Built:     modkit.Build(append(base, opts...)...),
		deps:      deps,
		opts:      o,
		svc:       svc,
		refresher: ref,
	}
}

// Boot migrates the schema and installs the embedded seed when enabled and the store is empty
func (m *Module) Boot(ctx context.Context) error {
	if err := m.svc.Migrate(ctx); err != nil {
		return err
	}
	if !m.opts.SeedOnBoot {
		return nil
	}
	snap, err := m.svc.Loader().Load(ctx, taxonomy.KindPart)
	if err == nil && snap.Categories() > 0 {
		return nil
	}
	pack, err := seed.Load()
	if err != nil {
		return err
	}
	_, err = m.svc.Seed(ctx, pack)
	return err
}

// Run drives the refresh schedule until ctx is done
func (m *Module) Run(ctx context.Context) { m.refresher.Run(ctx) }
