// Package module wires the classification audit trail into the api
package module

import (
	"context"

	"taller/internal/modkit"
	"taller/internal/modkit/httpkit"
	"taller/internal/services/classifications/domain"
	clhttp "taller/internal/services/classifications/http"
	"taller/internal/services/classifications/repo"
	"taller/internal/services/classifications/service"
)

// Ports exposed by the classifications module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements the classifications module
type Module struct {
	*modkit.Built
	svc *service.Service
}

// New constructs the module; the clickhouse mirror is attached when deps.CH is set
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	o := FromConfig(deps.Cfg)

	binder, err := repo.For(deps.Dialect)
	if err != nil {
		panic(err)
	}
	var mirror service.MirrorSink
	if m := repo.NewMirror(deps.CH); m != nil {
		mirror = m
	}
	log := deps.Log.With().Str("module", "classifications").Logger()
	svc := service.New(deps.SQL, binder, mirror, service.Config{
		StatsLimit: o.StatsLimit,
		HardLimit:  o.HardLimit,
	}, log)

	base := []modkit.Option{
		modkit.WithName("classifications"),
		modkit.WithPrefix("/classifications"),
		modkit.WithPorts(Ports{Writer: svc, Query: svc}),
		modkit.WithRegister(func(r httpkit.Router) { clhttp.Register(r, svc) }),
	}
	return &Module{Built: modkit.Build(append(base, opts...)...), svc: svc}
}

// Boot creates the schema
func (m *Module) Boot(ctx context.Context) error { return m.svc.Migrate(ctx) }
