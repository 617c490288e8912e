// Package api composes the service modules into the HTTP API
package api

import (
	"context"
	"time"

	"taller/internal/modkit"
	"taller/internal/modkit/httpkit"
	"taller/internal/modkit/module"
	"taller/internal/modkit/swaggerkit"
	"taller/internal/platform/config"
	"taller/internal/platform/logger"
	phttp "taller/internal/platform/net/http"
	"taller/internal/platform/store"

	analysismod "taller/internal/services/analysis/module"
	metahttp "taller/internal/services/api/meta/http"
	metamod "taller/internal/services/api/meta/module"
	clmod "taller/internal/services/classifications/module"
	taxmod "taller/internal/services/taxonomy/module"
)

// Options are the API options
type Options struct {
	// Config is the unprefixed root; modules read their own prefixes
	Config         config.Conf
	Store          *store.Store
	Logger         logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// API is the mounted module set
type API struct {
	Modules  []module.Module
	taxonomy *taxmod.Module
}

// Mount boots the modules and mounts them under /api/v1
func Mount(ctx context.Context, r phttp.Router, opt Options) (*API, error) {
	deps := modkit.DepsFrom(opt.Logger, opt.Config, opt.Store)

	taxonomy := taxmod.New(deps)
	classifications := clmod.New(deps)

	tax := module.MustPortsOf[taxmod.Ports](taxonomy)
	writer := module.MustPortsOf[clmod.Ports](classifications).Writer
	analysis := analysismod.New(deps, tax.Snapshots, writer)

	meta := metamod.New(deps, metahttp.Deps{
		StartedAt: time.Now(),
		Taxonomy:  tax.Admin,
		Threshold: analysismod.FromConfig(deps.Cfg).Threshold,
	})

	for _, b := range []interface{ Boot(context.Context) error }{classifications, taxonomy} {
		if err := b.Boot(ctx); err != nil {
			return nil, err
		}
	}

	mods := []module.Module{meta, taxonomy, classifications, analysis}

	r.Use(httpkit.CommonStack(opt.Config.Prefix("CORE_API_"))...)
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, func(v1 httpkit.Router) {
		for _, m := range mods {
			opt.Logger.Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(v1)
		}
	})
	return &API{Modules: mods, taxonomy: taxonomy}, nil
}

// Run drives background work (the taxonomy refresh schedule) until ctx is done
func (a *API) Run(ctx context.Context) { a.taxonomy.Run(ctx) }
