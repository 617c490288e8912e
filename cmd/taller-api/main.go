// @title         Taller API
// @version       0.1.0
// @description   Maintenance text classification: parts and labor analysis, taxonomy cache, audit stats
// @BasePath      /api/v1

package main

import (
	"context"
	"os/signal"
	"syscall"

	"taller/internal/platform/config"
	"taller/internal/platform/logger"
	phttp "taller/internal/platform/net/http"
	"taller/internal/platform/store"

	"taller/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	logger.Init(logger.FromEnv())
	l := logger.Named("taller-api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.FromConfig(root, "api"), store.WithLogger(*logger.Get()), store.WithGuard())
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT / CORE_API_SHUTDOWN_TIMEOUT)
	srv := phttp.NewServer(apiCfg)

	a, err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         *logger.Get(),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("api boot failed")
	}
	go a.Run(ctx)

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
