// @title         GreenPath API
// @version       0.1.0
// @description   Sustainability validation for business ideas

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"greenpath/internal/modkit/repokit"
	"greenpath/internal/platform/config"
	"greenpath/internal/platform/logger"
	phttp "greenpath/internal/platform/net/http"
	"greenpath/internal/platform/store"

	"greenpath/internal/services/api"
)

func main() {
	// optional .env for local development, the environment always wins
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("PG_")
	chCfg := root.Prefix("CH_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// open the platform store (postgres + optional clickhouse audit sink)
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "greenpath-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled: chCfg.MayBool("ENABLED", false),
				URL:     chCfg.MayString("DBURL", ""),
				Role:    "greenpath",
				Tag:     "api",
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, st)

	// http server (reads API_PORT)
	srv := phttp.NewServer(root)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  root.MayBool("API_SWAGGER", true),
			EnableProfiler: root.MayBool("API_PROFILER", false),
		},
	)

	// stop the listener once a shutdown signal lands
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			l.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
