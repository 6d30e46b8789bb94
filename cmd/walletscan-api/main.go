package main

import (
	"context"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"walletscan/internal/platform/config"
	"walletscan/internal/platform/logger"
	phttp "walletscan/internal/platform/net/http"
	"walletscan/internal/platform/net/middleware"
	"walletscan/internal/platform/store"

	"walletscan/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	kvCfg := root.Prefix("SERVICE_REDIS_")      // kvCfg lives under SERVICE_REDIS_*

	// bring up logging early
	l := logger.Get()

	chURL := chCfg.MayString("DBURL", "")
	kvURL := kvCfg.MayString("DBURL", "")

	// open the platform store, postgres is required, CH and redis are
	// optional and degrade to no-op telemetry / default gate answers
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:  true,
				URL:      pgCfg.MustString("DBURL"),
				MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 4)),
			},
			CH: store.CHConfig{
				Enabled: chURL != "",
				URL:     chURL,
			},
			KV: store.KVConfig{
				Enabled: kvURL != "",
				URL:     kvURL,
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

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/healthz"))
		m.Use(middleware.Timeout(apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second)))
		if origins := apiCfg.MayString("CORS_ORIGINS", ""); origins != "" {
			m.Use(middleware.CORS(middleware.CORSOptions{
				AllowedOrigins: strings.Split(origins, ","),
			}))
		}
		m.Use(middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: apiCfg.MayDuration("SLOW", 2*time.Second),
		}))
	})

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config: root,
			Store:  st,
			Logger: l,
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
