package main

import (
	"context"
	"time"

	"rentals/internal/modkit/repokit"
	"rentals/internal/platform/config"
	"rentals/internal/platform/logger"
	phttp "rentals/internal/platform/net/http"
	"rentals/internal/platform/store"

	"rentals/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	mongoCfg := root.Prefix("SERVICE_MONGO_") // document store lives under SERVICE_MONGO_*

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "rentals",
			Mongo: store.MongoConfig{
				Enabled:        true,
				Host:           mongoCfg.MayString("HOST", "localhost"),
				Port:           mongoCfg.MayString("PORT", "27017"),
				DBName:         mongoCfg.MayString("DBNAME", "rentals"),
				User:           mongoCfg.MayString("USER", ""),
				Password:       mongoCfg.MayString("PASSWORD", ""),
				AuthSource:     mongoCfg.MayString("AUTH_SOURCE", ""),
				ConnectRetries: mongoCfg.MayInt("CONNECT_RETRIES", 20),
				PingTimeout:    mongoCfg.MayDuration("PING_TIMEOUT", 3*time.Second),
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

	// hard fail before serving if any configured backend is unreachable
	repokit.MustGuard(context.Background(), st)

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount the API and seed an empty contract collection
	if err := api.Mount(context.Background(), srv.Router(), api.Options{
		Config: apiCfg,
		Store:  st,
		Logger: l,
	}); err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
