// Package api composes the HTTP API for the application
package api

import (
	"context"

	"rentals/internal/platform/config"
	"rentals/internal/platform/logger"
	phttp "rentals/internal/platform/net/http"
	"rentals/internal/platform/store"

	"rentals/internal/modkit"
	"rentals/internal/modkit/httpkit"
	"rentals/internal/modkit/module"

	contractsmod "rentals/internal/services/contracts/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router and runs boot-time seeding
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	deps := modkit.Deps{
		Cfg: opt.Config,
		DB:  opt.Store.Mongo,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	contracts := contractsmod.New(deps)

	mods := []module.Module{
		contracts,
	}

	// the common stack goes on the mux itself so heartbeat, request ids and
	// access logging also cover unmatched paths
	r.Use(httpkit.CommonStack()...)
	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
		m.MountRoutes(r)
		deps.Log.Debug().Str("module", m.Name()).Msg("mounted")
	}

	// an empty contract collection gets its sample data before traffic arrives
	seeder := module.MustPortsOf[contractsmod.Ports](contracts).Seeder
	return seeder.EnsureSeed(ctx)
}
