// Package api provides the HTTP API for the application
package api

import (
	"greenpath/internal/platform/config"
	"greenpath/internal/platform/logger"
	phttp "greenpath/internal/platform/net/http"
	"greenpath/internal/platform/store"

	"greenpath/internal/modkit"
	"greenpath/internal/modkit/httpkit"
	"greenpath/internal/modkit/module"
	"greenpath/internal/modkit/swaggerkit"

	ideasmod "greenpath/internal/services/api/ideas/module"
	metamod "greenpath/internal/services/api/meta/module"
	sdgmod "greenpath/internal/services/api/sdg/module"
	statsmod "greenpath/internal/services/api/stats/module"
	validationmod "greenpath/internal/services/api/validation/module"
	authmod "greenpath/internal/services/auth/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct auth first and extract its token port so the
	// idea modules can guard their routes with it
	auth := authmod.New(deps, authmod.FromConfig(deps.Cfg))
	token := module.MustPortsOf[authmod.Ports](auth).Token

	// Validation owns the scorer, meta borrows it for introspection
	validation := validationmod.New(deps, modkit.WithMiddlewares(httpkit.Auth(token)))
	scorer := module.MustPortsOf[validationmod.Ports](validation).Scorer

	mods := []module.Module{
		metamod.New(deps, scorer),
		sdgmod.New(deps),
		auth,
		validation,
		ideasmod.New(deps, modkit.WithMiddlewares(httpkit.Auth(token))),
		statsmod.New(deps, modkit.WithMiddlewares(httpkit.Auth(token))),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
