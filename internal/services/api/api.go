// Package api provides the HTTP API for the application
package api

import (
	"redsquare/internal/platform/config"
	"redsquare/internal/platform/logger"
	phttp "redsquare/internal/platform/net/http"
	"redsquare/internal/platform/store"

	"redsquare/internal/modkit"
	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/modkit/module"
	"redsquare/internal/modkit/swaggerkit"

	feedmod "redsquare/internal/services/api/feed/module"
	identmod "redsquare/internal/services/api/ident/module"
	metamod "redsquare/internal/services/api/meta/module"
	postsmod "redsquare/internal/services/api/posts/module"
	profilesmod "redsquare/internal/services/api/profiles/module"
	savedmod "redsquare/internal/services/api/saved/module"

	// Worker mailer module (owns the outbound mail port)
	mailermod "redsquare/internal/services/mailer/module"
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
	}

	// Construct the mailer first and extract its port
	mailer := mailermod.New(deps, mailermod.FromConfig(deps.Cfg))
	sender := module.MustPortsOf[mailermod.Ports](mailer).Mailer

	// Auth module next; everything protected hangs off its session port
	auth := identmod.New(deps, identmod.FromConfig(deps.Cfg), sender)
	authPort := module.MustPortsOf[identmod.Ports](auth).Auth

	mods := []module.Module{
		metamod.New(deps),
		mailer, // include worker so its ports are registered
		auth,
		postsmod.New(deps, authPort),
		savedmod.New(deps, authPort),
		profilesmod.New(deps, authPort),
		feedmod.New(deps),
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
