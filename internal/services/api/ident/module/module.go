// Package module wires auth endpoints into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "redsquare/internal/modkit"
	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/platform/config"
	str "redsquare/internal/platform/strings"
	identhttp "redsquare/internal/services/api/ident/http"
	identrepo "redsquare/internal/services/ident/repo"
	identsvc "redsquare/internal/services/ident/service"
)

// Ports exposes the session service for cross-module use
type Ports struct {
	Sessions identsvc.Service
	Auth     *httpkit.Port
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc identsvc.Service
}

// FromConfig reads AUTH_* knobs into the service config
func FromConfig(cfg config.Conf) identsvc.Config {
	return identsvc.Config{
		SessionTTL: time.Duration(cfg.MayInt("AUTH_SESSION_TTL_HOURS", 720)) * time.Hour,
		BcryptCost: cfg.MayInt("AUTH_BCRYPT_COST", 0),
	}
}

// New constructs the auth module with the provided dependencies and options
func New(deps modkit.Deps, svcCfg identsvc.Config, welcome identsvc.WelcomePort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("auth"), modkit.WithPrefix("/auth")}, opts...)...)

	repo := identrepo.NewPG()
	svc := identsvc.New(deps.PG, repo, svcCfg, welcome)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{
		Sessions: svc,
		Auth:     httpkit.NewPortFunc(svc.Resolve),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		identhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
