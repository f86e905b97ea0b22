// Package module wires profiles into the API using modkit
package module

import (
	"net/http"

	modkit "redsquare/internal/modkit"
	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/platform/net/middleware"
	str "redsquare/internal/platform/strings"
	profileshttp "redsquare/internal/services/api/profiles/http"
	profilesrepo "redsquare/internal/services/api/profiles/repo"
	profilessvc "redsquare/internal/services/api/profiles/service"
)

// Ports exposes the profiles service for cross-module use (digest)
type Ports struct {
	Profiles profilessvc.Service
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

	svc profilessvc.Service
}

// New constructs a profiles module with the provided dependencies and options
func New(deps modkit.Deps, auth middleware.AuthPort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("profiles"), modkit.WithPrefix("/profiles")}, opts...)...)

	repo := profilesrepo.NewPG()
	svc := profilessvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Profiles: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		profileshttp.Register(r, m.svc, auth)
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
