// Package module wires the digest worker using modkit
package module

import (
	"net/http"

	modkit "redsquare/internal/modkit"
	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/platform/config"
	str "redsquare/internal/platform/strings"
	digestrepo "redsquare/internal/services/digest/repo"
	digestsvc "redsquare/internal/services/digest/service"
)

// Options are the worker knobs read from DIGEST_*
type Options struct {
	Schedule string
}

// FromConfig reads the cron schedule; default Monday 08:00
func FromConfig(cfg config.Conf) Options {
	return Options{
		Schedule: cfg.MayString("DIGEST_SCHEDULE", "0 8 * * MON"),
	}
}

// Ports exposes the digest runner
type Ports struct {
	Digest   *digestsvc.Svc
	Schedule string
}

// Module implements the modkit.Module interface; it mounts no routes
type Module struct {
	name  string
	ports any
}

// New constructs the digest module
func New(deps modkit.Deps, opt Options, mailer digestsvc.MailerPort, sweeper digestsvc.SweeperPort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("digest"), modkit.WithPrefix("/digest")}, opts...)...)

	svc := digestsvc.New(deps.PG, digestrepo.NewPG(), mailer, sweeper)

	m := &Module{name: b.Name}
	m.ports = Ports{Digest: svc, Schedule: opt.Schedule}
	return m
}

// MountRoutes implements the modkit.Module interface; the worker has no HTTP surface
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return "/digest" }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
