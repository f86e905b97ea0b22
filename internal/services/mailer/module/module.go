// Package module wires the mailer as a portable worker module
package module

import (
	"net/http"

	modkit "redsquare/internal/modkit"
	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/platform/config"
	str "redsquare/internal/platform/strings"
	mailersvc "redsquare/internal/services/mailer/service"
)

// Ports exposes the mailer for other modules (ident welcome mail, digest)
type Ports struct {
	Mailer *mailersvc.Svc
}

// FromConfig reads MAILER_* knobs
func FromConfig(cfg config.Conf) mailersvc.Config {
	return mailersvc.Config{
		APIKey:  cfg.MayString("MAILER_API_KEY", ""),
		From:    cfg.MayString("MAILER_FROM", "RedSquare <events@redsquare.app>"),
		Enabled: cfg.MayBool("MAILER_ENABLED", false),
	}
}

// Module implements the modkit.Module interface; it mounts no routes
type Module struct {
	name  string
	ports any
}

// New constructs the mailer module
func New(deps modkit.Deps, cfg mailersvc.Config, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("mailer"), modkit.WithPrefix("/mailer")}, opts...)...)

	_ = deps
	m := &Module{name: b.Name}
	m.ports = Ports{Mailer: mailersvc.New(cfg)}
	return m
}

// MountRoutes implements the modkit.Module interface; the mailer has no HTTP surface
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return "/mailer" }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
