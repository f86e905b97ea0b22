// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"

	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/services/ident/domain"
	svc "redsquare/internal/services/ident/service"
)

// Register mounts auth endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.RegisterInput](r, "/register", h.register)
	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)
	httpkit.Post(r, "/logout", h.logout)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /auth/register Auth authRegister
// @Summary Create an account and issue a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.RegisterInput true "Signup"
// @Success 200 {object} domain.AuthResult "ok"
// @Router /auth/register [post]
func (h *handlers) register(r *stdhttp.Request, in domain.RegisterInput) (any, error) {
	return h.svc.Register(r.Context(), in)
}

// swagger:route POST /auth/login Auth authLogin
// @Summary Exchange NetID credentials for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} domain.AuthResult "ok"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	return h.svc.Login(r.Context(), in)
}

// swagger:route POST /auth/logout Auth authLogout
// @Summary Revoke the presented session token
// @Tags Auth
// @Produce json
// @Success 200 "ok"
// @Router /auth/logout [post]
func (h *handlers) logout(r *stdhttp.Request) (any, error) {
	tok, err := httpkit.Token(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Logout(r.Context(), tok); err != nil {
		return nil, err
	}
	return map[string]bool{"ok": true}, nil
}
