// Package http provides http transport for profiles
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/platform/net/middleware"
	"redsquare/internal/services/api/profiles/domain"
	svc "redsquare/internal/services/api/profiles/service"
)

// Register mounts profile endpoints; /me routes need auth, lookup stays public
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{netid}", h.public)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/me", h.me)
		httpkit.PutJSON[domain.UpsertInput](pr, "/me", h.upsert)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /profiles/me Profiles profilesMe
// @Summary Fetch the caller's profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} domain.Profile "ok"
// @Router /profiles/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	nid, err := httpkit.Netid(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Me(r.Context(), nid)
}

// swagger:route PUT /profiles/me Profiles profilesUpsert
// @Summary Replace the caller's profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param payload body domain.UpsertInput true "Profile fields"
// @Success 200 {object} domain.Profile "ok"
// @Router /profiles/me [put]
func (h *handlers) upsert(r *stdhttp.Request, in domain.UpsertInput) (any, error) {
	nid, err := httpkit.Netid(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Upsert(r.Context(), nid, in)
}

// swagger:route GET /profiles/{netid} Profiles profilesPublic
// @Summary Public view of a profile
// @Tags Profiles
// @Produce json
// @Param netid path string true "NetID"
// @Success 200 {object} domain.PublicProfile "ok"
// @Router /profiles/{netid} [get]
func (h *handlers) public(r *stdhttp.Request) (any, error) {
	return h.svc.Public(r.Context(), chi.URLParam(r, "netid"))
}
