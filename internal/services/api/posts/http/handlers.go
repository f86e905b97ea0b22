// Package http provides http transport for posts
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/platform/net/middleware"
	"redsquare/internal/services/api/posts/domain"
	svc "redsquare/internal/services/api/posts/service"
)

// Register mounts posts endpoints on the given router.
// Mutating routes sit behind the auth port; reads stay public
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ExploreInput](r, "/explore", h.explore)
	httpkit.Get(r, "/bulletin", h.bulletin)
	httpkit.Get(r, "/{id}", h.get)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.CreateInput](pr, "/", h.create)
		httpkit.PutJSON[domain.UpdateInput](pr, "/{id}", h.update)
		httpkit.Delete(pr, "/{id}", h.del)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /posts Posts postsCreate
// @Summary Create an event post
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "New post"
// @Success 200 {object} domain.Post "ok"
// @Router /posts [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	nid, err := httpkit.Netid(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Create(r.Context(), nid, in)
}

// swagger:route PUT /posts/{id} Posts postsUpdate
// @Summary Update an event post (author only)
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param payload body domain.UpdateInput true "Replacement fields"
// @Success 200 {object} domain.Post "ok"
// @Router /posts/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	nid, err := httpkit.Netid(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), nid, chi.URLParam(r, "id"), in)
}

// swagger:route DELETE /posts/{id} Posts postsDelete
// @Summary Delete an event post (author only)
// @Tags Posts
// @Produce json
// @Param id path string true "Post id"
// @Success 200 "ok"
// @Router /posts/{id} [delete]
func (h *handlers) del(r *stdhttp.Request) (any, error) {
	nid, err := httpkit.Netid(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), nid, chi.URLParam(r, "id")); err != nil {
		return nil, err
	}
	return map[string]bool{"ok": true}, nil
}

// swagger:route GET /posts/{id} Posts postsGet
// @Summary Fetch one post plus its parsed event window
// @Tags Posts
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} domain.PostDetail "ok"
// @Router /posts/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}

// swagger:route POST /posts/explore Posts postsExplore
// @Summary Filter and bucket posts by event time
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body domain.ExploreInput true "Filters"
// @Success 200 {array} domain.Post "ok"
// @Router /posts/explore [post]
func (h *handlers) explore(r *stdhttp.Request, in domain.ExploreInput) (any, error) {
	return h.svc.Explore(r.Context(), in)
}

// swagger:route GET /posts/bulletin Posts postsBulletin
// @Summary Next upcoming posts for the bulletin strip
// @Tags Posts
// @Produce json
// @Param limit query int false "Max posts (default 10)"
// @Success 200 {array} domain.Post "ok"
// @Router /posts/bulletin [get]
func (h *handlers) bulletin(r *stdhttp.Request) (any, error) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return h.svc.Bulletin(r.Context(), limit)
}
