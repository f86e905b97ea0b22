// Package http provides http transport for saved posts
package http

import (
	stdhttp "net/http"

	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/platform/net/middleware"
	"redsquare/internal/services/api/saved/domain"
	svc "redsquare/internal/services/api/saved/service"
)

// Register mounts saved endpoints on the given router; all routes need auth
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.SaveInput](pr, "/", h.save)
		httpkit.PostJSON[domain.SaveInput](pr, "/remove", h.unsave)
		httpkit.Get(pr, "/", h.list)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /saved Saved savedSave
// @Summary Bookmark a post
// @Tags Saved
// @Accept json
// @Produce json
// @Param payload body domain.SaveInput true "Post to save"
// @Success 200 "ok"
// @Router /saved [post]
func (h *handlers) save(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	nid, err := httpkit.Netid(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Save(r.Context(), nid, in.PostID); err != nil {
		return nil, err
	}
	return map[string]bool{"ok": true}, nil
}

// swagger:route POST /saved/remove Saved savedUnsave
// @Summary Remove a bookmark
// @Tags Saved
// @Accept json
// @Produce json
// @Param payload body domain.SaveInput true "Post to unsave"
// @Success 200 "ok"
// @Router /saved/remove [post]
func (h *handlers) unsave(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	nid, err := httpkit.Netid(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Unsave(r.Context(), nid, in.PostID); err != nil {
		return nil, err
	}
	return map[string]bool{"ok": true}, nil
}

// swagger:route GET /saved Saved savedList
// @Summary List bookmarks ordered by event time
// @Tags Saved
// @Produce json
// @Success 200 {array} domain.SavedPost "ok"
// @Router /saved [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	nid, err := httpkit.Netid(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), nid)
}
