// Package http provides http transport for the calendar feed
package http

import (
	stdhttp "net/http"

	"redsquare/internal/modkit/httpkit"
	"redsquare/internal/platform/logger"
	svc "redsquare/internal/services/api/feed/service"
)

// Register mounts the feed endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	// raw text/calendar body, not the JSON envelope
	r.Get("/upcoming.ics", h.upcoming)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /feed/upcoming.ics Feed feedUpcoming
// @Summary ICS calendar of upcoming events
// @Tags Feed
// @Produce plain
// @Success 200 {string} string "VCALENDAR payload"
// @Router /feed/upcoming.ics [get]
func (h *handlers) upcoming(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	body, err := h.svc.UpcomingICS(r.Context())
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("feed render failed")
		stdhttp.Error(w, "feed unavailable", stdhttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="redsquare.ics"`)
	_, _ = w.Write([]byte(body))
}
