// Package service renders the upcoming-events ICS feed
package service

import (
	"context"
	"time"

	ical "github.com/arran4/golang-ical"

	"redsquare/internal/core/eventwhen"
	"redsquare/internal/modkit/repokit"
	"redsquare/internal/services/api/feed/repo"
)

// defaultDuration is the DTEND fallback for windows without an end time
const defaultDuration = time.Hour

// Service defines the service contract for feed
type Service interface {
	UpcomingICS(ctx context.Context) (string, error)
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New creates a new feed service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("feed.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("feed.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// UpcomingICS serializes all upcoming events as a VCALENDAR.
// Posts whose display string no longer parses, and past events, are skipped
func (s *Svc) UpcomingICS(ctx context.Context) (string, error) {
	rows, err := s.Repo.All(ctx, 0)
	if err != nil {
		return "", err
	}
	now := s.now()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//redsquare//events//EN")
	cal.SetName("RedSquare events")

	for _, r := range rows {
		parsed := eventwhen.ParseStrict(r.EventDate)
		if parsed.Start == nil {
			continue
		}
		start := *parsed.Start
		if start.Before(now) {
			continue
		}
		end := start.Add(defaultDuration)
		if parsed.End != nil {
			end = *parsed.End
		}

		ev := cal.AddEvent(r.ID + "@redsquare")
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(r.Title)
		if r.Location != "" {
			ev.SetLocation(r.Location)
		}
		if r.Description != "" {
			ev.SetDescription(r.Description)
		}
	}

	return cal.Serialize(), nil
}
