// Package service contains posts workflows
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"redsquare/internal/core/eventwhen"
	"redsquare/internal/core/searchnorm"
	"redsquare/internal/modkit/repokit"
	perr "redsquare/internal/platform/errors"
	ptime "redsquare/internal/platform/time"
	"redsquare/internal/services/api/posts/domain"
	"redsquare/internal/services/api/posts/repo"
)

// Service defines the service contract for posts
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	norm   *searchnorm.Normalizer

	// now is swappable for tests
	now func() time.Time
}

// New creates a new posts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("posts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("posts.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		norm:   searchnorm.New(),
		now:    time.Now,
	}
}

// Create validates the submitted window, renders the display string once, and persists it
func (s *Svc) Create(ctx context.Context, authorNetID string, in domain.CreateInput) (domain.Post, error) {
	eventDate, err := s.renderEventDate(in)
	if err != nil {
		return domain.Post{}, err
	}

	row := repo.RowPost{
		ID:          uuid.NewString(),
		AuthorNetID: authorNetID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		EventDate:   eventDate,
	}
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, row, s.norm.Normalize(in.Title))
	})
	if err != nil {
		return domain.Post{}, err
	}
	return s.fromRow(row), nil
}

// Update replaces the editable fields; only the author may edit
func (s *Svc) Update(ctx context.Context, authorNetID, id string, in domain.UpdateInput) (domain.Post, error) {
	eventDate, err := s.renderEventDate(in)
	if err != nil {
		return domain.Post{}, err
	}

	var out domain.Post
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.ByID(ctx, id)
		if err != nil {
			return err
		}
		if cur.AuthorNetID != authorNetID {
			return perr.Forbiddenf("not the author of this post")
		}
		row := repo.RowPost{
			ID:          id,
			AuthorNetID: cur.AuthorNetID,
			Title:       in.Title,
			Description: in.Description,
			Location:    in.Location,
			Category:    in.Category,
			ImageURL:    in.ImageURL,
			EventDate:   eventDate,
			CreatedAt:   cur.CreatedAt,
		}
		if err := r.Update(ctx, row, s.norm.Normalize(in.Title)); err != nil {
			return err
		}
		out = s.fromRow(row)
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}
	return out, nil
}

// Delete removes the post; only the author may delete
func (s *Svc) Delete(ctx context.Context, authorNetID, id string) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.ByID(ctx, id)
		if err != nil {
			return err
		}
		if cur.AuthorNetID != authorNetID {
			return perr.Forbiddenf("not the author of this post")
		}
		return r.Delete(ctx, id)
	})
}

// Get returns the record plus the strictly parsed window for edit forms
func (s *Svc) Get(ctx context.Context, id string) (domain.PostDetail, error) {
	row, err := s.Repo.ByID(ctx, id)
	if err != nil {
		return domain.PostDetail{}, err
	}
	parsed := eventwhen.ParseStrict(row.EventDate)
	return domain.PostDetail{
		Post:   s.fromRow(row),
		Window: windowOf(parsed),
	}, nil
}

// Explore filters, buckets, and orders posts by their event time.
// Rows whose display string no longer parses never error: they sort last
// and only surface in the "all" bucket
func (s *Svc) Explore(ctx context.Context, in domain.ExploreInput) ([]domain.Post, error) {
	// the caller's limit applies after bucketing; capping the fetch here
	// would drop soon-upcoming rows that sit past the created_at cutoff
	rows, err := s.Repo.List(ctx, in.Category, s.norm.Normalize(in.Query), 0)
	if err != nil {
		return nil, err
	}

	bucket := in.Bucket
	if bucket == "" {
		bucket = "upcoming"
	}
	now := s.now()

	type timed struct {
		post domain.Post
		at   time.Time
		ok   bool
	}
	items := make([]timed, 0, len(rows))
	for _, r := range rows {
		at, ok := eventwhen.ParseLoose(r.EventDate)
		switch bucket {
		case "upcoming":
			if !ok || at.Before(now) {
				continue
			}
		case "past":
			if !ok || !at.Before(now) {
				continue
			}
		}
		items = append(items, timed{post: s.fromRow(r), at: at, ok: ok})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.ok != b.ok {
			return a.ok // unparseable rows sort last
		}
		if !a.ok {
			return false
		}
		if bucket == "past" {
			return a.at.After(b.at) // most recent first
		}
		return a.at.Before(b.at) // soonest first
	})

	if in.Limit > 0 && len(items) > in.Limit {
		items = items[:in.Limit]
	}

	out := make([]domain.Post, 0, len(items))
	for _, it := range items {
		out = append(out, it.post)
	}
	return out, nil
}

// Bulletin returns the next N upcoming posts
func (s *Svc) Bulletin(ctx context.Context, limit int) ([]domain.Post, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	posts, err := s.Explore(ctx, domain.ExploreInput{Bucket: "upcoming"})
	if err != nil {
		return nil, err
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// renderEventDate is the single write path from structured fields to the display string
func (s *Svc) renderEventDate(in domain.CreateInput) (string, error) {
	d, ok := eventwhen.ParseDateOnly(in.Date)
	if !ok {
		return "", perr.New(perr.ErrorCodeValidation, "invalid date")
	}
	if err := eventwhen.ValidateDate(d, s.now()); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeValidation, err.Error())
	}
	start, ok := eventwhen.ParseTimeOfDay(in.StartTime)
	if !ok {
		return "", perr.New(perr.ErrorCodeValidation, "invalid start time")
	}
	var end *eventwhen.TimeOfDay
	if in.EndTime != "" {
		e, ok := eventwhen.ParseTimeOfDay(in.EndTime)
		if !ok {
			return "", perr.New(perr.ErrorCodeValidation, "invalid end time")
		}
		end = &e
	}

	c := eventwhen.Combine(ptime.Ptr(d), &start, end)
	formatted := eventwhen.FormatCombined(c)
	if formatted == "" {
		return "", perr.New(perr.ErrorCodeValidation, "invalid event window")
	}
	return formatted, nil
}

func (s *Svc) fromRow(r repo.RowPost) domain.Post {
	return domain.Post{
		ID:          r.ID,
		AuthorNetID: r.AuthorNetID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		EventDate:   r.EventDate,
		CreatedAt:   r.CreatedAt,
	}
}

func windowOf(p eventwhen.Parsed) domain.Window {
	rfc := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format(time.RFC3339)
		return &s
	}
	return domain.Window{Date: rfc(p.Date), Start: rfc(p.Start), End: rfc(p.End)}
}
