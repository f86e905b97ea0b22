// Package service contains saved-post workflows
package service

import (
	"context"
	"sort"
	"time"

	"redsquare/internal/core/eventwhen"
	"redsquare/internal/modkit/repokit"
	"redsquare/internal/services/api/saved/domain"
	"redsquare/internal/services/api/saved/repo"

	postsdom "redsquare/internal/services/api/posts/domain"
)

// Service defines the service contract for saved
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new saved service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("saved.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("saved.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Save bookmarks a post; saving twice is a no op
func (s *Svc) Save(ctx context.Context, netID, postID string) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Upsert(ctx, netID, postID)
	})
}

// Unsave removes the bookmark; unknown bookmarks are a no op
func (s *Svc) Unsave(ctx context.Context, netID, postID string) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Delete(ctx, netID, postID)
	})
}

// List returns bookmarks ordered by event time, soonest first.
// Posts whose display string no longer parses sort last
func (s *Svc) List(ctx context.Context, netID string) ([]domain.SavedPost, error) {
	rows, err := s.Repo.ListByNetID(ctx, netID)
	if err != nil {
		return nil, err
	}

	type timed struct {
		item domain.SavedPost
		at   time.Time
		ok   bool
	}
	items := make([]timed, 0, len(rows))
	for _, r := range rows {
		at, ok := eventwhen.ParseLoose(r.Post.EventDate)
		items = append(items, timed{
			item: domain.SavedPost{
				SavedAt: r.SavedAt,
				Post: postsdom.Post{
					ID:          r.Post.ID,
					AuthorNetID: r.Post.AuthorNetID,
					Title:       r.Post.Title,
					Description: r.Post.Description,
					Location:    r.Post.Location,
					Category:    r.Post.Category,
					ImageURL:    r.Post.ImageURL,
					EventDate:   r.Post.EventDate,
					CreatedAt:   r.Post.CreatedAt,
				},
			},
			at: at,
			ok: ok,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.ok != b.ok {
			return a.ok
		}
		if !a.ok {
			return false
		}
		return a.at.Before(b.at)
	})

	out := make([]domain.SavedPost, 0, len(items))
	for _, it := range items {
		out = append(out, it.item)
	}
	return out, nil
}
