// Package repo provides postgres access for the calendar feed
package repo

import (
	"context"

	"redsquare/internal/modkit/repokit"
	perr "redsquare/internal/platform/errors"
)

// RowEvent is the slice of a post the feed needs
type RowEvent struct {
	ID          string
	Title       string
	Description string
	Location    string
	EventDate   string
	CreatedAt   string
}

// Repo defines the repository contract for feed
type Repo interface {
	All(ctx context.Context, limit int) ([]RowEvent, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

var _ Repo = (*queries)(nil)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) All(ctx context.Context, limit int) ([]RowEvent, error) {
	if limit <= 0 || limit > 1000 {
		limit = 500
	}
	rows, err := r.q.Query(ctx, `
		SELECT id::text, title, description, location, event_date, created_at::text
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "feed.All")
	}
	defer rows.Close()

	var out []RowEvent
	for rows.Next() {
		var rr RowEvent
		if err := rows.Scan(&rr.ID, &rr.Title, &rr.Description, &rr.Location, &rr.EventDate, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
