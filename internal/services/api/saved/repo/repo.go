// Package repo provides postgres access for saved posts
package repo

import (
	"context"

	"redsquare/internal/modkit/repokit"
	perr "redsquare/internal/platform/errors"
	postsrepo "redsquare/internal/services/api/posts/repo"
)

// RowSaved is a bookmark joined with its post row
type RowSaved struct {
	SavedAt string
	Post    postsrepo.RowPost
}

// Repo defines the repository contract for saved
type Repo interface {
	Upsert(ctx context.Context, netID, postID string) error
	Delete(ctx context.Context, netID, postID string) error
	ListByNetID(ctx context.Context, netID string) ([]RowSaved, error)
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

func (r *queries) Upsert(ctx context.Context, netID, postID string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO saved_posts (netid, post_id)
		VALUES ($1, $2)
		ON CONFLICT (netid, post_id) DO NOTHING
	`, netID, postID)
	if err != nil {
		if perr.IsForeignKeyViolation(err) {
			return perr.NotFoundf("post %s not found", postID)
		}
		return perr.FromPostgres(err, "saved.Upsert")
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, netID, postID string) error {
	if _, err := r.q.Exec(ctx, `
		DELETE FROM saved_posts WHERE netid = $1 AND post_id = $2
	`, netID, postID); err != nil {
		return perr.FromPostgres(err, "saved.Delete")
	}
	return nil
}

func (r *queries) ListByNetID(ctx context.Context, netID string) ([]RowSaved, error) {
	rows, err := r.q.Query(ctx, `
		SELECT s.created_at::text,
		p.id::text, p.author_netid, p.title, p.description, p.location, p.category, p.image_url, p.event_date, p.created_at::text
		FROM saved_posts s
		JOIN posts p ON p.id = s.post_id
		WHERE s.netid = $1
		ORDER BY s.created_at DESC
	`, netID)
	if err != nil {
		return nil, perr.FromPostgres(err, "saved.ListByNetID")
	}
	defer rows.Close()

	var out []RowSaved
	for rows.Next() {
		var rr RowSaved
		if err := rows.Scan(
			&rr.SavedAt,
			&rr.Post.ID, &rr.Post.AuthorNetID, &rr.Post.Title, &rr.Post.Description,
			&rr.Post.Location, &rr.Post.Category, &rr.Post.ImageURL, &rr.Post.EventDate, &rr.Post.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
