// Package repo provides postgres access for posts
package repo

import (
	"context"

	"redsquare/internal/modkit/repokit"
	perr "redsquare/internal/platform/errors"
)

// RowPost represents a post row from the database
type RowPost struct {
	ID          string
	AuthorNetID string
	Title       string
	Description string
	Location    string
	Category    string
	ImageURL    string
	EventDate   string
	CreatedAt   string
}

// Repo defines the repository contract for posts
type Repo interface {
	Insert(ctx context.Context, row RowPost, searchTitle string) error
	Update(ctx context.Context, row RowPost, searchTitle string) error
	Delete(ctx context.Context, id string) error
	ByID(ctx context.Context, id string) (RowPost, error)
	List(ctx context.Context, category, searchQuery string, limit int) ([]RowPost, error)
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

const postCols = `id::text, author_netid, title, description, location, category, image_url, event_date, created_at::text`

func (r *queries) Insert(ctx context.Context, row RowPost, searchTitle string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO posts (id, author_netid, title, description, location, category, image_url, event_date, search_title)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, row.ID, row.AuthorNetID, row.Title, row.Description, row.Location, row.Category, row.ImageURL, row.EventDate, searchTitle)
	return perr.FromPostgres(err, "posts.Insert")
}

func (r *queries) Update(ctx context.Context, row RowPost, searchTitle string) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE posts
		SET title = $2, description = $3, location = $4, category = $5, image_url = $6, event_date = $7, search_title = $8
		WHERE id = $1
	`, row.ID, row.Title, row.Description, row.Location, row.Category, row.ImageURL, row.EventDate, searchTitle)
	if err != nil {
		return perr.FromPostgres(err, "posts.Update")
	}
	if tag.RowsAffected() == 0 {
		return perr.ErrNotFound
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return perr.FromPostgres(err, "posts.Delete")
	}
	if tag.RowsAffected() == 0 {
		return perr.ErrNotFound
	}
	return nil
}

func (r *queries) ByID(ctx context.Context, id string) (RowPost, error) {
	var out RowPost
	err := r.q.QueryRow(ctx, `
		SELECT `+postCols+`
		FROM posts
		WHERE id = $1
	`, id).Scan(
		&out.ID, &out.AuthorNetID, &out.Title, &out.Description,
		&out.Location, &out.Category, &out.ImageURL, &out.EventDate, &out.CreatedAt,
	)
	if err != nil {
		if perr.IsNoRows(err) {
			return RowPost{}, perr.ErrNotFound
		}
		return RowPost{}, perr.FromPostgres(err, "posts.ByID")
	}
	return out, nil
}

// List filters by exact category and normalized title substring.
// Event-time ordering happens in the service; the string column cannot sort chronologically
func (r *queries) List(ctx context.Context, category, searchQuery string, limit int) ([]RowPost, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+postCols+`
		FROM posts
		WHERE ($1 = '' OR category = $1)
		AND ($2 = '' OR search_title LIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		LIMIT $3
	`, category, searchQuery, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "posts.List")
	}
	defer rows.Close()

	var out []RowPost
	for rows.Next() {
		var rr RowPost
		if err := rows.Scan(
			&rr.ID, &rr.AuthorNetID, &rr.Title, &rr.Description,
			&rr.Location, &rr.Category, &rr.ImageURL, &rr.EventDate, &rr.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
