// Package repo provides postgres access for the digest worker
package repo

import (
	"context"

	"redsquare/internal/modkit/repokit"
	perr "redsquare/internal/platform/errors"
	"redsquare/internal/services/digest/domain"
)

// RowEvent is the post slice the digest renders
type RowEvent struct {
	Title     string
	Location  string
	EventDate string
}

// Repo defines the repository contract for digest
type Repo interface {
	Recipients(ctx context.Context) ([]domain.Recipient, error)
	Events(ctx context.Context) ([]RowEvent, error)
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

func (r *queries) Recipients(ctx context.Context) ([]domain.Recipient, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.netid, a.email, p.display_name
		FROM profiles p
		JOIN accounts a ON a.netid = p.netid
		WHERE p.digest_opt_in
	`)
	if err != nil {
		return nil, perr.FromPostgres(err, "digest.Recipients")
	}
	defer rows.Close()

	var out []domain.Recipient
	for rows.Next() {
		var rr domain.Recipient
		if err := rows.Scan(&rr.NetID, &rr.Email, &rr.DisplayName); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Events(ctx context.Context) ([]RowEvent, error) {
	rows, err := r.q.Query(ctx, `
		SELECT title, location, event_date
		FROM posts
		ORDER BY created_at DESC
		LIMIT 1000
	`)
	if err != nil {
		return nil, perr.FromPostgres(err, "digest.Events")
	}
	defer rows.Close()

	var out []RowEvent
	for rows.Next() {
		var rr RowEvent
		if err := rows.Scan(&rr.Title, &rr.Location, &rr.EventDate); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
