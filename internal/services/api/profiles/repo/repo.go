// Package repo provides postgres access for profiles
package repo

import (
	"context"

	"redsquare/internal/modkit/repokit"
	perr "redsquare/internal/platform/errors"
)

// RowProfile represents a profile row from the database
type RowProfile struct {
	NetID       string
	DisplayName string
	Major       string
	GradYear    int
	AvatarURL   string
	DigestOptIn bool
	UpdatedAt   string
}

// Repo defines the repository contract for profiles
type Repo interface {
	ByNetID(ctx context.Context, netID string) (RowProfile, error)
	Upsert(ctx context.Context, row RowProfile) error
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

func (r *queries) ByNetID(ctx context.Context, netID string) (RowProfile, error) {
	var out RowProfile
	err := r.q.QueryRow(ctx, `
		SELECT netid, display_name, major, grad_year, avatar_url, digest_opt_in, updated_at::text
		FROM profiles
		WHERE netid = $1
	`, netID).Scan(
		&out.NetID, &out.DisplayName, &out.Major, &out.GradYear,
		&out.AvatarURL, &out.DigestOptIn, &out.UpdatedAt,
	)
	if err != nil {
		if perr.IsNoRows(err) {
			return RowProfile{}, perr.ErrNotFound
		}
		return RowProfile{}, perr.FromPostgres(err, "profiles.ByNetID")
	}
	return out, nil
}

func (r *queries) Upsert(ctx context.Context, row RowProfile) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO profiles (netid, display_name, major, grad_year, avatar_url, digest_opt_in, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (netid) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		major = EXCLUDED.major,
		grad_year = EXCLUDED.grad_year,
		avatar_url = EXCLUDED.avatar_url,
		digest_opt_in = EXCLUDED.digest_opt_in,
		updated_at = now()
	`, row.NetID, row.DisplayName, row.Major, row.GradYear, row.AvatarURL, row.DigestOptIn)
	return perr.FromPostgres(err, "profiles.Upsert")
}
