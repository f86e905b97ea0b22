// Package repo provides Postgres bindings for ident accounts and sessions
package repo

import (
	"context"
	"time"

	"redsquare/internal/modkit/repokit"
	perr "redsquare/internal/platform/errors"
)

// RowAccount is an account row including the credential hash
type RowAccount struct {
	NetID        string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Repo is the storage contract for ident
type Repo interface {
	CreateAccount(ctx context.Context, netID, email string, hash []byte) error
	AccountByNetID(ctx context.Context, netID string) (RowAccount, error)

	InsertSession(ctx context.Context, token, netID string, expiresAt time.Time) error
	SessionNetID(ctx context.Context, token string, now time.Time) (string, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type (
	// PG is a Postgres binder for Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

var _ Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) CreateAccount(ctx context.Context, netID, email string, hash []byte) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO accounts (netid, email, password_hash)
		VALUES ($1, $2, $3)
	`, netID, email, hash)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.Conflictf("netid already registered")
		}
		return perr.FromPostgres(err, "ident.CreateAccount")
	}
	return nil
}

func (r *queries) AccountByNetID(ctx context.Context, netID string) (RowAccount, error) {
	var out RowAccount
	err := r.q.QueryRow(ctx, `
		SELECT netid, email, password_hash, created_at
		FROM accounts
		WHERE netid = $1
	`, netID).Scan(&out.NetID, &out.Email, &out.PasswordHash, &out.CreatedAt)
	if err != nil {
		if perr.IsNoRows(err) {
			return RowAccount{}, perr.ErrNotFound
		}
		return RowAccount{}, perr.FromPostgres(err, "ident.AccountByNetID")
	}
	return out, nil
}

func (r *queries) InsertSession(ctx context.Context, token, netID string, expiresAt time.Time) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sessions (token, netid, expires_at)
		VALUES ($1, $2, $3)
	`, token, netID, expiresAt)
	if err != nil {
		return perr.FromPostgres(err, "ident.InsertSession")
	}
	return nil
}

func (r *queries) SessionNetID(ctx context.Context, token string, now time.Time) (string, error) {
	var netID string
	err := r.q.QueryRow(ctx, `
		SELECT netid
		FROM sessions
		WHERE token = $1 AND expires_at > $2
	`, token, now).Scan(&netID)
	if err != nil {
		if perr.IsNoRows(err) {
			return "", perr.ErrNotFound
		}
		return "", perr.FromPostgres(err, "ident.SessionNetID")
	}
	return netID, nil
}

func (r *queries) DeleteSession(ctx context.Context, token string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return perr.FromPostgres(err, "ident.DeleteSession")
	}
	return nil
}

func (r *queries) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, perr.FromPostgres(err, "ident.DeleteExpired")
	}
	return tag.RowsAffected(), nil
}
