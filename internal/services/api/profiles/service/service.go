// Package service contains profile workflows
package service

import (
	"context"

	"redsquare/internal/modkit/repokit"
	perr "redsquare/internal/platform/errors"
	"redsquare/internal/services/api/profiles/domain"
	"redsquare/internal/services/api/profiles/repo"
)

// Service defines the service contract for profiles
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new profiles service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("profiles.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("profiles.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Me returns the caller's profile; a never-edited profile comes back as a stub
func (s *Svc) Me(ctx context.Context, netID string) (domain.Profile, error) {
	row, err := s.Repo.ByNetID(ctx, netID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Profile{NetID: netID, DisplayName: netID}, nil
		}
		return domain.Profile{}, err
	}
	return fromRow(row), nil
}

// Upsert replaces the caller's profile
func (s *Svc) Upsert(ctx context.Context, netID string, in domain.UpsertInput) (domain.Profile, error) {
	row := repo.RowProfile{
		NetID:       netID,
		DisplayName: in.DisplayName,
		Major:       in.Major,
		GradYear:    in.GradYear,
		AvatarURL:   in.AvatarURL,
		DigestOptIn: in.DigestOptIn,
	}
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Upsert(ctx, row)
	})
	if err != nil {
		return domain.Profile{}, err
	}
	return s.Me(ctx, netID)
}

// Public returns the public view of any profile
func (s *Svc) Public(ctx context.Context, netID string) (domain.PublicProfile, error) {
	row, err := s.Repo.ByNetID(ctx, netID)
	if err != nil {
		return domain.PublicProfile{}, err
	}
	return domain.PublicProfile{
		NetID:       row.NetID,
		DisplayName: row.DisplayName,
		Major:       row.Major,
		GradYear:    row.GradYear,
		AvatarURL:   row.AvatarURL,
	}, nil
}

func fromRow(r repo.RowProfile) domain.Profile {
	return domain.Profile{
		NetID:       r.NetID,
		DisplayName: r.DisplayName,
		Major:       r.Major,
		GradYear:    r.GradYear,
		AvatarURL:   r.AvatarURL,
		DigestOptIn: r.DigestOptIn,
		UpdatedAt:   r.UpdatedAt,
	}
}
