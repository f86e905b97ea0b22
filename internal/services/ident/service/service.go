// Package service contains ident workflows: signup, signin, session resolution
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"redsquare/internal/modkit/repokit"
	perr "redsquare/internal/platform/errors"
	"redsquare/internal/platform/logger"
	"redsquare/internal/services/ident/domain"
	"redsquare/internal/services/ident/repo"
)

// WelcomePort is satisfied by the mailer module; nil disables welcome mail
type WelcomePort interface {
	SendWelcome(ctx context.Context, netID, email string)
}

// Config tunes session issuance
type Config struct {
	SessionTTL time.Duration // default 30 days
	BcryptCost int           // default bcrypt.DefaultCost
}

// Service defines the ident service contract
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	db      repokit.TxRunner
	binder  repokit.Binder[repo.Repo]
	cfg     Config
	welcome WelcomePort
}

// New constructs the ident service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config, welcome WelcomePort) *Svc {
	if db == nil {
		panic("ident.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non nil Repo binder")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * 24 * time.Hour
	}
	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &Svc{db: db, binder: binder, cfg: cfg, welcome: welcome}
}

// Register creates an account and issues a first session
func (s *Svc) Register(ctx context.Context, in domain.RegisterInput) (domain.AuthResult, error) {
	netID := strings.ToLower(strings.TrimSpace(in.NetID))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cfg.BcryptCost)
	if err != nil {
		return domain.AuthResult{}, perr.Wrap(err, perr.ErrorCodeUnknown, "hash password")
	}

	var out domain.AuthResult
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.CreateAccount(ctx, netID, email, hash); err != nil {
			return err
		}
		sess, err := s.issue(ctx, r, netID)
		if err != nil {
			return err
		}
		out = sess
		return nil
	})
	if err != nil {
		return domain.AuthResult{}, err
	}

	if s.welcome != nil {
		// fail-soft; the mailer logs its own errors
		s.welcome.SendWelcome(ctx, netID, email)
	}
	return out, nil
}

// Login verifies credentials and issues a session
func (s *Svc) Login(ctx context.Context, in domain.LoginInput) (domain.AuthResult, error) {
	netID := strings.ToLower(strings.TrimSpace(in.NetID))

	var out domain.AuthResult
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		acct, err := r.AccountByNetID(ctx, netID)
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				// same shape as a wrong password; do not leak which accounts exist
				return perr.Unauthorizedf("invalid netid or password")
			}
			return err
		}
		if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(in.Password)) != nil {
			return perr.Unauthorizedf("invalid netid or password")
		}
		sess, err := s.issue(ctx, r, acct.NetID)
		if err != nil {
			return err
		}
		out = sess
		return nil
	})
	if err != nil {
		return domain.AuthResult{}, err
	}
	return out, nil
}

// Logout revokes the session token; unknown tokens are a no op
func (s *Svc) Logout(ctx context.Context, token string) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).DeleteSession(ctx, token)
	})
}

// Resolve maps a live token to its NetID for the auth middleware
func (s *Svc) Resolve(ctx context.Context, token string) (string, error) {
	var netID string
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		nid, err := s.binder.Bind(q).SessionNetID(ctx, token, time.Now())
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return perr.Unauthorizedf("invalid bearer token")
			}
			return err
		}
		netID = nid
		return nil
	})
	return netID, err
}

// Sweep deletes expired sessions; called opportunistically by the digest worker
func (s *Svc) Sweep(ctx context.Context) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		n, err := s.binder.Bind(q).DeleteExpired(ctx, time.Now())
		if err != nil {
			return err
		}
		if n > 0 {
			logger.C(ctx).Debug().Int64("sessions", n).Msg("expired sessions swept")
		}
		return nil
	})
}

func (s *Svc) issue(ctx context.Context, r repo.Repo, netID string) (domain.AuthResult, error) {
	token := uuid.NewString()
	exp := time.Now().Add(s.cfg.SessionTTL).UTC()
	if err := r.InsertSession(ctx, token, netID, exp); err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{
		Token:     token,
		NetID:     netID,
		ExpiresAt: exp.Format(time.RFC3339),
	}, nil
}
