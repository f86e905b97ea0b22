// Package service composes and sends the weekly event digest
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"redsquare/internal/core/eventwhen"
	"redsquare/internal/modkit/repokit"
	"redsquare/internal/platform/logger"
	"redsquare/internal/services/digest/domain"
	"redsquare/internal/services/digest/repo"
)

// lookahead is the digest window
const lookahead = 7 * 24 * time.Hour

// MailerPort is the slice of the mailer the digest needs
type MailerPort interface {
	SendDigest(ctx context.Context, email, subject, markdown string)
}

// SweeperPort lets the worker piggyback session cleanup on its schedule
type SweeperPort interface {
	Sweep(ctx context.Context) error
}

// Svc implements the digest workflow
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	mailer  MailerPort
	sweeper SweeperPort

	now func() time.Time
}

// New creates the digest service; sweeper may be nil
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], mailer MailerPort, sweeper SweeperPort) *Svc {
	if db == nil {
		panic("digest.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("digest.Service requires a non nil Repo binder")
	}
	if mailer == nil {
		panic("digest.Service requires a non nil Mailer")
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		mailer:  mailer,
		sweeper: sweeper,
		now:     time.Now,
	}
}

// Run selects the next week's events and mails every opted-in profile
func (s *Svc) Run(ctx context.Context) error {
	log := logger.C(ctx)

	if s.sweeper != nil {
		if err := s.sweeper.Sweep(ctx); err != nil {
			log.Warn().Err(err).Msg("session sweep failed")
		}
	}

	entries, err := s.upcomingWeek(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		log.Info().Msg("no events next week, skipping digest")
		return nil
	}

	recipients, err := s.Repo.Recipients(ctx)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		log.Info().Msg("no digest recipients")
		return nil
	}

	subject := fmt.Sprintf("This week on RedSquare: %d events", len(entries))
	for _, rcpt := range recipients {
		s.mailer.SendDigest(ctx, rcpt.Email, subject, renderDigest(rcpt, entries))
	}

	log.Info().Int("events", len(entries)).Int("recipients", len(recipients)).Msg("digest run complete")
	return nil
}

// upcomingWeek filters posts to the [now, now+7d) window via the display string
func (s *Svc) upcomingWeek(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.Repo.Events(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	horizon := now.Add(lookahead)

	var out []domain.Entry
	for _, r := range rows {
		at, ok := eventwhen.ParseLoose(r.EventDate)
		if !ok || at.Before(now) || !at.Before(horizon) {
			continue
		}
		out = append(out, domain.Entry{
			Title:     r.Title,
			Location:  r.Location,
			EventDate: r.EventDate,
			At:        at,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out, nil
}

func renderDigest(rcpt domain.Recipient, entries []domain.Entry) string {
	name := rcpt.DisplayName
	if name == "" {
		name = rcpt.NetID
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Your week on RedSquare\n\nHi %s, here's what's coming up:\n\n", name)
	for _, e := range entries {
		fmt.Fprintf(&b, "- **%s** · %s", e.Title, e.EventDate)
		if e.Location != "" {
			fmt.Fprintf(&b, " @ %s", e.Location)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nSee you there!\n")
	return b.String()
}
