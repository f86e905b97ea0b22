// Package service contains the outbound mail workflows
package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"redsquare/internal/platform/logger"
)

// Sender is the transport seam; resend in production, a fake in tests
type Sender interface {
	Send(ctx context.Context, to []string, subject, html string) error
}

// Config tunes the mailer
type Config struct {
	APIKey  string
	From    string
	Enabled bool
}

// markdown renderer for event descriptions; raw HTML stays escaped
var md = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkhtml.WithHardWraps(),
	),
)

// Svc sends transactional mail. All sends are fail-soft: errors are logged
// and swallowed so mail trouble never fails an API call
type Svc struct {
	sender Sender
}

// New constructs the mailer from config; disabled config yields a no op mailer
func New(cfg Config) *Svc {
	if !cfg.Enabled || cfg.APIKey == "" {
		return &Svc{}
	}
	return &Svc{
		sender: &resendSender{client: resend.NewClient(cfg.APIKey), from: cfg.From},
	}
}

// NewWithSender wires a custom transport; used by tests
func NewWithSender(s Sender) *Svc {
	return &Svc{sender: s}
}

// SendWelcome greets a new account
func (s *Svc) SendWelcome(ctx context.Context, netID, email string) {
	body := fmt.Sprintf("# Welcome to RedSquare\n\nHey **%s**, your account is ready. Post an event or browse the bulletin to get started.", netID)
	s.send(ctx, []string{email}, "Welcome to RedSquare", body)
}

// SendDigest delivers a weekly digest rendered from markdown
func (s *Svc) SendDigest(ctx context.Context, email, subject, markdown string) {
	s.send(ctx, []string{email}, subject, markdown)
}

// RenderMarkdown converts markdown to HTML the same way digest bodies are built
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Svc) send(ctx context.Context, to []string, subject, markdown string) {
	if s.sender == nil {
		logger.C(ctx).Debug().Strs("to", to).Str("subject", subject).Msg("mailer disabled, dropping mail")
		return
	}
	html, err := RenderMarkdown(markdown)
	if err != nil {
		logger.C(ctx).Error().Err(err).Str("subject", subject).Msg("mail render failed")
		return
	}
	if err := s.sender.Send(ctx, to, subject, html); err != nil {
		logger.C(ctx).Error().Err(err).Strs("to", to).Str("subject", subject).Msg("mail send failed")
		return
	}
	logger.C(ctx).Info().Strs("to", to).Str("subject", subject).Msg("mail sent")
}

type resendSender struct {
	client *resend.Client
	from   string
}

func (r *resendSender) Send(ctx context.Context, to []string, subject, html string) error {
	_, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	return err
}
