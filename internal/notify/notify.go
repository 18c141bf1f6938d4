// internal/notify/notify.go
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/civicdesk/constituent-crm/internal/config"
)

//go:generate mockgen -source=./notify.go -destination=../mocks/mock_notify_provider.go -package=mocks Provider

// Message is a single outbound notification. Only the email channel is
// implemented today; SMS and LINE attach at the Provider seam when they
// become real.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Provider delivers a message over one channel.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// Service fans notifications out to the configured provider. Delivery is
// best-effort: callers log failures and never fail the originating request.
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("missing recipient")
	}
	return s.provider.Send(ctx, msg)
}

// NewProvider picks the provider for the current configuration: sendgrid
// when an API key is present, otherwise log-only.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Sendgrid.APIKey != "" {
		return NewSendgridProvider(cfg.Sendgrid.APIKey, cfg.Sendgrid.From)
	}
	return &LogProvider{}
}

// LogProvider records the message instead of delivering it.
type LogProvider struct{}

func (p *LogProvider) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "notification suppressed (no delivery provider configured)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
