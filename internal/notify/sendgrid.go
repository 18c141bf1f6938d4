// internal/notify/sendgrid.go
package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendgridProvider delivers notifications as plain-text email.
type SendgridProvider struct {
	client *sendgrid.Client
	from   string
}

func NewSendgridProvider(apiKey, from string) *SendgridProvider {
	return &SendgridProvider{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func (p *SendgridProvider) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail("", p.from)
	to := mail.NewEmail("", msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, "")

	response, err := p.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send via Sendgrid: %w", err)
	}
	if response.StatusCode != 202 {
		return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
