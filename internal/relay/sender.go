package relay

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// EmailSender sends one already-composed notification email.
type EmailSender interface {
	Send(ctx context.Context, subject, text string) error
}

type resendSender struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendSender builds the production sender. Sender identity and recipient
// are fixed per process; the submission itself never chooses them.
func NewResendSender(apiKey, from, to string) EmailSender {
	return &resendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (s *resendSender) Send(ctx context.Context, subject, text string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: subject,
		Text:    text,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	return nil
}
