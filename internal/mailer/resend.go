package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers mail through the Resend API
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a Resend sender for the given API key
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// NewResendSenderWithClient wraps a preconfigured client
func NewResendSenderWithClient(client *resend.Client) *ResendSender {
	return &ResendSender{client: client}
}

// Send implements Sender
func (s *ResendSender) Send(ctx context.Context, msg *Message) (string, error) {
	resp, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: headerSafe(msg.Subject),
		ReplyTo: headerSafe(msg.ReplyTo),
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", err
	}
	return resp.Id, nil
}
