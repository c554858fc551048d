package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"carlygage/internal/config"
	"carlygage/internal/metrics"
	apperrors "carlygage/pkg/errors"
)

// Message is one outbound email
type Message struct {
	From    string
	To      []string
	Subject string
	ReplyTo string
	HTML    string
	Text    string
}

// Sender delivers a message through a transactional email provider and
// returns the provider's message id. Implementations are safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// SenderFunc adapts a function to Sender
type SenderFunc func(ctx context.Context, msg *Message) (string, error)

// Send calls f
func (f SenderFunc) Send(ctx context.Context, msg *Message) (string, error) {
	return f(ctx, msg)
}

// NewSender builds the sender for the configured provider. When the
// provider credential is missing it returns a nil Sender and a
// CONFIGURATION_ERROR.
func NewSender(ctx context.Context, cfg config.EmailConfig, logger *zap.Logger) (Sender, error) {
	if !cfg.EmailCredentialPresent() {
		return nil, apperrors.New(apperrors.ErrCodeConfiguration,
			fmt.Sprintf("credential for email provider %q is not set", cfg.Provider))
	}

	var (
		sender Sender
		err    error
	)
	switch cfg.Provider {
	case config.ProviderResend:
		sender = NewResendSender(cfg.ResendAPIKey)
	case config.ProviderSES:
		sender, err = NewSESSender(ctx, cfg.SESRegion)
	case config.ProviderSMTP:
		sender = NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	default:
		return nil, apperrors.New(apperrors.ErrCodeConfiguration,
			fmt.Sprintf("unknown email provider %q", cfg.Provider))
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeConfiguration, "failed to initialize email provider", err)
	}

	logger.Info("email sender initialized", zap.String("provider", cfg.Provider))
	return Instrument(cfg.Provider, sender, logger), nil
}

// Instrument wraps a sender with latency metrics, debug logging and
// DELIVERY_ERROR wrapping of provider failures.
func Instrument(provider string, next Sender, logger *zap.Logger) Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &instrumented{provider: provider, next: next, logger: logger.With(zap.String("provider", provider))}
}

type instrumented struct {
	provider string
	next     Sender
	logger   *zap.Logger
}

func (s *instrumented) Send(ctx context.Context, msg *Message) (string, error) {
	start := time.Now()
	id, err := s.next.Send(ctx, msg)
	elapsed := time.Since(start)
	metrics.RecordEmailSend(s.provider, elapsed, err)

	if err != nil {
		s.logger.Error("email send failed", zap.Duration("duration", elapsed), zap.Error(err))
		if apperrors.IsDelivery(err) {
			return "", err
		}
		return "", apperrors.Wrap(apperrors.ErrCodeDelivery, s.provider+" rejected message", err)
	}
	s.logger.Debug("email sent", zap.String("message_id", id), zap.Duration("duration", elapsed))
	return id, nil
}

// headerSafe strips line breaks so user input cannot inject headers
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
