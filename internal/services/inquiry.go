package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"carlygage/internal/config"
	"carlygage/internal/domain"
	"carlygage/internal/mailer"
	"carlygage/internal/metrics"
	apperrors "carlygage/pkg/errors"
)

// MsgCorrectFields is returned alongside per-field validation messages
const MsgCorrectFields = "Please correct the highlighted fields."

// InquiryService renders inquiry notifications and hands them to the
// email provider. It keeps no state between calls.
type InquiryService struct {
	sender mailer.Sender
	cfg    config.InquiryConfig
	logger *zap.Logger
	now    func() time.Time
	newRef func() string
}

// NewInquiryService creates an inquiry service. A nil sender means the
// provider credential was missing at startup; every submission then fails
// with the fallback contact message.
func NewInquiryService(sender mailer.Sender, cfg config.InquiryConfig, logger *zap.Logger) *InquiryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &InquiryService{
		sender: sender,
		cfg:    cfg,
		logger: logger.With(zap.String("component", "inquiry")),
		now:    time.Now,
		newRef: uuid.NewString,
	}
	if sender == nil {
		s.logger.Warn("email sender is not configured; inquiries will return the fallback contact message",
			zap.String("fallback", cfg.FallbackContact))
	}
	return s
}

// Configured reports whether an email sender is available
func (s *InquiryService) Configured() bool {
	return s.sender != nil
}

// UnconfiguredMessage is returned when no sender is available
func (s *InquiryService) UnconfiguredMessage() string {
	return fmt.Sprintf("Email service is not configured. Please contact %s directly.", s.cfg.FallbackContact)
}

// DeliveryFailedMessage is returned when the provider call fails
func (s *InquiryService) DeliveryFailedMessage() string {
	return fmt.Sprintf("We couldn't send your inquiry right now. Please contact %s directly.", s.cfg.FallbackContact)
}

// Submit delivers one notification for a validated inquiry. It never
// returns an error; failures are reported in the result.
func (s *InquiryService) Submit(ctx context.Context, req domain.InquiryRequest) domain.InquiryResult {
	result, _ := s.deliver(ctx, req)
	return result
}

// Process validates the raw form and delivers it. The returned error carries
// the failure class (ValidationErrors, CONFIGURATION_ERROR, DELIVERY_ERROR)
// for transports that map it to a status code.
func (s *InquiryService) Process(ctx context.Context, form domain.InquiryForm) (domain.InquiryResult, error) {
	req, err := domain.ValidateInquiry(form)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				metrics.RecordValidationFailure(fe.Field)
			}
			metrics.RecordInquiry(metrics.OutcomeInvalid)
			s.logger.Info("inquiry rejected by validation", zap.Strings("fields", fieldNames(verrs)))
			return domain.InquiryResult{Success: false, Error: MsgCorrectFields, Fields: verrs.Fields()}, err
		}
		return domain.InquiryFailed(MsgCorrectFields, ""), err
	}
	return s.deliver(ctx, req)
}

func (s *InquiryService) deliver(ctx context.Context, req domain.InquiryRequest) (result domain.InquiryResult, err error) {
	ref := s.newRef()
	log := s.logger.With(zap.String("reference", ref))

	if s.sender == nil {
		// the missing credential was reported once at construction
		metrics.RecordInquiry(metrics.OutcomeUnconfigured)
		return domain.InquiryFailed(s.UnconfiguredMessage(), ref),
			apperrors.New(apperrors.ErrCodeConfiguration, "email sender is not configured")
	}

	defer func() {
		if r := recover(); r != nil {
			metrics.RecordInquiry(metrics.OutcomeFailed)
			log.Error("inquiry delivery panicked", zap.Any("panic", r))
			result = domain.InquiryFailed(s.DeliveryFailedMessage(), ref)
			err = apperrors.New(apperrors.ErrCodeDelivery, fmt.Sprintf("panic during delivery: %v", r))
		}
	}()

	email, err := RenderInquiryEmail(req, s.cfg.SubjectPrefix, ref, s.now())
	if err != nil {
		metrics.RecordInquiry(metrics.OutcomeFailed)
		log.Error("failed to render inquiry email", zap.Error(err))
		return domain.InquiryFailed(s.DeliveryFailedMessage(), ref),
			apperrors.Wrap(apperrors.ErrCodeInternalError, "render inquiry email", err)
	}

	id, err := s.sender.Send(ctx, &mailer.Message{
		From:    s.cfg.From,
		To:      []string{s.cfg.BusinessInbox},
		Subject: email.Subject,
		ReplyTo: req.Email,
		HTML:    email.HTML,
		Text:    email.Text,
	})
	if err != nil {
		metrics.RecordInquiry(metrics.OutcomeFailed)
		log.Error("inquiry email was not accepted", zap.Error(err))
		if !apperrors.IsDelivery(err) {
			err = apperrors.Wrap(apperrors.ErrCodeDelivery, "send inquiry email", err)
		}
		return domain.InquiryFailed(s.DeliveryFailedMessage(), ref), err
	}

	metrics.RecordInquiry(metrics.OutcomeSent)
	log.Info("inquiry email sent",
		zap.String("message_id", id),
		zap.String("session_type", string(req.SessionType)),
		zap.String("location", req.Location))
	return domain.InquirySucceeded(ref), nil
}

func fieldNames(verrs domain.ValidationErrors) []string {
	names := make([]string, len(verrs))
	for i, fe := range verrs {
		names[i] = fe.Field
	}
	return names
}
