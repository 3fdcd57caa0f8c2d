package application

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"unicode/utf8"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

// maxMessageLength caps the contact message, counted in runes.
const maxMessageLength = 5000

// ContactService validates contact form submissions and hands them to the
// configured mail-delivery collaborator.
type ContactService struct {
	delivery driven.MailDelivery
	logger   *slog.Logger
}

// NewContactService creates a ContactService with the required dependencies.
func NewContactService(delivery driven.MailDelivery, logger *slog.Logger) *ContactService {
	return &ContactService{
		delivery: delivery,
		logger:   logger,
	}
}

// Submit validates the form and delivers it. It returns *model.ValidationError
// for bad input and *model.DeliveryError when the collaborator refused the
// submission. Any other collaborator error is wrapped as a retryable
// DeliveryError so callers only ever branch on the two types.
func (s *ContactService) Submit(ctx context.Context, form model.ContactForm) (model.ContactReceipt, error) {
	form = form.Normalize()

	if err := ValidateContactForm(form); err != nil {
		return model.ContactReceipt{}, err
	}

	receipt, err := s.delivery.Submit(ctx, form)
	if err != nil {
		var de *model.DeliveryError
		if !errors.As(err, &de) {
			de = &model.DeliveryError{Err: err, Retryable: true}
		}
		s.logger.Warn("contact delivery failed", "retryable", de.Retryable, "error", de.Err)
		return model.ContactReceipt{}, de
	}

	s.logger.Info("contact submission accepted", "id", receipt.ID)
	return receipt, nil
}

// ValidateContactForm checks a normalized form and returns *model.ValidationError
// listing every invalid field, or nil.
func ValidateContactForm(form model.ContactForm) error {
	fields := make(map[string]string)

	if form.Name == "" {
		fields["name"] = "Name is required"
	}

	if form.Email == "" {
		fields["email"] = "Email is required"
	} else if addr, err := mail.ParseAddress(form.Email); err != nil || addr.Address != form.Email {
		fields["email"] = "Email address is not valid"
	}

	switch {
	case form.Message == "":
		fields["message"] = "Message is required"
	case utf8.RuneCountInString(form.Message) > maxMessageLength:
		fields["message"] = "Message is too long"
	}

	if len(fields) > 0 {
		return &model.ValidationError{Fields: fields}
	}
	return nil
}
