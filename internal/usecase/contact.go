package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-contact-relay/internal/domain"
)

type contactUsecase struct {
	emailSender domain.EmailSender
	validate    *validator.Validate
}

// NewContactUsecase creates a new contact usecase. The validator instance
// must have the custom validators from pkg/validation registered.
func NewContactUsecase(emailSender domain.EmailSender, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		emailSender: emailSender,
		validate:    validate,
	}
}

// SendContactMessage re-validates the contact request (never trust the
// client) and forwards it as an email through the delivery provider.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (string, error) {
	if err := uc.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return "", err
		}
		// Blank fields take precedence over a malformed email address
		for _, fe := range verrs {
			if fe.Tag() == "notblank" {
				return "", domain.ErrMissingFields
			}
		}
		return "", domain.ErrInvalidEmail
	}

	// Check if the delivery provider credential is present. This is an
	// operability fault of the server, not a caller mistake.
	if !uc.emailSender.IsConfigured() {
		return "", domain.ErrNotConfigured
	}

	id, err := uc.emailSender.SendContactEmail(ctx, domain.ContactEmailData{
		SenderName:  strings.TrimSpace(req.Name),
		SenderEmail: strings.TrimSpace(req.Email),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	return id, nil
}
