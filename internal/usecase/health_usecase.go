package usecase

import (
	"context"

	"go-contact-relay/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	emailSender domain.EmailSender
}

func NewHealthUsecase(emailSender domain.EmailSender) HealthUsecase {
	return &healthUsecase{emailSender: emailSender}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	delivery := "configured"
	if !u.emailSender.IsConfigured() {
		delivery = "unconfigured"
	}
	return map[string]string{
		"status":   "ok",
		"delivery": delivery,
	}
}
